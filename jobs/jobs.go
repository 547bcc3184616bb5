package jobs

import (
	"context"
	"log"
	"time"

	db "meditrack/config/db"
	"meditrack/models"
	"meditrack/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	demoPatientId = "P123456"
	demoDoctorId  = "D789012"
	demoPassword  = "password123"
)

// StartDailyScheduler restores the public demo account to its pristine state
// every night. Anyone can log into it, so its record accumulates junk.
func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily demo data reset...")
		ResetDemoData()
	})

	c.Start()
}

/*
* Insert the demo patient and demo doctor when absent
* Run once at startup so a fresh database is immediately usable
 */
func SeedDemoData() {
	ctx := context.Background()

	patientColl := db.OpenCollections(util.PATIENT_COLLECTION)
	count, err := db.CountDocs(ctx, patientColl, bson.M{"patientId": demoPatientId})
	if err != nil {
		log.Println("Error checking demo patient:", err)
		return
	}
	if count == 0 {
		if _, err := db.CreateOne(ctx, patientColl, demoPatient()); err != nil {
			log.Println("Error seeding demo patient:", err)
		} else {
			log.Println("Demo patient seeded:", demoPatientId)
		}
	}

	doctorColl := db.OpenCollections(util.DOCTOR_COLLECTION)
	count, err = db.CountDocs(ctx, doctorColl, bson.M{"doctorId": demoDoctorId})
	if err != nil {
		log.Println("Error checking demo doctor:", err)
		return
	}
	if count == 0 {
		if _, err := db.CreateOne(ctx, doctorColl, demoDoctor()); err != nil {
			log.Println("Error seeding demo doctor:", err)
		} else {
			log.Println("Demo doctor seeded:", demoDoctorId)
		}
	}
}

// ResetDemoData drops and re-inserts the demo documents.
func ResetDemoData() {
	ctx := context.Background()

	patientColl := db.OpenCollections(util.PATIENT_COLLECTION)
	if err := db.DeleteMany(ctx, patientColl, bson.M{"patientId": demoPatientId}); err != nil {
		log.Println("Error removing demo patient:", err)
		return
	}
	doctorColl := db.OpenCollections(util.DOCTOR_COLLECTION)
	if err := db.DeleteMany(ctx, doctorColl, bson.M{"doctorId": demoDoctorId}); err != nil {
		log.Println("Error removing demo doctor:", err)
		return
	}
	SeedDemoData()
}

// ResetDatabase drops both collections, the bulk administrative reset.
func ResetDatabase() {
	ctx := context.Background()

	for _, name := range []string{util.PATIENT_COLLECTION, util.DOCTOR_COLLECTION} {
		if err := db.DropCollection(ctx, db.OpenCollections(name)); err != nil {
			log.Println("Error dropping collection:", name, err)
			continue
		}
		log.Println("Dropped collection:", name)
	}
}

func demoPatient() models.Patient {
	hashed, err := util.HashPassword(demoPassword)
	if err != nil {
		log.Println("Error hashing demo password:", err)
	}
	now := time.Now()
	return models.Patient{
		PatientID:          demoPatientId,
		Name:               "John Doe",
		Age:                35,
		Gender:             "Male",
		Email:              "patient@example.com",
		Password:           hashed,
		Allergies:          "Penicillin, Peanuts",
		MedicalHistory:     "Appendectomy (2018), Hypertension (Diagnosed 2019)",
		OngoingMedications: "Lisinopril 10mg daily, Atorvastatin 20mg daily",
		HereditaryDiseases: "Father: Diabetes, Mother: Hypertension",
		Prescriptions: []models.Prescription{
			{
				ID:           primitive.NewObjectID(),
				Date:         "2023-04-15",
				Doctor:       "Dr. Sarah Johnson",
				Medications:  "Amoxicillin 500mg",
				Instructions: "Take 1 tablet 3 times daily for 7 days",
				Diagnosis:    "Bacterial infection",
				CreatedAt:    now,
			},
			{
				ID:           primitive.NewObjectID(),
				Date:         "2023-02-20",
				Doctor:       "Dr. Michael Chen",
				Medications:  "Ibuprofen 400mg",
				Instructions: "Take 1 tablet every 6 hours as needed for pain",
				Diagnosis:    "Lower back pain",
				CreatedAt:    now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func demoDoctor() models.Doctor {
	hashed, err := util.HashPassword(demoPassword)
	if err != nil {
		log.Println("Error hashing demo password:", err)
	}
	now := time.Now()
	return models.Doctor{
		DoctorID:       demoDoctorId,
		Name:           "Dr. Sarah Johnson",
		Specialization: "Cardiology",
		Hospital:       "Central Medical Center",
		Email:          "doctor@example.com",
		Password:       hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
