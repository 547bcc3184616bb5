package services

import (
	"context"
	"errors"
	"log"
	"time"

	"meditrack/models"
	"meditrack/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Validate the mandatory fields and apply the registration defaults
* Reject if a patient with this email already exists
* Generate a P-prefixed code, hash the password and insert
* Retry the code on an identifier collision, the unique index is the backstop
 */
func RegisterPatient(ctx context.Context, input models.RegisterPatientInput) (*models.Patient, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, util.NewValidationError(util.PATIENT_REQUIRED_FIELDS)
	}
	if input.Age == 0 {
		input.Age = util.DEFAULT_AGE
	}
	if input.Gender == "" {
		input.Gender = util.DEFAULT_GENDER
	}

	coll := openCollections(util.PATIENT_COLLECTION)

	var existing models.Patient
	err := findOne(ctx, coll, bson.M{"email": input.Email}, &existing)
	if err == nil {
		return nil, util.NewConflictError(util.PATIENT_ALREADY_EXISTS)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error checking existing patient:", err)
		return nil, util.NewInternalError()
	}

	hashed, err := util.HashPassword(input.Password)
	if err != nil {
		log.Println("Error hashing patient password:", err)
		return nil, util.NewInternalError()
	}

	now := time.Now()
	patient := models.Patient{
		Name:               input.Name,
		Age:                input.Age,
		Gender:             input.Gender,
		Email:              input.Email,
		Password:           hashed,
		Allergies:          "",
		MedicalHistory:     "",
		OngoingMedications: "",
		HereditaryDiseases: "",
		Prescriptions:      []models.Prescription{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		patient.PatientID = util.GenerateUserCode(util.PATIENT_ID_PREFIX)
		result, err := createOne(ctx, coll, patient)
		if err == nil {
			if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
				patient.ID = oid
			}
			log.Println("Patient created:", patient.PatientID)
			return &patient, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			// either the random code collided or the email raced us in
			if isEmailDuplicate(err) {
				return nil, util.NewConflictError(util.PATIENT_ALREADY_EXISTS)
			}
			log.Println("patientId collision, regenerating:", patient.PatientID)
			continue
		}
		log.Println("Error creating patient:", err)
		return nil, util.NewInternalError()
	}
	log.Println("Exhausted patientId generation attempts")
	return nil, util.NewInternalError()
}

/*
* Find the patient by email and compare the bcrypt hash
* Unknown email and wrong password must be indistinguishable to the caller
 */
func LoginPatient(ctx context.Context, input models.LoginInput) (*models.Patient, error) {
	if input.Email == "" || input.Password == "" {
		return nil, util.NewValidationError(util.EMAIL_PASSWORD_REQUIRED)
	}

	coll := openCollections(util.PATIENT_COLLECTION)

	var patient models.Patient
	err := findOne(ctx, coll, bson.M{"email": input.Email}, &patient)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Println("Error fetching patient for login:", err)
			return nil, util.NewInternalError()
		}
		return nil, util.NewAuthError(util.INVALID_CREDENTIALS)
	}

	if !util.CheckPassword(input.Password, patient.Password) {
		return nil, util.NewAuthError(util.INVALID_CREDENTIALS)
	}

	log.Println("Patient login successful:", patient.PatientID)
	return &patient, nil
}
