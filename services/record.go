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

// FetchPatientRecord returns the full record for both caller roles; there is
// no field-level redaction between patient-initiated and doctor-initiated
// reads.
func FetchPatientRecord(ctx context.Context, patientId string) (*models.Patient, error) {
	coll := openCollections(util.PATIENT_COLLECTION)

	var patient models.Patient
	err := findOne(ctx, coll, bson.M{"patientId": patientId}, &patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error fetching patient record:", err)
		return nil, util.NewInternalError()
	}
	return &patient, nil
}

/*
* $set only the clinical fields that arrived non-empty
* An empty string is indistinguishable from an absent field and changes nothing
* The post-update document comes back from the same atomic operation
 */
func UpdateClinicalFields(ctx context.Context, patientId string, input models.UpdateRecordInput) (*models.Patient, error) {
	set := bson.M{"updatedAt": time.Now()}
	if input.Allergies != "" {
		set["allergies"] = input.Allergies
	}
	if input.MedicalHistory != "" {
		set["medicalHistory"] = input.MedicalHistory
	}
	if input.OngoingMedications != "" {
		set["ongoingMedications"] = input.OngoingMedications
	}
	if input.HereditaryDiseases != "" {
		set["hereditaryDiseases"] = input.HereditaryDiseases
	}

	coll := openCollections(util.PATIENT_COLLECTION)

	var patient models.Patient
	err := findOneAndUpdate(ctx, coll, bson.M{"patientId": patientId}, bson.M{"$set": set}, &patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error updating patient record:", err)
		return nil, util.NewInternalError()
	}
	log.Println("Patient record updated:", patientId)
	return &patient, nil
}

/*
* Validate all five prescription fields
* Append with a single atomic $push so concurrent appends both land
* New entries go last regardless of the supplied date
 */
func AddPrescription(ctx context.Context, patientId string, input models.AddPrescriptionInput) (*models.Prescription, error) {
	if input.Date == "" || input.Doctor == "" || input.Medications == "" ||
		input.Instructions == "" || input.Diagnosis == "" {
		return nil, util.NewValidationError(util.PRESCRIPTION_REQUIRED_FIELDS)
	}

	entry := models.Prescription{
		ID:           primitive.NewObjectID(),
		Date:         input.Date,
		Doctor:       input.Doctor,
		Medications:  input.Medications,
		Instructions: input.Instructions,
		Diagnosis:    input.Diagnosis,
		CreatedAt:    time.Now(),
	}

	coll := openCollections(util.PATIENT_COLLECTION)

	update := bson.M{
		"$push": bson.M{"prescriptions": entry},
		"$set":  bson.M{"updatedAt": entry.CreatedAt},
	}

	var patient models.Patient
	err := findOneAndUpdate(ctx, coll, bson.M{"patientId": patientId}, update, &patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFoundError(util.PATIENT_NOT_FOUND)
		}
		log.Println("Error appending prescription:", err)
		return nil, util.NewInternalError()
	}
	log.Println("Prescription appended for patient:", patientId)
	return &entry, nil
}
