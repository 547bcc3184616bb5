package services

import (
	"context"
	"testing"

	"meditrack/models"
	"meditrack/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestFetchPatientRecordNotFound(t *testing.T) {
	stubStore(t)
	findOne = noDocuments

	patient, err := FetchPatientRecord(context.Background(), "P000000")
	require.Error(t, err)
	// never an empty default object
	assert.Nil(t, patient)
	assert.Equal(t, util.NotFoundError, util.KindOf(err))
	assert.Equal(t, util.PATIENT_NOT_FOUND, err.Error())
}

func TestFetchPatientRecordFullProjection(t *testing.T) {
	stubStore(t)
	findOne = func(ctx context.Context, coll *mongo.Collection, filter bson.M, result interface{}) error {
		assert.Equal(t, "P123456", filter["patientId"])
		*(result.(*models.Patient)) = models.Patient{
			PatientID:      "P123456",
			Name:           "John Doe",
			Age:            35,
			Gender:         "Male",
			Email:          "patient@example.com",
			Password:       "$2a$10$hash",
			Allergies:      "Penicillin",
			MedicalHistory: "Hypertension",
			Prescriptions: []models.Prescription{
				{Date: "2023-04-15", Doctor: "Dr. Sarah Johnson", Medications: "Amoxicillin 500mg"},
			},
		}
		return nil
	}

	patient, err := FetchPatientRecord(context.Background(), "P123456")
	require.NoError(t, err)

	record := patient.Record()
	assert.Equal(t, "P123456", record.PatientID)
	assert.Equal(t, "Penicillin", record.Allergies)
	assert.Len(t, record.Prescriptions, 1)
}

func TestUpdateClinicalFieldsEmptyStringLeavesValueUnchanged(t *testing.T) {
	stubStore(t)

	var capturedUpdate bson.M
	findOneAndUpdate = func(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, result interface{}) error {
		capturedUpdate = update
		*(result.(*models.Patient)) = models.Patient{
			PatientID: "P123456",
			Allergies: "Penicillin, Peanuts",
		}
		return nil
	}

	patient, err := UpdateClinicalFields(context.Background(), "P123456", models.UpdateRecordInput{
		Allergies: "",
	})
	require.NoError(t, err)

	// empty string counts as absent: allergies must not appear in the $set
	set := capturedUpdate["$set"].(bson.M)
	assert.NotContains(t, set, "allergies")
	assert.NotContains(t, set, "medicalHistory")
	assert.Equal(t, "Penicillin, Peanuts", patient.Allergies)
}

func TestUpdateClinicalFieldsSetsOnlyProvidedFields(t *testing.T) {
	stubStore(t)

	var capturedUpdate bson.M
	findOneAndUpdate = func(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, result interface{}) error {
		capturedUpdate = update
		*(result.(*models.Patient)) = models.Patient{
			PatientID:      "P123456",
			Allergies:      "Penicillin, Peanuts",
			MedicalHistory: "Asthma since childhood",
		}
		return nil
	}

	_, err := UpdateClinicalFields(context.Background(), "P123456", models.UpdateRecordInput{
		MedicalHistory: "Asthma since childhood",
	})
	require.NoError(t, err)

	set := capturedUpdate["$set"].(bson.M)
	assert.Equal(t, "Asthma since childhood", set["medicalHistory"])
	assert.NotContains(t, set, "allergies")
	assert.NotContains(t, set, "ongoingMedications")
	assert.NotContains(t, set, "hereditaryDiseases")
	assert.Contains(t, set, "updatedAt")
}

func TestUpdateClinicalFieldsNotFound(t *testing.T) {
	stubStore(t)
	findOneAndUpdate = func(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, result interface{}) error {
		return mongo.ErrNoDocuments
	}

	_, err := UpdateClinicalFields(context.Background(), "P000000", models.UpdateRecordInput{Allergies: "Dust"})
	require.Error(t, err)
	assert.Equal(t, util.NotFoundError, util.KindOf(err))
}

func TestAddPrescriptionMissingFields(t *testing.T) {
	stubStore(t)
	pushed := false
	findOneAndUpdate = func(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, result interface{}) error {
		pushed = true
		return nil
	}

	cases := []models.AddPrescriptionInput{
		{Doctor: "Dr. X", Medications: "Aspirin", Instructions: "Once daily", Diagnosis: "Headache"},
		{Date: "2024-01-01", Medications: "Aspirin", Instructions: "Once daily", Diagnosis: "Headache"},
		{Date: "2024-01-01", Doctor: "Dr. X", Instructions: "Once daily", Diagnosis: "Headache"},
		{Date: "2024-01-01", Doctor: "Dr. X", Medications: "Aspirin", Diagnosis: "Headache"},
		{Date: "2024-01-01", Doctor: "Dr. X", Medications: "Aspirin", Instructions: "Once daily"},
	}
	for _, input := range cases {
		_, err := AddPrescription(context.Background(), "P123456", input)
		require.Error(t, err)
		assert.Equal(t, util.ValidationError, util.KindOf(err))
	}
	assert.False(t, pushed)
}

func TestAddPrescriptionAtomicPush(t *testing.T) {
	stubStore(t)

	readHappened := false
	findOne = func(ctx context.Context, coll *mongo.Collection, filter bson.M, result interface{}) error {
		readHappened = true
		return mongo.ErrNoDocuments
	}

	var capturedUpdate bson.M
	findOneAndUpdate = func(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, result interface{}) error {
		assert.Equal(t, "P123456", filter["patientId"])
		capturedUpdate = update
		*(result.(*models.Patient)) = models.Patient{PatientID: "P123456"}
		return nil
	}

	entry, err := AddPrescription(context.Background(), "P123456", models.AddPrescriptionInput{
		Date:         "2024-01-01",
		Doctor:       "Dr. X",
		Medications:  "Aspirin",
		Instructions: "Once daily",
		Diagnosis:    "Headache",
	})
	require.NoError(t, err)

	// a single $push, no load-mutate-save: concurrent appends cannot lose one
	assert.False(t, readHappened)
	push := capturedUpdate["$push"].(bson.M)
	appended := push["prescriptions"].(models.Prescription)
	assert.Equal(t, "2024-01-01", appended.Date)
	assert.Equal(t, "Dr. X", appended.Doctor)
	assert.Equal(t, "Aspirin", appended.Medications)
	assert.Equal(t, "Once daily", appended.Instructions)
	assert.Equal(t, "Headache", appended.Diagnosis)

	// the returned entry carries the store-assigned identifier
	assert.False(t, entry.ID.IsZero())
	assert.Equal(t, appended.ID, entry.ID)
}

func TestAddPrescriptionAppendsAfterExistingEntries(t *testing.T) {
	stubStore(t)

	existing := models.Prescription{
		ID: primitive.NewObjectID(), Date: "2023-04-15", Doctor: "Dr. Sarah Johnson",
		Medications: "Amoxicillin 500mg", Instructions: "3 times daily", Diagnosis: "Bacterial infection",
	}
	var after []models.Prescription
	findOneAndUpdate = func(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, result interface{}) error {
		appended := update["$push"].(bson.M)["prescriptions"].(models.Prescription)
		after = append([]models.Prescription{existing}, appended)
		*(result.(*models.Patient)) = models.Patient{PatientID: "P123456", Prescriptions: after}
		return nil
	}

	// the supplied date predates the existing entry; it must still land last
	entry, err := AddPrescription(context.Background(), "P123456", models.AddPrescriptionInput{
		Date: "2024-01-01", Doctor: "Dr. X", Medications: "Aspirin",
		Instructions: "Once daily", Diagnosis: "Headache",
	})
	require.NoError(t, err)

	require.Len(t, after, 2)
	assert.Equal(t, entry.ID, after[1].ID)
	assert.Equal(t, "2024-01-01", after[1].Date)
	assert.Equal(t, existing.ID, after[0].ID)
}

func TestAddPrescriptionNotFound(t *testing.T) {
	stubStore(t)
	findOneAndUpdate = func(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, result interface{}) error {
		return mongo.ErrNoDocuments
	}

	_, err := AddPrescription(context.Background(), "P000000", models.AddPrescriptionInput{
		Date: "2024-01-01", Doctor: "Dr. X", Medications: "Aspirin",
		Instructions: "Once daily", Diagnosis: "Headache",
	})
	require.Error(t, err)
	assert.Equal(t, util.NotFoundError, util.KindOf(err))
	assert.Equal(t, util.PATIENT_NOT_FOUND, err.Error())
}
