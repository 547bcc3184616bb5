package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is the patients-collection document. Prescriptions are embedded,
// there is no separate collection for them. The password hash is bson-only
// and never serialized to a client.
type Patient struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PatientID          string             `json:"patientId" bson:"patientId"`
	Name               string             `json:"name" bson:"name"`
	Age                int                `json:"age" bson:"age"`
	Gender             string             `json:"gender" bson:"gender"`
	Email              string             `json:"email" bson:"email"`
	Password           string             `json:"-" bson:"password"`
	Allergies          string             `json:"allergies" bson:"allergies"`
	MedicalHistory     string             `json:"medicalHistory" bson:"medicalHistory"`
	OngoingMedications string             `json:"ongoingMedications" bson:"ongoingMedications"`
	HereditaryDiseases string             `json:"hereditaryDiseases" bson:"hereditaryDiseases"`
	Prescriptions      []Prescription     `json:"prescriptions" bson:"prescriptions"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PatientProjection is what registration and login return: identity fields
// only, never the password hash.
type PatientProjection struct {
	ID        primitive.ObjectID `json:"_id,omitempty"`
	PatientID string             `json:"patientId"`
	Name      string             `json:"name"`
	Age       int                `json:"age"`
	Gender    string             `json:"gender"`
	Email     string             `json:"email"`
}

func (p *Patient) Projection() PatientProjection {
	return PatientProjection{
		ID:        p.ID,
		PatientID: p.PatientID,
		Name:      p.Name,
		Age:       p.Age,
		Gender:    p.Gender,
		Email:     p.Email,
	}
}

// PatientRecord is the record projection served to both roles identically:
// identity fields, the clinical free-text fields and the full prescription
// sequence. Email stays off the record surface.
type PatientRecord struct {
	ID                 primitive.ObjectID `json:"_id,omitempty"`
	PatientID          string             `json:"patientId"`
	Name               string             `json:"name"`
	Age                int                `json:"age"`
	Gender             string             `json:"gender"`
	Allergies          string             `json:"allergies"`
	MedicalHistory     string             `json:"medicalHistory"`
	OngoingMedications string             `json:"ongoingMedications"`
	HereditaryDiseases string             `json:"hereditaryDiseases"`
	Prescriptions      []Prescription     `json:"prescriptions"`
}

func (p *Patient) Record() PatientRecord {
	prescriptions := p.Prescriptions
	if prescriptions == nil {
		prescriptions = []Prescription{}
	}
	return PatientRecord{
		ID:                 p.ID,
		PatientID:          p.PatientID,
		Name:               p.Name,
		Age:                p.Age,
		Gender:             p.Gender,
		Allergies:          p.Allergies,
		MedicalHistory:     p.MedicalHistory,
		OngoingMedications: p.OngoingMedications,
		HereditaryDiseases: p.HereditaryDiseases,
		Prescriptions:      prescriptions,
	}
}

type RegisterPatientInput struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PatientAuthResponse is the login body: the public projection plus the
// session token presented on record-access calls.
type PatientAuthResponse struct {
	Token string `json:"token"`
	PatientProjection
}

// UpdateRecordInput carries the four clinical free-text fields. An empty
// string means "leave unchanged", matching the original record-update
// semantics; there is no way to clear a field through this endpoint.
type UpdateRecordInput struct {
	Allergies          string `json:"allergies"`
	MedicalHistory     string `json:"medicalHistory"`
	OngoingMedications string `json:"ongoingMedications"`
	HereditaryDiseases string `json:"hereditaryDiseases"`
}
