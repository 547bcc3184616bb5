package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prescription is embedded in the parent Patient document and immutable once
// appended. Date is a caller-supplied display string, not validated as a
// calendar date, and Doctor is a display name rather than a doctorId
// reference. Entries keep insertion order, not date order.
type Prescription struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	Date         string             `json:"date" bson:"date"`
	Doctor       string             `json:"doctor" bson:"doctor"`
	Medications  string             `json:"medications" bson:"medications"`
	Instructions string             `json:"instructions" bson:"instructions"`
	Diagnosis    string             `json:"diagnosis" bson:"diagnosis"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

type AddPrescriptionInput struct {
	Date         string `json:"date"`
	Doctor       string `json:"doctor"`
	Medications  string `json:"medications"`
	Instructions string `json:"instructions"`
	Diagnosis    string `json:"diagnosis"`
}
