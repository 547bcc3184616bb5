package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	DoctorID       string             `json:"doctorId" bson:"doctorId"`
	Name           string             `json:"name" bson:"name"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Hospital       string             `json:"hospital" bson:"hospital"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type DoctorProjection struct {
	ID             primitive.ObjectID `json:"_id,omitempty"`
	DoctorID       string             `json:"doctorId"`
	Name           string             `json:"name"`
	Specialization string             `json:"specialization"`
	Hospital       string             `json:"hospital"`
	Email          string             `json:"email"`
}

func (d *Doctor) Projection() DoctorProjection {
	return DoctorProjection{
		ID:             d.ID,
		DoctorID:       d.DoctorID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Hospital:       d.Hospital,
		Email:          d.Email,
	}
}

type DoctorAuthResponse struct {
	Token string `json:"token"`
	DoctorProjection
}

type RegisterDoctorInput struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Hospital       string `json:"hospital"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}
