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
* Reject if a doctor with this email already exists
* Generate a D-prefixed code, hash the password and insert
 */
func RegisterDoctor(ctx context.Context, input models.RegisterDoctorInput) (*models.Doctor, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, util.NewValidationError(util.DOCTOR_REQUIRED_FIELDS)
	}
	if input.Specialization == "" {
		input.Specialization = util.DEFAULT_SPECIALIZATION
	}
	if input.Hospital == "" {
		input.Hospital = util.DEFAULT_HOSPITAL
	}

	coll := openCollections(util.DOCTOR_COLLECTION)

	var existing models.Doctor
	err := findOne(ctx, coll, bson.M{"email": input.Email}, &existing)
	if err == nil {
		return nil, util.NewConflictError(util.DOCTOR_ALREADY_EXISTS)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error checking existing doctor:", err)
		return nil, util.NewInternalError()
	}

	hashed, err := util.HashPassword(input.Password)
	if err != nil {
		log.Println("Error hashing doctor password:", err)
		return nil, util.NewInternalError()
	}

	now := time.Now()
	doctor := models.Doctor{
		Name:           input.Name,
		Specialization: input.Specialization,
		Hospital:       input.Hospital,
		Email:          input.Email,
		Password:       hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		doctor.DoctorID = util.GenerateUserCode(util.DOCTOR_ID_PREFIX)
		result, err := createOne(ctx, coll, doctor)
		if err == nil {
			if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
				doctor.ID = oid
			}
			log.Println("Doctor created:", doctor.DoctorID)
			return &doctor, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			if isEmailDuplicate(err) {
				return nil, util.NewConflictError(util.DOCTOR_ALREADY_EXISTS)
			}
			log.Println("doctorId collision, regenerating:", doctor.DoctorID)
			continue
		}
		log.Println("Error creating doctor:", err)
		return nil, util.NewInternalError()
	}
	log.Println("Exhausted doctorId generation attempts")
	return nil, util.NewInternalError()
}

func LoginDoctor(ctx context.Context, input models.LoginInput) (*models.Doctor, error) {
	if input.Email == "" || input.Password == "" {
		return nil, util.NewValidationError(util.EMAIL_PASSWORD_REQUIRED)
	}

	coll := openCollections(util.DOCTOR_COLLECTION)

	var doctor models.Doctor
	err := findOne(ctx, coll, bson.M{"email": input.Email}, &doctor)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Println("Error fetching doctor for login:", err)
			return nil, util.NewInternalError()
		}
		return nil, util.NewAuthError(util.INVALID_CREDENTIALS)
	}

	if !util.CheckPassword(input.Password, doctor.Password) {
		return nil, util.NewAuthError(util.INVALID_CREDENTIALS)
	}

	log.Println("Doctor login successful:", doctor.DoctorID)
	return &doctor, nil
}
