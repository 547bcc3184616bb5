package controllers

import (
	"errors"
	"net/http"

	"meditrack/config/authorization"
	"meditrack/models"
	"meditrack/services"
	"meditrack/util"

	"github.com/gin-gonic/gin"
)

func Doctor(router *gin.Engine) {
	doctors := router.Group("/api/doctors")
	{
		doctors.POST("/register", RegisterDoctor)
		doctors.POST("/login", LoginDoctor)

		// same record operations as the patient namespace, doctor-gated
		record := doctors.Group("/patients/:patientId", authorization.JWTAuth(), authorization.RequireDoctor())
		{
			record.GET("", FetchPatientRecord)
			record.PUT("", UpdatePatientRecord)
			record.POST("/prescriptions", AddPrescription)
		}
	}
}

func RegisterDoctor(c *gin.Context) {
	var input models.RegisterDoctorInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	doctor, err := services.RegisterDoctor(c.Request.Context(), input)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, doctor.Projection())
}

func LoginDoctor(c *gin.Context) {
	var input models.LoginInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	doctor, err := services.LoginDoctor(c.Request.Context(), input)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	token, err := authorization.GenerateToken(doctor.DoctorID, authorization.RoleDoctor, doctor.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(errors.New(util.SERVER_ERROR)))
		return
	}
	c.JSON(http.StatusOK, models.DoctorAuthResponse{
		Token:            token,
		DoctorProjection: doctor.Projection(),
	})
}
