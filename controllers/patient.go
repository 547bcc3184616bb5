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

func Patient(router *gin.Engine) {
	patients := router.Group("/api/patients")
	{
		patients.POST("/register", RegisterPatient)
		patients.POST("/login", LoginPatient)

		record := patients.Group("/:patientId", authorization.JWTAuth(), authorization.RequirePatientAccess())
		{
			record.GET("", FetchPatientRecord)
			record.PUT("", UpdatePatientRecord)
			record.POST("/prescriptions", AddPrescription)
		}
	}
}

/*
* Bind the registration fields and pass to the service
* Responds 201 with the public projection, the hash never leaves the server
 */
func RegisterPatient(c *gin.Context) {
	var input models.RegisterPatientInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	patient, err := services.RegisterPatient(c.Request.Context(), input)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, patient.Projection())
}

/*
* Authenticate and issue the session token alongside the projection
 */
func LoginPatient(c *gin.Context) {
	var input models.LoginInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	patient, err := services.LoginPatient(c.Request.Context(), input)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	token, err := authorization.GenerateToken(patient.PatientID, authorization.RolePatient, patient.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(errors.New(util.SERVER_ERROR)))
		return
	}
	c.JSON(http.StatusOK, models.PatientAuthResponse{
		Token:             token,
		PatientProjection: patient.Projection(),
	})
}

// FetchPatientRecord serves both route namespaces; the projection is the same
// whichever role asks.
func FetchPatientRecord(c *gin.Context) {
	patient, err := services.FetchPatientRecord(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, patient.Record())
}

func UpdatePatientRecord(c *gin.Context) {
	var input models.UpdateRecordInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	patient, err := services.UpdateClinicalFields(c.Request.Context(), c.Param("patientId"), input)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, patient.Record())
}

func AddPrescription(c *gin.Context) {
	var input models.AddPrescriptionInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	entry, err := services.AddPrescription(c.Request.Context(), c.Param("patientId"), input)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, entry)
}
