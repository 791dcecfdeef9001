package handler

import (
	"net/http"

	"hospital_management/internal/model"
	"hospital_management/internal/service"

	"github.com/gin-gonic/gin"
)

// PatientHandler handles patient CRUD requests
type PatientHandler struct {
	service service.PatientService
}

// NewPatientHandler creates a new PatientHandler
func NewPatientHandler(s service.PatientService) *PatientHandler {
	return &PatientHandler{service: s}
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve patients")
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	patient, err := h.service.CreatePatient(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create patient")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Patient created successfully",
		"patient_id": patient.ID,
	})
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, ok := parseID(c, "patient")
	if !ok {
		return
	}

	patient, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve patient")
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c, "patient")
	if !ok {
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.service.UpdatePatient(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "update patient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully"})
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "patient")
	if !ok {
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete patient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

// RegisterPatientRoutes registers patient routes
func (h *PatientHandler) RegisterPatientRoutes(rg *gin.RouterGroup) {
	patientGroup := rg.Group("/patients")
	{
		patientGroup.GET("", h.ListPatients)
		patientGroup.GET("/", h.ListPatients)
		patientGroup.POST("", h.CreatePatient)
		patientGroup.POST("/", h.CreatePatient)
		patientGroup.GET("/:id", h.GetPatient)
		patientGroup.PUT("/:id", h.UpdatePatient)
		patientGroup.DELETE("/:id", h.DeletePatient)
	}
}
