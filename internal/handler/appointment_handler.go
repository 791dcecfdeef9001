package handler

import (
	"net/http"

	"hospital_management/internal/model"
	"hospital_management/internal/service"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	service service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	views, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	appointment, err := h.service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create appointment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Appointment created successfully",
		"appointment_id": appointment.ID,
	})
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "appointment")
	if !ok {
		return
	}

	view, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve appointment")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetPatientAppointments lists a patient's appointments with doctor names only
func (h *AppointmentHandler) GetPatientAppointments(c *gin.Context) {
	id, ok := parseID(c, "patient")
	if !ok {
		return
	}

	views, err := h.service.ListPatientAppointments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetDoctorAppointments lists a doctor's appointments with patient names only
func (h *AppointmentHandler) GetDoctorAppointments(c *gin.Context) {
	id, ok := parseID(c, "doctor")
	if !ok {
		return
	}

	views, err := h.service.ListDoctorAppointments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "appointment")
	if !ok {
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.service.UpdateAppointment(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "update appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully"})
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "appointment")
	if !ok {
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// RegisterAppointmentRoutes registers appointment routes
func (h *AppointmentHandler) RegisterAppointmentRoutes(rg *gin.RouterGroup) {
	appointmentGroup := rg.Group("/appointments")
	{
		appointmentGroup.GET("", h.ListAppointments)
		appointmentGroup.GET("/", h.ListAppointments)
		appointmentGroup.POST("", h.CreateAppointment)
		appointmentGroup.POST("/", h.CreateAppointment)
		appointmentGroup.GET("/patient/:id", h.GetPatientAppointments)
		appointmentGroup.GET("/doctor/:id", h.GetDoctorAppointments)
		appointmentGroup.GET("/:id", h.GetAppointment)
		appointmentGroup.PUT("/:id", h.UpdateAppointment)
		appointmentGroup.DELETE("/:id", h.DeleteAppointment)
	}
}
