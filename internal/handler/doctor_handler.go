package handler

import (
	"net/http"

	"hospital_management/internal/model"
	"hospital_management/internal/service"

	"github.com/gin-gonic/gin"
)

// DoctorHandler handles doctor CRUD requests
type DoctorHandler struct {
	service service.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler
func NewDoctorHandler(s service.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: s}
}

func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	doctor, err := h.service.CreateDoctor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create doctor")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Doctor created successfully",
		"doctor_id": doctor.ID,
	})
}

func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, ok := parseID(c, "doctor")
	if !ok {
		return
	}

	doctor, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve doctor")
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, ok := parseID(c, "doctor")
	if !ok {
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.service.UpdateDoctor(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "update doctor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor updated successfully"})
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, ok := parseID(c, "doctor")
	if !ok {
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete doctor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}

// RegisterDoctorRoutes registers doctor routes
func (h *DoctorHandler) RegisterDoctorRoutes(rg *gin.RouterGroup) {
	doctorGroup := rg.Group("/doctors")
	{
		doctorGroup.GET("", h.ListDoctors)
		doctorGroup.GET("/", h.ListDoctors)
		doctorGroup.POST("", h.CreateDoctor)
		doctorGroup.POST("/", h.CreateDoctor)
		doctorGroup.GET("/:id", h.GetDoctor)
		doctorGroup.PUT("/:id", h.UpdateDoctor)
		doctorGroup.DELETE("/:id", h.DeleteDoctor)
	}
}
