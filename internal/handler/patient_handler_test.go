package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hospital_management/internal/model"
	"hospital_management/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPatientHandler_ListPatients_BothPaths(t *testing.T) {
	svc := new(mockPatientService)
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.On("ListPatients", mock.Anything).Return([]model.Patient{
		{ID: 1, FirstName: "John", LastName: "Doe", DateOfBirth: dob, Gender: "Male", Email: strPtr("john@example.com")},
	}, nil)
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	for _, path := range []string{"/api/patients", "/api/patients/"} {
		w := doRequest(router, http.MethodGet, path, "")

		require.Equal(t, http.StatusOK, w.Code, path)
		list := decodeList(t, w)
		require.Len(t, list, 1)
		assert.Equal(t, "1990-01-01", list[0]["date_of_birth"])
		assert.Equal(t, "john@example.com", list[0]["email"])
	}
}

func TestPatientHandler_ListPatients_Empty(t *testing.T) {
	svc := new(mockPatientService)
	svc.On("ListPatients", mock.Anything).Return([]model.Patient{}, nil)
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	w := doRequest(router, http.MethodGet, "/api/patients/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPatientHandler_CreatePatient(t *testing.T) {
	svc := new(mockPatientService)
	svc.On("CreatePatient", mock.Anything, mock.MatchedBy(func(req model.CreatePatientRequest) bool {
		return req.FirstName == "Ann" && req.DateOfBirth == "1990-05-01" && req.Phone == nil
	})).Return(&model.Patient{ID: 7}, nil)
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	w := doRequest(router, http.MethodPost, "/api/patients/",
		`{"first_name":"Ann","last_name":"Lee","date_of_birth":"1990-05-01","gender":"F"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Patient created successfully", body["message"])
	assert.EqualValues(t, 7, body["patient_id"])
	svc.AssertExpectations(t)
}

func TestPatientHandler_CreatePatient_MissingField(t *testing.T) {
	svc := new(mockPatientService)
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	w := doRequest(router, http.MethodPost, "/api/patients", `{"first_name":"Ann","last_name":"Lee","gender":"F"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
}

func TestPatientHandler_CreatePatient_BadDate(t *testing.T) {
	svc := new(mockPatientService)
	svc.On("CreatePatient", mock.Anything, mock.Anything).
		Return(nil, errors.Join(service.ErrValidation, errors.New("date_of_birth must be YYYY-MM-DD")))
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	w := doRequest(router, http.MethodPost, "/api/patients",
		`{"first_name":"Ann","last_name":"Lee","date_of_birth":"01/05/1990","gender":"F"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatientHandler_GetPatient(t *testing.T) {
	svc := new(mockPatientService)
	svc.On("GetPatient", mock.Anything, int64(3)).Return(&model.Patient{ID: 3, FirstName: "Bob", LastName: "Wilson"}, nil)
	svc.On("GetPatient", mock.Anything, int64(99)).Return(nil, service.ErrPatientNotFound)
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	w := doRequest(router, http.MethodGet, "/api/patients/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bob", decodeObject(t, w)["first_name"])

	w = doRequest(router, http.MethodGet, "/api/patients/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "patient not found", decodeObject(t, w)["error"])

	w = doRequest(router, http.MethodGet, "/api/patients/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid patient ID", decodeObject(t, w)["error"])
}

func TestPatientHandler_UpdatePatient_PartialBody(t *testing.T) {
	svc := new(mockPatientService)
	svc.On("UpdatePatient", mock.Anything, int64(3), mock.MatchedBy(func(req model.UpdatePatientRequest) bool {
		return req.Phone.Set && req.Phone.Value == nil &&
			req.Address.Set && *req.Address.Value == "1 Elm St" &&
			!req.FirstName.Set && !req.DateOfBirth.Set
	})).Return(&model.Patient{ID: 3}, nil)
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	w := doRequest(router, http.MethodPut, "/api/patients/3", `{"phone":null,"address":"1 Elm St"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Patient updated successfully", decodeObject(t, w)["message"])
	svc.AssertExpectations(t)
}

func TestPatientHandler_DeletePatient(t *testing.T) {
	svc := new(mockPatientService)
	svc.On("DeletePatient", mock.Anything, int64(3)).Return(nil).Once()
	svc.On("DeletePatient", mock.Anything, int64(3)).Return(service.ErrPatientNotFound)
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	w := doRequest(router, http.MethodDelete, "/api/patients/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Patient deleted successfully", decodeObject(t, w)["message"])

	w = doRequest(router, http.MethodDelete, "/api/patients/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatientHandler_InternalError(t *testing.T) {
	svc := new(mockPatientService)
	svc.On("ListPatients", mock.Anything).Return(nil, errors.New("connection reset"))
	router := newTestRouter(NewPatientHandler(svc).RegisterPatientRoutes)

	w := doRequest(router, http.MethodGet, "/api/patients", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to retrieve patients", decodeObject(t, w)["error"])
}
