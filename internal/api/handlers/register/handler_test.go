package register

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/service/registration"
	"github.com/m04kA/SMC-UrbanServices/pkg/logger"
)

func TestRegisterReturnsFieldErrors(t *testing.T) {
	h := NewHandler(registration.NewService(logger.NewNop()), logger.NewNop())

	body := `{"fullName":"Anita Desai","email":"anita@","phone":"123","password":"secret1",
		"confirmPassword":"secret1","address":"12 MG Road","pincode":"560001","city":"Bangalore",
		"state":"Karnataka","userType":"customer","agreeToTerms":true}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Please enter a valid email", resp.Fields["email"])
	assert.Equal(t, "Please enter a valid phone number", resp.Fields["phone"])
	assert.Len(t, resp.Fields, 2)
}

func TestRegisterAccepted(t *testing.T) {
	h := NewHandler(registration.NewService(logger.NewNop()), logger.NewNop())

	body := `{"fullName":"Anita Desai","email":"anita@example.com","phone":"+91 99887 76655",
		"password":"secret1","confirmPassword":"secret1","address":"12 MG Road","pincode":"560001",
		"city":"Bangalore","state":"Karnataka","userType":"provider","agreeToTerms":true}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp registration.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome Anita Desai! Your account has been created.", resp.Message)
	assert.Equal(t, "provider", resp.UserType)
}
