package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	staticCatalog "github.com/m04kA/SMC-UrbanServices/internal/infra/catalog"
	getAvailableSlots "github.com/m04kA/SMC-UrbanServices/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-UrbanServices/pkg/logger"
)

func request(providerID, date string) *httptest.ResponseRecorder {
	uc := getAvailableSlots.NewUseCase(staticCatalog.New(), logger.NewNop())
	h := NewHandler(uc, logger.NewNop())

	target := "/api/v1/providers/" + providerID + "/available-slots"
	if date != "" {
		target += "?date=" + date
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"providerId": providerID})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestAvailableSlotsTomorrow(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)

	rec := request("2", tomorrow)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, tomorrow, resp.Date)
	require.Len(t, resp.Slots, len(domain.TimeSlots))
	assert.Equal(t, AvailableSlot{StartTime: "09:00", Label: "09:00 AM", Available: true}, resp.Slots[0])
}

func TestAvailableSlotsErrors(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
	farAway := time.Now().AddDate(0, 0, 30).Format(domain.DateFormat)

	assert.Equal(t, http.StatusBadRequest, request("2", "").Code)
	assert.Equal(t, http.StatusBadRequest, request("2", "22-01-2024").Code)
	assert.Equal(t, http.StatusBadRequest, request("2", farAway).Code)
	assert.Equal(t, http.StatusNotFound, request("404", tomorrow).Code)
}
