package booking_wizard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	staticCatalog "github.com/m04kA/SMC-UrbanServices/internal/infra/catalog"
	bookingRepo "github.com/m04kA/SMC-UrbanServices/internal/infra/storage/booking"
	"github.com/m04kA/SMC-UrbanServices/internal/infra/storage/local"
	bookingWizard "github.com/m04kA/SMC-UrbanServices/internal/usecase/booking_wizard"
	"github.com/m04kA/SMC-UrbanServices/pkg/logger"
)

type noSession struct{}

func (noSession) Current() (*domain.Identity, bool) {
	return nil, false
}

type nopMetrics struct{}

func (nopMetrics) BookingCreated(string) {}
func (nopMetrics) SetWizardsOpen(int) {}

func newRouter(repo *bookingRepo.Repository) *mux.Router {
	uc := bookingWizard.NewUseCase(repo, staticCatalog.New(), noSession{}, nopMetrics{}, logger.NewNop())
	h := NewHandler(uc, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/wizards", h.Open).Methods(http.MethodPost)
	r.HandleFunc("/wizards/{wizardId}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/wizards/{wizardId}", h.Close).Methods(http.MethodDelete)
	r.HandleFunc("/wizards/{wizardId}/service", h.SetService).Methods(http.MethodPut)
	r.HandleFunc("/wizards/{wizardId}/details", h.SetDetails).Methods(http.MethodPut)
	r.HandleFunc("/wizards/{wizardId}/payment", h.SetPayment).Methods(http.MethodPut)
	r.HandleFunc("/wizards/{wizardId}/next", h.Next).Methods(http.MethodPost)
	r.HandleFunc("/wizards/{wizardId}/back", h.Back).Methods(http.MethodPost)
	r.HandleFunc("/wizards/{wizardId}/submit", h.Submit).Methods(http.MethodPost)
	return r
}

func do(r *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func openWizard(t *testing.T, r *mux.Router) bookingWizard.View {
	t.Helper()
	rec := do(r, http.MethodPost, "/wizards", `{"providerId":"2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var view bookingWizard.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func TestWizardFlow(t *testing.T) {
	repo := bookingRepo.NewRepository(local.NewMemoryStore(), "")
	r := newRouter(repo)
	view := openWizard(t, r)
	base := "/wizards/" + view.ID

	assert.Equal(t, 1, view.Step)
	assert.False(t, view.CanAdvance)

	// без услуги и времени переход запрещён
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, base+"/next", "").Code)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
	rec := do(r, http.MethodPut, base+"/service",
		`{"service":"AC Repair","date":"`+tomorrow+`","time":"13:00","duration":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.True(t, view.CanAdvance)
	assert.Equal(t, 400.0, view.Total)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, base+"/next", "").Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodPut, base+"/details",
		`{"address":"A-123, Green Park Extension","phone":"+91 98765 43210","notes":""}`).Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, base+"/next", "").Code)

	// без способа оплаты бронирование не создаётся
	assert.Equal(t, http.StatusUnprocessableEntity, do(r, http.MethodPost, base+"/submit", "").Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodPut, base+"/payment", `{"paymentMethod":"cod"}`).Code)

	rec = do(r, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var confirmation bookingWizard.Confirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirmation))
	assert.Equal(t, "pending", confirmation.Booking.Status)
	assert.Contains(t, confirmation.Message, "Your booking with Priya Sharma has been confirmed for")
	assert.Contains(t, confirmation.Message, "at 01:00 PM")

	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 400.0, stored[0].TotalAmount)

	// после отправки мастер закрыт
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, base, "").Code)
}

func TestWizardErrors(t *testing.T) {
	r := newRouter(bookingRepo.NewRepository(local.NewMemoryStore(), ""))

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/wizards", `{"providerId":"404"}`).Code)
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/wizards", `{"providerId":"4"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/wizards", `{}`).Code)

	view := openWizard(t, r)
	base := "/wizards/" + view.ID

	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, base+"/back", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, base+"/service",
		`{"service":"Plumbing","time":"13:00","duration":2}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, base+"/service",
		`{"service":"AC Repair","time":"08:00","duration":2}`).Code)
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPut, base+"/payment", `{"paymentMethod":"cod"}`).Code)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, base, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, base, "").Code)
}
