package booking_wizard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	staticCatalog "github.com/m04kA/SMC-UrbanServices/internal/infra/catalog"
	bookingRepo "github.com/m04kA/SMC-UrbanServices/internal/infra/storage/booking"
	"github.com/m04kA/SMC-UrbanServices/internal/infra/storage/local"
	"github.com/m04kA/SMC-UrbanServices/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fakeSession struct {
	identity *domain.Identity
}

func (s fakeSession) Current() (*domain.Identity, bool) {
	return s.identity, s.identity != nil
}

type fakeMetrics struct {
	created []string
	open    int
}

func (m *fakeMetrics) BookingCreated(paymentMethod string) {
	m.created = append(m.created, paymentMethod)
}

func (m *fakeMetrics) SetWizardsOpen(n int) {
	m.open = n
}

var testNow = time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)

type fixture struct {
	uc      *UseCase
	repo    *bookingRepo.Repository
	metrics *fakeMetrics
}

func newFixture(t *testing.T, identity *domain.Identity) *fixture {
	t.Helper()
	repo := bookingRepo.NewRepository(local.NewMemoryStore(), "")
	m := &fakeMetrics{}

	uc := NewUseCase(repo, staticCatalog.New(), fakeSession{identity: identity}, m, logger.NewNop())
	uc.timeProvider = fixedTime{now: testNow}

	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("wizard-%d", seq)
	}

	return &fixture{uc: uc, repo: repo, metrics: m}
}

func (f *fixture) fillAll(t *testing.T, id string) {
	t.Helper()
	_, err := f.uc.SetService(id, &ServiceInput{Service: "Home Cleaning", Date: "2024-01-22", Time: "13:00", DurationHours: 2})
	require.NoError(t, err)
	_, err = f.uc.Next(id)
	require.NoError(t, err)
	_, err = f.uc.SetDetails(id, &DetailsInput{Address: "A-123, Green Park Extension", Phone: "+91 98765 43210", Notes: "Ring twice"})
	require.NoError(t, err)
	_, err = f.uc.Next(id)
	require.NoError(t, err)
	_, err = f.uc.SetPayment(id, &PaymentInput{PaymentMethod: "cod"})
	require.NoError(t, err)
}

func TestOpenDefaults(t *testing.T) {
	f := newFixture(t, nil)

	v, err := f.uc.Open("2")
	require.NoError(t, err)

	assert.Equal(t, "wizard-1", v.ID)
	assert.Equal(t, 1, v.Step)
	assert.False(t, v.CanAdvance)
	assert.Equal(t, 2, v.Duration)
	assert.Equal(t, "2024-01-20", v.Date)
	assert.Equal(t, 400.0, v.Total)
	require.Len(t, v.Dates, 7)
	assert.Equal(t, "Today", v.Dates[0].Label)
	assert.Equal(t, "Tomorrow", v.Dates[1].Label)
	assert.Equal(t, "Jan 26", v.Dates[6].Label)
	assert.Len(t, v.TimeSlots, 11)
	assert.Equal(t, 1, f.metrics.open)
}

func TestOpenRejectsUnknownAndUnavailableProviders(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.Open("42")
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = f.uc.Open("4")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestNextBlockedWithoutServiceAndTime(t *testing.T) {
	f := newFixture(t, nil)
	v, err := f.uc.Open("2")
	require.NoError(t, err)

	_, err = f.uc.Next(v.ID)
	assert.ErrorIs(t, err, ErrCannotAdvance)

	v, err = f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair"})
	require.NoError(t, err)
	assert.False(t, v.CanAdvance)

	_, err = f.uc.Next(v.ID)
	assert.ErrorIs(t, err, ErrCannotAdvance)

	v, err = f.uc.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Step)

	v, err = f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair", Time: "09:00"})
	require.NoError(t, err)
	assert.True(t, v.CanAdvance)
}

func TestStepTwoIsNeverBlocked(t *testing.T) {
	f := newFixture(t, nil)
	v, _ := f.uc.Open("2")
	_, err := f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair", Time: "09:00"})
	require.NoError(t, err)

	v, err = f.uc.Next(v.ID)
	require.NoError(t, err)
	assert.True(t, v.CanAdvance)

	v, err = f.uc.Next(v.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Step)
	assert.Equal(t, "contact-and-payment", v.StepName)

	_, err = f.uc.Next(v.ID)
	assert.ErrorIs(t, err, ErrCannotAdvance)
}

func TestBackKeepsFields(t *testing.T) {
	f := newFixture(t, nil)
	v, _ := f.uc.Open("2")
	f.fillAll(t, v.ID)

	v, err := f.uc.Back(v.ID)
	require.NoError(t, err)
	v, err = f.uc.Back(v.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, v.Step)
	assert.Equal(t, "Home Cleaning", v.Service)
	assert.Equal(t, "13:00", v.Time)
	assert.Equal(t, "A-123, Green Park Extension", v.Address)
	assert.Equal(t, "cod", v.PaymentMethod)

	_, err = f.uc.Back(v.ID)
	assert.ErrorIs(t, err, ErrAtFirstStep)
}

func TestSetServiceValidation(t *testing.T) {
	f := newFixture(t, nil)
	v, _ := f.uc.Open("2")

	_, err := f.uc.SetService(v.ID, &ServiceInput{Service: "Plumbing"})
	assert.ErrorIs(t, err, ErrUnknownService)

	_, err = f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair", Date: "2024-01-27"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair", Date: "2024-01-19"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair", Time: "20:00"})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair", DurationHours: 5})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	v, err = f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair", Date: "2024-01-26", DurationHours: 8})
	require.NoError(t, err)
	assert.Equal(t, 1600.0, v.Total)

	_, err = f.uc.SetDetails(v.ID, &DetailsInput{Address: "x"})
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestSubmitCreatesPendingBooking(t *testing.T) {
	customer := &domain.Identity{ID: "1", Name: "Rajesh Kumar", Role: domain.RoleCustomer}
	f := newFixture(t, customer)
	ctx := context.Background()

	v, err := f.uc.Open("2")
	require.NoError(t, err)
	f.fillAll(t, v.ID)

	confirmation, err := f.uc.Submit(ctx, v.ID)
	require.NoError(t, err)

	assert.Equal(t, "Booking Confirmed!", confirmation.Title)
	assert.Equal(t, "Your booking with Priya Sharma has been confirmed for Jan 22, 2024 at 01:00 PM", confirmation.Message)
	assert.Equal(t, fmt.Sprintf("booking_%d", testNow.UnixMilli()), confirmation.Booking.ID)

	bookings, err := f.repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, 400.0, b.TotalAmount)
	assert.Equal(t, "2", b.ProviderID)
	assert.Equal(t, "Priya Sharma", b.ProviderName)
	assert.Equal(t, "1", b.CustomerID)
	assert.Equal(t, domain.PaymentCashOnDelivery, b.PaymentMethod)
	assert.Equal(t, "Ring twice", b.Notes)

	// мастер закрыт после отправки
	_, err = f.uc.Get(v.ID)
	assert.ErrorIs(t, err, ErrWizardNotFound)
	assert.Equal(t, []string{"cod"}, f.metrics.created)
	assert.Zero(t, f.metrics.open)
}

func TestSubmitBumpsTakenID(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	taken := fmt.Sprintf("booking_%d", testNow.UnixMilli())
	require.NoError(t, f.repo.Append(ctx, &domain.Booking{ID: taken, Date: testNow, Status: domain.StatusPending}))

	v, _ := f.uc.Open("2")
	f.fillAll(t, v.ID)

	confirmation, err := f.uc.Submit(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("booking_%d", testNow.UnixMilli()+1), confirmation.Booking.ID)
}

func TestSubmitWithMissingFields(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	v, _ := f.uc.Open("2")
	_, err := f.uc.SetService(v.ID, &ServiceInput{Service: "AC Repair", Time: "09:00"})
	require.NoError(t, err)

	_, err = f.uc.Submit(ctx, v.ID)
	assert.ErrorIs(t, err, ErrWrongStep)

	_, _ = f.uc.Next(v.ID)
	_, _ = f.uc.Next(v.ID)

	_, err = f.uc.Submit(ctx, v.ID)
	assert.ErrorIs(t, err, ErrMissingInformation)

	bookings, err := f.repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	v, err = f.uc.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Step)
}

func TestClose(t *testing.T) {
	f := newFixture(t, nil)
	v, _ := f.uc.Open("2")

	require.NoError(t, f.uc.Close(v.ID))
	assert.ErrorIs(t, f.uc.Close(v.ID), ErrWizardNotFound)

	_, err := f.uc.SetPayment(v.ID, &PaymentInput{PaymentMethod: "razorpay"})
	assert.ErrorIs(t, err, ErrWizardNotFound)
}

func TestDraftReset(t *testing.T) {
	provider := domain.Provider{ID: "2", HourlyRate: 200}
	d := newDraft(provider, testNow)
	d.Service = "AC Repair"
	d.Time = "09:00"
	d.DurationHours = 6
	d.Step = StepContactAndPayment
	d.PaymentMethod = domain.PaymentOnlineGateway

	later := testNow.AddDate(0, 0, 2)
	d.reset(later)

	assert.Equal(t, StepServiceSelection, d.Step)
	assert.Empty(t, d.Service)
	assert.Empty(t, string(d.Time))
	assert.Equal(t, domain.DefaultDurationHours, d.DurationHours)
	assert.Equal(t, startOfDay(later), d.Date)
	assert.Empty(t, string(d.PaymentMethod))
}
