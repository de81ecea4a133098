package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	staticCatalog "github.com/m04kA/SMC-UrbanServices/internal/infra/catalog"
	"github.com/m04kA/SMC-UrbanServices/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func newUseCase(now time.Time) *UseCase {
	uc := NewUseCase(staticCatalog.New(), logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecuteFutureDate(t *testing.T) {
	uc := newUseCase(time.Date(2024, 1, 20, 13, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(&Request{ProviderID: "2", Date: date(2024, 1, 22)})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 11)

	for _, s := range resp.Slots {
		assert.True(t, s.Available, s.StartTime)
	}
	assert.Equal(t, "09:00 AM", resp.Slots[0].Label)
	assert.Equal(t, "07:00 PM", resp.Slots[10].Label)
}

func TestExecuteTodaySkipsStartedSlots(t *testing.T) {
	uc := newUseCase(time.Date(2024, 1, 20, 13, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(&Request{ProviderID: "2", Date: date(2024, 1, 20)})
	require.NoError(t, err)

	available := 0
	for _, s := range resp.Slots {
		if s.Available {
			available++
		}
	}
	// 14:00 ... 19:00
	assert.Equal(t, 6, available)
	assert.False(t, resp.Slots[4].Available, "13:00 has already started")
	assert.True(t, resp.Slots[5].Available)
}

func TestExecuteUnavailableProvider(t *testing.T) {
	uc := newUseCase(time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(&Request{ProviderID: "4", Date: date(2024, 1, 21)})
	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.False(t, s.Available)
	}
}

func TestExecuteErrors(t *testing.T) {
	uc := newUseCase(time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC))

	_, err := uc.Execute(&Request{ProviderID: "42", Date: date(2024, 1, 21)})
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = uc.Execute(&Request{ProviderID: "2", Date: date(2024, 1, 19)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(&Request{ProviderID: "2", Date: date(2024, 1, 27)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	_, err = uc.Execute(&Request{ProviderID: "2", Date: date(2024, 1, 26)})
	assert.NoError(t, err)

	_, err = uc.Execute(&Request{ProviderID: "2"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
