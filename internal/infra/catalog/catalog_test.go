package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

func TestCatalogLookups(t *testing.T) {
	c := New()

	assert.Len(t, c.Categories(), 8)
	assert.Len(t, c.Services(), 4)
	assert.Len(t, c.Providers(), 8)
	assert.Len(t, c.Reviews(), 2)

	p, ok := c.ProviderByID("2")
	require.True(t, ok)
	assert.Equal(t, "Priya Sharma", p.Name)
	assert.Equal(t, 200.0, p.HourlyRate)

	_, ok = c.ProviderByID("42")
	assert.False(t, ok)

	_, ok = c.ServiceByID("11")
	assert.False(t, ok)

	assert.Len(t, c.ServicesByProvider("2"), 2)
	assert.Empty(t, c.ServicesByProvider("8"))
	assert.Len(t, c.ReviewsByProvider("3"), 1)
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := New()

	list := c.Providers()
	list[0].Name = "changed"

	p, ok := c.ProviderByID(list[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", p.Name)
}

func TestServicesReferenceCatalogProviders(t *testing.T) {
	c := New()
	for _, s := range c.Services() {
		p, ok := c.ProviderByID(s.ProviderID)
		require.True(t, ok, "service %s", s.ID)
		assert.Contains(t, p.ServiceIDs, s.ID)
	}
}

func TestDemoBookingsKeepDanglingReferences(t *testing.T) {
	bookings := New().DemoBookings()
	require.Len(t, bookings, 8)

	first := bookings[0]
	assert.Equal(t, "booking1", first.ID)
	assert.Equal(t, "Priya Sharma", first.ProviderName)
	assert.Equal(t, "Deep House Cleaning", first.Service)
	assert.Equal(t, domain.StatusConfirmed, first.Status)
	require.NotNil(t, first.CreatedAt)

	dangling := bookings[3]
	assert.Equal(t, "5", dangling.ServiceID)
	assert.Empty(t, dangling.Service)

	for _, b := range bookings {
		assert.Equal(t, "1", b.CustomerID)
	}
}
