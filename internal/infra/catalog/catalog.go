package catalog

import (
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// Catalog статический каталог маркетплейса: категории, услуги, исполнители и отзывы.
// Данные только для чтения; методы возвращают копии срезов.
type Catalog struct {
	categories []domain.Category
	services   []domain.Service
	providers  []domain.Provider
	reviews    []domain.Review
}

// New создает каталог с демо-данными
func New() *Catalog {
	return &Catalog{
		categories: categories,
		services:   services,
		providers:  providers,
		reviews:    reviews,
	}
}

// Categories возвращает все категории
func (c *Catalog) Categories() []domain.Category {
	return append([]domain.Category(nil), c.categories...)
}

// Services возвращает все услуги
func (c *Catalog) Services() []domain.Service {
	return append([]domain.Service(nil), c.services...)
}

// Providers возвращает всех исполнителей
func (c *Catalog) Providers() []domain.Provider {
	return append([]domain.Provider(nil), c.providers...)
}

// Reviews возвращает все отзывы
func (c *Catalog) Reviews() []domain.Review {
	return append([]domain.Review(nil), c.reviews...)
}

// ProviderByID ищет исполнителя по ID
func (c *Catalog) ProviderByID(id string) (*domain.Provider, bool) {
	for i := range c.providers {
		if c.providers[i].ID == id {
			p := c.providers[i]
			return &p, true
		}
	}
	return nil, false
}

// ServiceByID ищет услугу по ID
func (c *Catalog) ServiceByID(id string) (*domain.Service, bool) {
	for i := range c.services {
		if c.services[i].ID == id {
			s := c.services[i]
			return &s, true
		}
	}
	return nil, false
}

// ServicesByProvider возвращает услуги исполнителя
func (c *Catalog) ServicesByProvider(providerID string) []domain.Service {
	result := make([]domain.Service, 0)
	for _, s := range c.services {
		if s.ProviderID == providerID {
			result = append(result, s)
		}
	}
	return result
}

// ReviewsByProvider возвращает отзывы об исполнителе
func (c *Catalog) ReviewsByProvider(providerID string) []domain.Review {
	result := make([]domain.Review, 0)
	for _, r := range c.reviews {
		if r.ProviderID == providerID {
			result = append(result, r)
		}
	}
	return result
}

// DemoBookings возвращает начальные бронирования демо-клиента.
// Имя исполнителя и название услуги заполняются только для ссылок, найденных в каталоге.
func (c *Catalog) DemoBookings() []*domain.Booking {
	result := make([]*domain.Booking, 0, len(demoBookings))
	for _, d := range demoBookings {
		date, err := time.Parse(domain.DateFormat, d.date)
		if err != nil {
			panic(err)
		}

		payment := domain.PaymentCashOnDelivery
		if d.paid {
			payment = domain.PaymentOnlineGateway
		}

		b := &domain.Booking{
			ID:            d.id,
			ProviderID:    d.providerID,
			ServiceID:     d.serviceID,
			CustomerID:    demoCustomerID,
			CustomerName:  demoCustomerName,
			Date:          date,
			Time:          d.time,
			DurationHours: d.durationHours,
			Address:       demoCustomerAddress,
			Phone:         demoCustomerPhone,
			PaymentMethod: payment,
			TotalAmount:   d.totalAmount,
			Status:        d.status,
			CreatedAt:     ptr(ts(d.createdAt)),
		}
		if p, ok := c.ProviderByID(d.providerID); ok {
			b.ProviderName = p.Name
		}
		if s, ok := c.ServiceByID(d.serviceID); ok {
			b.Service = s.Name
		}

		result = append(result, b)
	}
	return result
}
