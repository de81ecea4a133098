package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	ProviderID string    // ID исполнителя
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       time.Time              // Дата, на которую запрашивались слоты
	ProviderID string                 // ID исполнителя
	Slots      []domain.AvailableSlot // Все фиксированные слоты дня с признаком доступности
}
