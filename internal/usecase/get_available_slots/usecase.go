package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// UseCase use case для получения слотов исполнителя на дату
type UseCase struct {
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%s, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем исполнителя
	provider, ok := uc.catalog.ProviderByID(req.ProviderID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: provider id=%s not found", req.ProviderID)
		return nil, ErrProviderNotFound
	}

	// 3. Проверяем окно бронирования
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Формируем слоты
	slots, err := buildSlots(req.Date, now, provider.Available)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	uc.logger.Info("GetAvailableSlots: provider=%s has %d/%d available slots on %s",
		req.ProviderID, available, len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		ProviderID: req.ProviderID,
		Slots:      slots,
	}, nil
}
