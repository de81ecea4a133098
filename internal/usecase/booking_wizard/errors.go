package booking_wizard

import "errors"

var (
	// ErrWizardNotFound возвращается, когда черновик с указанным ID не открыт
	ErrWizardNotFound = errors.New("booking_wizard: wizard not found")

	// ErrProviderNotFound возвращается, когда исполнитель не найден в каталоге
	ErrProviderNotFound = errors.New("booking_wizard: provider not found")

	// ErrProviderUnavailable возвращается, когда исполнитель сейчас не принимает заказы
	ErrProviderUnavailable = errors.New("booking_wizard: provider is not available")

	// ErrCannotAdvance возвращается, когда для перехода не заполнены услуга или время
	ErrCannotAdvance = errors.New("booking_wizard: select a service and a time slot to continue")

	// ErrAtFirstStep возвращается при попытке вернуться с первого шага
	ErrAtFirstStep = errors.New("booking_wizard: already at the first step")

	// ErrWrongStep возвращается, когда действие не относится к текущему шагу
	ErrWrongStep = errors.New("booking_wizard: action is not allowed at the current step")

	// ErrMissingInformation возвращается при отправке с незаполненными обязательными полями
	ErrMissingInformation = errors.New("booking_wizard: please fill in all required fields")

	// ErrUnknownService возвращается, когда исполнитель не оказывает выбранную услугу
	ErrUnknownService = errors.New("booking_wizard: provider does not offer this service")

	// ErrInvalidDate возвращается, когда дата вне окна бронирования
	ErrInvalidDate = errors.New("booking_wizard: date is outside the booking window")

	// ErrInvalidTimeSlot возвращается для времени вне фиксированного набора слотов
	ErrInvalidTimeSlot = errors.New("booking_wizard: invalid time slot")

	// ErrInvalidDuration возвращается для длительности вне допустимого набора
	ErrInvalidDuration = errors.New("booking_wizard: invalid duration")

	// ErrInvalidPaymentMethod возвращается для неизвестного способа оплаты
	ErrInvalidPaymentMethod = errors.New("booking_wizard: invalid payment method")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)
