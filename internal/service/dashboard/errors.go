package dashboard

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCustomerNotFound возвращается, когда у клиента нет ни одного бронирования
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrProviderNotFound возвращается, когда исполнитель отсутствует в каталоге
	ErrProviderNotFound = errors.New("provider not found")

	// ErrUnsupportedRole возвращается для роли без панели управления
	ErrUnsupportedRole = errors.New("unsupported role")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
