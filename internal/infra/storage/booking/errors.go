package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBookingExists возвращается при попытке добавить бронирование с уже занятым ID
	ErrBookingExists = errors.New("booking.repository: booking already exists")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("booking.repository: invalid booking status")

	// ErrReadStore возвращается при ошибке чтения списка из хранилища
	ErrReadStore = errors.New("booking.repository: failed to read bookings")

	// ErrWriteStore возвращается при ошибке записи списка в хранилище
	ErrWriteStore = errors.New("booking.repository: failed to write bookings")

	// ErrDecode возвращается, когда сохранённый список не удаётся разобрать
	ErrDecode = errors.New("booking.repository: failed to decode bookings")
)
