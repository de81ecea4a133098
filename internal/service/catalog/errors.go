package catalog

import "errors"

var (
	// ErrProviderNotFound возвращается, когда исполнитель не найден в каталоге
	ErrProviderNotFound = errors.New("provider not found")

	// ErrMissingFields возвращается, когда в форме услуги не заполнены обязательные поля
	ErrMissingFields = errors.New("please fill in all required fields")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
