package registration

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidForm возвращается, когда форма регистрации содержит ошибки
var ErrInvalidForm = errors.New("please fix the errors and try again")

// ValidationError ошибки формы по полям
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidForm.Error() + " (" + strings.Join(parts, "; ") + ")"
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidForm)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}
