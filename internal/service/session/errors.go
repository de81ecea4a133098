package session

import "errors"

var (
	// ErrInternal возвращается при ошибках хранилища сессии
	ErrInternal = errors.New("session: internal error")
)
