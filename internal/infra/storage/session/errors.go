package session

import "errors"

var (
	// ErrReadStore возвращается при ошибке чтения сессии из хранилища
	ErrReadStore = errors.New("session.repository: failed to read session")

	// ErrWriteStore возвращается при ошибке записи сессии в хранилище
	ErrWriteStore = errors.New("session.repository: failed to write session")

	// ErrDecode возвращается, когда сохранённую сессию не удаётся разобрать
	ErrDecode = errors.New("session.repository: failed to decode session")
)
