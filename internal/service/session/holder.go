package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	sessionRepo "github.com/m04kA/SMC-UrbanServices/internal/infra/storage/session"
)

// Holder хранит идентичность текущего пользователя процесса.
// Безопасен для конкурентного использования из HTTP обработчиков.
type Holder struct {
	mu      sync.RWMutex
	current *domain.Identity

	repo    SessionRepository
	metrics Metrics
	logger  Logger
}

// NewHolder создает пустой Holder
func NewHolder(repo SessionRepository, metrics Metrics, logger Logger) *Holder {
	return &Holder{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Restore загружает сохранённую идентичность при старте.
// Отсутствие или повреждённая запись оставляют Holder пустым.
func (h *Holder) Restore(ctx context.Context) error {
	identity, err := h.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrDecode) {
			h.logger.Warn("Restore: stored session is corrupt, ignoring: %v", err)
			return nil
		}
		h.logger.Error("Restore: failed to load session: %v", err)
		return fmt.Errorf("%w: Restore - load: %v", ErrInternal, err)
	}

	h.mu.Lock()
	h.current = identity
	h.mu.Unlock()

	if identity != nil {
		h.logger.Info("Restore: restored session for user=%s role=%s", identity.ID, identity.Role)
	}
	return nil
}

// Login выполняет вход по демо-таблице.
// Неизвестный email и неверный пароль неразличимы для вызывающего (false),
// текущая идентичность при этом не меняется. Ошибка возвращается только при сбое хранилища.
func (h *Holder) Login(ctx context.Context, email, password string) (bool, error) {
	user, ok := demoUsers[email]
	if !ok || password != DemoPassword {
		h.metrics.LoginAttempt(false)
		h.logger.Warn("Login: rejected credentials for email=%s", email)
		return false, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	identity := user
	if err := h.repo.Save(ctx, &identity); err != nil {
		h.logger.Error("Login: failed to persist session for user=%s: %v", identity.ID, err)
		return false, fmt.Errorf("%w: Login - save: %v", ErrInternal, err)
	}

	h.current = &identity
	h.metrics.LoginAttempt(true)
	h.logger.Info("Login: user=%s role=%s logged in", identity.ID, identity.Role)
	return true, nil
}

// Logout очищает текущую идентичность и сохранённую копию; идемпотентен
func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = nil
	if err := h.repo.Clear(ctx); err != nil {
		h.logger.Error("Logout: failed to clear stored session: %v", err)
		return fmt.Errorf("%w: Logout - clear: %v", ErrInternal, err)
	}

	h.logger.Info("Logout: session cleared")
	return nil
}

// Current возвращает копию текущей идентичности
func (h *Holder) Current() (*domain.Identity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.current == nil {
		return nil, false
	}
	identity := *h.current
	return &identity, true
}
