package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tracker/internal/entities"
)

// Auth проверяет учетные данные и держит сессии в памяти процесса.
// Возможности (управление справочником сотрудников) выдаются по списку
// административных адресов из конфигурации, а не по захардкоженной
// почте.
type Auth struct {
	accounts    AccountRepository
	sessionTTL  time.Duration
	adminEmails map[string]struct{}
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]entities.Session
}

func New(accounts AccountRepository, sessionTTL time.Duration, adminEmails []string) *Auth {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[email] = struct{}{}
	}

	return &Auth{
		accounts:    accounts,
		sessionTTL:  sessionTTL,
		adminEmails: admins,
		now:         time.Now,
		sessions:    make(map[string]entities.Session),
	}
}

// Login сверяет пароль с bcrypt-хешем и выдает непрозрачный токен
// сессии. Отсутствие аккаунта и неверный пароль неразличимы для
// вызывающего.
func (s *Auth) Login(ctx context.Context, email, password string) (*entities.Session, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := entities.Session{
		Token:     uuid.NewString(),
		Email:     account.Email,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return &session, nil
}

func (s *Auth) Logout(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ErrSessionNotFound
	}

	delete(s.sessions, token)
	return nil
}

// Identity возвращает почту владельца живой сессии. Протухшая сессия
// удаляется на месте.
func (s *Auth) Identity(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}

	if !s.now().Before(session.ExpiresAt) {
		delete(s.sessions, token)
		return "", ErrSessionNotFound
	}

	return session.Email, nil
}

func (s *Auth) Capabilities(email string) entities.Capabilities {
	_, isAdmin := s.adminEmails[email]
	return entities.Capabilities{
		CanManageStaff: isAdmin,
	}
}

// CleanupExpiredSessions выкидывает протухшие сессии. Запускается
// периодической фоновой задачей.
func (s *Auth) CleanupExpiredSessions(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}

	return removed, nil
}
