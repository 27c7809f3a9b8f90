package entities

import "time"

type Account struct {
	ID           int64
	Email        string
	PasswordHash string
}

type Session struct {
	Token     string
	Email     string
	ExpiresAt time.Time
}

// Capabilities - набор прав, вычисляемый из сессии.
// Заменяет захардкоженную проверку admin-почты в оригинале.
type Capabilities struct {
	CanManageStaff bool
}
