package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is the person who books a session. Unique by email (stored lowercased).
type Customer struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Phone     *string
	CreatedAt time.Time
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MatchesEmail compares emails case-insensitively
func (c *Customer) MatchesEmail(email string) bool {
	return NormalizeEmail(c.Email) == NormalizeEmail(email)
}

// FullName returns "First Last"
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
