package models

import (
	"strings"

	"github.com/google/uuid"
)

// Auth provider constants
const (
	ProviderLocal = "local"
	ProviderOIDC  = "oidc"
)

// User is the signed-in user kept in the session.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Provider string    `json:"provider"`
}

// NewLocalUser builds the user for a credential login. Any non-empty
// username is accepted; the email is derived from it.
func NewLocalUser(username string) *User {
	username = strings.TrimSpace(username)
	return &User{
		ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("mindhub:"+username)),
		Username: username,
		Email:    username + "@example.com",
		Provider: ProviderLocal,
	}
}

// Initial returns the upper-cased first letter of the username.
func (u *User) Initial() string {
	return Initial(u.Username)
}

// Initial returns the upper-cased first rune of name, or "?".
func Initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}
