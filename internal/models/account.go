package models

// Account represents a registered board user.
type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this to the client
}
