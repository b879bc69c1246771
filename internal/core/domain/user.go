package domain

import "time"

// Role is the binary authorization level of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Address is the optional postal address attached to a profile.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// IsZero reports whether no address field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// User is an account record. PasswordHash never leaves the service.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	DateOfBirth  string
	Address      *Address
	CreatedAt    time.Time
}

// IsAdmin reports whether the user passes the admin gate.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// NewUser carries the fields needed to create an account.
type NewUser struct {
	Name        string
	Email       string
	Password    string
	Role        Role
	Phone       string
	DateOfBirth string
	Address     *Address
}

// ProfileUpdate lists self-editable fields. Empty values leave the stored field untouched.
type ProfileUpdate struct {
	Name        string
	Phone       string
	DateOfBirth string
	Address     *Address
}

// HasAddress reports whether the update carries a non-empty address.
func (p ProfileUpdate) HasAddress() bool {
	return p.Address != nil && !p.Address.IsZero()
}

// IsEmpty reports whether applying the update would change nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == "" && p.Phone == "" && p.DateOfBirth == "" && !p.HasAddress()
}

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
}
