// Package models declares the typed entities of the catalog. Credentials are
// deliberately absent from these types: the password hash lives only inside
// the users repository, so no value built from these structs can leak it.
package models

import "time"

// Role is the closed set of user roles. Anything else is rejected at the
// mutation boundary as a validation error rather than stored verbatim.
type Role string

const (
	RoleGeneral    Role = "general"
	RoleAdmin      Role = "admin"
	RoleResearcher Role = "researcher"
)

func (r Role) Valid() bool {
	switch r {
	case RoleGeneral, RoleAdmin, RoleResearcher:
		return true
	}
	return false
}

// UserStatus is the account state. Only active accounts may log in.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}

// User is a registered account as seen outside the users repository.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u User) RecordID() int64 { return u.ID }
