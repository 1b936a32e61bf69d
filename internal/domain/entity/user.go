package entity

import "cloud.google.com/go/civil"

// User represents a core domain entity without infrastructure concerns.
// ID is assigned by the repository on creation and never changes afterwards.
type User struct {
	ID          int64
	Email       string
	FirstName   string
	LastName    string
	BirthDate   civil.Date
	Address     *string
	PhoneNumber *string
}

// Clone returns a deep copy so callers never share optional field storage
// with the repository.
func (u User) Clone() User {
	if u.Address != nil {
		v := *u.Address
		u.Address = &v
	}
	if u.PhoneNumber != nil {
		v := *u.PhoneNumber
		u.PhoneNumber = &v
	}
	return u
}

// BornBetween reports whether the birth date falls in [start, end].
func (u User) BornBetween(start, end civil.Date) bool {
	return !u.BirthDate.Before(start) && !u.BirthDate.After(end)
}
