package entities

import "time"

// Credential is a named, role-scoped API secret. There is no revocation
// field: the current credential for a (name, role) pair is the most
// recently created row, rotation happens by inserting a newer one.
type Credential struct {
	ID        int64
	Name      string
	Role      RoleType
	Secret    string
	CreatedAt time.Time
}

type RoleType string

const (
	RoleAdmin  RoleType = "ADMIN"
	RoleVendor RoleType = "VENDOR"
)

func (r RoleType) String() string {
	return string(r)
}

type CredentialModify struct {
	Name   *string
	Role   *RoleType
	Secret *string
}
