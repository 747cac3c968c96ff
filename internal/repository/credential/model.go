package credential

import "time"

type CredentialDB struct {
	ID        int64
	Name      string
	Role      string
	Secret    string
	CreatedAt time.Time
}

type CredentialModifyDB struct {
	Name   *string
	Role   *string
	Secret *string
}
