package credential

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Credential struct {
	repository Repository
}

func New(repository Repository) *Credential {
	return &Credential{
		repository: repository,
	}
}

// RotateCredential stores a new secret for a (name, role) pair. There is
// no revocation: lookups always take the newest row, so inserting is the
// whole rotation.
func (s *Credential) RotateCredential(ctx context.Context, credentialModify entities.CredentialModify) (int64, error) {
	if credentialModify.Name == nil ||
		credentialModify.Role == nil ||
		credentialModify.Secret == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*credentialModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidRole(credentialModify.Role.String()) {
		return 0, ErrInvalidRole
	}
	if *credentialModify.Secret == "" {
		return 0, ErrMissingRequiredFields
	}

	id, err := s.repository.Create(ctx, credentialModify)
	if err != nil {
		return 0, fmt.Errorf("create credential: %w", err)
	}

	return id, nil
}
