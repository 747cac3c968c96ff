package credential

import "marketplace/internal/entities"

func ToDomain(c *CredentialDB) *entities.Credential {
	if c == nil {
		return nil
	}
	return &entities.Credential{
		ID:        c.ID,
		Name:      c.Name,
		Role:      entities.RoleType(c.Role),
		Secret:    c.Secret,
		CreatedAt: c.CreatedAt,
	}
}

func FromDomainModify(credentialModify *entities.CredentialModify) *CredentialModifyDB {
	if credentialModify == nil {
		return nil
	}
	credentialDB := &CredentialModifyDB{}

	if credentialModify.Name != nil {
		credentialDB.Name = credentialModify.Name
	}
	if credentialModify.Role != nil {
		role := credentialModify.Role.String()
		credentialDB.Role = &role
	}
	if credentialModify.Secret != nil {
		credentialDB.Secret = credentialModify.Secret
	}

	return credentialDB
}
