//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=credential_test
package credential

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, credentialModify entities.CredentialModify) (int64, error)
}
