//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=credential_post_test
package credential_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RotateCredential(ctx context.Context, credentialModify entities.CredentialModify) (int64, error)
}
