//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	shiprocketGateway "marketplace/internal/gateway/shiprocket"
	"marketplace/internal/handlers/tasks/dispatch_reconcile"
	"marketplace/internal/pkg/config"

	credentialRepo "marketplace/internal/repository/credential"
	notificationRepo "marketplace/internal/repository/notification"
	orderRepo "marketplace/internal/repository/order"
	trackingRepo "marketplace/internal/repository/tracking"
	vendorRepo "marketplace/internal/repository/vendor"
	credentialService "marketplace/internal/service/credential"
	fulfillmentService "marketplace/internal/service/fulfillment"
	orderService "marketplace/internal/service/order"

	"marketplace/pkg/logger"
	"marketplace/pkg/tx"
)

// InitializeApplication for the HTTP service (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,
		provideStuckThreshold,

		provideOrderRepository,
		provideVendorRepository,
		provideCredentialRepository,
		provideTrackingRepository,
		provideNotificationRepository,

		provideHTTPClient,
		provideShipmentGateway,

		provideServiceFulfillment,
		provideServiceOrder,
		provideServiceCredential,

		provideDispatchReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceFulfillment), new(*fulfillmentService.Fulfillment)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceCredential), new(*credentialService.Credential)),

		wire.Bind(new(fulfillmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(fulfillmentService.VendorRepository), new(*vendorRepo.Repository)),
		wire.Bind(new(fulfillmentService.CredentialRepository), new(*credentialRepo.Repository)),
		wire.Bind(new(fulfillmentService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(fulfillmentService.Notifier), new(*notificationRepo.Repository)),
		wire.Bind(new(fulfillmentService.ShipmentGateway), new(*shiprocketGateway.ShiprocketGateway)),
		wire.Bind(new(fulfillmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(credentialService.Repository), new(*credentialRepo.Repository)),

		wire.Bind(new(dispatch_reconcile.Service), new(*fulfillmentService.Fulfillment)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp for the Kafka worker (cmd/worker-order-paid)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStuckThreshold,

		provideOrderRepository,
		provideVendorRepository,
		provideCredentialRepository,
		provideTrackingRepository,
		provideNotificationRepository,

		provideHTTPClient,
		provideShipmentGateway,

		provideServiceFulfillment,

		wire.Bind(new(fulfillmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(fulfillmentService.VendorRepository), new(*vendorRepo.Repository)),
		wire.Bind(new(fulfillmentService.CredentialRepository), new(*credentialRepo.Repository)),
		wire.Bind(new(fulfillmentService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(fulfillmentService.Notifier), new(*notificationRepo.Repository)),
		wire.Bind(new(fulfillmentService.ShipmentGateway), new(*shiprocketGateway.ShiprocketGateway)),
		wire.Bind(new(fulfillmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
