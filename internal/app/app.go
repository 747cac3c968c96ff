package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	shiprocketGateway "marketplace/internal/gateway/shiprocket"
	"marketplace/internal/handlers/rest/credential_post"
	"marketplace/internal/handlers/rest/order_approve_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_tracking_get"
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

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

type (
	ReconcileInterval time.Duration
	StuckThreshold    time.Duration
)

type Application struct {
	ServiceFulfillment ServiceFulfillment
	ServiceOrder       ServiceOrder
	ServiceCredential  ServiceCredential
	BackgroundWorkers  *background.Worker
}

type ServiceFulfillment interface {
	order_approve_post.Service
}

type ServiceOrder interface {
	order_get.Service
	order_tracking_get.Service
}

type ServiceCredential interface {
	credential_post.Service
}

type KafkaWorkerApp struct {
	ServiceFulfillment *fulfillmentService.Fulfillment
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideVendorRepository(querier *querier.Querier) *vendorRepo.Repository {
	return vendorRepo.New(querier)
}

func provideCredentialRepository(querier *querier.Querier) *credentialRepo.Repository {
	return credentialRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideHTTPClient() *http.Client {
	return &http.Client{}
}

func provideShipmentGateway(cfg *config.Config, client *http.Client) *shiprocketGateway.ShiprocketGateway {
	return shiprocketGateway.New(cfg.Shiprocket.BaseURL, cfg.Shiprocket.RequestTimeout, client)
}

func provideServiceFulfillment(
	log logger.Logger,
	orders fulfillmentService.OrderRepository,
	vendors fulfillmentService.VendorRepository,
	credentials fulfillmentService.CredentialRepository,
	tracking fulfillmentService.TrackingRepository,
	gateway fulfillmentService.ShipmentGateway,
	notifier fulfillmentService.Notifier,
	txManager fulfillmentService.TxManager,
	stuckAfter StuckThreshold,
) *fulfillmentService.Fulfillment {
	return fulfillmentService.New(
		log,
		orders,
		vendors,
		credentials,
		tracking,
		gateway,
		notifier,
		txManager,
		time.Duration(stuckAfter),
	)
}

func provideServiceOrder(repository orderService.Repository) *orderService.Order {
	return orderService.New(repository)
}

func provideServiceCredential(repository credentialService.Repository) *credentialService.Credential {
	return credentialService.New(repository)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.DispatchReconcileInterval)
}

func provideStuckThreshold(cfg *config.Config) StuckThreshold {
	return StuckThreshold(cfg.Tasks.DispatchStuckThreshold)
}

func provideDispatchReconcileTask(
	log logger.Logger,
	service dispatch_reconcile.Service,
	interval ReconcileInterval,
) *dispatch_reconcile.DispatchReconcile {
	return dispatch_reconcile.NewDispatchReconcile(log, service, time.Duration(interval))
}

func provideTaskList(
	dispatchReconcileTask *dispatch_reconcile.DispatchReconcile,
) []background.Task {
	return []background.Task{
		dispatchReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
