package dispatch_reconcile

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	ReleaseStuckDispatches(ctx context.Context) (int64, error)
}

// DispatchReconcile releases orders stuck in the dispatch marker state,
// which happens when the process dies mid-dispatch or the aggregator
// call times out with an unknown outcome.
type DispatchReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDispatchReconcile(log logger.Logger, service Service, interval time.Duration) *DispatchReconcile {
	return &DispatchReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DispatchReconcile) TTL() time.Duration {
	return d.interval
}

func (d *DispatchReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.ReleaseStuckDispatches(ctxWithTimeout)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("released_orders", rowsAffected),
		).Info("dispatch reconcile")
	}

	return err
}

func (d *DispatchReconcile) Info() string {
	return "dispatch reconcile"
}
