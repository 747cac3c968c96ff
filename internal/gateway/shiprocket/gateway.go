package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/fulfillment"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "shiprocket"

	createShipmentPath = "/v1/external/orders/create/adhoc"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const maxErrorBodySize = 4 << 10

// ShiprocketGateway talks to the shipment aggregator's REST API. Every
// call carries the bearer token supplied by the caller; the gateway
// itself holds no credentials.
type ShiprocketGateway struct {
	baseURL        string
	requestTimeout time.Duration
	client         doer
	retrier        retrier
}

func New(baseURL string, requestTimeout time.Duration, client doer) *ShiprocketGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &ShiprocketGateway{
		baseURL:        baseURL,
		requestTimeout: requestTimeout,
		client:         client,
		retrier:        backoff_adapter.New(retryConfig),
	}
}

func (g *ShiprocketGateway) CreateShipment(ctx context.Context, token string, shipmentReq *entities.ShipmentRequest) (*entities.ShipmentAssignment, error) {
	body, err := json.Marshal(fromDomain(shipmentReq))
	if err != nil {
		return nil, fmt.Errorf("gateway shiprocket, marshal shipment: %w", err)
	}

	var resp createShipmentResponse

	err = g.executeWithMetrics(ctx, "CreateShipment", func(ctx context.Context) error {
		return g.postShipment(ctx, token, body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway shiprocket, create shipment: %s: %w", shipmentReq.OrderRef, classify(err))
	}

	if resp.ShipmentID == 0 || resp.AWBCode == "" {
		return nil, fmt.Errorf("gateway shiprocket, create shipment: %s: incomplete assignment: %w",
			shipmentReq.OrderRef, fulfillment.ErrAggregatorFailure)
	}

	return toDomain(&resp), nil
}

func (g *ShiprocketGateway) postShipment(ctx context.Context, token string, body []byte, out *createShipmentResponse) error {
	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+createShipmentPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	httpResp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK && httpResp.StatusCode != http.StatusCreated {
		return newStatusError(httpResp)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// statusError keeps the HTTP status and the aggregator's own message so
// callers see why the aggregator refused the shipment.
type statusError struct {
	status  int
	message string
}

func newStatusError(resp *http.Response) *statusError {
	e := &statusError{status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return e
	}

	var body errorResponse
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		e.message = body.Message
	}

	return e
}

func (e *statusError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("aggregator responded %d: %s", e.status, e.message)
	}
	return fmt.Sprintf("aggregator responded %d", e.status)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Таймаут это неоднозначный исход: отправка могла состояться, поэтому
	// повторять нельзя.
	if isTimeout(err) {
		return false
	}

	// 502 от промежуточного прокси тоже неоднозначен: агрегатор мог успеть
	// обработать запрос, поэтому повторяем только 429 и 503.
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		switch statusErr.status {
		case http.StatusTooManyRequests,
			http.StatusServiceUnavailable:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func classify(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %s", fulfillment.ErrAggregatorTimeout, err)
	}
	return fmt.Errorf("%w: %s", fulfillment.ErrAggregatorFailure, err)
}

func (g *ShiprocketGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := getOutcome(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func getOutcome(err error) string {
	if err == nil {
		return "OK"
	}
	if isTimeout(err) {
		return "TIMEOUT"
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.status)
	}
	return "UNKNOWN"
}
