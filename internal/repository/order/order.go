package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"marketplace/internal/entities"
	"marketplace/internal/service/fulfillment"
	orderservice "marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const orderColumns = `id, vendor_id, customer_id, status, sub_total,
	tracking_number, tracking_partner,
	ship_name, ship_address, ship_city, ship_state, ship_country, ship_pincode,
	created_at, updated_at`

func (r *Repository) GetByIDWithRelations(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	var orderDB OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, orderID), &orderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	orderEntity := ToDomain(&orderDB)

	orderEntity.Items, err = r.listItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	orderEntity.Payment, err = r.getPayment(ctx, orderID)
	if err != nil {
		return nil, err
	}

	orderEntity.Customer, err = r.getCustomer(ctx, orderDB.CustomerID)
	if err != nil {
		return nil, err
	}

	orderEntity.Vendor, err = r.getVendor(ctx, orderDB.VendorID)
	if err != nil {
		return nil, err
	}

	return orderEntity, nil
}

func (r *Repository) MarkDispatching(ctx context.Context, orderID int64) error {
	query := `
		UPDATE orders
		SET status = 'DISPATCHING', updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository mark dispatching error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fulfillment.ErrOrderNotDispatchable
	}
	return nil
}

func (r *Repository) RevertDispatching(ctx context.Context, orderID int64) error {
	query := `
		UPDATE orders
		SET status = 'PENDING', updated_at = NOW()
		WHERE id = $1 AND status = 'DISPATCHING'
	`

	// Zero rows is fine: the marker was already released elsewhere.
	_, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository revert dispatching error: %w", err)
	}
	return nil
}

func (r *Repository) CompleteDispatch(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, fulfillment.ErrInvalidOrderID
	}

	builder := qb.Update("orders")

	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.TrackingNumber != nil {
		builder = builder.Set("tracking_number", orderModify.TrackingNumber)
	}
	if orderModify.TrackingPartner != nil {
		builder = builder.Set("tracking_partner", orderModify.TrackingPartner)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": *orderModify.ID, "status": entities.OrderDispatching.String()}).
		Suffix(fmt.Sprintf("RETURNING %s", orderColumns))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository complete dispatch error: %w", err)
	}

	var orderDB OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrOrderNotDispatchable
		}
		return nil, fmt.Errorf("unexpected order repository complete dispatch error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) ReleaseStuckDispatches(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		UPDATE orders
		SET status = 'PENDING', updated_at = NOW()
		WHERE status = 'DISPATCHING' AND updated_at < $1
	`

	cutoff := time.Now().UTC().Add(-olderThan)

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository release stuck dispatches error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) GetVendorOrder(ctx context.Context, userID, orderID int64) (*entities.Order, error) {
	query := `
		SELECT o.id, o.vendor_id, o.customer_id, o.status, o.sub_total,
			o.tracking_number, o.tracking_partner,
			o.ship_name, o.ship_address, o.ship_city, o.ship_state, o.ship_country, o.ship_pincode,
			o.created_at, o.updated_at
		FROM orders o
		JOIN vendors v ON v.id = o.vendor_id
		WHERE o.id = $1 AND v.user_id = $2
	`

	var orderDB OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, orderID, userID), &orderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get vendor order error: %w", err)
	}

	orderEntity := ToDomain(&orderDB)

	orderEntity.Items, err = r.listItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return orderEntity, nil
}

func (r *Repository) ListTracking(ctx context.Context, orderID int64) ([]entities.OrderTracking, error) {
	query := `
		SELECT id, order_id, status, message, created_at
		FROM order_tracking
		WHERE order_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list tracking error: %w", err)
	}
	defer rows.Close()

	tracking := []entities.OrderTracking{}
	for rows.Next() {
		var trackingDB TrackingDB
		err := rows.Scan(
			&trackingDB.ID,
			&trackingDB.OrderID,
			&trackingDB.Status,
			&trackingDB.Message,
			&trackingDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list tracking error: %w", err)
		}
		tracking = append(tracking, ToTrackingDomain(&trackingDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list tracking error: %w", err)
	}

	return tracking, nil
}

func (r *Repository) listItems(ctx context.Context, orderID int64) ([]entities.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, base_price, tax_amount, commission_amt, commission_pct
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
	}
	defer rows.Close()

	items := []entities.OrderItem{}
	for rows.Next() {
		var itemDB OrderItemDB
		err := rows.Scan(
			&itemDB.ID,
			&itemDB.OrderID,
			&itemDB.ProductID,
			&itemDB.Quantity,
			&itemDB.BasePrice,
			&itemDB.TaxAmount,
			&itemDB.CommissionAmt,
			&itemDB.CommissionPct,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
		}
		items = append(items, ToItemDomain(&itemDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
	}

	return items, nil
}

func (r *Repository) getPayment(ctx context.Context, orderID int64) (*entities.Payment, error) {
	query := `
		SELECT id, order_id, mode, amount, created_at
		FROM payments
		WHERE order_id = $1
	`

	var paymentDB PaymentDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&paymentDB.ID,
		&paymentDB.OrderID,
		&paymentDB.Mode,
		&paymentDB.Amount,
		&paymentDB.CreatedAt,
	)
	if err != nil {
		// At most one payment per order; none at all is a valid state
		// (unpaid COD order).
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected order repository get payment error: %w", err)
	}

	return ToPaymentDomain(&paymentDB), nil
}

func (r *Repository) getCustomer(ctx context.Context, customerID int64) (*entities.Customer, error) {
	query := `
		SELECT id, user_id, name, email, phone, created_at
		FROM customers
		WHERE id = $1
	`

	var customerDB CustomerDB
	err := r.querier.QueryRow(ctx, query, customerID).Scan(
		&customerDB.ID,
		&customerDB.UserID,
		&customerDB.Name,
		&customerDB.Email,
		&customerDB.Phone,
		&customerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected order repository get customer error: %w", err)
	}

	return ToCustomerDomain(&customerDB), nil
}

func (r *Repository) getVendor(ctx context.Context, vendorID int64) (*entities.Vendor, error) {
	query := `
		SELECT id, user_id, business_name, created_at, updated_at
		FROM vendors
		WHERE id = $1
	`

	var vendorDB VendorDB
	err := r.querier.QueryRow(ctx, query, vendorID).Scan(
		&vendorDB.ID,
		&vendorDB.UserID,
		&vendorDB.BusinessName,
		&vendorDB.CreatedAt,
		&vendorDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected order repository get vendor error: %w", err)
	}

	return ToVendorDomain(&vendorDB), nil
}

func scanOrder(row pgx.Row, orderDB *OrderDB) error {
	return row.Scan(
		&orderDB.ID,
		&orderDB.VendorID,
		&orderDB.CustomerID,
		&orderDB.Status,
		&orderDB.SubTotal,
		&orderDB.TrackingNumber,
		&orderDB.TrackingPartner,
		&orderDB.ShipName,
		&orderDB.ShipAddress,
		&orderDB.ShipCity,
		&orderDB.ShipState,
		&orderDB.ShipCountry,
		&orderDB.ShipPincode,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
}
