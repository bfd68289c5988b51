package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
)

const (
	pgUniqueViolation = "23505"
	ordersNumberIndex = "orders_order_number_uq"
	orderColumns      = `id, order_number, order_name, owner_id, status, subtotal, notes, delivery_address, created_at, updated_at`
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Insert(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		order.ID, order.OrderNumber, order.OrderName, order.OwnerID, string(order.Status),
		order.Subtotal, order.Notes, order.DeliveryAddress, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			err = conflict
			return domain.Order{}, err
		}
		err = fmt.Errorf("insert order: %w", err)
		return domain.Order{}, err
	}

	for i, item := range order.Items {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id, position, product_id, product_name, group_name, pack,
				price, custom_price, quantity, line_total
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`,
			order.ID, i, item.ProductID, item.ProductName, item.GroupName, item.Pack,
			item.Price, item.CustomPrice, item.Quantity, item.LineTotal,
		); err != nil {
			err = fmt.Errorf("insert order item %d: %w", i, err)
			return domain.Order{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		err = fmt.Errorf("commit insert order: %w", err)
		return domain.Order{}, err
	}

	return order.Clone(), nil
}

func (r *orderRepository) FindByID(ctx context.Context, id, ownerID string) (domain.Order, error) {
	return r.findOne(ctx, `WHERE id = $1 AND owner_id = $2`, id, ownerID)
}

func (r *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber, ownerID string) (domain.Order, error) {
	return r.findOne(ctx, `WHERE order_number = $1 AND owner_id = $2`, orderNumber, ownerID)
}

func (r *orderRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE owner_id = $1
		ORDER BY created_at DESC, order_number DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]string, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, ownerID string, status domain.OrderStatus, updatedAt time.Time) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $3,
		    updated_at = $4
		WHERE id = $1
		  AND owner_id = $2
		RETURNING `+orderColumns,
		id, ownerID, string(status), updatedAt,
	)
	order, err := scanOrder(row)
	if err != nil {
		return domain.Order{}, err
	}

	items, err := r.loadItems(ctx, []string{order.ID})
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items[order.ID]

	return order, nil
}

func (r *orderRepository) CountByOrderNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var count int64
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM orders
		WHERE starts_with(order_number, $1)
	`, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders by prefix: %w", err)
	}
	return count, nil
}

// NextOrderSequence атомарно увеличивает счётчик года в order_number_sequences.
// Первая строка за год засевается числом уже существующих заказов.
func (r *orderRepository) NextOrderSequence(ctx context.Context, year int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var next int64
	if err := r.db.QueryRowContext(ctx, `
		INSERT INTO order_number_sequences (year, last_value)
		VALUES ($1, (SELECT COUNT(*) FROM orders WHERE starts_with(order_number, $2)) + 1)
		ON CONFLICT (year) DO UPDATE
		SET last_value = order_number_sequences.last_value + 1
		RETURNING last_value
	`, year, domain.OrderNumberPrefix(year)).Scan(&next); err != nil {
		return 0, fmt.Errorf("next order sequence: %w", err)
	}
	return next, nil
}

func (r *orderRepository) findOne(ctx context.Context, where string, args ...any) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders `+where, args...)
	order, err := scanOrder(row)
	if err != nil {
		return domain.Order{}, err
	}

	items, err := r.loadItems(ctx, []string{order.ID})
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items[order.ID]

	return order, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	if err := row.Scan(
		&order.ID, &order.OrderNumber, &order.OrderName, &order.OwnerID, &status,
		&order.Subtotal, &order.Notes, &order.DeliveryAddress, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("scan order: %w", err)
	}
	order.Status = domain.OrderStatus(status)
	order.CreatedAt = order.CreatedAt.UTC()
	order.UpdatedAt = order.UpdatedAt.UTC()
	return order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, product_id, product_name, group_name, pack, price, custom_price, quantity, line_total
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			item    domain.OrderItem
		)
		if err := rows.Scan(
			&orderID, &item.ProductID, &item.ProductName, &item.GroupName, &item.Pack,
			&item.Price, &item.CustomPrice, &item.Quantity, &item.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		result[orderID] = append(result[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return result, nil
}

// conflictError переводит нарушение уникальности в доменную ошибку.
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	if pgErr.ConstraintName == ordersNumberIndex {
		return domain.ErrOrderNumberConflict
	}
	return domain.ErrOrderIDConflict
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)
