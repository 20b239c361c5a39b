package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/robekc/topup-service/internal/adapter/storage"
	"github.com/robekc/topup-service/internal/core/domain"
	"github.com/robekc/topup-service/internal/core/port"
)

const orderColumns = "id, product_id, user_id, amount, status, COALESCE(payment_ref, ''), COALESCE(pay_url, ''), created_at, updated_at"

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// nullIfEmpty keeps the partial unique index on payment_ref honest:
// unset references are stored as NULL, not as colliding empty strings.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.ProductID,
		&order.UserID,
		&order.Amount,
		&order.Status,
		&order.PaymentRef,
		&order.PayURL,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("id", "product_id", "user_id", "amount", "status", "payment_ref", "pay_url", "created_at", "updated_at").
		Values(order.ID, order.ProductID, order.UserID, order.Amount, order.Status,
			nullIfEmpty(order.PaymentRef), nullIfEmpty(order.PayURL), order.CreatedAt, order.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrOrderExists
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	return r.readOrderBy(ctx, sq.Eq{"id": id})
}

func (r *Repository) ReadOrderByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error) {
	return r.readOrderBy(ctx, sq.Eq{"payment_ref": paymentRef})
}

func (r *Repository) readOrderBy(ctx context.Context, cond sq.Eq) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(cond)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

// TransitionOrder is the single mutation path for orders. The row lock plus
// the status check make two concurrent transitions from the same status
// resolve to exactly one winner; the loser gets ErrOrderStateConflict.
func (r *Repository) TransitionOrder(ctx context.Context, id domain.OrderID,
	from, to domain.OrderStatus, mutate port.TransitionFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Select(orderColumns).
			From("orders").
			Where(sq.Eq{"id": id}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		order, err = scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrOrderNotFound
			}
			return err
		}

		if order.Status != from {
			return domain.ErrOrderStateConflict
		}

		if mutate != nil {
			if err := mutate(order); err != nil {
				return err
			}
		}

		order.Status = to
		order.UpdatedAt = time.Now()

		updateSt := r.db.QueryBuilder.Update("orders").
			Set("status", order.Status).
			Set("payment_ref", nullIfEmpty(order.PaymentRef)).
			Set("pay_url", nullIfEmpty(order.PayURL)).
			Set("updated_at", order.UpdatedAt).
			Where(sq.Eq{"id": id})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) ListStaleOrders(ctx context.Context, statuses []domain.OrderStatus, olderThan time.Duration) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"status": statuses}).
		Where(sq.Lt{"updated_at": time.Now().Add(-olderThan)})

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListRecentOrders(ctx context.Context, limit uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC").
		Limit(limit)

	return r.listOrders(ctx, statement)
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) NotificationSent(ctx context.Context, id domain.OrderID, channel string, status domain.OrderStatus) (bool, error) {
	statement := r.db.QueryBuilder.
		Select("1").
		From("notifications").
		Where(sq.Eq{"order_id": id, "channel": channel, "status": status})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *Repository) MarkNotificationSent(ctx context.Context, id domain.OrderID, channel string, status domain.OrderStatus) error {
	statement := r.db.QueryBuilder.Insert("notifications").
		Columns("order_id", "channel", "status").
		Values(id, channel, status).
		Suffix("ON CONFLICT DO NOTHING")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}
