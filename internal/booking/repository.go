package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, scope Scope, userID int64, state State, now time.Time, limit, offset int) ([]*Booking, error)

	// UpdateStatus performs a compare-and-swap on the booking status. It
	// reports false when no row matched, i.e. the status changed under us.
	UpdateStatus(ctx context.Context, id int64, from, to Status) (bool, error)
}

// listSpec pairs the time/status predicate of a state bucket with its
// ordering. The scope only decides which id column the query filters on, so
// every (state, scope) combination shares this one table.
type listSpec struct {
	where   func(now time.Time) squirrel.Sqlizer
	orderBy string
}

var listSpecs = map[State]listSpec{
	StateAll: {
		where:   nil,
		orderBy: "b.start_date DESC",
	},
	StateCurrent: {
		where: func(now time.Time) squirrel.Sqlizer {
			return squirrel.And{
				squirrel.LtOrEq{"b.start_date": now},
				squirrel.Gt{"b.end_date": now},
			}
		},
		orderBy: "b.start_date ASC",
	},
	StatePast: {
		where: func(now time.Time) squirrel.Sqlizer {
			return squirrel.Lt{"b.end_date": now}
		},
		orderBy: "b.start_date DESC",
	},
	StateFuture: {
		where: func(now time.Time) squirrel.Sqlizer {
			return squirrel.Gt{"b.start_date": now}
		},
		orderBy: "b.start_date DESC",
	},
	StateWaiting: {
		where: func(time.Time) squirrel.Sqlizer {
			return squirrel.Eq{"b.status": StatusWaiting}
		},
		orderBy: "b.start_date DESC",
	},
	StateRejected: {
		where: func(time.Time) squirrel.Sqlizer {
			return squirrel.Eq{"b.status": StatusRejected}
		},
		orderBy: "b.start_date DESC",
	},
}

var scopeColumns = map[Scope]string{
	ScopeBooker: "b.booker_id",
	ScopeOwner:  "i.owner_id",
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "b.id, b.start_date, b.end_date, b.status, " +
	"b.item_id, i.name, i.owner_id, b.booker_id, u.name"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("start_date", "end_date", "status", "item_id", "booker_id").
		Values(b.StartDate, b.EndDate, b.Status, b.ItemID, b.BookerID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.StartDate, &b.EndDate, &b.Status,
		&b.ItemID, &b.ItemName, &b.ItemOwnerID, &b.BookerID, &b.BookerName,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, scope Scope, userID int64, state State, now time.Time, limit, offset int) ([]*Booking, error) {
	spec, ok := listSpecs[state]
	if !ok {
		return nil, fmt.Errorf("no list spec for state %q", state)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id").
		Where(squirrel.Eq{scopeColumns[scope]: userID})

	if spec.where != nil {
		query = query.Where(spec.where(now))
	}

	sql, args, err := query.
		OrderBy(spec.orderBy).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.StartDate, &b.EndDate, &b.Status,
			&b.ItemID, &b.ItemName, &b.ItemOwnerID, &b.BookerID, &b.BookerName,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, from, to Status) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update booking status failed: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}
