package repository

import (
	"context"
	"errors"
	"time"

	"github.com/savorhq/restaurant-service/internal/errs"
	"github.com/savorhq/restaurant-service/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository interface {
	ListTables(ctx context.Context) ([]model.Table, error)
	ListReservations(ctx context.Context, date time.Time, timeSlot string) ([]model.Reservation, error)
	CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error)
	GetUserReservations(ctx context.Context, username string) ([]model.UserReservation, error)
	ListMenu(ctx context.Context, category string) ([]model.MenuItem, error)
	GetStats(ctx context.Context) (model.Stats, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	tablesTableName      = `tables`
	reservationTableName = `reservations`
	menuTableName        = `menu_items`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// blockingStatuses are the reservation statuses that occupy a table for its
// date/time slot. The uniqueness guard in the schema covers the same set.
var blockingStatuses = []model.ReservationStatus{model.StatusPending, model.StatusConfirmed}

func (r *repository) ListTables(ctx context.Context) ([]model.Table, error) {
	q, args, err := qb.Select("id", "table_number", "capacity", "status").
		From(tablesTableName).
		OrderBy("table_number").
		ToSql()
	if err != nil {
		return nil, err
	}
	var tables []model.Table
	if err := r.db.SelectContext(ctx, &tables, q, args...); err != nil {
		return nil, r.storeErr("ListTables", err)
	}
	return tables, nil
}

func (r *repository) ListReservations(ctx context.Context, date time.Time, timeSlot string) ([]model.Reservation, error) {
	q, args, err := qb.Select("id", "reservation_uid", "username", "table_id",
		"guest_name", "guest_email", "guest_phone",
		"reservation_date", "reservation_time", "party_size", "special_requests", "status", "created_at").
		From(reservationTableName).
		Where(sq.Eq{"reservation_date": date.Format(time.DateOnly)}).
		Where(sq.Eq{"reservation_time": timeSlot}).
		Where(sq.Eq{"status": blockingStatuses}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, r.storeErr("ListReservations", err)
	}
	return items, nil
}

func (r *repository) CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	q, args, err := qb.Insert(reservationTableName).
		Columns("reservation_uid", "username", "table_id",
			"guest_name", "guest_email", "guest_phone",
			"reservation_date", "reservation_time", "party_size", "special_requests", "status").
		Values(uuid.New(), res.Username, res.TableID,
			res.GuestName, res.GuestEmail, res.GuestPhone,
			res.Date.Format(time.DateOnly), res.TimeSlot, res.PartySize, res.SpecialRequests, model.StatusPending).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var out model.Reservation
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		serr := r.storeErr("CreateReservation", err)
		if !errors.Is(serr, errs.ErrTableTaken) {
			r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		}
		return model.Reservation{}, serr
	}
	return out, nil
}

func (r *repository) GetUserReservations(ctx context.Context, username string) ([]model.UserReservation, error) {
	q, args, err := qb.Select("r.id", "reservation_uid", "username", "table_id",
		"guest_name", "guest_email", "guest_phone",
		"reservation_date", "reservation_time", "party_size", "special_requests", "r.status", "created_at",
		"t.table_number").
		From(reservationTableName + " r").
		Join(tablesTableName + " t on t.id = r.table_id").
		Where(sq.Eq{"username": username}).
		OrderBy("reservation_date desc", "reservation_time desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.UserReservation
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, r.storeErr("GetUserReservations", err)
	}
	return items, nil
}

func (r *repository) ListMenu(ctx context.Context, category string) ([]model.MenuItem, error) {
	query := qb.Select("id", "name", "description", "price", "category", "image_url", "is_available").
		From(menuTableName).
		Where(sq.Eq{"is_available": true}).
		OrderBy("category", "name")
	if category != "" {
		query = query.Where(sq.Eq{"category": category})
	}
	q, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.MenuItem
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, r.storeErr("ListMenu", err)
	}
	return items, nil
}

func (r *repository) GetStats(ctx context.Context) (model.Stats, error) {
	q := `
	select
		(select count(*) from reservations) as total_reservations,
		(select count(*) from tables) as total_tables,
		(select count(*) from menu_items) as total_menu_items
`
	var stats model.Stats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.Stats{}, r.storeErr("GetStats", err)
	}
	return stats, nil
}

// storeErr maps driver-level failures onto the typed outcomes the allocator
// acts on. A unique violation on the reservation slot index means the table
// was taken by a concurrent insert.
func (r *repository) storeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.ErrTableTaken
	}
	if errors.Is(err, context.DeadlineExceeded) {
		r.log.Warn(op, zap.Error(errs.ErrStoreTimeout))
		return errs.ErrStoreTimeout
	}
	return err
}
