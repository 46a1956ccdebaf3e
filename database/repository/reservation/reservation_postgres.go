package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, kind, room_id, experience_id, user_id, check_in, check_out, experience_time, guests, created_at`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresReservationRepo stores reservations in the reservations table. The
// table's exclusion constraint is the authoritative overlap guard for rooms.
type PostgresReservationRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresReservationRepo wraps an open pool. Run migrations.Up first.
func NewPostgresReservationRepo(pool *pgxpool.Pool) *PostgresReservationRepo {
	return &PostgresReservationRepo{pool: pool}
}

func (p *PostgresReservationRepo) FetchReservations(ctx context.Context, subject models.Subject) ([]models.Reservation, error) {
	return fetchSubject(ctx, p.pool, subject)
}

func (p *PostgresReservationRepo) InsertReservation(ctx context.Context, r *models.Reservation) error {
	return insertReservation(ctx, p.pool, r)
}

// Reserve serialises writers on the subject with a transaction-scoped advisory
// lock, so check sees every reservation committed before it.
func (p *PostgresReservationRepo) Reserve(ctx context.Context, r *models.Reservation, check CheckFunc) error {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin reservation tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	subject := r.Subject()
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, subject.Key()); err != nil {
		return fmt.Errorf("lock %s: %w", subject.Key(), err)
	}

	existing, err := fetchSubject(ctx, tx, subject)
	if err != nil {
		return err
	}
	if err := check(existing); err != nil {
		return err
	}
	if err := insertReservation(ctx, tx, r); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapPgError(fmt.Errorf("commit reservation: %w", err))
	}
	return nil
}

func (p *PostgresReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	r, err := scanReservation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation %s: %w", id, err)
	}
	return &r, nil
}

func (p *PostgresReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations for user %s: %w", userID, err)
	}
	return collect(rows)
}

func (p *PostgresReservationRepo) Delete(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func fetchSubject(ctx context.Context, q querier, subject models.Subject) ([]models.Reservation, error) {
	var (
		rows pgx.Rows
		err  error
	)
	switch subject.Kind {
	case models.KindRoom:
		rows, err = q.Query(ctx,
			`SELECT `+reservationColumns+` FROM reservations WHERE kind = 'room' AND room_id = $1`, subject.ID)
	case models.KindExperience:
		rows, err = q.Query(ctx,
			`SELECT `+reservationColumns+` FROM reservations WHERE kind = 'experience' AND experience_id = $1`, subject.ID)
	default:
		return nil, fmt.Errorf("unknown subject kind %q", subject.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch reservations for %s: %w", subject.Key(), err)
	}
	return collect(rows)
}

func insertReservation(ctx context.Context, q querier, r *models.Reservation) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := q.Exec(ctx,
		`INSERT INTO reservations (`+reservationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, string(r.Kind), nullString(r.RoomID), nullString(r.ExperienceID), r.UserID,
		toPgDate(r.CheckIn), toPgDate(r.CheckOut), toPgDate(r.ExperienceTime), r.Guests, r.CreatedAt)
	if err != nil {
		return mapPgError(fmt.Errorf("insert reservation: %w", err))
	}
	return nil
}

func collect(rows pgx.Rows) ([]models.Reservation, error) {
	defer rows.Close()
	out := []models.Reservation{}
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanReservation(row pgx.Row) (models.Reservation, error) {
	var (
		r                models.Reservation
		kind             string
		roomID, expID    *string
		in, out, expTime pgtype.Date
	)
	if err := row.Scan(&r.ID, &kind, &roomID, &expID, &r.UserID, &in, &out, &expTime, &r.Guests, &r.CreatedAt); err != nil {
		return r, err
	}
	r.Kind = models.Kind(kind)
	if roomID != nil {
		r.RoomID = *roomID
	}
	if expID != nil {
		r.ExperienceID = *expID
	}
	r.CheckIn = fromPgDate(in)
	r.CheckOut = fromPgDate(out)
	r.ExperienceTime = fromPgDate(expTime)
	return r, nil
}

// mapPgError turns exclusion (23P01) and unique (23505) violations into
// availability.ErrConstraintViolation.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01", "23505":
			return fmt.Errorf("%w: %s", availability.ErrConstraintViolation, pgErr.ConstraintName)
		}
	}
	return err
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func toPgDate(d *models.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func fromPgDate(d pgtype.Date) *models.Date {
	if !d.Valid {
		return nil
	}
	v := models.DateOf(d.Time)
	return &v
}
