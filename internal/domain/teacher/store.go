package teacher

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, t Teacher) (Teacher, error) {
	t.ID = uuid.NewString()
	err := s.DB.QueryRow(ctx, `
    INSERT INTO teachers (id, shalarth_id, name, mobile, pan_no, gpf_no, pran_no, designation)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING created_at
  `, t.ID, t.ShalarthID, t.Name, t.Mobile, t.PANNo, t.GPFNo, t.PRANNo, t.Designation).Scan(&t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Teacher{}, ErrDuplicate
		}
		return Teacher{}, err
	}
	return t, nil
}

func (s *Store) ByShalarthID(ctx context.Context, shalarthID string) (Teacher, error) {
	var t Teacher
	err := s.DB.QueryRow(ctx, `
    SELECT id, shalarth_id, name, mobile, pan_no, gpf_no, pran_no, designation, created_at
    FROM teachers WHERE shalarth_id = $1
  `, shalarthID).Scan(&t.ID, &t.ShalarthID, &t.Name, &t.Mobile, &t.PANNo, &t.GPFNo, &t.PRANNo, &t.Designation, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Teacher{}, ErrNotFound
	}
	if err != nil {
		return Teacher{}, err
	}
	return t, nil
}

func (s *Store) List(ctx context.Context) ([]Teacher, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, shalarth_id, name, mobile, pan_no, gpf_no, pran_no, designation, created_at
    FROM teachers ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Teacher
	for rows.Next() {
		var t Teacher
		if err := rows.Scan(&t.ID, &t.ShalarthID, &t.Name, &t.Mobile, &t.PANNo, &t.GPFNo, &t.PRANNo, &t.Designation, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Index returns all teachers keyed by Shalarth ID for report fallbacks.
func (s *Store) Index(ctx context.Context) (map[string]Teacher, error) {
	teachers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]Teacher, len(teachers))
	for _, t := range teachers {
		index[t.ShalarthID] = t
	}
	return index, nil
}

func (s *Store) Delete(ctx context.Context, shalarthID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM teachers WHERE shalarth_id = $1", shalarthID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
