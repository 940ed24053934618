package paybill

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// InsertBatch writes all records of one uploaded paybill in a single
// transaction, replacing any previous upload for the same month and year.
func (s *Store) InsertBatch(ctx context.Context, records []SalaryRecord) error {
	if len(records) == 0 {
		return ErrEmptySheet
	}

	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"DELETE FROM salary_records WHERE month = $1 AND year = $2",
		records[0].Month, records[0].Year); err != nil {
		return err
	}

	for _, rec := range records {
		if _, err := tx.Exec(ctx, `
      INSERT INTO salary_records (id, teacher_shalarth_id, month, year, raw_headers, raw_data_row)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, uuid.NewString(), rec.TeacherShalarthID, rec.Month, rec.Year, rec.RawHeaders, rec.RawDataRow); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) ListByPeriod(ctx context.Context, month, year string) ([]SalaryRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, teacher_shalarth_id, month, year, raw_headers, raw_data_row, uploaded_at
    FROM salary_records
    WHERE month = $1 AND year = $2
    ORDER BY uploaded_at, id
  `, month, year)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func (s *Store) ListByTeacher(ctx context.Context, shalarthID string) ([]SalaryRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, teacher_shalarth_id, month, year, raw_headers, raw_data_row, uploaded_at
    FROM salary_records
    WHERE teacher_shalarth_id = $1
    ORDER BY year, month
  `, shalarthID)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func (s *Store) FindRecord(ctx context.Context, shalarthID, month, year string) (SalaryRecord, bool, error) {
	records, err := s.ListByPeriod(ctx, month, year)
	if err != nil {
		return SalaryRecord{}, false, err
	}
	for _, rec := range records {
		if rec.TeacherShalarthID == shalarthID {
			return rec, true, nil
		}
	}
	return SalaryRecord{}, false, nil
}

func (s *Store) ListUploads(ctx context.Context) ([]UploadSummary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT month, year, COUNT(1)
    FROM salary_records
    GROUP BY month, year
    ORDER BY year DESC, month
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UploadSummary
	for rows.Next() {
		var u UploadSummary
		if err := rows.Scan(&u.Month, &u.Year, &u.RowCount); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) DeleteByPeriod(ctx context.Context, month, year string) (int64, error) {
	tag, err := s.DB.Exec(ctx,
		"DELETE FROM salary_records WHERE month = $1 AND year = $2", month, year)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanRecords(rows pgx.Rows) ([]SalaryRecord, error) {
	defer rows.Close()

	var out []SalaryRecord
	for rows.Next() {
		var rec SalaryRecord
		if err := rows.Scan(&rec.ID, &rec.TeacherShalarthID, &rec.Month, &rec.Year, &rec.RawHeaders, &rec.RawDataRow, &rec.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
