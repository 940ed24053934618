package paybill

import (
	"context"
	"io"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Upload parses a paybill spreadsheet and stores one salary record per data
// row for the given month and year.
func (s *Service) Upload(ctx context.Context, month, year string, file io.Reader) (UploadSummary, error) {
	headers, rows, err := ReadSheet(file)
	if err != nil {
		return UploadSummary{}, err
	}
	records, err := BuildRecords(month, year, headers, rows)
	if err != nil {
		return UploadSummary{}, err
	}
	if err := s.store.InsertBatch(ctx, records); err != nil {
		return UploadSummary{}, err
	}
	return UploadSummary{Month: month, Year: year, RowCount: len(records)}, nil
}

func (s *Service) Uploads(ctx context.Context) ([]UploadSummary, error) {
	return s.store.ListUploads(ctx)
}

func (s *Service) Delete(ctx context.Context, month, year string) (int64, error) {
	return s.store.DeleteByPeriod(ctx, month, year)
}
