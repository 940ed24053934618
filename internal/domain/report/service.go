package report

import (
	"context"

	"paybill/internal/domain/paybill"
	"paybill/internal/domain/teacher"
)

type Service struct {
	paybills *paybill.Store
	teachers *teacher.Store
}

func NewService(paybills *paybill.Store, teachers *teacher.Store) *Service {
	return &Service{paybills: paybills, teachers: teachers}
}

// Generate loads the month's salary records plus the teacher index and
// computes the requested report.
func (s *Service) Generate(ctx context.Context, reportType Type, month, year string) (*Report, error) {
	records, err := s.paybills.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teachers.Index(ctx)
	if err != nil {
		return nil, err
	}
	return Generate(reportType, month, year, records, teachers)
}
