package statement

import (
	"context"
	"strings"

	"paybill/internal/domain/paybill"
	"paybill/internal/domain/teacher"
)

type Service struct {
	teachers     *teacher.Store
	paybills     *paybill.Store
	adminContact string
}

func NewService(teachers *teacher.Store, paybills *paybill.Store, adminContact string) *Service {
	return &Service{teachers: teachers, paybills: paybills, adminContact: adminContact}
}

// Generate builds the yearly statement for a registered teacher. Unlike
// payslips, statements need a teacher profile; unknown Shalarth IDs fail
// with teacher.ErrNotFound.
func (s *Service) Generate(ctx context.Context, shalarthID, financialYear string) (*Statement, error) {
	shalarthID = strings.TrimSpace(shalarthID)
	t, err := s.teachers.ByShalarthID(ctx, shalarthID)
	if err != nil {
		return nil, err
	}
	records, err := s.paybills.ListByTeacher(ctx, shalarthID)
	if err != nil {
		return nil, err
	}
	return Generate(t, financialYear, records, s.adminContact)
}
