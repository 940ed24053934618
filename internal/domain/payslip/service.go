package payslip

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"paybill/internal/domain/fieldmap"
	"paybill/internal/domain/paybill"
	"paybill/internal/domain/teacher"
)

var (
	ErrMissingShalarthID = errors.New("please enter a Shalarth ID")
	ErrNoPayslipData     = errors.New("payslip data is not available")
)

type Service struct {
	teachers *teacher.Store
	paybills *paybill.Store
	// adminContact is shown in not-found messages so teachers know who to
	// ask for a missing paybill.
	adminContact string
}

func NewService(teachers *teacher.Store, paybills *paybill.Store, adminContact string) *Service {
	return &Service{teachers: teachers, paybills: paybills, adminContact: adminContact}
}

// Generate looks up the salary record for (shalarthID, month, year) and
// builds the payslip view. The teacher record is optional; salary rows for
// unregistered teachers still produce a payslip.
func (s *Service) Generate(ctx context.Context, shalarthID, month, year string) (*View, error) {
	shalarthID = strings.TrimSpace(shalarthID)
	if shalarthID == "" {
		return nil, ErrMissingShalarthID
	}

	rec, found, err := s.paybills.FindRecord(ctx, shalarthID, month, year)
	if err != nil {
		return nil, err
	}

	var t *teacher.Teacher
	registered, err := s.teachers.ByShalarthID(ctx, shalarthID)
	switch {
	case err == nil:
		t = &registered
	case errors.Is(err, teacher.ErrNotFound):
		t = nil
	default:
		return nil, err
	}

	if !found {
		nameInfo := ""
		if t != nil {
			nameInfo = fmt.Sprintf(" (%s)", t.Name)
		}
		return nil, fmt.Errorf("%w for %s %s for Shalarth ID %s%s; please ensure paybill data is uploaded or contact Admin at %s",
			ErrNoPayslipData, month, year, shalarthID, nameInfo, s.adminContact)
	}

	return Generate(t, rec, fieldmap.DefaultMappings), nil
}
