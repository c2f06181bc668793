package employee

import (
	"context"
	"errors"

	employeeerrors "go-absensi/internal/employee/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service adalah view read-only atas direktori karyawan. Data master
// karyawan dikelola sistem HR lain.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (*EmployeeResponse, error) {
	row, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(row), nil
}

func (s *Service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]EmployeeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *mapToResponse(&rows[i]))
	}
	return resp, nil
}

// Lookup mengembalikan entity mentah untuk dipakai modul lain
// (payroll butuh UserID dan BaseSalary).
func (s *Service) Lookup(ctx context.Context, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return row, nil
}
