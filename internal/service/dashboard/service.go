package dashboard

import (
	"context"
	"math"

	"staff-records/internal/domain"
	"staff-records/internal/repository"
)

const topDepartments = 5
const recentEmployees = 5

// Stats is computed from current store state on every call. There is no
// caching layer in front of it.
type Stats struct {
	TotalEmployees   int64                        `json:"total_employees"`
	ActiveEmployees  int64                        `json:"active_employees"`
	TotalDepartments int64                        `json:"total_departments"`
	AvgSalary        float64                      `json:"avg_salary"`
	DepartmentStats  []domain.DepartmentWithCount `json:"department_stats"`
	RecentEmployees  []domain.Employee            `json:"recent_employees"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
}

func NewService(employeeRepo repository.EmployeeRepository, departmentRepo repository.DepartmentRepository) Service {
	return &service{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	activeEmployees, err := s.employeeRepo.CountByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}

	totalDepartments, err := s.departmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	// AVG over zero rows is coalesced to 0 by the repository.
	avgSalary, err := s.employeeRepo.AverageSalary(ctx)
	if err != nil {
		return nil, err
	}

	deptStats, err := s.departmentRepo.TopByEmployeeCount(ctx, topDepartments)
	if err != nil {
		return nil, err
	}

	recent, err := s.employeeRepo.RecentByStatus(ctx, domain.StatusActive, recentEmployees)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalEmployees:   totalEmployees,
		ActiveEmployees:  activeEmployees,
		TotalDepartments: totalDepartments,
		AvgSalary:        math.Round(avgSalary*100) / 100,
		DepartmentStats:  deptStats,
		RecentEmployees:  recent,
	}, nil
}
