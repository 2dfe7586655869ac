package unit_test

import "staff-records/internal/domain"

func stringPtr(s string) *string {
	return &s
}

func statusPtr(s domain.EmployeeStatus) *domain.EmployeeStatus {
	return &s
}
