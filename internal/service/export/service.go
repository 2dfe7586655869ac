package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"staff-records/internal/config"
	"staff-records/internal/domain"
	"staff-records/internal/repository"
)

var ErrStorageNotConfigured = errors.New("export storage is not configured")

const sheetName = "Employees"

var headers = []string{
	"Employee ID", "First Name", "Last Name", "Email", "Phone",
	"Date of Birth", "Gender", "Department", "Position", "Salary",
	"Hire Date", "Status",
}

// Service builds a spreadsheet roster of all employees and uploads it
// to object storage. It only reads from the store.
type Service interface {
	ExportEmployees(ctx context.Context) (string, error)
}

type service struct {
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	minioClient    *minio.Client
	cfg            *config.Config
}

func NewService(employeeRepo repository.EmployeeRepository, departmentRepo repository.DepartmentRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		minioClient:    minioClient,
		cfg:            cfg,
	}
}

func (s *service) ExportEmployees(ctx context.Context) (string, error) {
	if s.minioClient == nil {
		return "", ErrStorageNotConfigured
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}

	departments, err := s.departmentRepo.ListWithCounts(ctx)
	if err != nil {
		return "", err
	}
	deptNames := make(map[uuid.UUID]string, len(departments))
	for _, d := range departments {
		deptNames[d.ID] = d.Name
	}

	buf, err := buildWorkbook(employees, deptNames)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("exports/%s/roster-%s.xlsx", time.Now().Format("2006/01"), uuid.New().String())
	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectName, buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload roster: %w", err)
	}

	return objectName, nil
}

func buildWorkbook(employees []domain.Employee, deptNames map[uuid.UUID]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row, e := range employees {
		phone := ""
		if e.PhoneNumber != nil {
			phone = *e.PhoneNumber
		}
		values := []interface{}{
			e.EmployeeID, e.FirstName, e.LastName, e.Email, phone,
			e.DateOfBirth.Format("2006-01-02"), string(e.Gender),
			deptNames[e.DepartmentID], e.Position, e.Salary,
			e.HireDate.Format("2006-01-02"), string(e.Status),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}
