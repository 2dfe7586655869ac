package service

import (
	"github.com/minio/minio-go/v7"

	"staff-records/internal/config"
	"staff-records/internal/repository"
	"staff-records/internal/service/auth"
	"staff-records/internal/service/dashboard"
	"staff-records/internal/service/department"
	"staff-records/internal/service/email"
	"staff-records/internal/service/employee"
	"staff-records/internal/service/export"
	"staff-records/internal/service/messaging"
	"staff-records/internal/service/whatsapp"
	"staff-records/internal/validation"
)

type Services struct {
	Auth       auth.Service
	Employee   employee.Service
	Department department.Service
	Dashboard  dashboard.Service
	Messaging  messaging.Service
	Email      email.Service
	WhatsApp   whatsapp.Service
	Export     export.Service
}

func NewServices(repos *repository.Repositories, minioClient *minio.Client, cfg *config.Config) (*Services, error) {
	validator := validation.New()

	emailService := email.NewService(cfg)
	whatsappService, err := whatsapp.NewService(cfg)
	if err != nil {
		return nil, err
	}

	authService := auth.NewService(repos.User, validator, cfg)
	employeeService := employee.NewService(repos.Employee, repos.Department, validator)
	departmentService := department.NewService(repos.Department, validator)
	dashboardService := dashboard.NewService(repos.Employee, repos.Department)
	messagingService := messaging.NewService(repos.Message, repos.Employee, emailService, whatsappService, validator)
	exportService := export.NewService(repos.Employee, repos.Department, minioClient, cfg)

	return &Services{
		Auth:       authService,
		Employee:   employeeService,
		Department: departmentService,
		Dashboard:  dashboardService,
		Messaging:  messagingService,
		Email:      emailService,
		WhatsApp:   whatsappService,
		Export:     exportService,
	}, nil
}
