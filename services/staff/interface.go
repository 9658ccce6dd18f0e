package staff

import (
	"context"

	staffRepo "roomify/database/repository/staff"
	"roomify/models"

	"github.com/go-redis/redis/v8"
)

// StaffService manages employee records, attendance and staff authentication.
type StaffService interface {
	CreateStaff(ctx context.Context, req CreateStaffRequest) (*models.Staff, error)
	GetAllStaff(ctx context.Context) ([]models.Staff, error)
	GetStaffByID(ctx context.Context, id string) (*models.Staff, error)
	UpdateStaff(ctx context.Context, id string, staff models.Staff) (*models.Staff, error)
	DeleteStaff(ctx context.Context, id string) error

	MarkAttendance(ctx context.Context, att models.Attendance) (*models.Attendance, error)
	GetAttendanceByStaff(ctx context.Context, staffID string) ([]models.Attendance, error)
	GetAttendanceByDate(ctx context.Context, date string) ([]models.Attendance, error)

	Authenticate(ctx context.Context, email, password string) (string, *models.Staff, error)
	RevokeToken(ctx context.Context, token string) error
}

// CreateStaffRequest is the admin-facing input for adding an employee.
type CreateStaffRequest struct {
	Name       string        `json:"name" binding:"required"`
	NIC        string        `json:"nic"`
	Email      string        `json:"email" binding:"required"`
	Phone      string        `json:"phone"`
	Address    string        `json:"address"`
	Gender     string        `json:"gender"`
	JobTitle   string        `json:"jobTitle" binding:"required"`
	Department string        `json:"department" binding:"required"`
	Shifts     models.Shifts `json:"shifts"`
	BaseSalary float64       `json:"baseSalary"`
	Role       string        `json:"role"`
	Password   string        `json:"password" binding:"required"`
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo      staffRepo.StaffRepository
	AuthCache *redis.Client
}
