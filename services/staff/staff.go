package staff

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"roomify/models"
	"roomify/utils"
)

func (s *DefaultStaffService) CreateStaff(ctx context.Context, req CreateStaffRequest) (*models.Staff, error) {
	if !contains(models.JobTitles, req.JobTitle) {
		return nil, utils.NewValidationError("unknown job title: " + req.JobTitle)
	}
	if !contains(models.Departments, req.Department) {
		return nil, utils.NewValidationError("unknown department: " + req.Department)
	}
	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	if role != models.RoleAdmin && role != models.RoleStaff {
		return nil, utils.NewValidationError("role must be admin or staff")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	record := models.Staff{
		Name:         req.Name,
		NIC:          req.NIC,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Gender:       req.Gender,
		JobTitle:     req.JobTitle,
		Department:   req.Department,
		Shifts:       req.Shifts,
		Status:       models.StaffStatusActive,
		BaseSalary:   req.BaseSalary,
		Role:         role,
		PasswordHash: string(hash),
	}

	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("staff member with email " + req.Email + " already exists")
		}
		return nil, err
	}
	record.ID = id
	return &record, nil
}

func (s *DefaultStaffService) GetAllStaff(ctx context.Context) ([]models.Staff, error) {
	staff, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	return staff, nil
}

func (s *DefaultStaffService) GetStaffByID(ctx context.Context, id string) (*models.Staff, error) {
	record, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("staff member " + id + " not found")
		}
		return nil, err
	}
	return record, nil
}

func (s *DefaultStaffService) UpdateStaff(ctx context.Context, id string, staff models.Staff) (*models.Staff, error) {
	if staff.JobTitle != "" && !contains(models.JobTitles, staff.JobTitle) {
		return nil, utils.NewValidationError("unknown job title: " + staff.JobTitle)
	}
	if staff.Department != "" && !contains(models.Departments, staff.Department) {
		return nil, utils.NewValidationError("unknown department: " + staff.Department)
	}
	if staff.Status != "" && staff.Status != models.StaffStatusActive && staff.Status != models.StaffStatusInactive {
		return nil, utils.NewValidationError("status must be Active or Inactive")
	}

	updated, err := s.Repo.Update(ctx, id, staff)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("staff member " + id + " not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *DefaultStaffService) DeleteStaff(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("staff member " + id + " not found")
		}
		return err
	}
	return nil
}

func (s *DefaultStaffService) MarkAttendance(ctx context.Context, att models.Attendance) (*models.Attendance, error) {
	if att.StaffID == "" {
		return nil, utils.NewValidationError("staffId is required")
	}
	if _, err := time.Parse("2006-01-02", att.Date); err != nil {
		return nil, utils.NewValidationError("date must be in YYYY-MM-DD format")
	}
	// Reject attendance for unknown staff up front.
	if _, err := s.GetStaffByID(ctx, att.StaffID); err != nil {
		return nil, err
	}

	id, err := s.Repo.MarkAttendance(ctx, att)
	if err != nil {
		return nil, err
	}
	att.ID = id
	return &att, nil
}

func (s *DefaultStaffService) GetAttendanceByStaff(ctx context.Context, staffID string) ([]models.Attendance, error) {
	records, err := s.Repo.GetAttendanceByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Attendance{}
	}
	return records, nil
}

func (s *DefaultStaffService) GetAttendanceByDate(ctx context.Context, date string) ([]models.Attendance, error) {
	records, err := s.Repo.GetAttendanceByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Attendance{}
	}
	return records, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
