package staffRepo

import (
	"context"

	"roomify/database"
	"roomify/models"
	"roomify/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	Create(ctx context.Context, staff models.Staff) (string, error)
	GetAll(ctx context.Context) ([]models.Staff, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	Update(ctx context.Context, id string, staff models.Staff) (*models.Staff, error)
	Delete(ctx context.Context, id string) error

	MarkAttendance(ctx context.Context, att models.Attendance) (string, error)
	GetAttendanceByStaff(ctx context.Context, staffID string) ([]models.Attendance, error)
	GetAttendanceByDate(ctx context.Context, date string) ([]models.Attendance, error)
}

type mongoStaffRepo struct {
	coll    *mongo.Collection
	attColl *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.DB()
	repo := &mongoStaffRepo{
		coll:    db.Collection("staff"),
		attColl: db.Collection("attendance"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("staff repo: %v", err)
	}
	return repo
}
