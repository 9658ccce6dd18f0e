package staff

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"roomify/models"
	"roomify/utils"
)

type fakeStaffRepo struct {
	staff      map[string]models.Staff
	attendance []models.Attendance
	nextID     int
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[string]models.Staff)}
}

func (f *fakeStaffRepo) Create(ctx context.Context, staff models.Staff) (string, error) {
	for _, s := range f.staff {
		if s.Email == staff.Email {
			return "", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	f.nextID++
	staff.ID = fmt.Sprintf("s-%d", f.nextID)
	f.staff[staff.ID] = staff
	return staff.ID, nil
}

func (f *fakeStaffRepo) GetAll(ctx context.Context) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range f.staff {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (f *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	for _, s := range f.staff {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStaffRepo) Update(ctx context.Context, id string, staff models.Staff) (*models.Staff, error) {
	existing, ok := f.staff[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if staff.Status != "" {
		existing.Status = staff.Status
	}
	f.staff[id] = existing
	return &existing, nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.staff[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.staff, id)
	return nil
}

func (f *fakeStaffRepo) MarkAttendance(ctx context.Context, att models.Attendance) (string, error) {
	f.attendance = append(f.attendance, att)
	return "a-1", nil
}

func (f *fakeStaffRepo) GetAttendanceByStaff(ctx context.Context, staffID string) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, a := range f.attendance {
		if a.StaffID == staffID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) GetAttendanceByDate(ctx context.Context, date string) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, a := range f.attendance {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func validStaffRequest() CreateStaffRequest {
	return CreateStaffRequest{
		Name:       "Kamala Silva",
		Email:      "kamala@roomify.lk",
		JobTitle:   "Receptionist",
		Department: "Front Office",
		Password:   "s3cret-pass",
	}
}

func TestCreateStaffHashesPasswordAndDefaultsRole(t *testing.T) {
	svc := &DefaultStaffService{Repo: newFakeStaffRepo()}

	created, err := svc.CreateStaff(context.Background(), validStaffRequest())
	require.NoError(t, err)

	assert.Equal(t, models.RoleStaff, created.Role)
	assert.Equal(t, models.StaffStatusActive, created.Status)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")))
}

func TestCreateStaffRejectsUnknownEnums(t *testing.T) {
	svc := &DefaultStaffService{Repo: newFakeStaffRepo()}

	req := validStaffRequest()
	req.JobTitle = "Astronaut"
	_, err := svc.CreateStaff(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))

	req = validStaffRequest()
	req.Department = "Space Operations"
	_, err = svc.CreateStaff(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))

	req = validStaffRequest()
	req.Role = "superuser"
	_, err = svc.CreateStaff(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))
}

func TestCreateStaffDuplicateEmailIsConflict(t *testing.T) {
	svc := &DefaultStaffService{Repo: newFakeStaffRepo()}

	_, err := svc.CreateStaff(context.Background(), validStaffRequest())
	require.NoError(t, err)

	_, err = svc.CreateStaff(context.Background(), validStaffRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, utils.HTTPStatus(err))
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := &DefaultStaffService{Repo: repo}

	req := validStaffRequest()
	req.Role = models.RoleAdmin
	created, err := svc.CreateStaff(context.Background(), req)
	require.NoError(t, err)

	token, record, err := svc.Authenticate(context.Background(), req.Email, req.Password)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, record.ID)

	subject, role, err := utils.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, subject)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestAuthenticateBadCredentials(t *testing.T) {
	svc := &DefaultStaffService{Repo: newFakeStaffRepo()}

	_, err := svc.CreateStaff(context.Background(), validStaffRequest())
	require.NoError(t, err)

	_, _, err = svc.Authenticate(context.Background(), "kamala@roomify.lk", "wrong-pass")
	require.Error(t, err)

	_, _, err = svc.Authenticate(context.Background(), "unknown@roomify.lk", "s3cret-pass")
	require.Error(t, err)
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	svc := &DefaultStaffService{Repo: newFakeStaffRepo()}

	created, err := svc.CreateStaff(context.Background(), validStaffRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStaff(context.Background(), created.ID, models.Staff{Status: models.StaffStatusInactive})
	require.NoError(t, err)

	_, _, err = svc.Authenticate(context.Background(), "kamala@roomify.lk", "s3cret-pass")
	require.Error(t, err)
}

func TestMarkAttendanceValidation(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := &DefaultStaffService{Repo: repo}

	created, err := svc.CreateStaff(context.Background(), validStaffRequest())
	require.NoError(t, err)

	_, err = svc.MarkAttendance(context.Background(), models.Attendance{StaffID: created.ID, Date: "31-08-2026"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))

	_, err = svc.MarkAttendance(context.Background(), models.Attendance{StaffID: "ghost", Date: "2026-08-31"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))

	att, err := svc.MarkAttendance(context.Background(), models.Attendance{StaffID: created.ID, Date: "2026-08-31", Present: true})
	require.NoError(t, err)
	assert.NotEmpty(t, att.ID)
	require.Len(t, repo.attendance, 1)
}
