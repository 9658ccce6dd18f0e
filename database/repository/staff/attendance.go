package staffRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomify/models"
)

// MarkAttendance upserts the attendance record for a staff member on a day,
// so re-marking the same day overwrites rather than duplicates.
func (r *mongoStaffRepo) MarkAttendance(ctx context.Context, att models.Attendance) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if att.ID == "" {
		att.ID = uuid.New().String()
	}
	att.RecordedAt = time.Now()

	filter := bson.M{"staffId": att.StaffID, "date": att.Date}
	update := bson.M{"$set": bson.M{
		"staffId":      att.StaffID,
		"date":         att.Date,
		"present":      att.Present,
		"checkInTime":  att.CheckInTime,
		"checkOutTime": att.CheckOutTime,
		"recordedAt":   att.RecordedAt,
	}, "$setOnInsert": bson.M{"id": att.ID}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.attColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return "", err
	}
	return att.ID, nil
}

func (r *mongoStaffRepo) GetAttendanceByStaff(ctx context.Context, staffID string) ([]models.Attendance, error) {
	return r.findAttendance(ctx, bson.M{"staffId": staffID})
}

func (r *mongoStaffRepo) GetAttendanceByDate(ctx context.Context, date string) ([]models.Attendance, error) {
	return r.findAttendance(ctx, bson.M{"date": date})
}

func (r *mongoStaffRepo) findAttendance(ctx context.Context, filter bson.M) ([]models.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.attColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
