package staffRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *mongoStaffRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	staffModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, staffModels); err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}

	attModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "staffId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("staff_date_idx"),
		},
	}
	if _, err := r.attColl.Indexes().CreateMany(ctx, attModels); err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}
	return nil
}
