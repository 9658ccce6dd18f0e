package billRepo

import (
	"context"

	"roomify/database"
	"roomify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BillRepository interface {
	Create(ctx context.Context, bill models.Bill) (string, error)
	GetByID(ctx context.Context, id string) (*models.Bill, error)
	GetAll(ctx context.Context) ([]models.Bill, error)
	SetStatus(ctx context.Context, id string, status string) (*models.Bill, error)
	SumPaidAmount(ctx context.Context) (float64, error)
}

type mongoBillRepo struct {
	coll *mongo.Collection
}

// NewMongoBillRepo constructs a new MongoDB BillRepository.
func NewMongoBillRepo() BillRepository {
	return &mongoBillRepo{
		coll: database.DB().Collection("bills"),
	}
}
