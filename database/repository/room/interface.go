package roomRepo

import (
	"context"

	"roomify/database"
	"roomify/models"
	"roomify/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type RoomRepository interface {
	Create(ctx context.Context, room models.Room) (string, error)
	GetAll(ctx context.Context) ([]models.Room, error)
	GetByNumber(ctx context.Context, roomNumber string) (*models.Room, error)
	Update(ctx context.Context, roomNumber string, room models.Room) (*models.Room, error)
	Delete(ctx context.Context, roomNumber string) error
	SetAvailability(ctx context.Context, roomNumber string, available bool) (*models.Room, error)
	CountAll(ctx context.Context) (int64, error)
	CountOccupied(ctx context.Context) (int64, error)
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	repo := &mongoRoomRepo{
		coll: database.DB().Collection("rooms"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("room repo: %v", err)
	}
	return repo
}
