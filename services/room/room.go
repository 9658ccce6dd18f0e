package room

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"roomify/models"
	"roomify/utils"
)

func (s *DefaultRoomService) CreateRoom(ctx context.Context, room models.Room) (*models.Room, error) {
	if room.RoomNumber == "" {
		return nil, utils.NewValidationError("roomNumber is required")
	}
	if room.Price < 0 {
		return nil, utils.NewValidationError("price must not be negative")
	}
	room.Availability = true

	id, err := s.Repo.Create(ctx, room)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("room " + room.RoomNumber + " already exists")
		}
		return nil, err
	}
	room.ID = id
	return &room, nil
}

func (s *DefaultRoomService) GetRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

func (s *DefaultRoomService) GetRoom(ctx context.Context, roomNumber string) (*models.Room, error) {
	room, err := s.Repo.GetByNumber(ctx, roomNumber)
	if err != nil {
		return nil, s.notFoundOr(err, roomNumber)
	}
	return room, nil
}

func (s *DefaultRoomService) UpdateRoom(ctx context.Context, roomNumber string, room models.Room) (*models.Room, error) {
	updated, err := s.Repo.Update(ctx, roomNumber, room)
	if err != nil {
		return nil, s.notFoundOr(err, roomNumber)
	}
	return updated, nil
}

func (s *DefaultRoomService) DeleteRoom(ctx context.Context, roomNumber string) error {
	if err := s.Repo.Delete(ctx, roomNumber); err != nil {
		return s.notFoundOr(err, roomNumber)
	}
	return nil
}

// MarkRoomAsBooked sets availability=false. Idempotent: repeating the call
// leaves the flag unchanged and still succeeds.
func (s *DefaultRoomService) MarkRoomAsBooked(ctx context.Context, roomNumber string) (*models.Room, error) {
	room, err := s.Repo.SetAvailability(ctx, roomNumber, false)
	if err != nil {
		return nil, s.notFoundOr(err, roomNumber)
	}
	return room, nil
}

// MarkRoomAsAvailable sets availability=true. Idempotent as above.
func (s *DefaultRoomService) MarkRoomAsAvailable(ctx context.Context, roomNumber string) (*models.Room, error) {
	room, err := s.Repo.SetAvailability(ctx, roomNumber, true)
	if err != nil {
		return nil, s.notFoundOr(err, roomNumber)
	}
	return room, nil
}

func (s *DefaultRoomService) notFoundOr(err error, roomNumber string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return utils.NewNotFoundError("room " + roomNumber + " not found")
	}
	return err
}
