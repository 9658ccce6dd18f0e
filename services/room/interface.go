package room

import (
	"context"

	roomRepo "roomify/database/repository/room"
	"roomify/models"
)

// RoomService manages the room directory and the availability flag
// collaborator used by the booking lifecycle's clients.
type RoomService interface {
	CreateRoom(ctx context.Context, room models.Room) (*models.Room, error)
	GetRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, roomNumber string) (*models.Room, error)
	UpdateRoom(ctx context.Context, roomNumber string, room models.Room) (*models.Room, error)
	DeleteRoom(ctx context.Context, roomNumber string) error

	MarkRoomAsBooked(ctx context.Context, roomNumber string) (*models.Room, error)
	MarkRoomAsAvailable(ctx context.Context, roomNumber string) (*models.Room, error)
}

// DefaultRoomService is the production implementation.
type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}
