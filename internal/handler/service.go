package handler

import (
	"context"

	"github.com/savorhq/restaurant-service/internal/model"
	"github.com/savorhq/restaurant-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservations(ctx context.Context, username string) ([]model.UserReservation, error)
	ListTables(ctx context.Context) ([]model.Table, error)
	GetMenu(ctx context.Context, category string) ([]model.MenuItem, error)
	GetStats(ctx context.Context) (model.Stats, error)
	TimeSlots() []string
}

var _ BookingService = (*service.Service)(nil)
