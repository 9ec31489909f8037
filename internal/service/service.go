package service

import (
	"context"
	"time"

	"github.com/savorhq/restaurant-service/internal/model"
	"github.com/savorhq/restaurant-service/internal/repository"
	"github.com/savorhq/restaurant-service/pkg/kafka"

	"go.uber.org/zap"
)

// EventPublisher forwards domain events to the downstream pipeline. A nil
// publisher disables eventing.
type EventPublisher interface {
	Publish(topic string, v any) error
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	validator *RequestValidator
	publisher EventPublisher
}

func NewService(repo repository.Repository, validator *RequestValidator, publisher EventPublisher, log *zap.Logger) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		validator: validator,
		publisher: publisher,
	}
}

// CreateReservation validates the raw request, then allocates and commits a
// table for it. Validation failures never reach the store.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	valid, err := s.validator.Validate(req, time.Now())
	if err != nil {
		return model.Reservation{}, err
	}
	res, err := s.allocate(ctx, valid)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publishCreated(res)
	return res, nil
}

func (s *Service) GetReservations(ctx context.Context, username string) ([]model.UserReservation, error) {
	return s.repo.GetUserReservations(ctx, username)
}

func (s *Service) ListTables(ctx context.Context) ([]model.Table, error) {
	return s.repo.ListTables(ctx)
}

func (s *Service) GetMenu(ctx context.Context, category string) ([]model.MenuItem, error) {
	return s.repo.ListMenu(ctx, category)
}

func (s *Service) GetStats(ctx context.Context) (model.Stats, error) {
	return s.repo.GetStats(ctx)
}

func (s *Service) TimeSlots() []string {
	return s.validator.TimeSlots()
}

type reservationCreated struct {
	ReservationUid string `json:"reservationUid"`
	Username       string `json:"username"`
	TableID        int    `json:"tableId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"partySize"`
}

// publishCreated is fire-and-forget: a broker failure never affects the
// booking outcome.
func (s *Service) publishCreated(res model.Reservation) {
	if s.publisher == nil {
		return
	}
	event := reservationCreated{
		ReservationUid: res.ReservationUid,
		Username:       res.Username,
		TableID:        res.TableID,
		Date:           res.Date.Format(time.DateOnly),
		Time:           res.TimeSlot,
		PartySize:      res.PartySize,
	}
	if err := s.publisher.Publish(kafka.ReservationsTopic, event); err != nil {
		s.log.Warn("publish reservation.created", zap.Error(err))
	}
}
