package service

import (
	"context"
	"sort"
	"time"

	"github.com/savorhq/restaurant-service/internal/errs"
	"github.com/savorhq/restaurant-service/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// allocateAttempts bounds how many snapshot/insert rounds a single request
// gets before the race is surfaced as a conflict.
const allocateAttempts = 2

// allocate selects a qualifying table for the validated request and commits a
// pending reservation on it. The insert is guarded by the store's uniqueness
// constraint on (table, date, time slot); losing that race triggers one fresh
// selection before giving up.
func (s *Service) allocate(ctx context.Context, req model.ValidatedRequest) (model.Reservation, error) {
	for attempt := 0; attempt < allocateAttempts; attempt++ {
		table, err := s.selectTable(ctx, req)
		if err != nil {
			// An empty selection after a lost race is the race's doing, not
			// a shortage the caller could have foreseen.
			if attempt > 0 && errors.Is(err, errs.ErrNoTableAvailable) {
				return model.Reservation{}, errs.ErrConflict
			}
			return model.Reservation{}, err
		}

		res, err := s.repo.CreateReservation(ctx, model.Reservation{
			Username:        req.Username,
			TableID:         table.ID,
			GuestName:       req.GuestName,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			Date:            req.Date,
			TimeSlot:        req.TimeSlot,
			PartySize:       req.PartySize,
			SpecialRequests: req.SpecialRequests,
			Status:          model.StatusPending,
		})
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, errs.ErrTableTaken) {
			return model.Reservation{}, err
		}
		s.log.Debug("allocation lost race, retrying selection",
			zap.Int("tableId", table.ID),
			zap.String("date", req.Date.Format(time.DateOnly)),
			zap.String("time", req.TimeSlot),
			zap.Int("attempt", attempt+1),
		)
	}
	return model.Reservation{}, errs.ErrConflict
}

// selectTable loads a snapshot of the inventory and the slot's blocking
// reservations, then picks best-fit: the smallest capacity that seats the
// party, lowest table number on ties.
func (s *Service) selectTable(ctx context.Context, req model.ValidatedRequest) (model.Table, error) {
	tables, err := s.repo.ListTables(ctx)
	if err != nil {
		return model.Table{}, err
	}
	booked, err := s.repo.ListReservations(ctx, req.Date, req.TimeSlot)
	if err != nil {
		return model.Table{}, err
	}

	taken := make(map[int]struct{}, len(booked))
	for _, b := range booked {
		taken[b.TableID] = struct{}{}
	}

	var candidates []model.Table
	for _, t := range tables {
		if t.Status != model.TableAvailable || t.Capacity < req.PartySize {
			continue
		}
		if _, ok := taken[t.ID]; ok {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return model.Table{}, errs.ErrNoTableAvailable
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Capacity != candidates[j].Capacity {
			return candidates[i].Capacity < candidates[j].Capacity
		}
		return candidates[i].TableNumber < candidates[j].TableNumber
	})
	return candidates[0], nil
}
