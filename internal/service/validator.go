package service

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/savorhq/restaurant-service/config"
	"github.com/savorhq/restaurant-service/internal/errs"
	"github.com/savorhq/restaurant-service/internal/model"

	"github.com/go-playground/validator/v10"
)

// RequestValidator normalizes and checks a raw booking request before any
// allocation attempt. Checks run in a fixed order and the first failing field
// wins. It performs no I/O: the same input and clock always yield the same
// verdict.
type RequestValidator struct {
	validate *validator.Validate
	slots    []string
	slotSet  map[string]struct{}
	minParty int
	maxParty int
}

func NewRequestValidator(cfg config.Booking) *RequestValidator {
	slots := cfg.TimeSlots()
	slotSet := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		slotSet[s] = struct{}{}
	}
	return &RequestValidator{
		validate: validator.New(),
		slots:    slots,
		slotSet:  slotSet,
		minParty: cfg.MinPartySize,
		maxParty: cfg.MaxPartySize,
	}
}

// TimeSlots returns the published bookable slot set.
func (rv *RequestValidator) TimeSlots() []string {
	out := make([]string, len(rv.slots))
	copy(out, rv.slots)
	return out
}

func (rv *RequestValidator) Validate(req model.CreateReservationRequest, now time.Time) (model.ValidatedRequest, error) {
	if utf8.RuneCountInString(req.GuestName) < 2 {
		return model.ValidatedRequest{}, &errs.ValidationError{Field: "guestName", Message: "name must be at least 2 characters"}
	}
	if err := rv.validate.Var(req.GuestEmail, "required,email"); err != nil {
		return model.ValidatedRequest{}, &errs.ValidationError{Field: "guestEmail", Message: "invalid email address"}
	}
	if countDigits(req.GuestPhone) < 10 {
		return model.ValidatedRequest{}, &errs.ValidationError{Field: "guestPhone", Message: "phone number must be at least 10 digits"}
	}
	if req.Date == "" {
		return model.ValidatedRequest{}, &errs.ValidationError{Field: "date", Message: "please select a date"}
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return model.ValidatedRequest{}, &errs.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}
	}
	// Calendar-date comparison: booking for later today is allowed.
	today, _ := time.Parse(time.DateOnly, now.Format(time.DateOnly))
	if date.Before(today) {
		return model.ValidatedRequest{}, &errs.ValidationError{Field: "date", Message: "date must not be in the past"}
	}
	if req.Time == "" {
		return model.ValidatedRequest{}, &errs.ValidationError{Field: "time", Message: "please select a time"}
	}
	if _, ok := rv.slotSet[req.Time]; !ok {
		return model.ValidatedRequest{}, &errs.ValidationError{Field: "time", Message: "time is not a bookable slot"}
	}
	if req.PartySize < rv.minParty || req.PartySize > rv.maxParty {
		return model.ValidatedRequest{}, &errs.ValidationError{
			Field:   "partySize",
			Message: fmt.Sprintf("party size must be between %d and %d", rv.minParty, rv.maxParty),
		}
	}

	return model.ValidatedRequest{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		Date:            date,
		TimeSlot:        req.Time,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
		Username:        req.Username,
	}, nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
