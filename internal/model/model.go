package model

import (
	"time"
)

type TableStatus string

const (
	TableAvailable    TableStatus = "available"
	TableOccupied     TableStatus = "occupied"
	TableReserved     TableStatus = "reserved"
	TableOutOfService TableStatus = "out_of_service"
)

type Table struct {
	ID          int         `json:"id" db:"id"`
	TableNumber int         `json:"tableNumber" db:"table_number"`
	Capacity    int         `json:"capacity" db:"capacity"`
	Status      TableStatus `json:"status" db:"status"`
}

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation is created in pending status; later transitions are driven by
// staff workflows, not this service.
type Reservation struct {
	ID              int               `json:"-" db:"id"`
	ReservationUid  string            `json:"reservationUid" db:"reservation_uid"`
	Username        string            `json:"username" db:"username"`
	TableID         int               `json:"tableId" db:"table_id"`
	GuestName       string            `json:"guestName" db:"guest_name"`
	GuestEmail      string            `json:"guestEmail" db:"guest_email"`
	GuestPhone      string            `json:"guestPhone" db:"guest_phone"`
	Date            time.Time         `json:"reservationDate" db:"reservation_date"`
	TimeSlot        string            `json:"reservationTime" db:"reservation_time"`
	PartySize       int               `json:"partySize" db:"party_size"`
	SpecialRequests string            `json:"specialRequests,omitempty" db:"special_requests"`
	Status          ReservationStatus `json:"status" db:"status"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
}

// UserReservation is a reservation row joined with its table's display number.
type UserReservation struct {
	Reservation
	TableNumber int `json:"tableNumber" db:"table_number"`
}

// CreateReservationRequest is the raw caller input, prior to validation.
type CreateReservationRequest struct {
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	PartySize       int    `json:"partySize"`
	SpecialRequests string `json:"specialRequests"`
	Username        string `json:"-"`
}

// ValidatedRequest is produced only by the request validator; downstream code
// does not re-check its fields.
type ValidatedRequest struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Date            time.Time
	TimeSlot        string
	PartySize       int
	SpecialRequests string
	Username        string
}

type MenuItem struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Category    string  `json:"category" db:"category"`
	ImageURL    string  `json:"imageUrl,omitempty" db:"image_url"`
	IsAvailable bool    `json:"isAvailable" db:"is_available"`
}

type Stats struct {
	TotalReservations int `json:"totalReservations" db:"total_reservations"`
	TotalTables       int `json:"totalTables" db:"total_tables"`
	TotalMenuItems    int `json:"totalMenuItems" db:"total_menu_items"`
}
