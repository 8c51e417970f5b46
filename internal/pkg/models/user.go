package models

import (
	"time"
)

// User represents a platform user. The same record serves both roles:
// a user is a driver once the vehicle fields are filled in.
type User struct {
	ID              int64     `json:"user_id" db:"user_id"`
	Username        string    `json:"username" db:"username"`
	Name            string    `json:"name" db:"name"`
	Phone           string    `json:"phone" db:"phone"`
	VehicleModel    string    `json:"vehicle_model" db:"vehicle_model"`
	VehiclePlate    string    `json:"vehicle_plate" db:"vehicle_plate"`
	VehicleColor    string    `json:"vehicle_color" db:"vehicle_color"`
	RatingDriver    float64   `json:"rating_driver" db:"rating_driver"`
	RatingPassenger float64   `json:"rating_passenger" db:"rating_passenger"`
	IsBanned        bool      `json:"is_banned" db:"is_banned"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	LastActive      time.Time `json:"last_active" db:"last_active"`
}

// FieldUnset is the placeholder for profile fields the user has not filled in yet.
const FieldUnset = "-"

// HasPhone reports whether the user has shared a phone number.
func (u *User) HasPhone() bool {
	return u.Phone != "" && u.Phone != FieldUnset
}

// HasVehicle reports whether the user has a vehicle on file and may act as a driver.
func (u *User) HasVehicle() bool {
	return u.VehicleModel != "" && u.VehicleModel != FieldUnset
}

// UpsertUserRequest carries profile data asserted by the UI layer
type UpsertUserRequest struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateVehicleRequest completes a driver profile
type UpdateVehicleRequest struct {
	Model string `json:"model"`
	Plate string `json:"plate"`
	Color string `json:"color"`
}

// AuthResponse is returned from registration with a fresh bearer token
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"user_id"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}
