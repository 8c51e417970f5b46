package handler

import (
	"github.com/pidsadka/pidsadka/services/users"
)

// UserHandler handles HTTP requests for the user directory
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}
