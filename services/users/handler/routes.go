package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the user directory routes. The public group has
// no auth, the protected group carries JWT auth, the admin group carries
// the API key guard.
func (h *UserHandler) RegisterRoutes(public *echo.Group, protected *echo.Group, admin *echo.Group) {
	public.POST("/auth/register", h.Register)

	protected.POST("/users", h.UpsertUser)
	protected.PUT("/users/me/vehicle", h.UpdateVehicle)
	protected.GET("/users/:id", h.GetUser)

	admin.POST("/users/:id/ban", h.BanUser)
}
