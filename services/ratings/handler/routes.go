package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the rating aggregator routes
func (h *RatingHandler) RegisterRoutes(protected *echo.Group) {
	protected.POST("/ratings", h.AddReview)
	protected.GET("/ratings/mine", h.ListMyReviews)
	protected.GET("/users/:id/rating", h.GetRating)
}
