package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pidsadka/pidsadka/internal/pkg/middleware"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/utils"
)

// AddReview handles post-trip review submission
func (h *RatingHandler) AddReview(c echo.Context) error {
	var req models.AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	fromUserID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	req.FromUserID = fromUserID

	rating, err := h.ratingUC.AddReview(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review recorded", rating)
}

// GetRating handles rolling average lookups for one user role
func (h *RatingHandler) GetRating(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	role := models.RatingRole(c.QueryParam("role"))
	summary, err := h.ratingUC.GetRating(c.Request().Context(), userID, role)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// ListMyReviews handles the caller's received review list
func (h *RatingHandler) ListMyReviews(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reviews, err := h.ratingUC.ListReceived(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", reviews)
}
