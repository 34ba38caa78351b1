package api

import (
	"errors"
	"net/http"

	reqdto "sejour/internal/handler/dto/request"
	resdto "sejour/internal/handler/dto/response"
	"sejour/internal/handler/middleware"
	"sejour/internal/usecase/commands"
	"sejour/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(
	reviewCommands commands.ReviewCommands,
	reviewQueries queries.ReviewQueries,
) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Submit review
// @Description Rate an agency; at most one review per agency per day
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitReviewRequest true "Review request"
// @Success 201 {object} resdto.SubmitReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd := commands.SubmitReviewCommand{
		AgencyID: req.AgencyID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	result, err := h.reviewCommands.SubmitReview(c.Request.Context(), cmd, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAgencyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Agency not found",
			})
		case errors.Is(err, commands.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Review already submitted for this agency today",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, &resdto.SubmitReviewResponse{ReviewID: result.ReviewID})
}

// @Summary List agency reviews
// @Description List an agency's reviews with its aggregate rating
// @Tags reviews
// @Produce json
// @Param id path int true "Agency ID"
// @Success 200 {object} resdto.AgencyReviewsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agencies/{id}/reviews [get]
func (h *ReviewHandler) GetAgencyReviews(c *gin.Context) {
	agencyID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid agency ID format",
		})
		return
	}

	view, err := h.reviewQueries.ListByAgency(c.Request.Context(), agencyID, parseLimit(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAgencyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Agency not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAgencyReviewsView(view))
}
