// internal/api/handlers/feedback_handler.go
package handlers

import (
	"net/http"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type FeedbackHandler struct {
	feedback repository.FeedbackRepository
}

func NewFeedbackHandler(feedback repository.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) List(c *gin.Context) {
	rows, err := h.feedback.List(
		c.Request.Context(),
		middleware.BusinessID(c),
		parsePositiveIntWithDefault(c.Query("limit"), 50),
		parseNonNegativeInt(c.Query("offset")),
	)
	if err != nil {
		log.Error().Err(err).Msg("list feedback failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type feedbackRequest struct {
	CustomerID    string  `json:"customer_id" binding:"required"`
	AppointmentID *string `json:"appointment_id"`
	Rating        int     `json:"rating" binding:"required,min=1,max=5"`
	Comment       *string `json:"comment"`
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f := &domain.Feedback{
		BusinessID:    middleware.BusinessID(c),
		CustomerID:    req.CustomerID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := h.feedback.Create(c.Request.Context(), f); err != nil {
		log.Error().Err(err).Msg("create feedback failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create feedback"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.feedback.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondRepoError(c, err, "failed to delete feedback")
		return
	}
	c.Status(http.StatusNoContent)
}
