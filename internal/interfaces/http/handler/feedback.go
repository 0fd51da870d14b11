package handler

import (
	"strconv"

	appfeedback "github.com/coffeehouse/backend/internal/application/feedback"
	"github.com/coffeehouse/backend/internal/application/notification"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedbackHandler handles the public feedback and contact endpoints
type FeedbackHandler struct {
	BaseHandler
	feedbackService *appfeedback.FeedbackService
	contactService  *notification.ContactService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(
	feedbackService *appfeedback.FeedbackService,
	contactService *notification.ContactService,
	logger *zap.Logger,
) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     NewBaseHandler(logger),
		feedbackService: feedbackService,
		contactService:  contactService,
	}
}

// Submit handles POST /feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req appfeedback.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.feedbackService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List handles GET /feedback?limit=
func (h *FeedbackHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.feedbackService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Contact handles POST /contact
func (h *FeedbackHandler) Contact(c *gin.Context) {
	var msg notification.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.BadRequest(c, err)
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), msg); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
