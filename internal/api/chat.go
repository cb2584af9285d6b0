package api

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"farmer-assist/backend/internal/service"
	"farmer-assist/backend/pkg/errors"
	"farmer-assist/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the chat orchestration service over HTTP
type ChatHandler struct {
	chatService *service.ChatService
	log         *logger.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		log:         log,
	}
}

// chatRequest is the JSON body of POST /chat
type chatRequest struct {
	Message   string `json:"message"`
	Language  string `json:"language"`
	Image     string `json:"image"` // base64-encoded
	ImageName string `json:"image_name"`
	Location  string `json:"location"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

// Chat handles POST /chat and POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewBadRequestError("INVALID_BODY", "Request body must be valid JSON"))
		return
	}

	var image []byte
	if req.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			c.Error(errors.NewBadRequestError("INVALID_IMAGE", "Image must be base64-encoded"))
			return
		}
		image = decoded
	}

	reply, err := h.chatService.HandleChat(c.Request.Context(), service.ChatRequest{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		Message:   req.Message,
		Language:  req.Language,
		Image:     image,
		ImageName: req.ImageName,
		Location:  req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

// History handles GET /api/v1/history/:sessionId with optional
// limit/offset pagination
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.Error(errors.NewBadRequestError("SESSION_ID_REQUIRED", "Session ID is required"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.Error(errors.NewBadRequestError("INVALID_PAGINATION", "limit must be a non-negative integer"))
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.Error(errors.NewBadRequestError("INVALID_PAGINATION", "offset must be a non-negative integer"))
		return
	}

	messages, err := h.chatService.GetHistoryPage(sessionID, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"messages":   messages,
		"count":      len(messages),
	})
}

// Export handles GET /api/v1/history/:sessionId/export and the legacy
// GET /export?session_id= route
func (h *ChatHandler) Export(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		sessionID = c.Query("session_id")
	}
	if sessionID == "" {
		c.Error(errors.NewBadRequestError("SESSION_ID_REQUIRED", "Session ID is required"))
		return
	}

	data, err := h.chatService.ExportHistory(sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="chat-`+sessionID+`.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
