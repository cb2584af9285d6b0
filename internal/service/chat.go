package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farmer-assist/backend/internal/adapter"
	"farmer-assist/backend/internal/models"
	"farmer-assist/backend/internal/repository"
	"farmer-assist/backend/pkg/errors"
	"farmer-assist/backend/pkg/logger"
	"farmer-assist/backend/pkg/token"
)

// historyWindow limits how many prior turns are sent to the language model
const historyWindow = 10

// ChatRequest carries one inbound chat turn
type ChatRequest struct {
	SessionID string
	UserID    string
	Message   string
	Language  string
	Image     []byte
	ImageName string
	Location  string
}

// ChatReply is the assistant's answer to a chat turn
type ChatReply struct {
	Reply        string    `json:"reply"`
	Language     string    `json:"language"`
	Intent       string    `json:"intent"`
	SessionID    string    `json:"session_id"`
	SessionToken string    `json:"session_token,omitempty"`
	Degraded     bool      `json:"-"`
	Timestamp    time.Time `json:"timestamp"`
}

// ChatService orchestrates a chat turn: classify the intent, call the
// matching adapter, compose the reply, and persist both messages.
type ChatService struct {
	classifier *IntentClassifier
	llm        adapter.LLMClient
	disease    adapter.DiseaseClient
	weather    adapter.WeatherClient
	market     adapter.MarketClient
	sessions   repository.SessionRepository
	messages   repository.MessageRepository
	users      repository.UserRepository
	tokens     *token.Service
	log        *logger.Logger
}

// NewChatService wires the orchestration service
func NewChatService(
	classifier *IntentClassifier,
	llm adapter.LLMClient,
	disease adapter.DiseaseClient,
	weather adapter.WeatherClient,
	market adapter.MarketClient,
	sessions repository.SessionRepository,
	messages repository.MessageRepository,
	users repository.UserRepository,
	tokens *token.Service,
	log *logger.Logger,
) *ChatService {
	return &ChatService{
		classifier: classifier,
		llm:        llm,
		disease:    disease,
		weather:    weather,
		market:     market,
		sessions:   sessions,
		messages:   messages,
		users:      users,
		tokens:     tokens,
		log:        log,
	}
}

// HandleChat processes one chat turn. Adapter failures are absorbed
// into offline fallback replies; only input validation and persistence
// failures are returned as errors.
func (s *ChatService) HandleChat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	if strings.TrimSpace(req.Message) == "" && len(req.Image) == 0 {
		return nil, errors.NewBadRequestError("MESSAGE_REQUIRED", "Message is required unless an image is supplied")
	}

	if req.Language == "" {
		req.Language = "en"
	}

	sessionID := req.SessionID
	var sessionToken string
	if sessionID == "" {
		var err error
		sessionID, sessionToken, err = s.tokens.NewSession(req.UserID)
		if err != nil {
			return nil, errors.NewInternalServerError("SESSION_TOKEN_FAILED", "Could not create a session")
		}
	}

	if req.UserID != "" {
		if _, err := s.users.Ensure(req.UserID, req.Language, req.Location); err != nil {
			return nil, errors.NewInternalServerError("PERSISTENCE_FAILED", "Could not record the user")
		}
	}

	// Session existence precedes any message referencing it
	if _, err := s.sessions.Ensure(sessionID, req.UserID); err != nil {
		return nil, errors.NewInternalServerError("PERSISTENCE_FAILED", "Could not open the conversation session")
	}

	// An image always routes to disease detection regardless of text
	intent := IntentDisease
	if len(req.Image) == 0 {
		intent = s.classifier.Classify(req.Message)
	}

	replyText, degraded := s.dispatch(ctx, intent, sessionID, req)

	now := time.Now()

	userText := req.Message
	if userText == "" {
		userText = fmt.Sprintf("[image: %s]", req.ImageName)
	}
	userMessage := &models.ChatMessage{
		SessionID: sessionID,
		Sender:    models.SenderUser,
		Text:      userText,
		Language:  req.Language,
		Intent:    string(intent),
		ImageRef:  req.ImageName,
		Timestamp: now,
	}
	if err := s.messages.Create(userMessage); err != nil {
		s.log.LogError(err, "Failed to persist user message", "session_id", sessionID)
		return nil, errors.NewInternalServerError("PERSISTENCE_FAILED", "Could not record the conversation")
	}

	assistantMessage := &models.ChatMessage{
		SessionID: sessionID,
		Sender:    models.SenderAssistant,
		Text:      replyText,
		Language:  req.Language,
		Intent:    string(intent),
		Timestamp: now,
	}
	if err := s.messages.Create(assistantMessage); err != nil {
		s.log.LogError(err, "Failed to persist assistant message", "session_id", sessionID)
		return nil, errors.NewInternalServerError("PERSISTENCE_FAILED", "Could not record the conversation")
	}

	if err := s.sessions.Touch(sessionID); err != nil {
		s.log.Warn("Failed to update session activity", "session_id", sessionID, "error", err.Error())
	}

	return &ChatReply{
		Reply:        replyText,
		Language:     req.Language,
		Intent:       string(intent),
		SessionID:    sessionID,
		SessionToken: sessionToken,
		Degraded:     degraded,
		Timestamp:    now,
	}, nil
}

// dispatch invokes the adapter for an intent and composes the reply.
// The second return reports whether the offline fallback was used.
func (s *ChatService) dispatch(ctx context.Context, intent Intent, sessionID string, req ChatRequest) (string, bool) {
	switch intent {
	case IntentWeather:
		location := req.Location
		if location == "" {
			location = extractLocation(req.Message)
		}
		if location == "" {
			return "Please tell me the location you want the weather for, for example " +
				"\"What is the weather in Pune?\".", false
		}
		report, err := s.weather.Current(ctx, location)
		if err != nil || report == nil {
			s.log.Warn("Weather adapter failed, serving fallback", "location", location, "error", errString(err))
			return FallbackReply(intent), true
		}
		return fmt.Sprintf("Current weather in %s: %.0f°C, %s, humidity %d%%, wind %.0f kph.",
			report.Location, report.TempC, report.Condition, report.Humidity, report.WindKph), false

	case IntentPrice:
		commodity := extractCommodity(req.Message)
		quote, err := s.market.Quote(ctx, commodity)
		if err != nil || quote == nil {
			s.log.Warn("Market adapter failed, serving fallback", "commodity", commodity, "error", errString(err))
			return FallbackReply(intent), true
		}
		return fmt.Sprintf("Current market price for %s: $%s per %s (trend %s).",
			quote.Commodity, quote.Price, quote.Unit, quote.Trend), false

	case IntentDisease:
		if len(req.Image) == 0 {
			return "Please attach a clear photo of the affected plant so I can look for disease symptoms.", false
		}
		diagnosis, err := s.disease.Classify(ctx, req.Image)
		if err != nil || diagnosis == nil {
			s.log.Warn("Disease adapter failed, serving fallback", "image", req.ImageName, "error", errString(err))
			return FallbackReply(intent), true
		}
		return fmt.Sprintf("The image looks like %s (confidence %.0f%%). Remove affected leaves, "+
			"avoid overhead watering, and consider a treatment suited to this condition.",
			diagnosis.Label, diagnosis.Confidence*100), false

	case IntentCrops:
		location := req.Location
		if location == "" {
			location = extractLocation(req.Message)
		}
		if location == "" {
			location = "your area"
		}
		rec := RecommendCrops(location, "", time.Now())
		return fmt.Sprintf("For the %s season (%s), recommended crops are: %s. %s",
			rec.Season.Name, rec.Season.Period,
			strings.Join(rec.Season.Crops, ", "), rec.SoilInfo), false

	default:
		history, err := s.messages.GetBySession(sessionID)
		if err != nil {
			history = nil
		}
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}
		reply, err := s.llm.Complete(ctx, req.Language, history, req.Message)
		if err != nil || reply == "" {
			s.log.Warn("LLM adapter failed, serving fallback", "error", errString(err))
			return FallbackReply(IntentGeneric), true
		}
		return reply, false
	}
}

// errString guards log fields against adapters that fail by returning
// nothing at all
func errString(err error) string {
	if err == nil {
		return "empty adapter response"
	}
	return err.Error()
}

// GetHistory returns a session's messages in insertion order
func (s *ChatService) GetHistory(sessionID string) ([]models.ChatMessage, error) {
	return s.GetHistoryPage(sessionID, 0, 0)
}

// GetHistoryPage returns a slice of a session's messages in insertion
// order. A limit of zero returns the full history.
func (s *ChatService) GetHistoryPage(sessionID string, limit, offset int) ([]models.ChatMessage, error) {
	if _, err := s.sessions.GetBySessionID(sessionID); err != nil {
		return nil, errors.NewNotFoundError("SESSION_NOT_FOUND", "No such conversation session")
	}

	var (
		messages []models.ChatMessage
		err      error
	)
	if limit > 0 {
		messages, err = s.messages.GetBySessionPaginated(sessionID, limit, offset)
	} else {
		messages, err = s.messages.GetBySession(sessionID)
	}
	if err != nil {
		return nil, errors.NewInternalServerError("PERSISTENCE_FAILED", "Could not read the conversation")
	}
	return messages, nil
}

// ExportHistory serializes a session's messages to CSV bytes
func (s *ChatService) ExportHistory(sessionID string) ([]byte, error) {
	messages, err := s.GetHistory(sessionID)
	if err != nil {
		return nil, err
	}
	data, err := repository.ExportCSV(messages)
	if err != nil {
		return nil, errors.NewInternalServerError("EXPORT_FAILED", "Could not serialize the conversation")
	}
	return data, nil
}

// knownCommodities are scanned for in price questions
var knownCommodities = []string{"wheat", "corn", "maize", "soybeans", "soybean", "rice", "cotton"}

// extractCommodity finds the first known commodity named in a message.
// Price questions that name nothing default to wheat, the table's most
// commonly asked commodity.
func extractCommodity(message string) string {
	text := strings.ToLower(message)
	for _, c := range knownCommodities {
		if strings.Contains(text, c) {
			if c == "maize" {
				return "corn"
			}
			if c == "soybean" {
				return "soybeans"
			}
			return c
		}
	}
	return "wheat"
}

// extractLocation pulls a trailing location out of phrasings like
// "weather in Pune" or "forecast for Nashik today"
func extractLocation(message string) string {
	text := strings.TrimRight(strings.TrimSpace(message), "?.!")
	lower := strings.ToLower(text)

	for _, marker := range []string{" in ", " at ", " for ", " near "} {
		if idx := strings.LastIndex(lower, marker); idx >= 0 {
			candidate := strings.TrimSpace(text[idx+len(marker):])
			// Drop trailing time words that often follow the place
			for _, suffix := range []string{"today", "tomorrow", "now", "this week"} {
				candidate = strings.TrimSpace(strings.TrimSuffix(candidate, suffix))
			}
			if candidate != "" {
				return candidate
			}
		}
	}
	return ""
}
