package service

import (
	"context"
	"errors"
	"time"

	"farmer-assist/backend/internal/adapter"
	"farmer-assist/backend/internal/models"
)

// In-memory fakes standing in for the GORM repositories and the
// external adapters.

type fakeSessionRepo struct {
	sessions map[string]*models.Session
	failing  bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *fakeSessionRepo) Ensure(sessionID, userID string) (*models.Session, error) {
	if r.failing {
		return nil, errors.New("database unreachable")
	}
	if s, ok := r.sessions[sessionID]; ok {
		return s, nil
	}
	s := &models.Session{
		ID:           uint(len(r.sessions) + 1),
		SessionID:    sessionID,
		UserID:       userID,
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
	}
	r.sessions[sessionID] = s
	return s, nil
}

func (r *fakeSessionRepo) GetBySessionID(sessionID string) (*models.Session, error) {
	if s, ok := r.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeSessionRepo) Touch(sessionID string) error { return nil }

type fakeMessageRepo struct {
	messages []models.ChatMessage
	failing  bool
}

func (r *fakeMessageRepo) Create(message *models.ChatMessage) error {
	if r.failing {
		return errors.New("database unreachable")
	}
	message.ID = uint(len(r.messages) + 1)
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) GetBySession(sessionID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) GetBySessionPaginated(sessionID string, limit, offset int) ([]models.ChatMessage, error) {
	all, _ := r.GetBySession(sessionID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Ensure(userID, language, location string) (*models.User, error) {
	if u, ok := r.users[userID]; ok {
		return u, nil
	}
	u := &models.User{UserID: userID, Language: language, Location: location}
	r.users[userID] = u
	return u, nil
}

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Complete(_ context.Context, _ string, _ []models.ChatMessage, _ string) (string, error) {
	return f.reply, f.err
}

type fakeDisease struct {
	diagnosis *adapter.DiseaseDiagnosis
	err       error
}

func (f *fakeDisease) Classify(_ context.Context, _ []byte) (*adapter.DiseaseDiagnosis, error) {
	return f.diagnosis, f.err
}

type fakeWeather struct {
	report *adapter.WeatherReport
	err    error
	gotLoc string
}

func (f *fakeWeather) Current(_ context.Context, location string) (*adapter.WeatherReport, error) {
	f.gotLoc = location
	return f.report, f.err
}

type fakeMarket struct {
	quote *adapter.MarketQuote
	err   error
}

func (f *fakeMarket) Quote(_ context.Context, _ string) (*adapter.MarketQuote, error) {
	return f.quote, f.err
}
