package repository

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"farmer-assist/backend/internal/models"
)

// csvHeader is the column layout of an exported conversation
var csvHeader = []string{"id", "session_id", "sender", "text", "language", "intent", "timestamp"}

// ExportCSV serializes messages to CSV bytes, preserving their order.
// Export never mutates state.
func ExportCSV(messages []models.ChatMessage) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, msg := range messages {
		record := []string{
			strconv.FormatUint(uint64(msg.ID), 10),
			msg.SessionID,
			msg.Sender,
			msg.Text,
			msg.Language,
			msg.Intent,
			msg.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseCSV reads exported bytes back into records, header excluded.
// Used by tests and import tooling to verify round-trips.
func ParseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}
