package conversation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	domconv "github.com/kailas-cloud/fixerhub/internal/domain/conversation"
)

// turnRow is the JSON list element for a stored turn.
type turnRow struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Sender      string   `json:"sender"`
	CreatedAt   int64    `json:"created_at"` // unix millis
	Suggestions []string `json:"suggestions,omitempty"`
}

func encodeTurn(t domconv.Turn) ([]byte, error) {
	data, err := json.Marshal(turnRow{
		ID:          t.ID(),
		Text:        t.Text(),
		Sender:      string(t.Sender()),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		Suggestions: t.Suggestions(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal turn: %w", err)
	}
	return data, nil
}

func decodeTurn(data []byte) (domconv.Turn, error) {
	var row turnRow
	if err := json.Unmarshal(data, &row); err != nil {
		return domconv.Turn{}, fmt.Errorf("unmarshal turn: %w", err)
	}
	return domconv.NewTurn(
		row.ID, row.Text, domconv.Sender(row.Sender), time.UnixMilli(row.CreatedAt).UTC(), row.Suggestions,
	), nil
}

func metaToHash(c *domconv.Conversation) map[string]string {
	return map[string]string{
		"id":         c.ID(),
		"created_at": strconv.FormatInt(c.CreatedAt().UnixMilli(), 10),
		"closed":     strconv.FormatBool(c.Closed()),
		"handoff":    c.Handoff(),
	}
}

type meta struct {
	id        string
	createdAt time.Time
	closed    bool
	handoff   string
}

func metaFromHash(m map[string]string) (meta, error) {
	ms, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return meta{}, fmt.Errorf("invalid created_at: %w", err)
	}
	closed, err := strconv.ParseBool(m["closed"])
	if err != nil {
		return meta{}, fmt.Errorf("invalid closed: %w", err)
	}
	return meta{
		id:        m["id"],
		createdAt: time.UnixMilli(ms).UTC(),
		closed:    closed,
		handoff:   m["handoff"],
	}, nil
}
