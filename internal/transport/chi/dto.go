package chi

import (
	"time"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/conversation"
	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

// ErrorCode is a machine-readable error code in API responses.
type ErrorCode string

// API error codes.
const (
	ErrorCodeBadRequest           ErrorCode = "bad_request"
	ErrorCodeValidationFailed     ErrorCode = "validation_failed"
	ErrorCodeUnauthorized         ErrorCode = "unauthorized"
	ErrorCodeNotFound             ErrorCode = "not_found"
	ErrorCodeProfessionalNotFound ErrorCode = "professional_not_found"
	ErrorCodeCategoryNotFound     ErrorCode = "category_not_found"
	ErrorCodeConversationNotFound ErrorCode = "conversation_not_found"
	ErrorCodeConversationClosed   ErrorCode = "conversation_closed"
	ErrorCodeRateLimited          ErrorCode = "rate_limited"
	ErrorCodeInternalError        ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Location is a coordinate pair on the wire.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Professional is a directory listing on the wire.
type Professional struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Profession string    `json:"profession"`
	Rating     float64   `json:"rating"`
	Reviews    int       `json:"reviews"`
	Price      float64   `json:"price"`
	Distance   float64   `json:"distance"`
	Verified   bool      `json:"verified"`
	Services   []string  `json:"services"`
	ImageURL   string    `json:"image_url,omitempty"`
	Location   *Location `json:"location,omitempty"`
}

// PutProfessionalRequest is the body of PUT /professionals/{id}.
type PutProfessionalRequest struct {
	Name       string    `json:"name"`
	Profession string    `json:"profession"`
	Rating     float64   `json:"rating"`
	Reviews    int       `json:"reviews"`
	Price      float64   `json:"price"`
	Distance   float64   `json:"distance"`
	Verified   bool      `json:"verified"`
	Services   []string  `json:"services"`
	ImageURL   string    `json:"image_url,omitempty"`
	Location   *Location `json:"location,omitempty"`
}

// Category is a directory category on the wire.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// PutCategoryRequest is the body of PUT /categories/{id}.
type PutCategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// ListResponse wraps a plain list.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// SearchResponse is the body of GET /professionals/search.
type SearchResponse struct {
	Title string         `json:"title"`
	Count int            `json:"count"`
	Items []Professional `json:"items"`
}

// Turn is one conversation entry on the wire.
type Turn struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Sender      string    `json:"sender"`
	CreatedAt   time.Time `json:"created_at"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// Conversation is an assistant session on the wire.
type Conversation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Closed    bool      `json:"closed"`
	Handoff   string    `json:"handoff,omitempty"`
	Turns     []Turn    `json:"turns"`
}

// SendMessageRequest is the body of POST /assistant/conversations/{id}/messages.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SelectRequest is the body of POST /assistant/conversations/{id}/selections.
type SelectRequest struct {
	Suggestion string `json:"suggestion"`
}

// SelectResponse is the outcome of a suggestion selection.
type SelectResponse struct {
	Actionable   bool            `json:"actionable"`
	Query        string          `json:"query,omitempty"`
	Conversation Conversation    `json:"conversation"`
	Results      *SearchResponse `json:"results,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

func professionalToDTO(p professional.Professional) Professional {
	out := Professional{
		ID:         p.ID(),
		Name:       p.Name(),
		Profession: p.Profession(),
		Rating:     p.Rating(),
		Reviews:    p.Reviews(),
		Price:      p.Price(),
		Distance:   p.Distance(),
		Verified:   p.Verified(),
		Services:   p.Services(),
		ImageURL:   p.ImageURL(),
	}
	if out.Services == nil {
		out.Services = []string{}
	}
	if loc := p.Location(); loc != nil {
		out.Location = &Location{Lat: loc.Lat, Lon: loc.Lon}
	}
	return out
}

func professionalsToDTO(pros []professional.Professional) []Professional {
	items := make([]Professional, len(pros))
	for i, p := range pros {
		items[i] = professionalToDTO(p)
	}
	return items
}

func attrsFromRequest(req PutProfessionalRequest) professional.Attrs {
	a := professional.Attrs{
		Name:       req.Name,
		Profession: req.Profession,
		Rating:     req.Rating,
		Reviews:    req.Reviews,
		Price:      req.Price,
		Distance:   req.Distance,
		Verified:   req.Verified,
		Services:   req.Services,
		ImageURL:   req.ImageURL,
	}
	if req.Location != nil {
		a.Location = &geo.Point{Lat: req.Location.Lat, Lon: req.Location.Lon}
	}
	return a
}

func categoryToDTO(c category.Category) Category {
	return Category{ID: c.ID(), Name: c.Name(), Icon: c.Icon(), Color: c.Color()}
}

func conversationToDTO(c *conversation.Conversation) Conversation {
	turns := c.Turns()
	out := Conversation{
		ID:        c.ID(),
		CreatedAt: c.CreatedAt().UTC(),
		Closed:    c.Closed(),
		Handoff:   c.Handoff(),
		Turns:     make([]Turn, len(turns)),
	}
	for i, t := range turns {
		out.Turns[i] = Turn{
			ID:          t.ID(),
			Text:        t.Text(),
			Sender:      string(t.Sender()),
			CreatedAt:   t.CreatedAt().UTC(),
			Suggestions: t.Suggestions(),
		}
	}
	return out
}
