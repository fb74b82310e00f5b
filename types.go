package fixerhub

import (
	"time"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/conversation"
	"github.com/kailas-cloud/fixerhub/internal/domain/geo"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
)

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Lat float64
	Lon float64
}

// Professional is a directory listing.
type Professional struct {
	ID         string
	Name       string
	Profession string
	Rating     float64 // 0..5
	Reviews    int
	Price      float64 // hourly
	Distance   float64 // miles
	Verified   bool
	Services   []string
	ImageURL   string
	Location   *Location
}

// Category groups professionals by profession label.
type Category struct {
	ID    int
	Name  string
	Icon  string
	Color string
}

// Sender identifies who wrote a turn.
type Sender string

// Sender constants.
const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Turn is one entry of a conversation.
type Turn struct {
	ID          string
	Text        string
	Sender      Sender
	CreatedAt   time.Time
	Suggestions []string
}

// Conversation is an assistant session.
type Conversation struct {
	ID        string
	CreatedAt time.Time
	Closed    bool
	Handoff   string
	Turns     []Turn
}

// SearchResult is the matcher output with its display title.
type SearchResult struct {
	Title         string
	Professionals []Professional
}

// Selection is the outcome of tapping a suggestion.
// Actionable selections close the conversation and carry Results for Query.
type Selection struct {
	Actionable   bool
	Query        string
	Conversation Conversation
	Results      *SearchResult
}

func fromInternalProfessional(p professional.Professional) Professional {
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
	if loc := p.Location(); loc != nil {
		out.Location = &Location{Lat: loc.Lat, Lon: loc.Lon}
	}
	return out
}

func fromInternalProfessionals(pros []professional.Professional) []Professional {
	out := make([]Professional, len(pros))
	for i, p := range pros {
		out[i] = fromInternalProfessional(p)
	}
	return out
}

func toInternalAttrs(p Professional) professional.Attrs {
	a := professional.Attrs{
		Name:       p.Name,
		Profession: p.Profession,
		Rating:     p.Rating,
		Reviews:    p.Reviews,
		Price:      p.Price,
		Distance:   p.Distance,
		Verified:   p.Verified,
		Services:   p.Services,
		ImageURL:   p.ImageURL,
	}
	if p.Location != nil {
		a.Location = &geo.Point{Lat: p.Location.Lat, Lon: p.Location.Lon}
	}
	return a
}

func fromInternalCategory(c category.Category) Category {
	return Category{ID: c.ID(), Name: c.Name(), Icon: c.Icon(), Color: c.Color()}
}

func fromInternalConversation(c *conversation.Conversation) Conversation {
	turns := c.Turns()
	out := Conversation{
		ID:        c.ID(),
		CreatedAt: c.CreatedAt(),
		Closed:    c.Closed(),
		Handoff:   c.Handoff(),
		Turns:     make([]Turn, len(turns)),
	}
	for i, t := range turns {
		out.Turns[i] = Turn{
			ID:          t.ID(),
			Text:        t.Text(),
			Sender:      Sender(t.Sender()),
			CreatedAt:   t.CreatedAt(),
			Suggestions: t.Suggestions(),
		}
	}
	return out
}
