package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/fixerhub/internal/domain/search/query"
)

// StartConversation handles POST /assistant/conversations.
func (s *Server) StartConversation(w http.ResponseWriter, r *http.Request) {
	c, err := s.assistant.Start(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, conversationToDTO(c))
}

// GetConversation handles GET /assistant/conversations/{id}.
func (s *Server) GetConversation(w http.ResponseWriter, r *http.Request) {
	c, err := s.assistant.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conversationToDTO(c))
}

// DismissConversation handles DELETE /assistant/conversations/{id}.
func (s *Server) DismissConversation(w http.ResponseWriter, r *http.Request) {
	c, err := s.assistant.Dismiss(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conversationToDTO(c))
}

// SendMessage handles POST /assistant/conversations/{id}/messages.
func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := s.assistant.Send(r.Context(), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conversationToDTO(c))
}

// SelectSuggestion handles POST /assistant/conversations/{id}/selections.
// Actionable suggestions hand off to the matcher and the results are returned inline.
func (s *Server) SelectSuggestion(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := s.assistant.Select(r.Context(), chi.URLParam(r, "id"), req.Suggestion)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := SelectResponse{
		Actionable:   res.Selection.Actionable,
		Query:        res.Selection.Query,
		Conversation: conversationToDTO(res.Conversation),
	}
	if res.Selection.Actionable {
		found, err := s.search.Search(r.Context(), query.New(res.Selection.Query))
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		results := searchResultToDTO(found)
		resp.Results = &results
	}

	writeJSON(w, http.StatusOK, resp)
}
