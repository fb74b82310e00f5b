package chi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	searchuc "github.com/kailas-cloud/fixerhub/internal/usecase/search"
)

// SearchProfessionals handles GET /professionals/search.
func (s *Server) SearchProfessionals(w http.ResponseWriter, r *http.Request) {
	params, err := bindSearchParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	q, err := params.toQuery()
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	res, err := s.search.Search(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResultToDTO(res))
}

// ListProfessionals handles GET /professionals.
func (s *Server) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	pros, err := s.directory.ListProfessionals(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	items := professionalsToDTO(pros)
	writeJSON(w, http.StatusOK, ListResponse[Professional]{Items: items, Count: len(items)})
}

// GetProfessional handles GET /professionals/{id}.
func (s *Server) GetProfessional(w http.ResponseWriter, r *http.Request) {
	p, err := s.directory.GetProfessional(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, professionalToDTO(p))
}

// PutProfessional handles PUT /professionals/{id}.
func (s *Server) PutProfessional(w http.ResponseWriter, r *http.Request) {
	var req PutProfessionalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, created, err := s.directory.PutProfessional(r.Context(), chi.URLParam(r, "id"), attrsFromRequest(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, professionalToDTO(p))
}

// DeleteProfessional handles DELETE /professionals/{id}.
func (s *Server) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	if err := s.directory.DeleteProfessional(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.directory.ListCategories(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	items := make([]Category, len(cats))
	for i, c := range cats {
		items[i] = categoryToDTO(c)
	}
	writeJSON(w, http.StatusOK, ListResponse[Category]{Items: items, Count: len(items)})
}

// PutCategory handles PUT /categories/{id}.
func (s *Server) PutCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "category id must be an integer")
		return
	}

	var req PutCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, created, err := s.directory.PutCategory(r.Context(), id, req.Name, req.Icon, req.Color)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, categoryToDTO(c))
}

func searchResultToDTO(res searchuc.Result) SearchResponse {
	items := professionalsToDTO(res.Professionals)
	return SearchResponse{Title: res.Title, Count: len(items), Items: items}
}
