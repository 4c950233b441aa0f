package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/schoolkv/schoolkv/internal/kvstore"
	"github.com/schoolkv/schoolkv/internal/pagination"
)

type Server struct {
	store    kvstore.Store
	pager    *pagination.Pager
	validate *validator.Validate
	ready    atomic.Bool
}

func NewServer(store kvstore.Store, pager *pagination.Pager) *Server {
	return &Server{
		store:    store,
		pager:    pager,
		validate: validator.New(),
	}
}

// KV Store handlers
type KeyValueRequest struct {
	Value string `json:"value" validate:"required"`
}

func (s *Server) SetValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req KeyValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.Set(key, []byte(req.Value)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) GetValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, exists, err := s.store.Get(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "key not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"value": string(value),
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (s *Server) DeleteValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := s.store.Delete(key); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Dataset handlers
type pageParams struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=100"`
}

// ListNames serves one page of the name dataset with hypermedia
// navigation fields. Defaults: page 1, 10 rows per page.
func (s *Server) ListNames(w http.ResponseWriter, r *http.Request) {
	params := pageParams{Page: 1, PageSize: 10}

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "page must be an integer", http.StatusBadRequest)
			return
		}
		params.Page = n
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "page_size must be an integer", http.StatusBadRequest)
			return
		}
		params.PageSize = n
	}

	if err := s.validate.Struct(params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := s.pager.GetHyper(params.Page, params.PageSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
}
