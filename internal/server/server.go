package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"courtside/internal/domain"
	"courtside/internal/service"

	"github.com/rs/zerolog"
)

// Server exposes the session, favorites, and catalog stores as a JSON API
// under /api/v1/. It holds no state of its own; the stores are the sole
// owners of application state.
type Server struct {
	session   *service.SessionService
	favorites *service.FavoritesService
	catalog   service.Catalog
	logger    zerolog.Logger
}

func New(session *service.SessionService, favorites *service.FavoritesService, catalog service.Catalog, logger zerolog.Logger) *Server {
	return &Server{session: session, favorites: favorites, catalog: catalog, logger: logger}
}

func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/session/sign-in", s.handleSignIn)
	mux.HandleFunc("POST /api/v1/session/sign-up", s.handleSignUp)
	mux.HandleFunc("POST /api/v1/session/sign-out", s.handleSignOut)
	mux.HandleFunc("GET /api/v1/session/profile", s.handleGetProfile)
	mux.HandleFunc("PATCH /api/v1/session/profile", s.handleUpdateProfile)

	mux.HandleFunc("GET /api/v1/favorites", s.handleListFavorites)
	mux.HandleFunc("GET /api/v1/favorites/{id}", s.handleIsFavorite)
	mux.HandleFunc("PUT /api/v1/favorites/{id}", s.handleAddFavorite)
	mux.HandleFunc("DELETE /api/v1/favorites/{id}", s.handleRemoveFavorite)

	mux.HandleFunc("GET /api/v1/complexes", s.handleListComplexes)
	mux.HandleFunc("GET /api/v1/complexes/{id}", s.handleGetComplex)
	mux.HandleFunc("GET /api/v1/matches", s.handleListMatches)
	mux.HandleFunc("POST /api/v1/matches", s.handleCreateMatch)
	mux.HandleFunc("POST /api/v1/matches/{id}/join", s.handleJoinMatch)
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		s.writeError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	profile, err := s.session.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		s.writeError(w, r, http.StatusBadRequest, "name, email and password are required")
		return
	}

	profile, err := s.session.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.session.SignOut(r.Context()); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile := s.session.Current()
	if profile == nil {
		s.writeError(w, r, http.StatusNotFound, "no active session")
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update service.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if update.Level != nil {
		if _, ok := domain.ParseLevel(string(*update.Level)); !ok {
			s.writeError(w, r, http.StatusBadRequest, "unknown level")
			return
		}
	}

	profile, err := s.session.UpdateProfile(r.Context(), update)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if profile == nil {
		s.writeError(w, r, http.StatusNotFound, "no active session")
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.favorites.List())
}

func (s *Server) handleIsFavorite(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"favorite": s.favorites.IsFavorite(r.PathValue("id"))})
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var entry domain.FavoriteEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	id := r.PathValue("id")
	if entry.ID == "" {
		entry.ID = id
	}
	if entry.ID != id {
		s.writeError(w, r, http.StatusBadRequest, "entry id does not match path")
		return
	}

	if err := s.favorites.Add(r.Context(), entry); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.favorites.Remove(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListComplexes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		complexes []domain.Complex
		err       error
	)
	if query == "" {
		complexes, err = s.catalog.ListComplexes(r.Context())
	} else {
		complexes, err = s.catalog.SearchComplexes(r.Context(), query)
	}
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, complexes)
}

func (s *Server) handleGetComplex(w http.ResponseWriter, r *http.Request) {
	record, err := s.catalog.GetComplexByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("level")

	var (
		matches []domain.Match
		err     error
	)
	if raw == "" {
		matches, err = s.catalog.ListMatches(r.Context())
	} else {
		level, ok := domain.ParseLevel(raw)
		if !ok {
			s.writeError(w, r, http.StatusBadRequest, "unknown level")
			return
		}
		matches, err = s.catalog.ListMatchesByLevel(r.Context(), level)
	}
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var draft service.MatchDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	match, err := s.catalog.CreateMatch(r.Context(), draft)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, match)
}

func (s *Server) handleJoinMatch(w http.ResponseWriter, r *http.Request) {
	match, err := s.catalog.JoinMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, match)
}

// writeStoreError maps store errors onto HTTP statuses: refusals and absences
// keep their meaning, everything else is a generic storage failure.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrComplexNotFound), errors.Is(err, service.ErrMatchNotFound):
		s.writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMatchFull):
		s.writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidMatch):
		s.writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("store operation failed")
		s.writeError(w, r, http.StatusInternalServerError, "storage unavailable")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
