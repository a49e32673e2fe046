package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/herodex/herodex/internal/api/middleware"
	"github.com/herodex/herodex/internal/api/response"
	"github.com/herodex/herodex/internal/api/validation"
	"github.com/herodex/herodex/internal/hero"
	"github.com/herodex/herodex/internal/team"
)

// createTeamRequest is the request body for POST /teams.
type createTeamRequest struct {
	Name         string `json:"name"`
	Headquarters string `json:"headquarters"`
}

// updateTeamRequest is the request body for PATCH /teams/{id}.
// Omitted fields stay untouched.
type updateTeamRequest struct {
	Name         *string `json:"name"`
	Headquarters *string `json:"headquarters"`
}

// teamResponse is the public representation of a team record.
type teamResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Headquarters string `json:"headquarters"`
}

// teamWithHeroesResponse embeds the team's heroes for single-team reads.
type teamWithHeroesResponse struct {
	teamResponse
	Heroes []heroResponse `json:"heroes"`
}

// deleteResponse acknowledges a successful delete.
type deleteResponse struct {
	OK bool `json:"ok"`
}

func toTeamResponse(t *team.Team) teamResponse {
	return teamResponse{
		ID:           t.ID,
		Name:         t.Name,
		Headquarters: t.Headquarters,
	}
}

// TeamHandler handles team CRUD endpoints.
type TeamHandler struct {
	repo     team.Repository
	heroRepo hero.Repository
}

// NewTeamHandler creates a new TeamHandler. The hero repository is used for
// relationship expansion on single-team reads.
func NewTeamHandler(repo team.Repository, heroRepo hero.Repository) *TeamHandler {
	return &TeamHandler{repo: repo, heroRepo: heroRepo}
}

// Create handles POST /teams.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Headquarters = strings.TrimSpace(req.Headquarters)

	fieldErrors := validation.ValidateCreateTeamRequest(validation.CreateTeamRequest{
		Name:         req.Name,
		Headquarters: req.Headquarters,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	t := &team.Team{
		Name:         req.Name,
		Headquarters: req.Headquarters,
	}

	if err := h.repo.Create(r.Context(), t); err != nil {
		slog.Error("failed to create team", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create team", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toTeamResponse(t), requestID)
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	offset, limit, err := parseListWindow(r)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_QUERY", err.Error(), requestID)
		return
	}

	teams, err := h.repo.List(r.Context(), offset, limit)
	if err != nil {
		slog.Error("failed to list teams", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list teams", requestID)
		return
	}

	items := make([]teamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, toTeamResponse(&teams[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), offset, limit, requestID)
}

// GetByID handles GET /teams/{id}. The response embeds the team's heroes.
func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", requestID)
		return
	}

	t, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		slog.Error("failed to get team", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get team", requestID)
		return
	}

	heroes, err := h.heroRepo.ListByTeamID(r.Context(), t.ID)
	if err != nil {
		slog.Error("failed to list team heroes", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get team", requestID)
		return
	}

	members := make([]heroResponse, 0, len(heroes))
	for i := range heroes {
		members = append(members, toHeroResponse(&heroes[i]))
	}

	resp := teamWithHeroesResponse{
		teamResponse: toTeamResponse(t),
		Heroes:       members,
	}

	response.Success(w, http.StatusOK, resp, requestID)
}

// Update handles PATCH /teams/{id}. Only supplied fields are applied.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req updateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateUpdateTeamRequest(validation.UpdateTeamRequest{
		Name:         req.Name,
		Headquarters: req.Headquarters,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	t, err := h.repo.Update(r.Context(), id, team.UpdateFields{
		Name:         req.Name,
		Headquarters: req.Headquarters,
	})
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		slog.Error("failed to update team", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update team", requestID)
		return
	}

	response.Success(w, http.StatusOK, toTeamResponse(t), requestID)
}

// Delete handles DELETE /teams/{id}. Heroes referencing the team keep their
// team_id; the reference is left dangling.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", requestID)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		slog.Error("failed to delete team", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete team", requestID)
		return
	}

	response.Success(w, http.StatusOK, deleteResponse{OK: true}, requestID)
}
