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
	"github.com/herodex/herodex/internal/optional"
	"github.com/herodex/herodex/internal/team"
)

// createHeroRequest is the request body for POST /heroes. The plaintext
// password is hashed before the record is stored.
type createHeroRequest struct {
	Name       string `json:"name"`
	SecretName string `json:"secret_name"`
	Age        *int   `json:"age"`
	TeamID     *int64 `json:"team_id"`
	Password   string `json:"password"`
}

// updateHeroRequest is the request body for PATCH /heroes/{id}. Omitted
// fields stay untouched; an explicit null age or team_id clears the column.
type updateHeroRequest struct {
	Name       *string                  `json:"name"`
	SecretName *string                  `json:"secret_name"`
	Age        optional.Optional[int]   `json:"age"`
	TeamID     optional.Optional[int64] `json:"team_id"`
	Password   *string                  `json:"password"`
}

// heroResponse is the public representation of a hero record.
// It never carries the hashed password.
type heroResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	SecretName string `json:"secret_name"`
	Age        *int   `json:"age"`
	TeamID     *int64 `json:"team_id"`
}

// heroWithTeamResponse embeds the hero's team for single-hero reads.
// Team is null when team_id is unset or references a deleted team.
type heroWithTeamResponse struct {
	heroResponse
	Team *teamResponse `json:"team"`
}

func toHeroResponse(h *hero.Hero) heroResponse {
	return heroResponse{
		ID:         h.ID,
		Name:       h.Name,
		SecretName: h.SecretName,
		Age:        h.Age,
		TeamID:     h.TeamID,
	}
}

// HeroHandler handles hero CRUD endpoints.
type HeroHandler struct {
	repo     hero.Repository
	teamRepo team.Repository
	hasher   *hero.Hasher
}

// NewHeroHandler creates a new HeroHandler. The team repository is used for
// relationship expansion on single-hero reads.
func NewHeroHandler(repo hero.Repository, teamRepo team.Repository, hasher *hero.Hasher) *HeroHandler {
	return &HeroHandler{repo: repo, teamRepo: teamRepo, hasher: hasher}
}

// Create handles POST /heroes.
func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createHeroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.SecretName = strings.TrimSpace(req.SecretName)

	fieldErrors := validation.ValidateCreateHeroRequest(validation.CreateHeroRequest{
		Name:       req.Name,
		SecretName: req.SecretName,
		Password:   req.Password,
		Age:        req.Age,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("failed to hash hero password", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hero", requestID)
		return
	}

	record := &hero.Hero{
		Name:           req.Name,
		SecretName:     req.SecretName,
		Age:            req.Age,
		TeamID:         req.TeamID,
		HashedPassword: hashed,
	}

	if err := h.repo.Create(r.Context(), record); err != nil {
		slog.Error("failed to create hero", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hero", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toHeroResponse(record), requestID)
}

// List handles GET /heroes.
func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	offset, limit, err := parseListWindow(r)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_QUERY", err.Error(), requestID)
		return
	}

	heroes, err := h.repo.List(r.Context(), offset, limit)
	if err != nil {
		slog.Error("failed to list heroes", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list heroes", requestID)
		return
	}

	items := make([]heroResponse, 0, len(heroes))
	for i := range heroes {
		items = append(items, toHeroResponse(&heroes[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), offset, limit, requestID)
}

// GetByID handles GET /heroes/{id}. The response embeds the hero's team;
// a dangling team_id yields a null team rather than an error.
func (h *HeroHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", requestID)
		return
	}

	record, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, hero.ErrHeroNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Hero not found", requestID)
			return
		}
		slog.Error("failed to get hero", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get hero", requestID)
		return
	}

	resp := heroWithTeamResponse{heroResponse: toHeroResponse(record)}

	if record.TeamID != nil {
		t, err := h.teamRepo.GetByID(r.Context(), *record.TeamID)
		switch {
		case err == nil:
			tr := toTeamResponse(t)
			resp.Team = &tr
		case errors.Is(err, team.ErrTeamNotFound):
			// dangling reference after a team delete; expansion yields no team
		default:
			slog.Error("failed to expand hero team", "error", err, "id", id)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get hero", requestID)
			return
		}
	}

	response.Success(w, http.StatusOK, resp, requestID)
}

// Update handles PATCH /heroes/{id}. Only supplied fields are applied; a
// supplied password is re-hashed and stored as hashed_password.
func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req updateHeroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateUpdateHeroRequest(validation.UpdateHeroRequest{
		Name:       req.Name,
		SecretName: req.SecretName,
		Password:   req.Password,
		Age:        req.Age,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	fields := hero.UpdateFields{
		Name:       req.Name,
		SecretName: req.SecretName,
		Age:        req.Age,
		TeamID:     req.TeamID,
	}

	if req.Password != nil {
		hashed, err := h.hasher.Hash(*req.Password)
		if err != nil {
			slog.Error("failed to hash hero password", "error", err, "id", id)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update hero", requestID)
			return
		}
		fields.HashedPassword = &hashed
	}

	record, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, hero.ErrHeroNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Hero not found", requestID)
			return
		}
		slog.Error("failed to update hero", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update hero", requestID)
		return
	}

	response.Success(w, http.StatusOK, toHeroResponse(record), requestID)
}

// Delete handles DELETE /heroes/{id}.
func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", requestID)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, hero.ErrHeroNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Hero not found", requestID)
			return
		}
		slog.Error("failed to delete hero", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete hero", requestID)
		return
	}

	response.Success(w, http.StatusOK, deleteResponse{OK: true}, requestID)
}
