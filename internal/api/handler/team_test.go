package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herodex/herodex/internal/api/handler"
	"github.com/herodex/herodex/internal/hero"
	"github.com/herodex/herodex/internal/team"
)

// --- Mock Team Repository ---

type mockTeamRepo struct {
	createFn  func(ctx context.Context, t *team.Team) error
	getByIDFn func(ctx context.Context, id int64) (*team.Team, error)
	listFn    func(ctx context.Context, offset, limit int) ([]team.Team, error)
	updateFn  func(ctx context.Context, id int64, fields team.UpdateFields) (*team.Team, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockTeamRepo) Create(ctx context.Context, t *team.Team) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	t.ID = 1
	return nil
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id int64) (*team.Team, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepo) List(ctx context.Context, offset, limit int) ([]team.Team, error) {
	if m.listFn != nil {
		return m.listFn(ctx, offset, limit)
	}
	return []team.Team{}, nil
}

func (m *mockTeamRepo) Update(ctx context.Context, id int64, fields team.UpdateFields) (*team.Team, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return team.ErrTeamNotFound
}

func sampleTeam() *team.Team {
	return &team.Team{ID: 1, Name: "Preventers", Headquarters: "Sharp Tower"}
}

// ===== POST /teams =====

func TestTeamCreate_Success(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{}, &mockHeroRepo{})

	body, _ := json.Marshal(map[string]interface{}{
		"name":         "Preventers",
		"headquarters": "Sharp Tower",
	})

	req, w := makeRequest(t, http.MethodPost, "/teams/", body, nil)
	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	env := parseEnvelope(t, w)
	assert.Nil(t, env["error"])
	data := env["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Preventers", data["name"])
	assert.Equal(t, "Sharp Tower", data["headquarters"])
}

func TestTeamCreate_ValidationError_MissingFields(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{}, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodPost, "/teams/", []byte(`{}`), nil)
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestTeamCreate_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{}, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodPost, "/teams/", []byte(`{not json`), nil)
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_JSON", errObj["code"])
}

// ===== GET /teams =====

func TestTeamList_DefaultWindow(t *testing.T) {
	t.Parallel()

	var gotOffset, gotLimit int
	repo := &mockTeamRepo{
		listFn: func(ctx context.Context, offset, limit int) ([]team.Team, error) {
			gotOffset, gotLimit = offset, limit
			return []team.Team{*sampleTeam()}, nil
		},
	}
	h := handler.NewTeamHandler(repo, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodGet, "/teams/", nil, nil)
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, 100, gotLimit)

	env := parseEnvelope(t, w)
	data := env["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestTeamList_LimitCapped(t *testing.T) {
	t.Parallel()

	var gotLimit int
	repo := &mockTeamRepo{
		listFn: func(ctx context.Context, offset, limit int) ([]team.Team, error) {
			gotLimit = limit
			return []team.Team{}, nil
		},
	}
	h := handler.NewTeamHandler(repo, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodGet, "/teams/?limit=500", nil, nil)
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, gotLimit)
}

func TestTeamList_InvalidOffset(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{}, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodGet, "/teams/?offset=abc", nil, nil)
	h.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_QUERY", errObj["code"])
}

// ===== GET /teams/{id} =====

func TestTeamGet_ExpandsHeroes(t *testing.T) {
	t.Parallel()

	teamID := int64(1)
	age := 48
	repo := &mockTeamRepo{
		getByIDFn: func(ctx context.Context, id int64) (*team.Team, error) {
			require.Equal(t, teamID, id)
			return sampleTeam(), nil
		},
	}
	heroRepo := &mockHeroRepo{
		listByTeamIDFn: func(ctx context.Context, id int64) ([]hero.Hero, error) {
			return []hero.Hero{
				{ID: 3, Name: "Rusty-Man", SecretName: "Tommy Sharp", Age: &age, TeamID: &teamID},
			}, nil
		},
	}
	h := handler.NewTeamHandler(repo, heroRepo)

	req, w := makeRequest(t, http.MethodGet, "/teams/1", nil, map[string]string{"id": "1"})
	h.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "Preventers", data["name"])

	heroes := data["heroes"].([]interface{})
	require.Len(t, heroes, 1)
	member := heroes[0].(map[string]interface{})
	assert.Equal(t, "Rusty-Man", member["name"])
	assert.Equal(t, float64(48), member["age"])
	_, hasPassword := member["hashed_password"]
	assert.False(t, hasPassword)
}

func TestTeamGet_NotFound(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{}, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodGet, "/teams/99", nil, map[string]string{"id": "99"})
	h.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestTeamGet_InvalidID(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{}, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodGet, "/teams/abc", nil, map[string]string{"id": "abc"})
	h.GetByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_ID", errObj["code"])
}

// ===== PATCH /teams/{id} =====

func TestTeamUpdate_OnlySuppliedFields(t *testing.T) {
	t.Parallel()

	var gotFields team.UpdateFields
	repo := &mockTeamRepo{
		updateFn: func(ctx context.Context, id int64, fields team.UpdateFields) (*team.Team, error) {
			gotFields = fields
			updated := sampleTeam()
			updated.Name = *fields.Name
			return updated, nil
		},
	}
	h := handler.NewTeamHandler(repo, &mockHeroRepo{})

	body, _ := json.Marshal(map[string]interface{}{"name": "Avengers"})
	req, w := makeRequest(t, http.MethodPatch, "/teams/1", body, map[string]string{"id": "1"})
	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotFields.Name)
	assert.Equal(t, "Avengers", *gotFields.Name)
	assert.Nil(t, gotFields.Headquarters)
}

func TestTeamUpdate_EmptyPayload(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		updateFn: func(ctx context.Context, id int64, fields team.UpdateFields) (*team.Team, error) {
			assert.Nil(t, fields.Name)
			assert.Nil(t, fields.Headquarters)
			return sampleTeam(), nil
		},
	}
	h := handler.NewTeamHandler(repo, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodPatch, "/teams/1", []byte(`{}`), map[string]string{"id": "1"})
	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "Preventers", data["name"])
	assert.Equal(t, "Sharp Tower", data["headquarters"])
}

func TestTeamUpdate_NotFound(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{}, &mockHeroRepo{})

	body, _ := json.Marshal(map[string]interface{}{"name": "Avengers"})
	req, w := makeRequest(t, http.MethodPatch, "/teams/99", body, map[string]string{"id": "99"})
	h.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ===== DELETE /teams/{id} =====

func TestTeamDelete_Success(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	h := handler.NewTeamHandler(repo, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodDelete, "/teams/1", nil, map[string]string{"id": "1"})
	h.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, true, data["ok"])
}

func TestTeamDelete_NotFound(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{}, &mockHeroRepo{})

	req, w := makeRequest(t, http.MethodDelete, "/teams/99", nil, map[string]string{"id": "99"})
	h.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
