package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herodex/herodex/internal/optional"
)

type payload struct {
	Age    optional.Optional[int]   `json:"age"`
	TeamID optional.Optional[int64] `json:"team_id"`
}

func TestUnmarshal_OmittedField(t *testing.T) {
	t.Parallel()

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Age.Set)
	assert.False(t, p.Age.Valid)
}

func TestUnmarshal_ExplicitNull(t *testing.T) {
	t.Parallel()

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"age": null}`), &p))

	assert.True(t, p.Age.Set)
	assert.False(t, p.Age.Valid)
	assert.False(t, p.TeamID.Set)
}

func TestUnmarshal_Value(t *testing.T) {
	t.Parallel()

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"age": 48, "team_id": 1}`), &p))

	assert.True(t, p.Age.Set)
	assert.True(t, p.Age.Valid)
	assert.Equal(t, 48, p.Age.Value)
	assert.Equal(t, int64(1), p.TeamID.Value)
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	t.Parallel()

	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"age": "old"}`), &p))
}

func TestPtr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, optional.Optional[int]{}.Ptr())
	assert.Nil(t, optional.Null[int]().Ptr())

	p := optional.Of(42).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 42, *p)
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(payload{Age: optional.Of(48)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"age": 48, "team_id": null}`, string(out))
}
