package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFecha_JSON(t *testing.T) {
	t.Parallel()

	f := NewFecha(time.Date(1963, 6, 28, 23, 59, 0, 0, time.UTC))
	raw, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"1963-06-28"`, string(raw))

	for _, in := range []string{`"1963-06-28"`, `"1963-06-28T10:00:00Z"`, `"1963-06-28T10:00:00"`} {
		var got Fecha
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, "1963-06-28", got.Format(DateLayout))
	}

	var bad Fecha
	assert.Error(t, json.Unmarshal([]byte(`"28/06/1963"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`19630628`), &bad))
}

func TestFecha_NullPointer(t *testing.T) {
	t.Parallel()

	var body struct {
		Fecha *Fecha `json:"fecha"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fecha":null}`), &body))
	assert.Nil(t, body.Fecha)
}
