package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Run("data valida", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-12-31"`), &d))
		assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), d.Time)
	})

	t.Run("null mantem o zero", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("string vazia e rejeitada", func(t *testing.T) {
		var d Date
		err := d.UnmarshalJSON([]byte(`""`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "esperado YYYY-MM-DD")
	})

	t.Run("formato errado e rejeitado", func(t *testing.T) {
		var d Date
		err := d.UnmarshalJSON([]byte(`"31/12/2025"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "esperado YYYY-MM-DD")
	})
}

func TestDate_MarshalJSON(t *testing.T) {
	d := Date{Time: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-31"`, string(b))
}

func TestDate_TimePtr(t *testing.T) {
	var nula *Date
	assert.Nil(t, nula.TimePtr())

	d := &Date{Time: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}
	ptr := d.TimePtr()
	require.NotNil(t, ptr)
	assert.Equal(t, d.Time, *ptr)
}
