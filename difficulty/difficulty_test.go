package difficulty

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	table := Defaults()

	t.Run("known id", func(t *testing.T) {
		settings, err := table.Resolve(Expert, nil)
		require.NoError(t, err)
		assert.Equal(t, 30, settings.Columns)
		assert.Equal(t, 16, settings.Rows)
	})

	t.Run("override wins over id", func(t *testing.T) {
		override := &Settings{Columns: 3, Rows: 2, BombOdds: 0.5}
		settings, err := table.Resolve(Expert, override)
		require.NoError(t, err)
		assert.Equal(t, *override, settings)
	})

	t.Run("override without id", func(t *testing.T) {
		settings, err := table.Resolve("", &Settings{Columns: 1, Rows: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, settings.Columns)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := table.Resolve("nightmare", nil)
		var configErr *ConfigurationError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "nightmare", configErr.ID)
		assert.Contains(t, err.Error(), "nightmare")
	})

	t.Run("nothing given", func(t *testing.T) {
		_, err := table.Resolve("", nil)
		var configErr *ConfigurationError
		require.True(t, errors.As(err, &configErr))
	})
}

func TestDefaultsBombCounts(t *testing.T) {
	expected := map[string]int{Beginner: 10, Intermediate: 40, Expert: 99}
	for id, settings := range Defaults() {
		bombs := settings.BombOdds * float64(settings.Columns*settings.Rows)
		assert.InDelta(t, expected[id], bombs, 1e-9, id)
	}
}

func TestLoad(t *testing.T) {
	table, err := Load(strings.NewReader(`
tiny:
  columns: 4
  rows: 3
  bomb_odds: 0.25
`))
	require.NoError(t, err)
	assert.Equal(t, Table{"tiny": {Columns: 4, Rows: 3, BombOdds: 0.25}}, table)

	merged := Defaults().Merge(table)
	assert.Equal(t, []string{Beginner, Expert, Intermediate, "tiny"}, merged.IDs())
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("tiny:\n  cols: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing difficulty table")
}
