package scoring

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddEntity(t *testing.T) {
	s := NewScorer(discardLogger())

	require.NoError(t, s.AddEntity("Meta", MustDimensions(2, -8, -9, -8, -5)))

	e, ok := s.Get("Meta")
	require.True(t, ok)
	assert.Equal(t, "Meta", e.Name)
	assert.Equal(t, -56.0, e.Score)
	assert.Equal(t, -56.0, e.Breakdown().Total)
	assert.Equal(t, 1, s.Len())
}

func TestAddEntityRejectsInvalid(t *testing.T) {
	s := NewScorer(discardLogger())

	err := s.AddEntity("", MustDimensions(0, 0, 0, 0, 0))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)

	err = s.AddEntity("Unset", Dimensions{})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, s.Len())
}

func TestAddEntitySameValueTwice(t *testing.T) {
	s := NewScorer(discardLogger())
	d := MustDimensions(1, 1, 1, 1, 1)

	require.NoError(t, s.AddEntity("A", d))
	require.NoError(t, s.AddEntity("A", d))

	entries := s.Entities()
	require.Len(t, entries, 1)
	assert.Equal(t, 10.0, entries[0].Score)
	assert.Equal(t, d, entries[0].Dimensions)
}

func TestAddEntityOverwrite(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s := NewScorer(logger)

	require.NoError(t, s.AddEntity("A", MustDimensions(1, 1, 1, 1, 1)))
	require.NoError(t, s.AddEntity("B", MustDimensions(0, 0, 0, 0, 0)))
	require.NoError(t, s.AddEntity("A", MustDimensions(-3, -3, -3, -3, -3)))

	entries := s.Entities()
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Name, "overwrite keeps registration position")
	assert.Equal(t, -30.0, entries[0].Score)
	assert.Equal(t, "B", entries[1].Name)

	assert.Contains(t, buf.String(), "duplicate entity")
	assert.Contains(t, buf.String(), "entity=A")
}

func TestEntitiesInsertionOrder(t *testing.T) {
	s := NewScorer(discardLogger())
	names := []string{"low", "high", "mid"}
	dims := []Dimensions{
		MustDimensions(-10, -10, -10, -10, -10),
		MustDimensions(10, 10, 10, 10, 10),
		MustDimensions(0, 0, 0, 0, 0),
	}
	for i := range names {
		require.NoError(t, s.AddEntity(names[i], dims[i]))
	}

	entries := s.Entities()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, names[i], e.Name)
	}
}

func TestEntitiesReturnsCopy(t *testing.T) {
	s := NewScorer(discardLogger())
	require.NoError(t, s.AddEntity("A", MustDimensions(1, 1, 1, 1, 1)))

	entries := s.Entities()
	entries[0].Score = 999
	entries[0].Name = "mutated"

	e, ok := s.Get("A")
	require.True(t, ok)
	assert.Equal(t, 10.0, e.Score)
}

func TestNewScorerNilLogger(t *testing.T) {
	s := NewScorer(nil)
	require.NotNil(t, s)
	assert.NoError(t, s.AddEntity("A", MustDimensions(0, 0, 0, 0, 0)))
}
