package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresRoundTrip(t *testing.T) {
	original := Genres{"Jazz", "Rock n Roll", "R&B"}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded Genres
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestGenresScanString(t *testing.T) {
	var g Genres
	require.NoError(t, g.Scan(`["Folk","Blues"]`))
	assert.Equal(t, Genres{"Folk", "Blues"}, g)
}

func TestGenresScanNil(t *testing.T) {
	g := Genres{"stale"}
	require.NoError(t, g.Scan(nil))
	assert.Nil(t, g)
}

func TestGenresValueNilEncodesEmptyList(t *testing.T) {
	var g Genres
	value, err := g.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestGenresScanRejectsUnknownType(t *testing.T) {
	var g Genres
	assert.Error(t, g.Scan(42))
}
