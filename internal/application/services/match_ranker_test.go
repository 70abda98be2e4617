package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursematch/internal/domain/entities"
	apperrors "github.com/zatekoja/nursematch/pkg/errors"
)

var rankerNurses = []*entities.Nurse{
	{ID: "n-001", Name: "Dana Levi"},
	{ID: "n-002", Name: "Noa Bar"},
	{ID: "n-003", Name: "Yael Mizrahi"},
}

func TestParseRankedResults_SortsDescendingAndResolvesNames(t *testing.T) {
	text := `{"results":[
		{"id":"n-002","score":0.4,"reason":"partial match"},
		{"id":"n-001","score":0.95,"reason":"strong match"},
		{"id":"n-003","score":0.7,"reason":"good match"}
	]}`

	results, err := ParseRankedResults(text, rankerNurses)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "n-001", results[0].ID)
	assert.Equal(t, "Dana Levi", results[0].Name)
	assert.Equal(t, 0.95, results[0].Score)
	assert.Equal(t, "n-003", results[1].ID)
	assert.Equal(t, "n-002", results[2].ID)
}

func TestParseRankedResults_UnknownIDUsesIDAsName(t *testing.T) {
	text := `{"results":[{"id":"ghost-7","score":0.5,"reason":"invented"}]}`

	results, err := ParseRankedResults(text, rankerNurses)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ghost-7", results[0].Name)
}

func TestParseRankedResults_MissingScoreTreatedAsZero(t *testing.T) {
	text := `{"results":[
		{"id":"n-001","reason":"no score"},
		{"id":"n-002","score":0.3,"reason":"scored"}
	]}`

	results, err := ParseRankedResults(text, rankerNurses)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "n-002", results[0].ID)
	assert.Equal(t, 0.0, results[1].Score)
}

func TestParseRankedResults_ClampsOutOfRangeScores(t *testing.T) {
	text := `{"results":[
		{"id":"n-001","score":1.7,"reason":"too high"},
		{"id":"n-002","score":-0.2,"reason":"too low"}
	]}`

	results, err := ParseRankedResults(text, rankerNurses)
	require.NoError(t, err)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, 0.0, results[1].Score)
}

func TestParseRankedResults_MissingResultsArrayIsEmpty(t *testing.T) {
	results, err := ParseRankedResults(`{}`, rankerNurses)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParseRankedResults_MalformedJSONSurfacesError(t *testing.T) {
	_, err := ParseRankedResults(`{"results": [`, rankerNurses)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeMalformedResponse, apperrors.TypeOf(err))
}

func TestParseRankedResults_ErrorExcerptIsBounded(t *testing.T) {
	garbage := "{" + strings.Repeat("x", 5000)
	_, err := ParseRankedResults(garbage, rankerNurses)

	require.Error(t, err)
	assert.Less(t, len(err.Error()), 400)
}
