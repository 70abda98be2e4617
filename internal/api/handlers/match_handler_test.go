package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursematch/internal/api/handlers"
	"github.com/zatekoja/nursematch/internal/application/services"
	"github.com/zatekoja/nursematch/internal/domain/entities"
	"github.com/zatekoja/nursematch/internal/domain/providers"
	apperrors "github.com/zatekoja/nursematch/pkg/errors"
)

type stubSource struct {
	nurses []*entities.Nurse
}

func (s *stubSource) LoadNurses(_ context.Context) []*entities.Nurse {
	return s.nurses
}

type stubRanker struct {
	text string
	err  error
}

func (s *stubRanker) RankNurses(_ context.Context, _ *providers.RankPayload) (string, error) {
	return s.text, s.err
}

func seedNurses() []*entities.Nurse {
	return []*entities.Nurse{
		{ID: "n-001", Name: "Dana Levi", City: "Tel Aviv", Services: []string{"Wound Care"}},
		{ID: "n-002", Name: "Noa Bar", City: "Haifa", Services: []string{"Pediatric Care"}},
	}
}

func TestMatchHandler_Match_MockRanking(t *testing.T) {
	service := services.NewMatchService(&stubSource{nurses: seedNurses()}, nil)
	handler := handlers.NewMatchHandler(service)

	body := `{"city":"Tel Aviv","servicesQuery":["Wound Care"],"topK":2}`
	req := httptest.NewRequest("POST", "/match", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Match(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response struct {
		Count   int                     `json:"count"`
		Results []*entities.MatchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Results, 2)
	assert.Equal(t, "n-001", response.Results[0].ID)
	assert.InDelta(t, 1.0, response.Results[0].Score, 1e-9)
}

func TestMatchHandler_Match_ModelRanking(t *testing.T) {
	ranker := &stubRanker{text: `{"results":[{"id":"n-002","score":0.9,"reason":"best fit"},{"id":"n-001","score":0.5,"reason":"ok"}]}`}
	service := services.NewMatchService(&stubSource{nurses: seedNurses()}, ranker)
	handler := handlers.NewMatchHandler(service)

	req := httptest.NewRequest("POST", "/match", strings.NewReader(`{"topK":1}`))
	w := httptest.NewRecorder()

	handler.Match(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count   int                     `json:"count"`
		Results []*entities.MatchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "n-002", response.Results[0].ID)
	assert.Equal(t, "Noa Bar", response.Results[0].Name)
}

func TestMatchHandler_Match_InvalidBody(t *testing.T) {
	service := services.NewMatchService(&stubSource{}, nil)
	handler := handlers.NewMatchHandler(service)

	req := httptest.NewRequest("POST", "/match", strings.NewReader(`{"city": `))
	w := httptest.NewRecorder()

	handler.Match(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "invalid request body", response["error"])
}

func TestMatchHandler_Match_ValidationError(t *testing.T) {
	service := services.NewMatchService(&stubSource{nurses: seedNurses()}, nil)
	handler := handlers.NewMatchHandler(service)

	body := `{"start":"2026-03-01T10:00:00Z"}`
	req := httptest.NewRequest("POST", "/match", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Match(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "invalid match request", response["error"])
	assert.Contains(t, response["detail"], "start and end")
}

func TestMatchHandler_Match_UpstreamFailure(t *testing.T) {
	ranker := &stubRanker{err: apperrors.NewUpstreamError("model call failed after retries", errors.New("status 503"))}
	service := services.NewMatchService(&stubSource{nurses: seedNurses()}, ranker)
	handler := handlers.NewMatchHandler(service)

	req := httptest.NewRequest("POST", "/match", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.Match(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "ranking temporarily unavailable", response["error"])
}

func TestMatchHandler_Match_MalformedModelAnswer(t *testing.T) {
	ranker := &stubRanker{text: `not json at all`}
	service := services.NewMatchService(&stubSource{nurses: seedNurses()}, ranker)
	handler := handlers.NewMatchHandler(service)

	req := httptest.NewRequest("POST", "/match", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.Match(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
