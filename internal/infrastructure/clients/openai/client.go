package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zatekoja/nursematch/internal/domain/providers"
	"github.com/zatekoja/nursematch/internal/infrastructure/observability"
	"github.com/zatekoja/nursematch/pkg/config"
	apperrors "github.com/zatekoja/nursematch/pkg/errors"
	"github.com/zatekoja/nursematch/pkg/retry"
	"github.com/zatekoja/nursematch/pkg/utils"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// maxPromptCandidates bounds the candidate set sent to the model to
	// keep token cost predictable. Name resolution downstream still uses
	// the full list.
	maxPromptCandidates = 50

	// maxErrorExcerpt bounds upstream body excerpts carried in errors.
	maxErrorExcerpt = 200
)

// Client implements providers.RankingProvider against a hosted completion
// endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
}

var _ providers.RankingProvider = (*Client)(nil)

// NewClient creates a new model client. Returns ErrRankerNotConfigured when
// no usable endpoint is configured so the caller can fall back to the
// deterministic ranker.
func NewClient(cfg *config.OpenAIConfig) (*Client, error) {
	if cfg == nil || !cfg.Configured() {
		return nil, providers.ErrRankerNotConfigured
	}

	model := cfg.Deployment
	if model == "" {
		model = cfg.Model
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		retryCfg: retry.Config{
			MaxAttempts:     3,
			InitialDelay:    250 * time.Millisecond,
			MaxDelay:        2 * time.Second,
			BackoffFactor:   2.0,
			MaxTotalTimeout: 45 * time.Second,
		},
	}, nil
}

// RankNurses sends the compact payload to the endpoint and returns the
// extracted textual JSON answer. Transient failures (429, 5xx, network) are
// retried with exponential backoff; other 4xx fail immediately.
func (c *Client) RankNurses(ctx context.Context, payload *providers.RankPayload) (string, error) {
	if payload == nil {
		return "", apperrors.NewInternalError("rank payload is nil", nil)
	}

	bounded := *payload
	if len(bounded.Candidates) > maxPromptCandidates {
		bounded.Candidates = bounded.Candidates[:maxPromptCandidates]
	}

	userPrompt, err := buildRankingUserPrompt(&bounded)
	if err != nil {
		return "", apperrors.NewInternalError("failed to build ranking prompt", err)
	}

	body, err := json.Marshal(map[string]interface{}{
		"model": c.model,
		"input": []map[string]string{
			{"role": "system", "content": rankingSystemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"temperature":       0.1,
		"max_output_tokens": 900,
		"text": map[string]interface{}{
			"format": map[string]interface{}{
				"type":   "json_schema",
				"name":   "match_results",
				"schema": matchResultSchema,
				"strict": true,
			},
		},
	})
	if err != nil {
		return "", apperrors.NewInternalError("failed to marshal model request", err)
	}

	logger := observability.LoggerFromContext(ctx)

	var text string
	err = retry.DoWithLog(ctx, c.retryCfg, "model", func() error {
		attemptText, attemptErr := c.doAttempt(ctx, body)
		if attemptErr != nil {
			return attemptErr
		}
		text = attemptText
		return nil
	}, func(attempt int, err error, nextDelay time.Duration) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).
			Msg("model request failed, retrying")
	})
	if err != nil {
		return "", apperrors.NewUpstreamError("model request failed", err)
	}

	return text, nil
}

// doAttempt performs a single request. The returned error is wrapped with
// retry.Permanent for failures that must not be retried.
func (c *Client) doAttempt(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return "", retry.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network-level failure: retryable.
		recordModelMetric(ctx, c.model, 0, time.Since(start), err)
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		recordModelMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := fmt.Errorf("model request failed with status %d: %s",
			resp.StatusCode, utils.TruncateForLog(string(respBody), maxErrorExcerpt))
		recordModelMetric(ctx, c.model, resp.StatusCode, time.Since(start), statusErr)
		if isTransientStatus(resp.StatusCode) {
			return "", statusErr
		}
		return "", retry.Permanent(statusErr)
	}

	text := normalizeResponse(respBody)
	if text == "" {
		err := errors.New("model response missing output text")
		recordModelMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return "", retry.Permanent(err)
	}

	recordModelMetric(ctx, c.model, resp.StatusCode, time.Since(start), nil)
	return text, nil
}

// normalizeResponse extracts the model's textual answer from any known
// response shape and strips Markdown code fences when present.
func normalizeResponse(body []byte) string {
	var raw map[string]interface{}
	text := string(body)
	if err := json.Unmarshal(body, &raw); err == nil {
		text = extractText(raw)
	}

	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}

func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
