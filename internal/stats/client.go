package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/metrics"
	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

// Client talks to the stats service that stores endpoint hits.
type Client interface {
	RecordHit(ctx context.Context, hit model.EndpointHit) error
	ViewCounts(ctx context.Context, query model.ViewStatsQuery) ([]model.ViewStats, error)
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
}

func NewHTTPClient(baseURL string, timeout time.Duration, m *metrics.Metrics) Client {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		metrics: m,
	}
}

func (c *HTTPClient) RecordHit(ctx context.Context, hit model.EndpointHit) error {
	body, err := json.Marshal(hit)
	if err != nil {
		return fmt.Errorf("marshal hit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, "hit")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func (c *HTTPClient) ViewCounts(ctx context.Context, query model.ViewStatsQuery) ([]model.ViewStats, error) {
	if query.Start.After(query.End) {
		return nil, apperrors.InvalidRange("Start time %s is after end time %s",
			model.FormatDateTime(query.Start), model.FormatDateTime(query.End))
	}

	params := url.Values{}
	params.Set("start", model.FormatDateTime(query.Start))
	params.Set("end", model.FormatDateTime(query.End))
	for _, uri := range query.URIs {
		params.Add("uris", uri)
	}
	params.Set("unique", strconv.FormatBool(query.Unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req, "stats")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out []model.ViewStats
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode stats response: %v", apperrors.ErrStatsUnavailable, err)
	}
	return out, nil
}

// do sends req and turns transport failures and non-2xx answers into ErrStatsUnavailable.
func (c *HTTPClient) do(req *http.Request, endpoint string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.ObserveStatsCall(endpoint, time.Since(start), err == nil && resp.StatusCode < 300)

	if err != nil {
		logger.WithComponent("stats").Warn("stats request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStatsUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		logger.WithComponent("stats").Warn("stats service returned error",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", msg),
		)
		return nil, fmt.Errorf("%w: %s returned %d", apperrors.ErrStatsUnavailable, endpoint, resp.StatusCode)
	}

	return resp, nil
}
