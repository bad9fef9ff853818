package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"
	"guesthouse-ops-service/pkg/logger"

	"golang.org/x/time/rate"
)

// PMSScheduleRepository reads the schedule feed from the property management system
type PMSScheduleRepository struct {
	logger    logger.Logger
	client    *http.Client
	baseURL   string
	accommoID string
	limiter   *rate.Limiter
}

// NewPMSScheduleRepository creates a new PMS schedule repository.
// A nil limiter disables throttling.
func NewPMSScheduleRepository(baseURL, accommoID string, timeout time.Duration, limiter *rate.Limiter, logger logger.Logger) repository.ScheduleRepository {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PMSScheduleRepository{
		logger:    logger,
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		accommoID: accommoID,
		limiter:   limiter,
	}
}

// FetchSchedule fetches the feed for [startDate, endDate)
func (r *PMSScheduleRepository) FetchSchedule(ctx context.Context, startDate, endDate string) (*entity.ScheduleFeed, error) {
	if r.baseURL == "" || r.accommoID == "" {
		return nil, &entity.ConfigError{Keys: []string{"PMS_API_BASE_URL", "PMS_ACCOMMO_ID"}}
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, &entity.FetchError{Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)
	endpoint := fmt.Sprintf("%s/%s/schedules?%s", r.baseURL, url.PathEscape(r.accommoID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &entity.FetchError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &entity.FetchError{Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Warn("PMS returned error status", "status", resp.StatusCode, "startDate", startDate, "endDate", endDate)
		return nil, &entity.FetchError{StatusCode: resp.StatusCode}
	}

	var envelope entity.ScheduleEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &entity.FetchError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	r.logger.Debug("Fetched schedule",
		"startDate", startDate,
		"endDate", endDate,
		"roomTypes", len(envelope.Data.Types()),
		"duration", time.Since(start).String())

	if envelope.Data == nil {
		return &entity.ScheduleFeed{}, nil
	}
	return envelope.Data, nil
}
