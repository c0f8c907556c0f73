// Package worldclock wraps the World Time API. The client never returns an
// error to its callers: any failure on the outbound call is replaced by a
// locally computed fallback so the time endpoint always answers.
package worldclock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	fallbackAbbreviation = "CET"
	datetimeLayout       = "2006-01-02T15:04:05"
)

// TimeInfo mirrors the World Time API response fields the service exposes.
// Pointer fields stay nil when the upstream payload omits them.
type TimeInfo struct {
	Datetime     *string `json:"datetime"`
	Timezone     *string `json:"timezone"`
	Abbreviation *string `json:"abbreviation"`
	DayOfWeek    *int    `json:"day_of_week"`
	DayOfYear    *int    `json:"day_of_year"`
}

type Client struct {
	baseURL    string
	defaultTZ  string
	httpClient *http.Client
}

func NewClient(baseURL, defaultTZ string) *Client {
	return &Client{
		baseURL:    baseURL,
		defaultTZ:  defaultTZ,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// upstream day_of_week / day_of_year values are numbers in practice, but the
// API contract is loose enough that we tolerate anything non-numeric.
type timePayload struct {
	Datetime     *string         `json:"datetime"`
	Timezone     *string         `json:"timezone"`
	Abbreviation *string         `json:"abbreviation"`
	DayOfWeek    json.RawMessage `json:"day_of_week"`
	DayOfYear    json.RawMessage `json:"day_of_year"`
}

// GetCurrentTime fetches the current time for the given timezone. A blank
// timezone falls back to the configured default. Exactly one outbound call is
// made, no retries; on any failure the locally computed fallback is returned.
func (c *Client) GetCurrentTime(ctx context.Context, timezone string) *TimeInfo {
	tz := strings.TrimSpace(timezone)
	if tz == "" {
		tz = c.defaultTZ
	}

	url := fmt.Sprintf("%s/timezone/%s", c.baseURL, tz)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Warn().Err(err).Str("timezone", tz).Msg("time request build failed, serving fallback")
		return c.fallback()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("timezone", tz).Msg("time API unreachable, serving fallback")
		return c.fallback()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("timezone", tz).Msg("time API error, serving fallback")
		return c.fallback()
	}

	var payload timePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn().Err(err).Str("timezone", tz).Msg("time API payload unreadable, serving fallback")
		return c.fallback()
	}

	return &TimeInfo{
		Datetime:     payload.Datetime,
		Timezone:     payload.Timezone,
		Abbreviation: payload.Abbreviation,
		DayOfWeek:    rawInt(payload.DayOfWeek),
		DayOfYear:    rawInt(payload.DayOfYear),
	}
}

// fallback builds a record from the local clock: ISO-8601 local time, the
// configured default timezone, CET, ISO day-of-week (Monday=1) and day-of-year.
func (c *Client) fallback() *TimeInfo {
	now := time.Now()
	datetime := now.Format(datetimeLayout)
	tz := c.defaultTZ
	abbr := fallbackAbbreviation
	dow := isoDayOfWeek(now)
	doy := now.YearDay()
	return &TimeInfo{
		Datetime:     &datetime,
		Timezone:     &tz,
		Abbreviation: &abbr,
		DayOfWeek:    &dow,
		DayOfYear:    &doy,
	}
}

func isoDayOfWeek(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func rawInt(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return nil
	}
	return &n
}
