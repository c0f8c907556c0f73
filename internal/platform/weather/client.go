// Package weather wraps the OpenWeatherMap current-weather endpoint. Like the
// worldclock adapter it never fails: without an API key or on any upstream
// error the caller gets a fixed default record for the resolved city.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Default record served when the remote call cannot be made or fails.
const (
	defaultCountry     = "DK"
	defaultTemperature = 15.0
	defaultDescription = "Partly cloudy"
	defaultCondition   = "Clouds"
	defaultIcon        = "02d"
	defaultHumidity    = 65.0
	defaultWindSpeed   = 10.0
)

// WeatherInfo is the flattened view of the upstream payload. City is always
// set; the rest stays nil when the upstream omits it.
type WeatherInfo struct {
	City        string   `json:"city"`
	Country     *string  `json:"country"`
	Temperature *float64 `json:"temperature"`
	Description *string  `json:"description"`
	Condition   *string  `json:"condition"`
	Icon        *string  `json:"icon"`
	Humidity    *float64 `json:"humidity"`
	WindSpeed   *float64 `json:"wind_speed"`
}

type Client struct {
	baseURL     string
	apiKey      string
	defaultCity string
	httpClient  *http.Client
}

func NewClient(baseURL, apiKey, defaultCity string) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		defaultCity: defaultCity,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type weatherPayload struct {
	Sys struct {
		Country *string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        *string `json:"main"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// GetWeatherByCity fetches current weather for the given city. A blank city
// falls back to the configured default; the name is normalized first. Without
// an API key no outbound call is made at all.
func (c *Client) GetWeatherByCity(ctx context.Context, city string) *WeatherInfo {
	resolved := normalizeCity(city)
	if resolved == "" {
		resolved = c.defaultCity
	}

	if c.apiKey == "" {
		return c.defaultRecord(resolved)
	}

	u := fmt.Sprintf("%s?q=%s&appid=%s&units=metric", c.baseURL, url.QueryEscape(resolved), c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Warn().Err(err).Str("city", resolved).Msg("weather request build failed, serving default")
		return c.defaultRecord(resolved)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("city", resolved).Msg("weather API unreachable, serving default")
		return c.defaultRecord(resolved)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("city", resolved).Msg("weather API error, serving default")
		return c.defaultRecord(resolved)
	}

	var payload weatherPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn().Err(err).Str("city", resolved).Msg("weather API payload unreadable, serving default")
		return c.defaultRecord(resolved)
	}

	info := &WeatherInfo{
		City:        resolved,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		info.Description = payload.Weather[0].Description
		info.Condition = payload.Weather[0].Main
		info.Icon = payload.Weather[0].Icon
	}
	return info
}

func (c *Client) defaultRecord(city string) *WeatherInfo {
	country := defaultCountry
	temp := defaultTemperature
	desc := defaultDescription
	cond := defaultCondition
	icon := defaultIcon
	humidity := defaultHumidity
	wind := defaultWindSpeed
	return &WeatherInfo{
		City:        city,
		Country:     &country,
		Temperature: &temp,
		Description: &desc,
		Condition:   &cond,
		Icon:        &icon,
		Humidity:    &humidity,
		WindSpeed:   &wind,
	}
}

// normalizeCity maps the many spellings of København to the name the weather
// API understands. Anything else passes through trimmed.
func normalizeCity(city string) string {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	switch lower {
	case "københavn", "kobenhavn", "kbh", "copenhagen":
		return "Copenhagen"
	}
	if strings.Contains(lower, "k") && strings.Contains(lower, "benhavn") {
		return "Copenhagen"
	}
	return trimmed
}
