package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"WhereToGo-App/internal/domain/model"
)

const currentWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherClient はOpenWeatherMap APIを使用した天気取得の実装
type OpenWeatherClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewOpenWeatherClient は新しいクライアントを生成する
func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    currentWeatherBaseURL,
	}
}

// GetCurrentWeather は指定座標の現在の天気を取得する
func (c *OpenWeatherClient) GetCurrentWeather(ctx context.Context, location model.LatLng) (*model.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", location.Lat))
	params.Set("lon", fmt.Sprintf("%f", location.Lng))
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("天気APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("天気APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	return apiResp.toSnapshot(), nil
}

// --- OpenWeatherMap APIのレスポンスをパースするための構造体 ---

type openWeatherResponse struct {
	Weather []weatherCondition `json:"weather"`
	Main    weatherMain        `json:"main"`
	Wind    *weatherWind       `json:"wind,omitempty"`
	Name    string             `json:"name"`
	Sys     *weatherSys        `json:"sys,omitempty"`
}

type weatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type weatherMain struct {
	Temp      float64  `json:"temp"`
	FeelsLike *float64 `json:"feels_like,omitempty"`
	Humidity  *int     `json:"humidity,omitempty"`
}

type weatherWind struct {
	Speed *float64 `json:"speed,omitempty"`
}

type weatherSys struct {
	Country *string `json:"country,omitempty"`
}

// toSnapshot APIレスポンスをドメインモデルに変換する
func (r *openWeatherResponse) toSnapshot() *model.WeatherSnapshot {
	snapshot := &model.WeatherSnapshot{
		Temperature: r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		Humidity:    r.Main.Humidity,
		City:        r.Name,
	}
	if len(r.Weather) > 0 {
		snapshot.Condition = r.Weather[0].Main
		snapshot.Description = r.Weather[0].Description
		snapshot.Icon = r.Weather[0].Icon
	}
	if r.Wind != nil {
		snapshot.WindSpeed = r.Wind.Speed
	}
	if r.Sys != nil {
		snapshot.Country = r.Sys.Country
	}
	return snapshot
}
