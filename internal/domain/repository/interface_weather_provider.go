package repository

import (
	"context"

	"WhereToGo-App/internal/domain/model"
)

// WeatherProvider は外部の天気APIへの能力インターフェース
type WeatherProvider interface {
	// GetCurrentWeather 指定座標の現在の天気を取得する
	GetCurrentWeather(ctx context.Context, location model.LatLng) (*model.WeatherSnapshot, error)
}
