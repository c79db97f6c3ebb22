package model

import "strconv"

// LatLng 緯度経度を表す基本的な型（検索・距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location バリデーション付きの位置情報
type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ToLatLng Location を LatLng 型に変換
func (l *Location) ToLatLng() LatLng {
	return LatLng{
		Lat: l.Latitude,
		Lng: l.Longitude,
	}
}

// ParseLatLng ナビゲーションコンテキスト由来の数値文字列から LatLng を生成する。
// どちらかが欠けている・数値として解釈できない場合は ok=false を返す
func ParseLatLng(latStr, lngStr string) (LatLng, bool) {
	if latStr == "" || lngStr == "" {
		return LatLng{}, false
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return LatLng{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return LatLng{}, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return LatLng{}, false
	}
	return LatLng{Lat: lat, Lng: lng}, true
}
