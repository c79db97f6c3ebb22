package model

// WeatherSnapshot ユーザー座標のある時点の天気情報。
// 取得後は不変で、リトライ時には丸ごと置き換えられる
type WeatherSnapshot struct {
	Condition   string   `json:"condition"`            // 主要な天気コード（例: "Rain", "Clear"）
	Description string   `json:"description"`          // 人間可読な説明
	Icon        string   `json:"icon"`                 // 天気アイコンID
	Temperature float64  `json:"temperature"`          // 気温（摂氏）
	FeelsLike   *float64 `json:"feels_like,omitempty"` // 体感温度（NULLABLE）
	Humidity    *int     `json:"humidity,omitempty"`   // 湿度%（NULLABLE）
	WindSpeed   *float64 `json:"wind_speed,omitempty"` // 風速 m/s（NULLABLE）
	City        string   `json:"city"`                 // 都市名
	Country     *string  `json:"country,omitempty"`    // 国コード（NULLABLE）
}

// IsBadWeather 屋外スポットの除外対象となる天気かどうか
func (w *WeatherSnapshot) IsBadWeather() bool {
	return w.Condition == "Rain" || w.Condition == "Snow"
}

// Recommendation 天気に応じたおすすめメッセージを返す
func (w *WeatherSnapshot) Recommendation() string {
	switch {
	case w.IsBadWeather():
		return "屋内のおすすめスポットを表示しています"
	case w.Condition == "Clear" && w.Temperature > 25:
		return "屋外のアクティビティに最適な天気です！"
	case w.Condition == "Clear" || w.Condition == "Clouds":
		return "お出かけにぴったりの天気です"
	default:
		return "すべてのおすすめスポットを表示しています"
	}
}
