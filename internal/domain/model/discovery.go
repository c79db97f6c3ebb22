package model

// DiscoverRequest 検索開始リクエスト。
// 緯度経度はナビゲーションコンテキスト由来の数値文字列として受け取る
type DiscoverRequest struct {
	Mood string `json:"mood"` // 気分ラベル（未指定・未知でも可）
	Lat  string `json:"lat"`  // 緯度（数値文字列）
	Lng  string `json:"lng"`  // 経度（数値文字列）
}

// DiscoverySession 1回の検索（ページビュー）に対応するプロセス内の状態。
// 気分や座標が変わった場合は新しいセッションとして作り直される
type DiscoverySession struct {
	SessionID    string           // セッションID
	Mood         string           // 選択された気分
	UserLocation LatLng           // ユーザー座標
	Phase        string           // ローディングフェーズ（maps/weather/places/done）
	Radius       int              // 現在の検索半径（メートル）
	UsedFallback bool             // 汎用カテゴリへのフォールバック済みフラグ
	RetryCount   int              // 自動リトライの実行回数
	SortOption   string           // 並び替えキー
	CurrentPage  int              // 現在のページ番号（1始まり）
	Places       []*Place         // 詳細取得済みのスポット一覧（未ソート）
	Weather      *WeatherSnapshot // 天気スナップショット
	LastError    *AppError        // 直近のエラー（成功時はnil）
	Generation   int64            // パイプライン実行の世代カウンター
}

// NewDiscoverySession 初期状態のセッションを生成する
func NewDiscoverySession(sessionID, mood string, userLocation LatLng) *DiscoverySession {
	return &DiscoverySession{
		SessionID:    sessionID,
		Mood:         mood,
		UserLocation: userLocation,
		Phase:        PhaseMaps,
		Radius:       DefaultSearchRadius,
		SortOption:   SortRelevance,
		CurrentPage:  1,
	}
}

// CloneForRun パイプライン1回分の実行用にセッション状態の複製を作る。
// 古い実行が新しい実行の状態を直接書き換えないようにするための分離
func (s *DiscoverySession) CloneForRun() *DiscoverySession {
	clone := *s
	clone.Places = nil
	clone.LastError = nil
	return &clone
}

// DiscoverResponse プレゼンテーション層へ返す検索結果
type DiscoverResponse struct {
	SessionID      string           `json:"session_id"`
	Mood           string           `json:"mood"`
	Phase          string           `json:"phase"`
	Weather        *WeatherSnapshot `json:"weather,omitempty"`
	Recommendation string           `json:"recommendation,omitempty"`
	Error          *AppError        `json:"error,omitempty"`
	Places         []*Place         `json:"places"`
	TotalPlaces    int              `json:"total_places"`
	TotalPages     int              `json:"total_pages"`
	CurrentPage    int              `json:"current_page"`
	SortOption     string           `json:"sort_option"`
	RadiusMeters   int              `json:"radius_meters"`
}

// MoodInfo 気分選択グリッド用のメタデータ
type MoodInfo struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Emoji      string   `json:"emoji"`
	PlaceTypes []string `json:"place_types"`
}

// GetMoodInfos 全気分のメタデータ一覧を取得する
func GetMoodInfos() []MoodInfo {
	moods := GetAllMoods()
	infos := make([]MoodInfo, 0, len(moods))
	for _, mood := range moods {
		infos = append(infos, MoodInfo{
			Name:       mood,
			Label:      GetMoodJapaneseName(mood),
			Emoji:      MoodEmojiMap[mood],
			PlaceTypes: MoodPlaceTypesMap[mood],
		})
	}
	return infos
}
