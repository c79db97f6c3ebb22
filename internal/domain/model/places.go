package model

// Place 検索で発見されたスポットを表すモデル。
// 粗い検索結果と詳細取得結果をマージして生成され、以降は変更されない
type Place struct {
	PlaceID          string        `json:"place_id"`                         // プロバイダ発行のユニークなスポットID（重複排除キー）
	Name             string        `json:"name"`                             // スポット名
	Types            []string      `json:"types"`                            // カテゴリタグ（プロバイダの分類、順序あり）
	Vicinity         string        `json:"vicinity"`                         // 短い住所表記
	FormattedAddress *string       `json:"formatted_address,omitempty"`      // 完全な住所（NULLABLE）
	Location         LatLng        `json:"location"`                         // 位置情報
	Photos           []Photo       `json:"photos,omitempty"`                 // 写真参照
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`          // 営業時間（NULLABLE）
	PhoneNumber      *string       `json:"formatted_phone_number,omitempty"` // 電話番号（NULLABLE）
	Website          *string       `json:"website,omitempty"`                // WebサイトURL（NULLABLE）
	Rating           *float64      `json:"rating,omitempty"`                 // 評価値 0.0〜5.0（NULLABLE）
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`     // 評価件数（NULLABLE）
	PriceLevel       *int          `json:"price_level,omitempty"`            // 価格帯 0〜4（NULLABLE）
	DistanceMeters   float64       `json:"distance"`                         // ユーザー座標からの距離（メートル）
}

// Photo スポットの写真参照
type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// OpeningHours 営業時間の記録。OpenNow は三値（営業中/営業時間外/不明）
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now"`               // nilの場合は不明
	WeekdayText []string `json:"weekday_text,omitempty"` // 週間スケジュールのテキスト
}

// GetRating 評価値を返す。未設定の場合は0
func (p *Place) GetRating() float64 {
	if p.Rating != nil {
		return *p.Rating
	}
	return 0
}

// GetUserRatingsTotal 評価件数を返す。未設定の場合は0
func (p *Place) GetUserRatingsTotal() int {
	if p.UserRatingsTotal != nil {
		return *p.UserRatingsTotal
	}
	return 0
}

// HasWebsite WebサイトURLが設定されているかチェック
func (p *Place) HasWebsite() bool {
	return p.Website != nil && *p.Website != ""
}

// HasWeekdayText 週間スケジュールが設定されているかチェック
func (p *Place) HasWeekdayText() bool {
	return p.OpeningHours != nil && len(p.OpeningHours.WeekdayText) > 0
}

// IsOpenNow 現在営業中であることが確認できる場合のみtrue（不明はfalse）
func (p *Place) IsOpenNow() bool {
	return p.OpeningHours != nil && p.OpeningHours.OpenNow != nil && *p.OpeningHours.OpenNow
}
