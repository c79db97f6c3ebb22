package helper

import (
	"math"

	"WhereToGo-App/internal/domain/model"
)

// ScoringWeights 品質スコア計算の重み付け設定。
// 各定数は経験的なチューニング値のため設定として差し替え可能にしている
type ScoringWeights struct {
	MaxPopularityScore float64 // 評価件数による加点の上限
	PopularityDivisor  float64 // log10(評価件数) の除数
	MaxProximityScore  float64 // 距離による加点の上限
	ProximityDivisor   float64 // 距離（メートル）の除数。5000mで加点が0になる
	MaxPhotoScore      float64 // 写真による加点の上限
	PhotoDivisor       float64 // 写真枚数の除数
	WebsiteScore       float64 // Webサイトがある場合の加点
	WeekdayTextScore   float64 // 週間スケジュールがある場合の加点
	OpenNowScore       float64 // 現在営業中の場合の加点
}

// DefaultScoringWeights 標準の重み付けを返す
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		MaxPopularityScore: 2,
		PopularityDivisor:  2,
		MaxProximityScore:  3,
		ProximityDivisor:   1667,
		MaxPhotoScore:      1,
		PhotoDivisor:       5,
		WebsiteScore:       1,
		WeekdayTextScore:   1,
		OpenNowScore:       2,
	}
}

// CalculateQualityScore はスポットの品質スコアを計算する。
// 独立した加点の合計で、概ね 0〜15 の範囲になる
func CalculateQualityScore(place *model.Place, w ScoringWeights) float64 {
	var score float64

	// 評価値はそのまま加点（最大5点）
	if place.Rating != nil {
		score += *place.Rating
	}

	// 評価件数は対数スケールで加点（値の幅が広いため）
	if place.UserRatingsTotal != nil && *place.UserRatingsTotal > 0 {
		score += math.Min(w.MaxPopularityScore, math.Log10(float64(*place.UserRatingsTotal))/w.PopularityDivisor)
	}

	// 距離が近いほど加点。5000m以上で0になる
	if place.DistanceMeters > 0 {
		score += math.Max(0, w.MaxProximityScore-place.DistanceMeters/w.ProximityDivisor)
	}

	// 写真の枚数による加点
	if len(place.Photos) > 0 {
		score += math.Min(w.MaxPhotoScore, float64(len(place.Photos))/w.PhotoDivisor)
	}

	// Webサイトの有無
	if place.HasWebsite() {
		score += w.WebsiteScore
	}

	// 週間スケジュールの有無
	if place.HasWeekdayText() {
		score += w.WeekdayTextScore
	}

	// 現在営業中かどうか
	if place.IsOpenNow() {
		score += w.OpenNowScore
	}

	return score
}
