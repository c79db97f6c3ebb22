package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"WhereToGo-App/internal/domain/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestCalculateQualityScore(t *testing.T) {
	weights := DefaultScoringWeights()

	t.Run("情報のないスポットは0点", func(t *testing.T) {
		place := &model.Place{PlaceID: "empty", Name: "情報なし"}
		assert.InDelta(t, 0.0, CalculateQualityScore(place, weights), 1e-9)
	})

	t.Run("全要素が揃ったスポットの合計点", func(t *testing.T) {
		place := &model.Place{
			PlaceID:          "full",
			Name:             "充実カフェ",
			Rating:           floatPtr(4.0),
			UserRatingsTotal: intPtr(100), // log10(100)/2 = 1.0
			DistanceMeters:   1667,        // 3 - 1667/1667 = 2.0
			Photos:           make([]model.Photo, 5),
			Website:          strPtr("https://example.com"),
			OpeningHours: &model.OpeningHours{
				OpenNow:     boolPtr(true),
				WeekdayText: []string{"月曜日: 9:00～18:00"},
			},
		}
		// 4.0 + 1.0 + 2.0 + 1.0 + 1.0 + 1.0 + 2.0 = 12.0
		assert.InDelta(t, 12.0, CalculateQualityScore(place, weights), 1e-9)
	})

	t.Run("評価件数の加点は上限2点", func(t *testing.T) {
		place := &model.Place{
			PlaceID:          "popular",
			UserRatingsTotal: intPtr(100000), // log10 = 5, /2 = 2.5 → 上限2.0
		}
		assert.InDelta(t, 2.0, CalculateQualityScore(place, weights), 1e-9)
	})

	t.Run("遠距離のスポットは距離加点なし", func(t *testing.T) {
		place := &model.Place{
			PlaceID:        "far",
			DistanceMeters: 10000,
		}
		assert.InDelta(t, 0.0, CalculateQualityScore(place, weights), 1e-9)
	})

	t.Run("写真の加点は上限1点", func(t *testing.T) {
		place := &model.Place{
			PlaceID: "photogenic",
			Photos:  make([]model.Photo, 20),
		}
		assert.InDelta(t, 1.0, CalculateQualityScore(place, weights), 1e-9)
	})

	t.Run("営業状況が不明な場合は営業中の加点なし", func(t *testing.T) {
		place := &model.Place{
			PlaceID:      "unknown-hours",
			OpeningHours: &model.OpeningHours{},
		}
		assert.InDelta(t, 0.0, CalculateQualityScore(place, weights), 1e-9)
	})
}
