package service

import (
	"sort"
	"strings"

	"WhereToGo-App/internal/domain/helper"
	"WhereToGo-App/internal/domain/model"
)

// PlaceRankingService は天気フィルタ・並び替え・ページネーションを担う。
// 入力のスポット一覧は変更せず、新しいスライスを返す
type PlaceRankingService interface {
	// Rank 天気フィルタを適用した上で指定キーで並び替えた一覧を返す
	Rank(places []*model.Place, weather *model.WeatherSnapshot, sortOption string) []*model.Place

	// Paginate 指定ページのスライスと総ページ数を返す
	Paginate(places []*model.Place, page int) ([]*model.Place, int)

	// TotalPages フィルタ・ソート済み一覧の総ページ数を返す
	TotalPages(count int) int
}

type placeRankingService struct {
	weights helper.ScoringWeights
}

func NewPlaceRankingService() PlaceRankingService {
	return &placeRankingService{
		weights: helper.DefaultScoringWeights(),
	}
}

// NewPlaceRankingServiceWithWeights はスコア重みを差し替えたサービスを生成する
func NewPlaceRankingServiceWithWeights(weights helper.ScoringWeights) PlaceRankingService {
	return &placeRankingService{weights: weights}
}

// Rank は天気フィルタ → 安定ソートの順で適用する
func (s *placeRankingService) Rank(places []*model.Place, weather *model.WeatherSnapshot, sortOption string) []*model.Place {
	filtered := s.filterByWeather(places, weather)

	sorted := make([]*model.Place, len(filtered))
	copy(sorted, filtered)

	// 同値の場合は入力順を維持する（安定ソート）
	switch sortOption {
	case model.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GetRating() > sorted[j].GetRating()
		})
	case model.SortDistance:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DistanceMeters < sorted[j].DistanceMeters
		})
	case model.SortPopularity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GetUserRatingsTotal() > sorted[j].GetUserRatingsTotal()
		})
	default: // relevance
		scores := make(map[*model.Place]float64, len(sorted))
		for _, place := range sorted {
			scores[place] = helper.CalculateQualityScore(place, s.weights)
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			return scores[sorted[i]] > scores[sorted[j]]
		})
	}
	return sorted
}

// filterByWeather は雨・雪の場合に屋外キーワードを含むスポットを除外する
func (s *placeRankingService) filterByWeather(places []*model.Place, weather *model.WeatherSnapshot) []*model.Place {
	if weather == nil || !weather.IsBadWeather() {
		return places
	}

	filtered := make([]*model.Place, 0, len(places))
	for _, place := range places {
		if !isOutdoorPlace(place) {
			filtered = append(filtered, place)
		}
	}
	return filtered
}

// isOutdoorPlace はカテゴリタグに屋外キーワードが部分一致で含まれるかを判定する
func isOutdoorPlace(place *model.Place) bool {
	for _, placeType := range place.Types {
		for _, keyword := range model.OutdoorPlaceKeywords {
			if strings.Contains(placeType, keyword) {
				return true
			}
		}
	}
	return false
}

// Paginate は固定ページサイズ(10件)でスライスする。範囲外のページは空を返す
func (s *placeRankingService) Paginate(places []*model.Place, page int) ([]*model.Place, int) {
	totalPages := s.TotalPages(len(places))
	if page < 1 || page > totalPages {
		return []*model.Place{}, totalPages
	}

	start := (page - 1) * model.PlacesPerPage
	end := start + model.PlacesPerPage
	if end > len(places) {
		end = len(places)
	}
	return places[start:end], totalPages
}

// TotalPages は総ページ数を返す (ceil(件数 / ページサイズ))
func (s *placeRankingService) TotalPages(count int) int {
	return (count + model.PlacesPerPage - 1) / model.PlacesPerPage
}
