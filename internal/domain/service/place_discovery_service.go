package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"WhereToGo-App/internal/domain/helper"
	"WhereToGo-App/internal/domain/model"
	"WhereToGo-App/internal/domain/repository"
)

// PlaceDiscoveryService は (気分, 座標) からスポット一覧を発見するパイプラインの1回分の実行を担う。
// フェーズ遷移 maps → weather → places → done、カテゴリ解決、並行検索、
// 重複排除、詳細取得、結果ゼロ時のフォールバックラダーまでを行う。
// 自動リトライはこのサービスの呼び出し側（usecase）のポリシー
type PlaceDiscoveryService interface {
	Discover(ctx context.Context, session *model.DiscoverySession) error
}

type placeDiscoveryService struct {
	placesProvider  repository.PlacesProvider
	weatherProvider repository.WeatherProvider
}

func NewPlaceDiscoveryService(places repository.PlacesProvider, weather repository.WeatherProvider) PlaceDiscoveryService {
	return &placeDiscoveryService{
		placesProvider:  places,
		weatherProvider: weather,
	}
}

// Discover はパイプラインを1回実行してセッションに結果を書き込む。
// 成功・失敗にかかわらずフェーズは必ず done で終わる
func (s *placeDiscoveryService) Discover(ctx context.Context, session *model.DiscoverySession) error {
	defer func() {
		session.Phase = model.PhaseDone
	}()

	// Step 1: プロバイダの準備
	session.Phase = model.PhaseMaps
	if err := s.ensureProviderReady(ctx); err != nil {
		return err
	}

	// Step 2: 天気の取得
	session.Phase = model.PhaseWeather
	weatherSnapshot, err := s.weatherProvider.GetCurrentWeather(ctx, session.UserLocation)
	if err != nil {
		log.Printf("⚠️ 天気取得に失敗: %v", err)
		return model.NewAppError(model.ErrorTypeWeather, "天気情報の取得に失敗しました", true)
	}
	session.Weather = weatherSnapshot

	// Step 3: カテゴリの解決
	session.Phase = model.PhasePlaces
	placeTypes := ResolvePlaceTypes(session.Mood, session.UsedFallback)
	log.Printf("🔍 検索カテゴリ: %v (半径%dm)", placeTypes, session.Radius)

	// Step 4: カテゴリごとの並行検索
	rawPlaces, err := s.searchAllTypes(ctx, session.UserLocation, session.Radius, placeTypes)
	if err != nil {
		return err
	}

	// Step 5: 重複排除と候補数の上限
	candidates := DeduplicatePlaces(rawPlaces)
	if len(candidates) > model.MaxDetailFetchCount {
		candidates = candidates[:model.MaxDetailFetchCount]
	}
	log.Printf("✅ %d件のユニークなスポット候補", len(candidates))

	// Step 6: 詳細の並行取得と距離計算
	detailedPlaces := s.fetchDetailsInParallel(ctx, session.UserLocation, candidates)

	// Step 7: 結果ゼロ時のフォールバックラダー
	if len(detailedPlaces) == 0 {
		return s.applyFallbackLadder(session)
	}

	// Step 8: コミット
	session.Places = detailedPlaces
	session.LastError = nil
	session.RetryCount = 0
	session.UsedFallback = false
	session.CurrentPage = 1
	log.Printf("🎉 スポット検索完了 (%d件)", len(detailedPlaces))
	return nil
}

// ResolvePlaceTypes は気分とフォールバックフラグから検索カテゴリを決定する純粋関数。
// フォールバック済みなら汎用カテゴリ全件、未知・未指定の気分なら汎用カテゴリの先頭3件を使う
func ResolvePlaceTypes(mood string, usedFallback bool) []string {
	if usedFallback {
		return FallbackTypes()
	}
	if types, ok := model.MoodPlaceTypesMap[mood]; ok {
		return types
	}
	return FallbackTypes()[:model.DefaultPlaceTypeCount]
}

// FallbackTypes は汎用カテゴリ一覧のコピーを返す
func FallbackTypes() []string {
	types := make([]string, len(model.FallbackPlaceTypes))
	copy(types, model.FallbackPlaceTypes)
	return types
}

// DeduplicatePlaces はスポットIDで重複を排除する。最初に出現した方を残し、順序を保つ
func DeduplicatePlaces(places []*model.Place) []*model.Place {
	seen := make(map[string]struct{}, len(places))
	unique := make([]*model.Place, 0, len(places))
	for _, place := range places {
		if _, ok := seen[place.PlaceID]; ok {
			continue
		}
		seen[place.PlaceID] = struct{}{}
		unique = append(unique, place)
	}
	return unique
}

// ensureProviderReady はマッププロバイダの読み込みを保証する
func (s *placeDiscoveryService) ensureProviderReady(ctx context.Context) error {
	if s.placesProvider.IsReady() {
		return nil
	}
	if err := s.placesProvider.Load(ctx); err != nil {
		log.Printf("⚠️ マッププロバイダの読み込みに失敗: %v", err)
		return model.NewAppError(model.ErrorTypeAPI, "マップサービスの読み込みに失敗しました", true)
	}
	return nil
}

// searchResult はカテゴリごとの検索結果を格納する
type searchResult struct {
	index  int
	places []*model.Place
	err    error
}

// searchAllTypes は全カテゴリの周辺検索を並行実行し、すべての完了を待つ。
// 一部のカテゴリが失敗しても成功分があれば続行し、全カテゴリ失敗時のみエラーを返す。
// 結果の連結順はカテゴリ一覧の順序に従う（完了順ではない）
func (s *placeDiscoveryService) searchAllTypes(ctx context.Context, location model.LatLng, radiusMeters int, placeTypes []string) ([]*model.Place, error) {
	resultsChan := make(chan searchResult, len(placeTypes))
	var wg sync.WaitGroup

	for i, placeType := range placeTypes {
		wg.Add(1)
		go func(idx int, pt string) {
			defer wg.Done()
			places, err := s.placesProvider.NearbySearch(ctx, location, radiusMeters, pt)
			if err != nil {
				resultsChan <- searchResult{index: idx, err: fmt.Errorf("カテゴリ '%s': %w", pt, err)}
				return
			}
			resultsChan <- searchResult{index: idx, places: places}
		}(i, placeType)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// 結果収集。カテゴリ順を維持するためインデックスで格納する
	perType := make([][]*model.Place, len(placeTypes))
	var errorMessages []string
	failedCount := 0
	for result := range resultsChan {
		if result.err != nil {
			log.Printf("⚠️ %v", result.err)
			errorMessages = append(errorMessages, result.err.Error())
			failedCount++
			continue
		}
		perType[result.index] = result.places
	}

	// 全カテゴリが失敗した場合のみエラー
	if failedCount == len(placeTypes) {
		return nil, model.NewAppError(model.ErrorTypeAPI,
			fmt.Sprintf("すべてのカテゴリの検索に失敗しました: %v", errorMessages), true)
	}

	var allPlaces []*model.Place
	for _, places := range perType {
		allPlaces = append(allPlaces, places...)
	}
	return allPlaces, nil
}

// fetchDetailsInParallel は候補全件の詳細を並行取得する。
// 個別の失敗はバッチ全体を中断せず、その候補をスキップする。
// 生き残ったスポットにはユーザー座標からの距離を設定する
func (s *placeDiscoveryService) fetchDetailsInParallel(ctx context.Context, userLocation model.LatLng, candidates []*model.Place) []*model.Place {
	detailed := make([]*model.Place, len(candidates))
	var wg sync.WaitGroup

	for i, candidate := range candidates {
		wg.Add(1)
		go func(idx int, place *model.Place) {
			defer wg.Done()
			detail, err := s.placesProvider.GetDetails(ctx, place.PlaceID)
			if err != nil || detail == nil {
				log.Printf("⚠️ 詳細取得に失敗 (%s): %v", place.PlaceID, err)
				return
			}
			detail.PlaceID = place.PlaceID
			detail.DistanceMeters = helper.CalculateDistanceToPlace(userLocation, detail)
			detailed[idx] = detail
		}(i, candidate)
	}
	wg.Wait()

	// 失敗分（nil）を除外して順序を保ったまま返す
	result := make([]*model.Place, 0, len(detailed))
	for _, place := range detailed {
		if place != nil {
			result = append(result, place)
		}
	}
	return result
}

// applyFallbackLadder は結果ゼロ時の段階的なフォールバックを適用する。
// 1. 汎用カテゴリを未試行なら、フラグを立てて再検索を促す
// 2. 半径が上限未満なら、5000m拡大して再検索を促す
// 3. それ以外は打ち切り（リトライ不可）
func (s *placeDiscoveryService) applyFallbackLadder(session *model.DiscoverySession) error {
	if !session.UsedFallback {
		session.UsedFallback = true
		log.Printf("🔄 気分別カテゴリで結果ゼロ。汎用カテゴリへフォールバック")
		return model.NewAppError(model.ErrorTypeNoResults,
			"気分に合うスポットが見つかりませんでした。汎用カテゴリで再検索します", true)
	}
	if session.Radius < model.MaxSearchRadius {
		previousRadius := session.Radius
		session.Radius += model.SearchRadiusStep
		log.Printf("🔄 %dm圏内で結果ゼロ。検索半径を%dmに拡大", previousRadius, session.Radius)
		return model.NewAppError(model.ErrorTypeNoResults,
			fmt.Sprintf("%dm圏内にスポットが見つかりませんでした。検索範囲を拡大します", previousRadius), true)
	}
	return model.NewAppError(model.ErrorTypeNoResults,
		"すべての条件で検索しましたが、スポットが見つかりませんでした", false)
}
