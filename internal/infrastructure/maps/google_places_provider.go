package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"WhereToGo-App/internal/domain/model"
)

const (
	nearbySearchBaseURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	placeDetailsBaseURL = "https://maps.googleapis.com/maps/api/place/details/json"

	// 外部プロバイダの読み込みは最大10秒まで待つ
	loadTimeout      = 10 * time.Second
	loadPollInterval = 100 * time.Millisecond
)

// detailFields 詳細取得で要求するフィールドマスク
const detailFields = "name,geometry,photo,formatted_phone_number,opening_hours,website,rating,type,vicinity,formatted_address,price_level,user_ratings_total"

// GooglePlacesProvider はGoogle Places APIを使用した周辺検索・詳細取得の実装
type GooglePlacesProvider struct {
	apiKey     string
	httpClient *http.Client

	searchURL  string
	detailsURL string

	mu      sync.Mutex
	ready   bool
	loading bool
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		searchURL:  nearbySearchBaseURL,
		detailsURL: placeDetailsBaseURL,
	}
}

// IsReady プロバイダが利用可能な状態かどうか
func (g *GooglePlacesProvider) IsReady() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

// Load はプロバイダを初期化する。初期化は1回だけ実行され、
// 別の呼び出しが読み込み中の場合は100ms間隔のポーリングで完了を待つ。
// どちらの経路も10秒のタイムアウトを共有する
func (g *GooglePlacesProvider) Load(ctx context.Context) error {
	g.mu.Lock()
	if g.ready {
		g.mu.Unlock()
		return nil
	}
	if g.loading {
		g.mu.Unlock()
		return g.waitUntilReady(ctx)
	}
	g.loading = true
	g.mu.Unlock()

	err := g.initialize(ctx)

	g.mu.Lock()
	g.loading = false
	g.ready = err == nil
	g.mu.Unlock()
	return err
}

// initialize は軽量な初期化のみ行う。接続確認としてAPIキーの存在のみチェックする
func (g *GooglePlacesProvider) initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.apiKey == "" {
		return errors.New("Google Maps APIキーが設定されていません")
	}
	return nil
}

// waitUntilReady は別の読み込みが完了するのをポーリングで待つ
func (g *GooglePlacesProvider) waitUntilReady(ctx context.Context) error {
	deadline := time.NewTimer(loadTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(loadPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return errors.New("マッププロバイダの読み込みがタイムアウトしました")
		case <-ticker.C:
			g.mu.Lock()
			ready := g.ready
			loading := g.loading
			g.mu.Unlock()
			if ready {
				return nil
			}
			if !loading {
				return errors.New("マッププロバイダの読み込みに失敗しました")
			}
		}
	}
}

// NearbySearch は指定座標・半径・カテゴリで周辺検索を行う。
// ステータス ZERO_RESULTS はエラーではなく空の結果として返す
func (g *GooglePlacesProvider) NearbySearch(ctx context.Context, location model.LatLng, radiusMeters int, placeType string) ([]*model.Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", location.Lat, location.Lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("type", placeType)
	params.Set("language", "ja")
	params.Set("key", g.apiKey)

	var apiResp nearbySearchResponse
	if err := g.doGet(ctx, fmt.Sprintf("%s?%s", g.searchURL, params.Encode()), &apiResp); err != nil {
		return nil, err
	}

	switch apiResp.Status {
	case "OK":
		places := make([]*model.Place, 0, len(apiResp.Results))
		for _, result := range apiResp.Results {
			places = append(places, result.toPlace())
		}
		return places, nil
	case "ZERO_RESULTS":
		return []*model.Place{}, nil
	default:
		return nil, fmt.Errorf("周辺検索APIがエラーステータスを返しました: %s %s", apiResp.Status, apiResp.ErrorMessage)
	}
}

// GetDetails はスポットIDを指定して詳細情報を取得する
func (g *GooglePlacesProvider) GetDetails(ctx context.Context, placeID string) (*model.Place, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	params.Set("language", "ja")
	params.Set("key", g.apiKey)

	var apiResp placeDetailsResponse
	if err := g.doGet(ctx, fmt.Sprintf("%s?%s", g.detailsURL, params.Encode()), &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != "OK" {
		return nil, fmt.Errorf("詳細取得APIがエラーステータスを返しました: %s %s", apiResp.Status, apiResp.ErrorMessage)
	}

	place := apiResp.Result.toPlace()
	place.PlaceID = placeID
	return place, nil
}

// doGet はHTTP GETリクエストを実行してJSONレスポンスをパースする
func (g *GooglePlacesProvider) doGet(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return nil
}

// --- Google Places APIのレスポンスをパースするための構造体 ---

type nearbySearchResponse struct {
	Results      []placeResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type placeDetailsResponse struct {
	Result       placeResult `json:"result"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

type placeResult struct {
	PlaceID              string        `json:"place_id"`
	Name                 string        `json:"name"`
	Types                []string      `json:"types"`
	Vicinity             string        `json:"vicinity"`
	FormattedAddress     *string       `json:"formatted_address,omitempty"`
	Geometry             geometry      `json:"geometry"`
	Photos               []photo       `json:"photos,omitempty"`
	OpeningHours         *openingHours `json:"opening_hours,omitempty"`
	FormattedPhoneNumber *string       `json:"formatted_phone_number,omitempty"`
	Website              *string       `json:"website,omitempty"`
	Rating               *float64      `json:"rating,omitempty"`
	UserRatingsTotal     *int          `json:"user_ratings_total,omitempty"`
	PriceLevel           *int          `json:"price_level,omitempty"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type openingHours struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// toPlace APIレスポンスをドメインモデルに変換する
func (r *placeResult) toPlace() *model.Place {
	place := &model.Place{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		Types:            r.Types,
		Vicinity:         r.Vicinity,
		FormattedAddress: r.FormattedAddress,
		Location: model.LatLng{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
		PhoneNumber:      r.FormattedPhoneNumber,
		Website:          r.Website,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		PriceLevel:       r.PriceLevel,
	}
	for _, p := range r.Photos {
		place.Photos = append(place.Photos, model.Photo{
			PhotoReference: p.PhotoReference,
			Width:          p.Width,
			Height:         p.Height,
		})
	}
	if r.OpeningHours != nil {
		place.OpeningHours = &model.OpeningHours{
			OpenNow:     r.OpeningHours.OpenNow,
			WeekdayText: r.OpeningHours.WeekdayText,
		}
	}
	return place
}
