package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WhereToGo-App/internal/domain/model"
)

func newTestProvider(searchURL, detailsURL string) *GooglePlacesProvider {
	provider := NewGooglePlacesProvider("test-api-key")
	if searchURL != "" {
		provider.searchURL = searchURL
	}
	if detailsURL != "" {
		provider.detailsURL = detailsURL
	}
	return provider
}

func TestLoad(t *testing.T) {
	t.Run("APIキーがあれば読み込みに成功する", func(t *testing.T) {
		provider := NewGooglePlacesProvider("test-api-key")
		assert.False(t, provider.IsReady())

		err := provider.Load(context.Background())

		require.NoError(t, err)
		assert.True(t, provider.IsReady())
	})

	t.Run("APIキーが空なら読み込みに失敗する", func(t *testing.T) {
		provider := NewGooglePlacesProvider("")

		err := provider.Load(context.Background())

		require.Error(t, err)
		assert.False(t, provider.IsReady())
	})

	t.Run("2回目の読み込みは即座に成功する", func(t *testing.T) {
		provider := NewGooglePlacesProvider("test-api-key")
		require.NoError(t, provider.Load(context.Background()))
		require.NoError(t, provider.Load(context.Background()))
	})

	t.Run("キャンセル済みのコンテキストでは失敗する", func(t *testing.T) {
		provider := NewGooglePlacesProvider("test-api-key")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := provider.Load(ctx)

		require.Error(t, err)
	})
}

func TestNearbySearch(t *testing.T) {
	t.Run("ステータスOKはスポット一覧を返す", func(t *testing.T) {
		var receivedQuery map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedQuery = map[string]string{
				"location": r.URL.Query().Get("location"),
				"radius":   r.URL.Query().Get("radius"),
				"type":     r.URL.Query().Get("type"),
				"language": r.URL.Query().Get("language"),
				"key":      r.URL.Query().Get("key"),
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": "OK",
				"results": [
					{
						"place_id": "place-1",
						"name": "喫茶モーニング",
						"types": ["cafe", "food"],
						"vicinity": "下京区",
						"geometry": {"location": {"lat": 34.99, "lng": 135.76}},
						"rating": 4.3,
						"user_ratings_total": 120
					},
					{
						"place_id": "place-2",
						"name": "京都ラーメン",
						"types": ["restaurant"],
						"vicinity": "東山区",
						"geometry": {"location": {"lat": 34.98, "lng": 135.77}}
					}
				]
			}`))
		}))
		defer server.Close()

		provider := newTestProvider(server.URL, "")
		places, err := provider.NearbySearch(context.Background(), model.LatLng{Lat: 34.9853, Lng: 135.7581}, 5000, "cafe")

		require.NoError(t, err)
		require.Len(t, places, 2)
		assert.Equal(t, "place-1", places[0].PlaceID)
		assert.Equal(t, "喫茶モーニング", places[0].Name)
		assert.Equal(t, 34.99, places[0].Location.Lat)
		require.NotNil(t, places[0].Rating)
		assert.Equal(t, 4.3, *places[0].Rating)
		assert.Nil(t, places[1].Rating)

		assert.Equal(t, "5000", receivedQuery["radius"])
		assert.Equal(t, "cafe", receivedQuery["type"])
		assert.Equal(t, "ja", receivedQuery["language"])
		assert.Equal(t, "test-api-key", receivedQuery["key"])
	})

	t.Run("ZERO_RESULTSはエラーではなく空の結果", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
		}))
		defer server.Close()

		provider := newTestProvider(server.URL, "")
		places, err := provider.NearbySearch(context.Background(), model.LatLng{}, 5000, "cafe")

		require.NoError(t, err)
		assert.Empty(t, places)
	})

	t.Run("REQUEST_DENIEDはエラー", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
		}))
		defer server.Close()

		provider := newTestProvider(server.URL, "")
		_, err := provider.NearbySearch(context.Background(), model.LatLng{}, 5000, "cafe")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "REQUEST_DENIED")
	})

	t.Run("HTTPエラーステータスはエラー", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := newTestProvider(server.URL, "")
		_, err := provider.NearbySearch(context.Background(), model.LatLng{}, 5000, "cafe")

		require.Error(t, err)
	})
}

func TestGetDetails(t *testing.T) {
	t.Run("詳細情報をドメインモデルに変換する", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "place-1", r.URL.Query().Get("place_id"))
			assert.NotEmpty(t, r.URL.Query().Get("fields"))
			w.Write([]byte(`{
				"status": "OK",
				"result": {
					"name": "喫茶モーニング",
					"geometry": {"location": {"lat": 34.99, "lng": 135.76}},
					"formatted_address": "京都府京都市下京区1-2-3",
					"formatted_phone_number": "075-123-4567",
					"website": "https://example.com",
					"rating": 4.3,
					"user_ratings_total": 120,
					"price_level": 2,
					"photos": [{"photo_reference": "ref-1", "width": 400, "height": 300}],
					"opening_hours": {
						"open_now": true,
						"weekday_text": ["月曜日: 9:00～18:00"]
					}
				}
			}`))
		}))
		defer server.Close()

		provider := newTestProvider("", server.URL)
		place, err := provider.GetDetails(context.Background(), "place-1")

		require.NoError(t, err)
		// 詳細レスポンスにplace_idは含まれないため、リクエストのIDが設定される
		assert.Equal(t, "place-1", place.PlaceID)
		assert.Equal(t, "喫茶モーニング", place.Name)
		require.NotNil(t, place.FormattedAddress)
		assert.Equal(t, "京都府京都市下京区1-2-3", *place.FormattedAddress)
		assert.True(t, place.HasWebsite())
		assert.True(t, place.HasWeekdayText())
		assert.True(t, place.IsOpenNow())
		require.Len(t, place.Photos, 1)
		assert.Equal(t, "ref-1", place.Photos[0].PhotoReference)
		require.NotNil(t, place.PriceLevel)
		assert.Equal(t, 2, *place.PriceLevel)
	})

	t.Run("営業中フラグがないレスポンスでは不明のまま", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"status": "OK",
				"result": {
					"name": "営業時間不明の店",
					"geometry": {"location": {"lat": 34.99, "lng": 135.76}},
					"opening_hours": {"weekday_text": ["月曜日: 定休日"]}
				}
			}`))
		}))
		defer server.Close()

		provider := newTestProvider("", server.URL)
		place, err := provider.GetDetails(context.Background(), "place-1")

		require.NoError(t, err)
		require.NotNil(t, place.OpeningHours)
		assert.Nil(t, place.OpeningHours.OpenNow)
		assert.False(t, place.IsOpenNow())
	})

	t.Run("NOT_FOUNDはエラー", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "NOT_FOUND"}`))
		}))
		defer server.Close()

		provider := newTestProvider("", server.URL)
		_, err := provider.GetDetails(context.Background(), "missing")

		require.Error(t, err)
	})
}
