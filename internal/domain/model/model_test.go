package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatLng(t *testing.T) {
	t.Run("正常な数値文字列", func(t *testing.T) {
		latLng, ok := ParseLatLng("34.9853", "135.7581")
		require.True(t, ok)
		assert.Equal(t, 34.9853, latLng.Lat)
		assert.Equal(t, 135.7581, latLng.Lng)
	})

	t.Run("不正な入力はok=false", func(t *testing.T) {
		cases := []struct {
			name string
			lat  string
			lng  string
		}{
			{"緯度が空", "", "135.7581"},
			{"経度が空", "34.9853", ""},
			{"数値でない", "north", "135.7581"},
			{"緯度が範囲外", "91.0", "135.7581"},
			{"経度が範囲外", "34.9853", "-181.0"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, ok := ParseLatLng(tc.lat, tc.lng)
				assert.False(t, ok)
			})
		}
	})
}

func TestToAppError(t *testing.T) {
	t.Run("AppErrorはそのまま返す", func(t *testing.T) {
		original := NewAppError(ErrorTypeNoResults, "見つかりませんでした", false)
		converted := ToAppError(original)
		assert.Same(t, original, converted)
	})

	t.Run("生のエラーはリトライ可能なapiエラーになる", func(t *testing.T) {
		converted := ToAppError(errors.New("connection refused"))
		assert.Equal(t, ErrorTypeAPI, converted.Type)
		assert.True(t, converted.Retryable)
	})
}

func TestWeatherSnapshot(t *testing.T) {
	t.Run("雨と雪は悪天候", func(t *testing.T) {
		assert.True(t, (&WeatherSnapshot{Condition: "Rain"}).IsBadWeather())
		assert.True(t, (&WeatherSnapshot{Condition: "Snow"}).IsBadWeather())
		assert.False(t, (&WeatherSnapshot{Condition: "Clouds"}).IsBadWeather())
	})

	t.Run("天気に応じたおすすめメッセージ", func(t *testing.T) {
		assert.Equal(t, "屋内のおすすめスポットを表示しています",
			(&WeatherSnapshot{Condition: "Rain"}).Recommendation())
		assert.Equal(t, "屋外のアクティビティに最適な天気です！",
			(&WeatherSnapshot{Condition: "Clear", Temperature: 28}).Recommendation())
		assert.Equal(t, "お出かけにぴったりの天気です",
			(&WeatherSnapshot{Condition: "Clouds", Temperature: 18}).Recommendation())
		assert.Equal(t, "すべてのおすすめスポットを表示しています",
			(&WeatherSnapshot{Condition: "Mist"}).Recommendation())
	})
}

func TestGetMoodInfos(t *testing.T) {
	infos := GetMoodInfos()
	require.Len(t, infos, 8)
	for _, info := range infos {
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Label)
		assert.NotEmpty(t, info.Emoji)
		assert.NotEmpty(t, info.PlaceTypes)
	}
}

func TestCloneForRun(t *testing.T) {
	session := NewDiscoverySession("session-1", MoodHungry, LatLng{Lat: 34.9853, Lng: 135.7581})
	session.Places = []*Place{{PlaceID: "place-1"}}
	session.LastError = NewAppError(ErrorTypeAPI, "一時的なエラー", true)
	session.Radius = 10000
	session.Generation = 3

	clone := session.CloneForRun()

	// 実行用の複製は結果とエラーを持たない
	assert.Nil(t, clone.Places)
	assert.Nil(t, clone.LastError)
	// それ以外の状態は引き継ぐ
	assert.Equal(t, session.SessionID, clone.SessionID)
	assert.Equal(t, 10000, clone.Radius)
	assert.Equal(t, int64(3), clone.Generation)
	// 複製の変更は元のセッションに影響しない
	clone.Radius = 15000
	assert.Equal(t, 10000, session.Radius)
}
