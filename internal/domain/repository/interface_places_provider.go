package repository

import (
	"context"

	"WhereToGo-App/internal/domain/model"
)

// PlacesProvider は外部のマップ・プレイス検索プロバイダへの能力インターフェース。
// グローバル状態に依存せず注入できるようにしてテストダブルへの差し替えを可能にする
type PlacesProvider interface {
	// IsReady プロバイダが利用可能な状態かどうか
	IsReady() bool

	// Load プロバイダを初期化する。既に読み込み中の場合は完了を待つ。
	// 同時に呼ばれても初期化は1回だけ実行される
	Load(ctx context.Context) error

	// NearbySearch 指定座標・半径・カテゴリで周辺検索を行い、粗い結果一覧を返す。
	// プロバイダの「結果ゼロ」ステータスはエラーではなく空の成功として扱う
	NearbySearch(ctx context.Context, location model.LatLng, radiusMeters int, placeType string) ([]*model.Place, error)

	// GetDetails スポットIDを指定して詳細情報を取得する
	GetDetails(ctx context.Context, placeID string) (*model.Place, error)
}
