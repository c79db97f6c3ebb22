package model

// MoodConstants アプリケーションで使用する気分の定数
const (
	MoodPeaceful    = "Peaceful"
	MoodAdventurous = "Adventurous"
	MoodSocial      = "Social"
	MoodSad         = "Sad"
	MoodHungry      = "Hungry"
	MoodEnergetic   = "Energetic"
	MoodCreative    = "Creative"
	MoodRelaxed     = "Relaxed"
)

// MoodPlaceTypesMap 気分からプロバイダのカテゴリタグへのマッピング
var MoodPlaceTypesMap = map[string][]string{
	MoodPeaceful:    {"park", "library", "book_store", "spa"},
	MoodAdventurous: {"tourist_attraction", "amusement_park", "museum"},
	MoodSocial:      {"cafe", "bar", "restaurant"},
	MoodSad:         {"cafe", "book_store", "art_gallery", "museum"},
	MoodHungry:      {"restaurant", "cafe", "bakery"},
	MoodEnergetic:   {"gym", "park", "stadium"},
	MoodCreative:    {"art_gallery", "museum", "library"},
	MoodRelaxed:     {"spa", "park", "cafe"},
}

// FallbackPlaceTypes 気分別カテゴリで結果が出なかった場合の汎用カテゴリ
var FallbackPlaceTypes = []string{"restaurant", "cafe", "park", "shopping_mall", "tourist_attraction"}

// DefaultPlaceTypeCount 気分未指定・未知の気分の場合に使う汎用カテゴリの件数
const DefaultPlaceTypeCount = 3

// MoodNameMap 気分IDから日本語名へのマッピング
var MoodNameMap = map[string]string{
	MoodPeaceful:    "おだやか",
	MoodAdventurous: "冒険したい",
	MoodSocial:      "にぎやか",
	MoodSad:         "しんみり",
	MoodHungry:      "おなかすいた",
	MoodEnergetic:   "元気いっぱい",
	MoodCreative:    "クリエイティブ",
	MoodRelaxed:     "リラックス",
}

// MoodEmojiMap 気分IDから絵文字へのマッピング
var MoodEmojiMap = map[string]string{
	MoodPeaceful:    "😌",
	MoodAdventurous: "🧗",
	MoodSocial:      "🧍",
	MoodSad:         "😔",
	MoodHungry:      "😋",
	MoodEnergetic:   "⚡",
	MoodCreative:    "🎨",
	MoodRelaxed:     "🧘",
}

// GetMoodJapaneseName 気分IDから日本語名を取得する
func GetMoodJapaneseName(mood string) string {
	if name, ok := MoodNameMap[mood]; ok {
		return name
	}
	return mood // デフォルトはそのまま返す
}

// GetAllMoods 全気分の一覧を取得する
func GetAllMoods() []string {
	return []string{
		MoodPeaceful,
		MoodAdventurous,
		MoodSocial,
		MoodSad,
		MoodHungry,
		MoodEnergetic,
		MoodCreative,
		MoodRelaxed,
	}
}

// IsKnownMood 認識可能な気分かどうかを判定する
func IsKnownMood(mood string) bool {
	_, ok := MoodPlaceTypesMap[mood]
	return ok
}

// SearchRadiusConstants 検索半径に関する定数（メートル）
const (
	DefaultSearchRadius = 5000  // 初期検索半径
	SearchRadiusStep    = 5000  // 拡大1回あたりの増分
	MaxSearchRadius     = 15000 // 検索半径の上限
)

// PipelineConstants 検索パイプラインに関する定数
const (
	PlacesPerPage       = 10 // 1ページあたりの表示件数
	MaxDetailFetchCount = 50 // 詳細取得を行う候補数の上限
	MaxAutoRetries      = 2  // 自動リトライの回数上限（初回を含め最大3回試行）
)

// SortOptionConstants 並び替えキーの定数
const (
	SortRelevance  = "relevance"  // 品質スコア降順
	SortRating     = "rating"     // 評価値降順
	SortDistance   = "distance"   // 距離昇順
	SortPopularity = "popularity" // 評価件数降順
)

// IsValidSortOption 有効な並び替えキーかどうかを判定する
func IsValidSortOption(option string) bool {
	switch option {
	case SortRelevance, SortRating, SortDistance, SortPopularity:
		return true
	}
	return false
}

// LoadingPhaseConstants パイプラインのローディングフェーズ定数。
// maps → weather → places → done の順に遷移する
const (
	PhaseMaps    = "maps"
	PhaseWeather = "weather"
	PhasePlaces  = "places"
	PhaseDone    = "done"
)

// OutdoorPlaceKeywords 悪天候時に除外する屋外スポットのキーワード（部分一致）
var OutdoorPlaceKeywords = []string{"park", "hiking", "beach", "outdoor"}
