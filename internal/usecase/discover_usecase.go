package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"WhereToGo-App/internal/domain/model"
	"WhereToGo-App/internal/domain/service"
)

// DiscoverUseCase はスポット検索の外側のオーケストレーションを担う。
// セッション管理、自動リトライポリシー、世代ガード、ユーザー操作
// （再試行・半径拡大・並び替え・ページ移動）のエントリーポイント
type DiscoverUseCase interface {
	// StartDiscovery は新しい検索セッションを開始してパイプラインを実行する
	StartDiscovery(ctx context.Context, req *model.DiscoverRequest) (*model.DiscoverResponse, error)

	// GetResult は指定セッションの現在の結果を取得する
	GetResult(sessionID string) (*model.DiscoverResponse, error)

	// Retry はリトライカウンタ・フォールバックフラグ・エラーをリセットして再検索する
	Retry(ctx context.Context, sessionID string) (*model.DiscoverResponse, error)

	// ExpandRadius は検索半径を1段階拡大して再検索する
	ExpandRadius(ctx context.Context, sessionID string) (*model.DiscoverResponse, error)

	// ChangeSort は並び替えキーを変更する（ページは1に戻る）
	ChangeSort(sessionID string, sortOption string) (*model.DiscoverResponse, error)

	// ChangePage はページを移動する。範囲外への移動は何もしない
	ChangePage(sessionID string, page int) (*model.DiscoverResponse, error)
}

// sessionEntry はセッションと、その状態の読み書きを直列化するロックの組
type sessionEntry struct {
	mu      sync.Mutex
	session *model.DiscoverySession
}

type discoverUseCaseImpl struct {
	discoveryService service.PlaceDiscoveryService
	rankingService   service.PlaceRankingService

	mu       sync.Mutex
	sessions map[string]*sessionEntry

	retryDelay time.Duration
}

// NewDiscoverUseCase は新しいDiscoverUseCaseインスタンスを作成
func NewDiscoverUseCase(discoveryService service.PlaceDiscoveryService, rankingService service.PlaceRankingService) DiscoverUseCase {
	return &discoverUseCaseImpl{
		discoveryService: discoveryService,
		rankingService:   rankingService,
		sessions:         make(map[string]*sessionEntry),
		retryDelay:       time.Second,
	}
}

// StartDiscovery は新しい検索セッションを開始してパイプラインを実行する。
// 座標が欠けている・不正な場合は即座にlocationエラー（リトライ不可）
func (u *discoverUseCaseImpl) StartDiscovery(ctx context.Context, req *model.DiscoverRequest) (*model.DiscoverResponse, error) {
	userLocation, ok := model.ParseLatLng(req.Lat, req.Lng)
	if !ok {
		return nil, model.NewAppError(model.ErrorTypeLocation, "位置情報が指定されていません", false)
	}

	session := model.NewDiscoverySession(uuid.NewString(), req.Mood, userLocation)
	entry := &sessionEntry{session: session}

	u.mu.Lock()
	u.sessions[session.SessionID] = entry
	u.mu.Unlock()

	log.Printf("🚀 スポット検索開始 (セッション: %s, 気分: %s)", session.SessionID, session.Mood)
	u.runPipeline(ctx, entry)
	return u.buildResponse(entry), nil
}

// GetResult は指定セッションの現在の結果を取得する
func (u *discoverUseCaseImpl) GetResult(sessionID string) (*model.DiscoverResponse, error) {
	entry, err := u.getEntry(sessionID)
	if err != nil {
		return nil, err
	}
	return u.buildResponse(entry), nil
}

// Retry は手動の「もう一度試す」操作。
// リトライカウンタ・フォールバックフラグ・エラー状態をリセットしてStep 1から再実行する
func (u *discoverUseCaseImpl) Retry(ctx context.Context, sessionID string) (*model.DiscoverResponse, error) {
	entry, err := u.getEntry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	entry.session.LastError = nil
	entry.session.RetryCount = 0
	entry.session.UsedFallback = false
	entry.mu.Unlock()

	log.Printf("🔄 手動リトライ (セッション: %s)", sessionID)
	u.runPipeline(ctx, entry)
	return u.buildResponse(entry), nil
}

// ExpandRadius は検索半径を1段階拡大してから再検索する。上限到達時は拡大せず再検索のみ行う
func (u *discoverUseCaseImpl) ExpandRadius(ctx context.Context, sessionID string) (*model.DiscoverResponse, error) {
	entry, err := u.getEntry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	if entry.session.Radius < model.MaxSearchRadius {
		entry.session.Radius += model.SearchRadiusStep
	}
	entry.session.LastError = nil
	entry.session.RetryCount = 0
	entry.session.UsedFallback = false
	radius := entry.session.Radius
	entry.mu.Unlock()

	log.Printf("🔄 検索範囲を%dmに拡大して再検索 (セッション: %s)", radius, sessionID)
	u.runPipeline(ctx, entry)
	return u.buildResponse(entry), nil
}

// ChangeSort は並び替えキーを変更する。無効なキーはエラー、変更時はページを1に戻す
func (u *discoverUseCaseImpl) ChangeSort(sessionID string, sortOption string) (*model.DiscoverResponse, error) {
	if !model.IsValidSortOption(sortOption) {
		return nil, model.NewAppError(model.ErrorTypeAPI, "無効な並び替えキーです: "+sortOption, false)
	}

	entry, err := u.getEntry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	entry.session.SortOption = sortOption
	entry.session.CurrentPage = 1
	entry.mu.Unlock()

	return u.buildResponse(entry), nil
}

// ChangePage はページを移動する。範囲外 (1未満・最終ページ超過) への移動は何もしない
func (u *discoverUseCaseImpl) ChangePage(sessionID string, page int) (*model.DiscoverResponse, error) {
	entry, err := u.getEntry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	session := entry.session
	ranked := u.rankingService.Rank(session.Places, session.Weather, session.SortOption)
	totalPages := u.rankingService.TotalPages(len(ranked))
	if page >= 1 && page <= totalPages {
		session.CurrentPage = page
	}
	entry.mu.Unlock()

	return u.buildResponse(entry), nil
}

// getEntry はセッションIDからエントリを取得する
func (u *discoverUseCaseImpl) getEntry(sessionID string) (*sessionEntry, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	entry, ok := u.sessions[sessionID]
	if !ok {
		return nil, model.NewAppError(model.ErrorTypeNoResults, "検索セッションが見つかりません: "+sessionID, false)
	}
	return entry, nil
}

// runPipeline はパイプライン1回分（自動リトライ込み）を実行する。
// セッション本体ではなく実行用の複製に対してパイプラインを走らせ、
// 世代が一致する場合のみ結果をセッションへ反映することで、
// 追い越された古い実行が新しい状態を上書きしないようにする
func (u *discoverUseCaseImpl) runPipeline(ctx context.Context, entry *sessionEntry) {
	entry.mu.Lock()
	entry.session.Generation++
	generation := entry.session.Generation
	run := entry.session.CloneForRun()
	entry.mu.Unlock()

	for {
		err := u.discoveryService.Discover(ctx, run)
		if err == nil {
			u.commitRun(entry, generation, run, nil)
			return
		}

		appErr := model.ToAppError(err)
		if !appErr.Retryable || run.RetryCount >= model.MaxAutoRetries {
			// リトライ不可、または自動リトライの上限に到達
			u.commitRun(entry, generation, run, appErr)
			return
		}

		run.RetryCount++
		log.Printf("🔁 自動リトライ (%d/%d): %s", run.RetryCount, model.MaxAutoRetries, appErr.Message)

		select {
		case <-ctx.Done():
			u.commitRun(entry, generation, run, appErr)
			return
		case <-time.After(u.retryDelay):
		}

		// 世代チェック: より新しい実行に追い越されていたら中断する
		entry.mu.Lock()
		superseded := entry.session.Generation != generation
		entry.mu.Unlock()
		if superseded {
			log.Printf("⚠️ 古いパイプライン実行を中断 (世代 %d)", generation)
			return
		}
	}
}

// commitRun は実行結果をセッションへ反映する。世代が一致しない場合は破棄する
func (u *discoverUseCaseImpl) commitRun(entry *sessionEntry, generation int64, run *model.DiscoverySession, appErr *model.AppError) {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	session := entry.session
	if session.Generation != generation {
		log.Printf("⚠️ 古い検索結果を破棄 (世代 %d != %d)", generation, session.Generation)
		return
	}

	session.Phase = run.Phase
	session.Radius = run.Radius
	session.UsedFallback = run.UsedFallback
	session.RetryCount = run.RetryCount
	session.Weather = run.Weather
	session.LastError = appErr
	if appErr == nil {
		session.Places = run.Places
		session.CurrentPage = run.CurrentPage
	}
}

// buildResponse は現在のセッション状態からレスポンスを組み立てる。
// フィルタ・並び替え・ページネーションはここで毎回適用される
func (u *discoverUseCaseImpl) buildResponse(entry *sessionEntry) *model.DiscoverResponse {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	session := entry.session
	ranked := u.rankingService.Rank(session.Places, session.Weather, session.SortOption)
	pagePlaces, totalPages := u.rankingService.Paginate(ranked, session.CurrentPage)

	response := &model.DiscoverResponse{
		SessionID:    session.SessionID,
		Mood:         session.Mood,
		Phase:        session.Phase,
		Weather:      session.Weather,
		Error:        session.LastError,
		Places:       pagePlaces,
		TotalPlaces:  len(ranked),
		TotalPages:   totalPages,
		CurrentPage:  session.CurrentPage,
		SortOption:   session.SortOption,
		RadiusMeters: session.Radius,
	}
	if session.Weather != nil {
		response.Recommendation = session.Weather.Recommendation()
	}
	return response
}
