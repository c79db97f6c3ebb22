package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"WhereToGo-App/internal/domain/model"
	"WhereToGo-App/internal/usecase"
)

// DiscoverHandler はスポット検索APIのハンドラー
type DiscoverHandler struct {
	discoverUseCase usecase.DiscoverUseCase
}

// NewDiscoverHandler は新しいDiscoverHandlerインスタンスを作成
func NewDiscoverHandler(discoverUseCase usecase.DiscoverUseCase) *DiscoverHandler {
	return &DiscoverHandler{
		discoverUseCase: discoverUseCase,
	}
}

// PostDiscover は新しい検索セッションを開始するエンドポイント
// POST /discover
func (h *DiscoverHandler) PostDiscover(c *gin.Context) {
	var req model.DiscoverRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.discoverUseCase.StartDiscovery(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// 成功レスポンス（パイプラインのエラーはレスポンスのerrorフィールドに含まれる）
	c.JSON(http.StatusOK, response)
}

// GetDiscoverResult は検索セッションの現在の結果を取得するエンドポイント
// GET /discover/:id
func (h *DiscoverHandler) GetDiscoverResult(c *gin.Context) {
	response, err := h.discoverUseCase.GetResult(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// PostRetry は「もう一度試す」操作のエンドポイント
// POST /discover/:id/retry
func (h *DiscoverHandler) PostRetry(c *gin.Context) {
	response, err := h.discoverUseCase.Retry(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// PostExpandRadius は検索範囲を拡大して再検索するエンドポイント
// POST /discover/:id/expand
func (h *DiscoverHandler) PostExpandRadius(c *gin.Context) {
	response, err := h.discoverUseCase.ExpandRadius(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// sortRequest 並び替え変更リクエスト
type sortRequest struct {
	SortOption string `json:"sort_option"`
}

// PutSortOption は並び替えキーを変更するエンドポイント
// PUT /discover/:id/sort
func (h *DiscoverHandler) PutSortOption(c *gin.Context) {
	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	response, err := h.discoverUseCase.ChangeSort(c.Param("id"), req.SortOption)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// PutPage はページを移動するエンドポイント
// PUT /discover/:id/page?page=N
func (h *DiscoverHandler) PutPage(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "pageは整数で指定してください",
		})
		return
	}

	response, ucErr := h.discoverUseCase.ChangePage(c.Param("id"), page)
	if ucErr != nil {
		h.respondError(c, ucErr)
		return
	}
	c.JSON(http.StatusOK, response)
}

// respondError はAppErrorの種別をHTTPステータスにマッピングして返す
func (h *DiscoverHandler) respondError(c *gin.Context, err error) {
	var appErr *model.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Type {
	case model.ErrorTypeLocation:
		status = http.StatusBadRequest
	case model.ErrorTypeNoResults:
		status = http.StatusNotFound
	case model.ErrorTypeWeather, model.ErrorTypeAPI, model.ErrorTypeMaps:
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{
		"error":     appErr.Message,
		"type":      appErr.Type,
		"retryable": appErr.Retryable,
	})
}
