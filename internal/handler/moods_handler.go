package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"WhereToGo-App/internal/domain/model"
)

// MoodsHandler は気分選択グリッド用のメタデータAPIのハンドラー
type MoodsHandler struct{}

// NewMoodsHandler は新しいMoodsHandlerインスタンスを作成
func NewMoodsHandler() *MoodsHandler {
	return &MoodsHandler{}
}

// GetMoods は選択可能な気分の一覧を返すエンドポイント
// GET /moods
func (h *MoodsHandler) GetMoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"moods": model.GetMoodInfos(),
	})
}
