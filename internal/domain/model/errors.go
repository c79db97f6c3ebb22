package model

import "errors"

// ErrorType アプリケーションエラーの分類
type ErrorType string

const (
	ErrorTypeLocation  ErrorType = "location"   // 座標入力の欠落・不正
	ErrorTypeWeather   ErrorType = "weather"    // 天気APIの失敗
	ErrorTypeAPI       ErrorType = "api"        // 検索API・詳細取得の失敗
	ErrorTypeNoResults ErrorType = "no_results" // 検索結果ゼロ
	ErrorTypeMaps      ErrorType = "maps"       // マッププロバイダの読み込み失敗
)

// AppError 種別タグ付きのアプリケーションエラー。
// プレゼンテーション層は Type と Retryable のみで分岐できる
type AppError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
}

func (e *AppError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// NewAppError 新しいAppErrorを生成する
func NewAppError(errType ErrorType, message string, retryable bool) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Retryable: retryable,
	}
}

// ToAppError 任意のエラーをAppErrorに変換する。
// AppError以外の生のエラーはリトライ可能なapiエラーとして扱う
func ToAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewAppError(ErrorTypeAPI, err.Error(), true)
}
