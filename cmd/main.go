package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"WhereToGo-App/internal/domain/service"
	"WhereToGo-App/internal/handler"
	"WhereToGo-App/internal/infrastructure/maps"
	"WhereToGo-App/internal/infrastructure/weather"
	"WhereToGo-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	googleMapsAPIKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	openWeatherAPIKey := os.Getenv("OPENWEATHERMAP_API_KEY")

	if googleMapsAPIKey == "" || openWeatherAPIKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数:")
		fmt.Println("  - GOOGLE_MAPS_API_KEY")
		fmt.Println("  - OPENWEATHERMAP_API_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	// プロバイダの初期化
	placesProvider := maps.NewGooglePlacesProvider(googleMapsAPIKey)
	weatherClient := weather.NewOpenWeatherClient(openWeatherAPIKey)

	// サービス・ユースケースの組み立て
	discoveryService := service.NewPlaceDiscoveryService(placesProvider, weatherClient)
	rankingService := service.NewPlaceRankingService()
	discoverUseCase := usecase.NewDiscoverUseCase(discoveryService, rankingService)

	// ハンドラーの初期化
	discoverHandler := handler.NewDiscoverHandler(discoverUseCase)
	moodsHandler := handler.NewMoodsHandler()

	// ルーティングの設定
	r := gin.Default()
	r.GET("/api/health", healthHandler)
	r.GET("/moods", moodsHandler.GetMoods)
	r.POST("/discover", discoverHandler.PostDiscover)
	r.GET("/discover/:id", discoverHandler.GetDiscoverResult)
	r.POST("/discover/:id/retry", discoverHandler.PostRetry)
	r.POST("/discover/:id/expand", discoverHandler.PostExpandRadius)
	r.PUT("/discover/:id/sort", discoverHandler.PutSortOption)
	r.PUT("/discover/:id/page", discoverHandler.PutPage)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("WhereToGo-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "WhereToGo-App",
	})
}
