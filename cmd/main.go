package main

import (
	"log"
	"os"
	"time"

	"github.com/Akotch/ig-preview/internal/handler"
	"github.com/Akotch/ig-preview/internal/service"
	"github.com/Akotch/ig-preview/internal/storage/postgres"
	"github.com/Akotch/ig-preview/internal/storage/s3"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Загрузка переменных окружения (local)
	if err := godotenv.Load(".env.local"); err != nil {
		log.Println("Error loading .env.local file")
	}

	// БД
	db := postgres.InitDB()

	// Объектное хранилище
	s3Storage, err := s3.NewS3Storage(s3.S3Config{
		Region:          os.Getenv("S3_REGION"),
		Bucket:          os.Getenv("S3_BUCKET"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		Endpoint:        os.Getenv("S3_ENDPOINT"),
	})
	if err != nil {
		log.Fatalf("failed to init S3 storage: %v", err)
	}

	// Сервисы
	userService := service.NewUserService(db)
	feedService := service.NewFeedService(db)
	photoService := service.NewPhotoService(db, s3Storage)
	previewService := service.NewPreviewService(db, envDuration("PREVIEW_TTL", service.DefaultPreviewTTL))
	galleryService := service.NewGalleryService(previewService, db, s3Storage,
		envDuration("SIGNED_URL_TTL", service.DefaultSignedURLTTL))

	// Обработчик
	h := handler.NewHandler(userService, feedService, photoService,
		previewService, galleryService, os.Getenv("PUBLIC_BASE_URL"))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// Логируем в консоль
		if err, ok := recovered.(string); ok {
			log.Printf("panic recovered: %s\n", err)
		} else if err, ok := recovered.(error); ok {
			log.Printf("panic recovered: %v\n", err)
		} else {
			log.Printf("panic recovered: unknown error: %v\n", recovered)
		}
		// Отправляем 500 клиенту
		c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
	}))

	// Настройка CORS: preview-страница и админка могут жить на любых
	// доменах, авторизация идет заголовком, без cookies. Preflight
	// отвечает 200 с пустым телом.
	r.Use(cors.New(cors.Config{
		AllowOrigins:              []string{"*"},
		AllowMethods:              []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:             []string{"Content-Length"},
		OptionsResponseStatusCode: 200,
		MaxAge:                    12 * time.Hour,
	}))

	// Авторизация
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	// Профиль
	profile := r.Group("/profile")
	{
		profile.Use(h.AuthMiddleware())
		profile.GET("/", h.GetProfile)
	}

	// Админка: лента и фотографии
	feed := r.Group("/feed")
	{
		feed.Use(h.AuthMiddleware())
		feed.GET("", h.GetFeed)
		feed.POST("/:id/photos", h.UploadFiles)
		feed.GET("/:id/photos", h.GetFeedPhotos)
		feed.PUT("/:id/photos/order", h.ReorderPhotos)
		feed.POST("/:id/preview", h.GeneratePreviewLink)
	}
	photos := r.Group("/photos")
	{
		photos.Use(h.AuthMiddleware())
		photos.PATCH("/:id", h.UpdatePhoto)
		photos.DELETE("/:id", h.DeletePhoto)
	}

	// Публичные точки входа: две тонкие обертки над одним разрешением токена
	r.GET("/api/signed-urls", h.SignedURLs)
	r.GET("/functions/signed-urls", h.SignedURLs)
	r.GET("/preview/:token", h.PreviewPage)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(r.Run(":" + port))
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}
