package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/shop2008/movie-recommendation-app/internal/catalog"
	"github.com/shop2008/movie-recommendation-app/internal/config"
	"github.com/shop2008/movie-recommendation-app/internal/handler"
	"github.com/shop2008/movie-recommendation-app/internal/metadata"
	"github.com/shop2008/movie-recommendation-app/internal/middleware"
	"github.com/shop2008/movie-recommendation-app/internal/recommend"
	"github.com/shop2008/movie-recommendation-app/internal/store"
	storemongo "github.com/shop2008/movie-recommendation-app/internal/store/mongo"
)

func main() {
	godotenv.Load(".env.local")

	env := config.NewEnv()
	log.Printf("[INFO] Starting movie recommendation server env=%s", env.AppEnv)

	if env.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	var recommender handler.Recommender
	if env.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: env.GeminiAPIKey})
		if err != nil {
			log.Printf("[WARN] Failed to initialize Gemini client: %v", err)
			log.Println("[WARN] Recommendations will be unavailable")
		} else {
			modelName := env.GeminiModel
			if modelName == "" {
				modelName = recommend.DefaultModel
			}
			completion := recommend.NewGeminiCompletionClient(client, modelName)
			omdb := metadata.NewOMDBClient(env.OMDBAPIKey, nil)
			recommender = recommend.NewRecommender(completion, omdb)
			log.Printf("[INFO] Recommendation pipeline ready model=%s", modelName)
		}
	} else {
		log.Println("[WARN] GEMINI_API_KEY not set, recommendations will be unavailable")
	}

	var likeStore *store.LikeRepository
	if env.MongoURI != "" {
		client, err := storemongo.NewClient(env.MongoURI)
		if err == nil {
			connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err = client.Connect(connectCtx)
			cancel()
		}
		if err != nil {
			log.Printf("[WARN] Failed to connect to MongoDB: %v", err)
			log.Println("[WARN] Liked movies will be unavailable")
		} else {
			likeStore = store.NewLikeRepository(client.Database(env.MongoDatabase), store.CollectionLikes)
			log.Printf("[INFO] Document store ready database=%s", env.MongoDatabase)
		}
	}

	metadataTimeout := time.Duration(env.MetadataTimeoutSec) * time.Second
	completionTimeout := time.Duration(env.CompletionTimeoutSec) * time.Second

	omdbHandler := handler.NewMovieDetailsHandler(metadata.NewOMDBClient(env.OMDBAPIKey, nil), metadataTimeout)
	catalogHandler := handler.NewCatalogHandler(catalog.NewTMDBClient(env.TMDBAPIKey, nil), metadataTimeout)
	likeHandler := newLikeHandler(likeStore, metadataTimeout)
	healthHandler := handler.NewHealthHandler(recommender != nil, likeStore != nil)

	r := gin.Default()

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	allowedOrigins := []string{}
	if gin.Mode() != gin.ReleaseMode {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}
	allowedOrigins = append(allowedOrigins, env.Origins()...)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept-Language"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	ipLimiter := middleware.NewIPRateLimiter(rate.Limit(env.RateLimitPerSecond), env.RateLimitBurst)
	dailyQuota := middleware.NewDailyQuota(env.DailyQuota)
	log.Printf("[INFO] Rate limiting enabled per_second=%.2f burst=%d daily=%d",
		env.RateLimitPerSecond, env.RateLimitBurst, env.DailyQuota)

	// Health check endpoints (outside /api group, no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Readiness)

	api := r.Group("/api")
	{
		api.GET("/movie-details", omdbHandler.Handle)
		api.GET("/default-movie-lists", catalogHandler.Handle)

		api.GET("/users/:userId/likes", likeHandler.List)
		api.POST("/users/:userId/likes", likeHandler.Create)
		api.DELETE("/users/:userId/likes/:title", likeHandler.Delete)

		limited := middleware.RateLimitMiddleware(ipLimiter, dailyQuota)
		if recommender != nil {
			recHandler := handler.NewRecommendationHandler(recommender, likesSource(likeStore), completionTimeout)
			api.POST("/generate-movie-recommendations", limited, recHandler.Handle)
		} else {
			api.POST("/generate-movie-recommendations", limited, func(c *gin.Context) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recommendations are not available"})
			})
		}
	}

	if env.AppEnv == "production" {
		r.Static("/assets", "/app/static/assets")

		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.File("/app/static/index.html")
		})
	}

	log.Printf("[INFO] Server ready port=%s allowed_origins=%v", env.Port, allowedOrigins)
	if err := r.Run(":" + env.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}

// newLikeHandler keeps the nil repository from turning into a non-nil
// interface inside the handler.
func newLikeHandler(repo *store.LikeRepository, timeout time.Duration) *handler.LikeHandler {
	if repo == nil {
		return handler.NewLikeHandler(nil, timeout)
	}
	return handler.NewLikeHandler(repo, timeout)
}

func likesSource(repo *store.LikeRepository) handler.LikedTitlesSource {
	if repo == nil {
		return nil
	}
	return repo
}
