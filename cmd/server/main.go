package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/moodmitra/moodmitra-backend/internal/analytics"
	"github.com/moodmitra/moodmitra-backend/internal/config"
	"github.com/moodmitra/moodmitra-backend/internal/database"
	"github.com/moodmitra/moodmitra-backend/internal/handlers"
	"github.com/moodmitra/moodmitra-backend/internal/middleware"
	"github.com/moodmitra/moodmitra-backend/internal/models"
	"github.com/moodmitra/moodmitra-backend/internal/routes"
	"github.com/moodmitra/moodmitra-backend/internal/services"
	"github.com/moodmitra/moodmitra-backend/internal/session"
	"github.com/moodmitra/moodmitra-backend/internal/store"
	"github.com/moodmitra/moodmitra-backend/pkg/utils"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Optional blob encryption at rest
	var cipher *utils.BlobCipher
	if cfg.EncryptionKey == "" {
		log.Println("⚠️  WARNING: ENCRYPTION_KEY not set. Persisted entries will be stored unencrypted.")
		log.Println("   To generate a key, run: openssl rand -base64 32")
	} else {
		var err error
		cipher, err = utils.NewBlobCipher(cfg.EncryptionKey)
		if err != nil {
			log.Printf("⚠️  WARNING: ENCRYPTION_KEY is invalid: %v", err)
			log.Println("   Persisted entries will be stored unencrypted.")
		} else {
			log.Println("✅ Encryption key configured")
		}
	}

	// Connect the configured storage backend
	kv := connectStorage(cfg)
	st := store.New(kv, cipher)

	// Live insights hub, fed by the session after every mutation
	hub := services.NewInsightsHub()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	sess := session.New(ctx, st, session.WithOnChange(func(h models.History) {
		payload, err := json.Marshal(handlers.InsightsResponse{
			Success: true,
			Data:    analytics.BuildPayload(h, time.Now()),
		})
		if err != nil {
			return
		}
		hub.Broadcast(payload)
	}))
	cancel()
	log.Printf("✅ History loaded: %d mood entries, %d journal entries", len(sess.Moods()), len(sess.Journals()))

	// Initialize Cloudinary service for avatar uploads
	var cloudinarySvc *services.CloudinaryService
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		var err error
		cloudinarySvc, err = services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Avatar uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Avatar uploads will not be available")
	}

	api := handlers.NewAPI(sess, hub, cloudinarySvc)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: security headers + in-process per-IP rate limiting.
	// Non-production: Redis-based rate limit only (passes through when
	// Redis is not connected).
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no rate limit concerns, trivial handler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, api)

	log.Printf("🚀 MoodMitra backend running on :%s (storage: %s)", cfg.Port, cfg.StorageBackend)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// connectStorage connects the substrate named by STORAGE_BACKEND and returns
// it as the store's key-value interface. Connection failures are fatal; a
// backend that cannot persist would silently violate the one-snapshot-write-
// per-mutation contract.
func connectStorage(cfg *config.Config) store.KV {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		log.Printf("Connecting to PostgreSQL...")
		if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
			log.Fatal("Failed to connect to PostgreSQL:", err)
		}
		kv, err := store.NewPostgresKV(database.PostgresDB)
		if err != nil {
			log.Fatal("Failed to initialize app_state table:", err)
		}
		return kv
	case config.BackendMongo:
		log.Printf("Connecting to MongoDB...")
		if err := database.ConnectMongo(cfg.MongoURI); err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		return store.NewMongoKV(database.DB)
	case config.BackendMemory:
		log.Println("⚠️  Using in-memory storage; state will not survive a restart")
		return store.NewMemoryKV()
	default:
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		return store.NewRedisKV(database.RedisClient)
	}
}
