package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/davidc77/devhub/internal/auth"
	"github.com/davidc77/devhub/internal/config"
	"github.com/davidc77/devhub/internal/database"
	postgresrepo "github.com/davidc77/devhub/internal/repository/postgres"
	"github.com/davidc77/devhub/internal/service"
	"github.com/davidc77/devhub/internal/transport/http/handlers"
	"github.com/davidc77/devhub/internal/transport/http/middleware"
	"github.com/davidc77/devhub/internal/transport/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Database
	if err := database.Migrate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Token codec
	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	profileRepo := postgresrepo.NewProfileRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, codec)
	profileService := service.NewProfileService(profileRepo, userRepo, postRepo)
	postService := service.NewPostService(postRepo, userRepo)

	// WebSocket feed
	hub := ws.NewHub()
	go hub.Run()
	postService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	postHandler := handlers.NewPostHandler(postService)

	// Auth middleware
	authGate := middleware.Auth(codec)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("GET /api/v1/auth/me", authGate(http.HandlerFunc(authHandler.Me)))

	// Profiles
	mux.HandleFunc("GET /api/v1/profiles", profileHandler.List)
	mux.HandleFunc("GET /api/v1/profiles/user/{id}", profileHandler.GetByUser)
	mux.Handle("GET /api/v1/profiles/me", authGate(http.HandlerFunc(profileHandler.Me)))
	mux.Handle("POST /api/v1/profiles", authGate(http.HandlerFunc(profileHandler.Upsert)))
	mux.Handle("DELETE /api/v1/profiles", authGate(http.HandlerFunc(profileHandler.DeleteAccount)))
	mux.Handle("PUT /api/v1/profiles/experience", authGate(http.HandlerFunc(profileHandler.AddExperience)))
	mux.Handle("DELETE /api/v1/profiles/experience/{id}", authGate(http.HandlerFunc(profileHandler.RemoveExperience)))
	mux.Handle("PUT /api/v1/profiles/education", authGate(http.HandlerFunc(profileHandler.AddEducation)))
	mux.Handle("DELETE /api/v1/profiles/education/{id}", authGate(http.HandlerFunc(profileHandler.RemoveEducation)))

	// Posts
	mux.Handle("POST /api/v1/posts", authGate(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /api/v1/posts", authGate(http.HandlerFunc(postHandler.List)))
	mux.Handle("GET /api/v1/posts/{id}", authGate(http.HandlerFunc(postHandler.Get)))
	mux.Handle("DELETE /api/v1/posts/{id}", authGate(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("PUT /api/v1/posts/{id}/like", authGate(http.HandlerFunc(postHandler.Like)))
	mux.Handle("PUT /api/v1/posts/{id}/unlike", authGate(http.HandlerFunc(postHandler.Unlike)))
	mux.Handle("POST /api/v1/posts/{id}/comments", authGate(http.HandlerFunc(postHandler.AddComment)))
	mux.Handle("DELETE /api/v1/posts/{id}/comments/{cid}", authGate(http.HandlerFunc(postHandler.RemoveComment)))

	// Live feed
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, codec))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
