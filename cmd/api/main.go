package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/handlers"
	authmw "github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/middleware"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/mailer"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/repository"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/service"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/config"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/database"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/events"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/logger"
	mw "github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/middleware"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
	if err != nil {
		logger.Error("Failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.Mongo.Database)

	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Repositories get their collection handles here; nothing below this
	// point touches the client directly.
	userRepo := repository.NewUserRepository(db.Collection(cfg.Mongo.UserCollection))
	biodataRepo := repository.NewBiodataRepository(db.Collection(cfg.Mongo.BiodataCollection))
	contactRepo := repository.NewContactRepository(db.Collection(cfg.Mongo.ContactCollection))
	storyRepo := repository.NewStoryRepository(db.Collection(cfg.Mongo.StoriesCollection))

	mail := mailer.New(cfg.Email)

	userService := service.NewUserService(userRepo, eventBus)
	biodataService := service.NewBiodataService(biodataRepo)
	contactService := service.NewContactService(contactRepo, biodataRepo, eventBus, mail)
	premiumService := service.NewPremiumService(userRepo, biodataRepo, eventBus, mail)
	favoritesService := service.NewFavoritesService(userRepo, biodataRepo)
	storyService := service.NewStoryService(storyRepo)
	paymentService := service.NewPaymentService(cfg.Stripe.SecretKey, cfg.Stripe.Currency, eventBus)

	h := handlers.New(userService, biodataService, contactService, premiumService,
		favoritesService, storyService, paymentService, cfg)

	requireAuth := authmw.RequireAuth(cfg.Auth.JWTSecret)
	requireAdmin := authmw.RequireAdmin(userRepo)

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("wedmate-api"))
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Public routes
	r.Post("/jwt", h.IssueToken)
	r.Post("/create-payment-intent", h.CreatePaymentIntent)
	r.Get("/biodatas", h.ListBiodatas)
	r.Get("/biodatas/premium", h.ListPremiumBiodatas)
	r.Get("/related-biodatas", h.ListRelatedBiodatas)
	r.Get("/biodata/{id}", h.GetBiodata)
	r.Get("/user/biodata", h.GetOwnBiodata)
	r.Get("/last-biodata-id", h.LastBiodataID)
	r.Post("/new-biodata", h.CreateBiodata)
	r.Put("/update/biodata/{email}", h.UpdateBiodata)
	r.Get("/success-stories", h.ListStories)
	r.Post("/got-married", h.SubmitStory)
	r.Get("/single-user/{email}", h.GetUserByEmail)
	r.Get("/users-new", h.CheckUserExists)
	r.Post("/users", h.CreateUser)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/contact-requests", h.InitiateContact)
		r.Get("/requested-contacts", h.ListRequestedContacts)
		r.Post("/premium-request", h.RequestPremium)
		r.Post("/favorites", h.AddFavorite)
		r.Get("/favorites/{email}", h.ListFavorites)
		r.Delete("/favorites", h.RemoveFavorite)
		r.Get("/users/admin/{email}", h.CheckAdmin)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(requireAdmin)
		r.Get("/contact-requests-pending", h.ListPendingContacts)
		r.Patch("/contact-requests-approve/{id}", h.ApproveContact)
		r.Delete("/delete-contacts/{id}", h.DiscardContact)
		r.Get("/premium-requests", h.ListPremiumRequests)
		r.Patch("/users/premium", h.ApprovePremium)
		r.Patch("/users/make-premium/{email}", h.ApprovePremiumByEmail)
		r.Get("/all-users", h.ListUsers)
		r.Patch("/users/{id}/make-admin", h.PromoteToAdmin)
		r.Delete("/users/{id}", h.DeleteUser)
		r.Delete("/success-stories/{id}", h.DeleteStory)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down wedmate api...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting wedmate api", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
