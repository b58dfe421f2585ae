package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"fixuBack/internal/config"
	"fixuBack/internal/handlers"
	"fixuBack/internal/leaderboard"
	"fixuBack/internal/repositories"
	"fixuBack/internal/services"
	"fixuBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	signingKey   string
	tokenManager *utils.Manager
	progressHub  *ProgressHub

	userRepo *repositories.UserRepository

	userHandler        *handlers.UserHandler
	itemHandler        *handlers.ItemHandler
	offerHandler       *handlers.OfferHandler
	jobHandler         *handlers.JobHandler
	reviewHandler      *handlers.ReviewHandler
	reputationHandler  *handlers.ReputationHandler
	progressionHandler *handlers.ProgressionHandler
	badgeHandler       *handlers.BadgeHandler
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	storage := utils.NewStorage(
		cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket,
		cfg.Storage.Region, cfg.Storage.Endpoint, cfg.Storage.PublicURL,
	)
	board := leaderboard.NewBoard(rdb)
	hub := NewProgressHub()

	// Repositories
	userRepo := &repositories.UserRepository{DB: db}
	itemRepo := &repositories.ItemRepository{DB: db}
	offerRepo := &repositories.OfferRepository{DB: db}
	jobRepo := &repositories.JobRepository{DB: db}
	reviewRepo := &repositories.ReviewRepository{DB: db}
	reputationRepo := &repositories.ReputationRepository{DB: db}
	progressionRepo := &repositories.ProgressionRepository{DB: db}
	badgeRepo := &repositories.BadgeRepository{DB: db}

	// Services
	userService := &services.UserService{UserRepo: userRepo, TokenManager: tokenManager}
	itemService := &services.ItemService{ItemRepo: itemRepo, Storage: storage}
	offerService := &services.OfferService{OfferRepo: offerRepo, ItemRepo: itemRepo}
	jobService := &services.JobService{JobRepo: jobRepo}
	reputationService := &services.ReputationService{ReputationRepo: reputationRepo}
	progressionService := &services.ProgressionService{ProgressionRepo: progressionRepo, Board: board, Events: hub}
	badgeService := &services.BadgeService{BadgeRepo: badgeRepo, UserRepo: userRepo, Events: hub}
	reviewService := &services.ReviewService{ReviewRepo: reviewRepo, ReputationService: reputationService}

	return &application{
		errorLog:     errorLog,
		infoLog:      infoLog,
		db:           db,
		signingKey:   cfg.Auth.SigningKey,
		tokenManager: tokenManager,
		progressHub:  hub,
		userRepo:     userRepo,

		userHandler:        &handlers.UserHandler{Service: userService},
		itemHandler:        &handlers.ItemHandler{Service: itemService},
		offerHandler:       &handlers.OfferHandler{Service: offerService},
		jobHandler:         &handlers.JobHandler{Service: jobService},
		reviewHandler:      &handlers.ReviewHandler{Service: reviewService},
		reputationHandler:  &handlers.ReputationHandler{Service: reputationService},
		progressionHandler: &handlers.ProgressionHandler{Service: progressionService},
		badgeHandler:       &handlers.BadgeHandler{Service: badgeService},
	}, nil
}
