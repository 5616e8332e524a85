package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linkhive/server/internal/config"
	"github.com/linkhive/server/internal/database"
	"github.com/linkhive/server/internal/feed"
	"github.com/linkhive/server/internal/trending"
	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/collections"
	"github.com/linkhive/server/linkhive/creators"
	"github.com/linkhive/server/linkhive/engagement"
	"github.com/linkhive/server/linkhive/follows"
	"github.com/linkhive/server/linkhive/posts"
)

// how often trending topics are recomputed from recent tag activity
const trendingRefreshInterval = 10 * time.Minute

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small for managed-Postgres pooler compatibility
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// PgBouncer in transaction mode doesn't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	bookmarkRepo := bookmarks.NewRepository(db)
	postRepo := posts.NewRepository(db)
	collectionRepo := collections.NewRepository(db)
	followRepo := follows.NewRepository(db)
	engagementRepo := engagement.NewRepository(db)
	creatorRepo := creators.NewRepository(db)

	services := InitializeServices(cfg)

	ranker := feed.NewRanker(bookmarkRepo, postRepo, collectionRepo, followRepo, engagementRepo)

	trendingService := trending.NewService(db, bookmarkRepo, collectionRepo, services.Cache)
	refresher := trending.NewRefresher(trendingService, trendingRefreshInterval, services.Collector)

	router := gin.Default()

	server := &Server{
		db:              db,
		config:          cfg,
		bookmarkRepo:    bookmarkRepo,
		postRepo:        postRepo,
		collectionRepo:  collectionRepo,
		followRepo:      followRepo,
		engagementRepo:  engagementRepo,
		creatorRepo:     creatorRepo,
		ranker:          ranker,
		trendingService: trendingService,
		refresher:       refresher,
		services:        services,
		router:          router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
