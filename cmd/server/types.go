package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/linkhive/server/internal/cache"
	"github.com/linkhive/server/internal/config"
	"github.com/linkhive/server/internal/feed"
	"github.com/linkhive/server/internal/metrics"
	"github.com/linkhive/server/internal/trending"
	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/collections"
	"github.com/linkhive/server/linkhive/creators"
	"github.com/linkhive/server/linkhive/engagement"
	"github.com/linkhive/server/linkhive/follows"
	"github.com/linkhive/server/linkhive/posts"
)

// holds all dependencies and state for the API server
type Server struct {
	db              *pgxpool.Pool
	config          *config.Config
	bookmarkRepo    *bookmarks.Repository
	postRepo        *posts.Repository
	collectionRepo  *collections.Repository
	followRepo      *follows.Repository
	engagementRepo  *engagement.Repository
	creatorRepo     *creators.Repository
	ranker          *feed.Ranker
	trendingService *trending.Service
	refresher       *trending.Refresher
	services        *Services
	router          *gin.Engine
}

// holds the shared infrastructure clients (Redis cache, Prometheus)
type Services struct {
	Cache     *cache.Cache
	Collector *metrics.Collector
	Registry  *prometheus.Registry
}
