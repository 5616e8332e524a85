package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/linkhive/server/internal/cache"
	"github.com/linkhive/server/internal/logger"
)

// per-client request budget across the whole API
var requestRate = limiter.Rate{
	Period: 1 * time.Minute,
	Limit:  120,
}

func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	})
}

// RateLimitMiddleware counts requests in Redis so limits hold across
// replicas; without Redis it falls back to a per-process store
func RateLimitMiddleware(c *cache.Cache) gin.HandlerFunc {
	store := newLimiterStore(c)
	return mgin.NewMiddleware(limiter.New(store, requestRate))
}

func newLimiterStore(c *cache.Cache) limiter.Store {
	if c == nil {
		return memory.NewStore()
	}

	store, err := sredis.NewStoreWithOptions(c.Client(), limiter.StoreOptions{
		Prefix: "ratelimit",
	})
	if err != nil {
		logger.ErrorErr(err, "failed to create redis rate limit store, using in-memory store")
		return memory.NewStore()
	}

	return store
}
