package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/planora/planora-api/pkg/helpers"
)

// OpStats counts completed requests per route in Redis. This is
// operational accounting only: no request is ever served from Redis,
// and a dead Redis never blocks handling (CountOp is fail-open).
func OpStats(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		c.Next()
		op := c.Request.Method + " " + c.FullPath()
		if c.FullPath() == "" {
			return // unmatched route
		}
		helpers.CountOp(c.Request.Context(), rdb, op)
	}
}
