package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
	"golang.org/x/time/rate"
)

const (
	RequestIDHeader   = "X-Request-ID"
	requestIDKey      = "requestId"
	rateLimiterSize   = 4096
	tooManyRequestMsg = "Too many requests"
)

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func requestLogger(logger out.LoggerPort) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		startedAt := time.Now()
		ctx.Next()

		logger.Info("http.request", out.LogFields{
			"requestId": ctx.GetString(requestIDKey),
			"method":    ctx.Request.Method,
			"path":      ctx.FullPath(),
			"status":    ctx.Writer.Status(),
			"clientIp":  ctx.ClientIP(),
			"duration":  time.Since(startedAt).String(),
		})
	}
}

func basicAuth(clients []config.ConfigBasicClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth || !isKnownClient(clients, username, password) {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Next()
	}
}

func isKnownClient(clients []config.ConfigBasicClient, username, password string) bool {
	known := false
	for _, client := range clients {
		userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1
		if userMatch && passMatch {
			known = true
		}
	}
	return known
}

// IPRateLimiter держит token bucket на каждый IP клиента.
// Самые давно не использованные IP вытесняются из LRU.
type IPRateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func NewIPRateLimiter(rps float64, burst int) (*IPRateLimiter, error) {
	limiters, err := lru.New[string, *rate.Limiter](rateLimiterSize)
	if err != nil {
		return nil, err
	}

	return &IPRateLimiter{
		limiters: limiters,
		limit:    rate.Limit(rps),
		burst:    burst,
	}, nil
}

func (l *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	if limiter, ok := l.limiters.Get(ip); ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	// Параллельный запрос мог добавить лимитер раньше
	if previous, ok, _ := l.limiters.PeekOrAdd(ip, limiter); ok {
		return previous
	}
	return limiter
}

func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.limiterFor(ctx.ClientIP()).Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, domain.ErrorEnvelope{
				Error: domain.ErrorBody{
					Code:    http.StatusTooManyRequests,
					Message: tooManyRequestMsg,
				},
			})
			return
		}

		ctx.Next()
	}
}
