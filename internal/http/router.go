// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, idempotency, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/dropforge/catalog-bot/docs"
	"github.com/dropforge/catalog-bot/internal/config"
	"github.com/dropforge/catalog-bot/internal/domain"
	"github.com/dropforge/catalog-bot/internal/gist"
	"github.com/dropforge/catalog-bot/internal/http/handlers"
	"github.com/dropforge/catalog-bot/internal/http/middleware"
	"github.com/dropforge/catalog-bot/internal/repo"
	"github.com/dropforge/catalog-bot/internal/secrets"
	"github.com/dropforge/catalog-bot/internal/services"
)

// guildStoreShim adapts the repository free functions to the GuildStore /
// ConfigStore interfaces expected by the services and sync layers. Keeps
// both decoupled from the concrete repo package while reusing its functions.
type guildStoreShim struct{ db *gorm.DB }

func (s guildStoreShim) GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
	return repo.GetGuildConfig(ctx, s.db, guildID)
}

func (s guildStoreShim) UpsertGuildConfig(ctx context.Context, guildID string, token, gistID, profile, webhook *string) error {
	return repo.UpsertGuildConfig(ctx, s.db, guildID, token, gistID, profile, webhook)
}

// cacheStoreShim adapts the cache repository to gist.CacheStore.
type cacheStoreShim struct{ db *gorm.DB }

func (s cacheStoreShim) Get(ctx context.Context, guildID string) (*domain.CacheEntry, error) {
	return repo.GetCacheEntry(ctx, s.db, guildID)
}

func (s cacheStoreShim) Put(ctx context.Context, guildID, data string) error {
	return repo.PutCacheEntry(ctx, s.db, guildID, data)
}

// permStoreShim adapts the permission repository to services.PermissionStore.
type permStoreShim struct{ db *gorm.DB }

func (s permStoreShim) ListPermissions(ctx context.Context, guildID string) ([]domain.Permission, error) {
	return repo.ListPermissions(ctx, s.db, guildID)
}

func (s permStoreShim) SetPermission(ctx context.Context, guildID, targetType, targetID, level, grantedBy string) error {
	return repo.SetPermission(ctx, s.db, guildID, targetType, targetID, level, grantedBy)
}

func (s permStoreShim) RemovePermission(ctx context.Context, guildID, targetType, targetID string) error {
	return repo.RemovePermission(ctx, s.db, guildID, targetType, targetID)
}

// idemStoreShim adapts the idempotency repository to handlers.IdempotencyStore.
type idemStoreShim struct {
	db  *gorm.DB
	ttl time.Duration
}

func (s idemStoreShim) Get(ctx context.Context, userID, guildID, key string, now time.Time) (*domain.Idempotency, error) {
	return repo.GetIdempotency(ctx, s.db, userID, guildID, key, now)
}

func (s idemStoreShim) Create(ctx context.Context, userID, guildID, key, recordID string, status int) error {
	_, err := repo.CreateIdempotency(ctx, s.db, userID, guildID, key, recordID, status, s.ttl)
	return err
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine: observability (tracing, metrics), idempotency and rate limiting,
// CORS and security headers, health/metrics/docs endpoints, and the
// versioned guild-scoped API.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with secret scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. CORS and security headers
//
// Identity extraction, idempotency validation, and rate limiting run on the
// API group only (in that order, so replays can bypass the limiter), keeping
// /health and /metrics reachable without gateway headers.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, keeper *secrets.Keeper, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction; gist tokens must never land in logs
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-Gist-Token"},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB; catalog documents stay far below)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) CORS posture (safe defaults: allow all if none configured)
	allowHeaders := []string{
		"Origin", "Content-Type", "Accept", "Authorization",
		middleware.HeaderUserID, middleware.HeaderRoleIDs, middleware.HeaderIdempotencyKey,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// API docs
	if cfg.SwaggerEnabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/remote client
	guilds := guildStoreShim{db: db}
	gistClient := gist.NewClient(cfg.GistAPIBase)
	syncSvc := gist.NewService(guilds, cacheStoreShim{db: db}, keeper, gistClient)
	syncSvc.TTL = cfg.CacheTTL

	guildSvc := services.NewGuildService(guilds, keeper)
	accessSvc := services.NewAccessService(permStoreShim{db: db}, cfg.OwnerID)
	catalogSvc := services.NewCatalogService(syncSvc)
	dropSvc := services.NewDropService(syncSvc)
	resyncSvc := services.NewSyncService(syncSvc, guilds)
	announceSvc := services.NewAnnounceService(syncSvc, guilds, resty.New())

	h := handlers.New(
		guildSvc, accessSvc, catalogSvc, dropSvc, resyncSvc, announceSvc,
		idemStoreShim{db: db, ttl: cfg.IdempotencyTTL},
	)

	// Public API (guild-scoped; identity required). The idempotency
	// validator needs the resolved identity, and the rate limiter honors
	// the replay bypass the validator sets, so order is fixed.
	api := groupWithPrefix(r, cfg.APIBasePath)
	api.Use(middleware.Identity())
	// Request-scoped logger carrying request, user, and guild IDs for
	// handler logs, in addition to the global redacted access log.
	api.Use(middleware.Logger())
	api.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{MaxLen: 200},
		func(ctx context.Context, userID, guildID, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, userID, guildID, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	api.Use(rl.Handler())
	api.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		// Setup / config (owner only, enforced in handlers)
		api.POST("/guilds/:id/setup/token", h.SetupToken)
		api.POST("/guilds/:id/setup/gist", h.SetupGist)
		api.POST("/guilds/:id/setup/webhook", h.SetupWebhook)
		api.GET("/guilds/:id/config", h.GuildConfig)

		// Permissions
		api.GET("/guilds/:id/permissions", h.ListPermissions)
		api.PUT("/guilds/:id/permissions", h.GrantPermission)
		api.DELETE("/guilds/:id/permissions/:targetType/:targetID", h.RevokePermission)

		// Products
		api.GET("/guilds/:id/products", h.ListProducts)
		api.GET("/guilds/:id/products/search", h.SearchProducts)
		api.GET("/guilds/:id/products/:pid", h.GetProduct)
		api.POST("/guilds/:id/products", h.CreateProduct)
		api.PUT("/guilds/:id/products/:pid", h.UpdateProduct)
		api.DELETE("/guilds/:id/products/:pid", h.DeleteProduct)

		// Drops
		api.GET("/guilds/:id/drops", h.ListDrops)
		api.GET("/guilds/:id/drops/:did", h.GetDrop)
		api.POST("/guilds/:id/drops", h.CreateDrop)
		api.PUT("/guilds/:id/drops/:did", h.UpdateDrop)
		api.DELETE("/guilds/:id/drops/:did", h.DeleteDrop)

		// Sync / repair / announce
		api.POST("/guilds/:id/sync", h.SyncGuild)
		api.POST("/guilds/:id/repair", h.RepairGuild)
		api.POST("/guilds/:id/announce", h.AnnounceRecord)
	}
}

// limitBody caps the request body size using http.MaxBytesReader. Requests
// exceeding the cap cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
