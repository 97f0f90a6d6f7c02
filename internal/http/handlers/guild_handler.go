// Guild setup and permission HTTP handlers.
//
// This file wires the handler group and exposes the guild-scoped
// configuration surface:
//   - POST   /guilds/{id}/setup/token     (owner)
//   - POST   /guilds/{id}/setup/gist      (owner)
//   - POST   /guilds/{id}/setup/webhook   (owner)
//   - GET    /guilds/{id}/config          (owner)
//   - GET    /guilds/{id}/permissions     (admin)
//   - PUT    /guilds/{id}/permissions     (admin)
//   - DELETE /guilds/{id}/permissions/{targetType}/{targetID} (admin)
//
// Handlers are transport-thin: they validate input, enforce access, call
// application services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dropforge/catalog-bot/internal/domain"
	"github.com/dropforge/catalog-bot/internal/http/middleware"
	"github.com/dropforge/catalog-bot/internal/schema"
	"github.com/dropforge/catalog-bot/internal/search"
	"github.com/dropforge/catalog-bot/internal/services"
	"github.com/dropforge/catalog-bot/internal/utils"
)

//
// Service contracts (context-aware)
//

// GuildConfigurator manages per-guild setup. Implementations must be safe
// for concurrent use and honor the provided context.
type GuildConfigurator interface {
	SetToken(ctx context.Context, guildID, token string) error
	SetGistID(ctx context.Context, guildID, gistID string) error
	SetWebhook(ctx context.Context, guildID, webhook string) error
	Status(ctx context.Context, guildID string) (*services.GuildStatus, error)
}

// AccessChecker answers permission questions and manages grants.
type AccessChecker interface {
	IsOwner(userID string) bool
	HasLevel(ctx context.Context, guildID, userID string, roleIDs []string, required string) (bool, error)
	List(ctx context.Context, guildID string) ([]domain.Permission, error)
	Grant(ctx context.Context, guildID, targetType, targetID, level, grantedBy string) error
	Revoke(ctx context.Context, guildID, targetType, targetID string) error
}

// ProductCatalog defines product record operations consumed by handlers.
type ProductCatalog interface {
	List(ctx context.Context, guildID string, page, perPage int) ([]schema.Record, int64, error)
	Get(ctx context.Context, guildID, id string) (schema.Record, error)
	Create(ctx context.Context, guildID string, record schema.Record) (schema.Record, error)
	Update(ctx context.Context, guildID, id string, changes schema.Record) (schema.Record, error)
	Delete(ctx context.Context, guildID, id string) error
	Search(ctx context.Context, guildID, query string, limit int) ([]search.Result, error)
}

// DropCatalog defines drop record operations consumed by handlers.
type DropCatalog interface {
	List(ctx context.Context, guildID string, page, perPage int) ([]schema.Record, int64, string, error)
	Get(ctx context.Context, guildID, id string) (schema.Record, error)
	Create(ctx context.Context, guildID string, record schema.Record) (schema.Record, error)
	Update(ctx context.Context, guildID, id string, changes schema.Record) (schema.Record, error)
	Delete(ctx context.Context, guildID, id string) error
}

// Synchronizer runs the explicit sync and repair commands.
type Synchronizer interface {
	Resync(ctx context.Context, guildID string) (*services.SyncResult, error)
	Repair(ctx context.Context, guildID string) (*services.SyncResult, error)
}

// Announcer posts record announcements to the guild webhook.
type Announcer interface {
	Announce(ctx context.Context, guildID, recType, id string) error
}

// IdempotencyStore records and recalls completed mutating requests so that
// retried requests are served from the stored outcome instead of rewriting
// the remote document.
type IdempotencyStore interface {
	Get(ctx context.Context, userID, guildID, key string, now time.Time) (*domain.Idempotency, error)
	Create(ctx context.Context, userID, guildID, key, recordID string, status int) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for guild setup, permissions, records,
// sync, and announcements.
type Handlers struct {
	guildSvc GuildConfigurator
	access   AccessChecker
	products ProductCatalog
	drops    DropCatalog
	syncSvc  Synchronizer
	announce Announcer
	idem     IdempotencyStore
}

// New constructs a Handlers instance bound to the given services. idem may
// be nil; idempotency replay is then disabled.
func New(guildSvc GuildConfigurator, access AccessChecker, products ProductCatalog, drops DropCatalog, syncSvc Synchronizer, announce Announcer, idem IdempotencyStore) *Handlers {
	return &Handlers{
		guildSvc: guildSvc,
		access:   access,
		products: products,
		drops:    drops,
		syncSvc:  syncSvc,
		announce: announce,
		idem:     idem,
	}
}

//
// Access helpers
//

// requireOwner aborts with 403 unless the caller is the bot owner.
func (h *Handlers) requireOwner(c *gin.Context) bool {
	if !h.access.IsOwner(middleware.UserID(c)) {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "owner only")
		return false
	}
	return true
}

// require aborts with 403 unless the caller holds the given level in the
// guild bound to :id. Store failures surface as 500.
func (h *Handlers) require(c *gin.Context, level string) bool {
	allowed, err := h.access.HasLevel(
		c.Request.Context(),
		c.Param("id"),
		middleware.UserID(c),
		middleware.RoleIDs(c),
		level,
	)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return false
	}
	if !allowed {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "insufficient permission")
		return false
	}
	return true
}

//
// Idempotency helpers
//

// ReplayResponse is returned when a mutating request replays a previously
// completed operation.
type ReplayResponse struct {
	Replayed bool   `json:"replayed"`
	RecordID string `json:"record_id,omitempty"`
	Status   int    `json:"status"`
}

// serveReplay answers a flagged replay from the idempotency store. Returns
// true when the response was written.
func (h *Handlers) serveReplay(c *gin.Context) bool {
	if h.idem == nil || !middleware.IsReplay(c) {
		return false
	}
	key, okKey := middleware.GetIdempotencyKey(c)
	if !okKey {
		return false
	}
	rec, err := h.idem.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"), key, time.Now().UTC())
	if err != nil {
		// Stored record vanished between lookup and read; process normally.
		return false
	}
	ok(c, http.StatusOK, ReplayResponse{Replayed: true, RecordID: rec.RecordID, Status: rec.Status})
	return true
}

// recordIdempotency persists the outcome of a completed mutation when the
// request carried a key. Best effort: a failed insert never fails the
// already-applied mutation.
func (h *Handlers) recordIdempotency(c *gin.Context, recordID string, status int) {
	if h.idem == nil {
		return
	}
	key, okKey := middleware.GetIdempotencyKey(c)
	if !okKey {
		return
	}
	if err := h.idem.Create(c.Request.Context(), middleware.UserID(c), c.Param("id"), key, recordID, status); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency record insert failed")
	}
}

//
// DTOs
//

// SetupTokenRequest carries the gist API token to seal and store.
type SetupTokenRequest struct {
	Token string `json:"token" binding:"required" example:"ghp_exampletoken123456789"`
}

// SetupGistRequest carries the remote document identifier.
type SetupGistRequest struct {
	GistID string `json:"gist_id" binding:"required" example:"aa5a315d61ae9438b18d"`
}

// SetupWebhookRequest carries the announcement webhook URL.
type SetupWebhookRequest struct {
	URL string `json:"url" binding:"required" example:"https://discord.com/api/webhooks/1/abc"`
}

// GrantRequest is the payload for PUT /guilds/{id}/permissions.
type GrantRequest struct {
	TargetType string `json:"target_type" binding:"required" example:"role"`
	TargetID   string `json:"target_id" binding:"required" example:"203040506070"`
	Level      string `json:"level" binding:"required" example:"allowed"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// clampPagination parses and bounds page and page_size query params.
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Setup handlers
//

// SetupToken godoc
// @ID          setupToken
// @Summary     Store the gist API token for a guild
// @Description Encrypts the token at rest and stores it for the guild. Owner only.
// @Tags        Setup
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       id        path   string true  "Guild ID"
// @Param       body      body   handlers.SetupTokenRequest true "Token payload"
// @Success     204 {string} string "No Content"
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/setup/token [post]
func (h *Handlers) SetupToken(c *gin.Context) {
	if !h.requireOwner(c) {
		return
	}
	var req SetupTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := h.guildSvc.SetToken(c.Request.Context(), c.Param("id"), req.Token); err != nil {
		failFromErr(c, err)
		return
	}
	noContent(c)
}

// SetupGist godoc
// @ID          setupGist
// @Summary     Store the gist ID for a guild
// @Tags        Setup
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Param       body      body   handlers.SetupGistRequest true "Gist payload"
// @Success     204 {string} string "No Content"
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/setup/gist [post]
func (h *Handlers) SetupGist(c *gin.Context) {
	if !h.requireOwner(c) {
		return
	}
	var req SetupGistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := h.guildSvc.SetGistID(c.Request.Context(), c.Param("id"), req.GistID); err != nil {
		failFromErr(c, err)
		return
	}
	noContent(c)
}

// SetupWebhook godoc
// @ID          setupWebhook
// @Summary     Store the announcement webhook for a guild
// @Tags        Setup
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Param       body      body   handlers.SetupWebhookRequest true "Webhook payload"
// @Success     204 {string} string "No Content"
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/setup/webhook [post]
func (h *Handlers) SetupWebhook(c *gin.Context) {
	if !h.requireOwner(c) {
		return
	}
	var req SetupWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := h.guildSvc.SetWebhook(c.Request.Context(), c.Param("id"), req.URL); err != nil {
		failFromErr(c, err)
		return
	}
	noContent(c)
}

// GuildConfig godoc
// @ID          guildConfig
// @Summary     Report guild configuration status
// @Description Returns whether a token is set, the gist ID, webhook, and schema profile. Never returns secret material.
// @Tags        Setup
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Success     200 {object} services.GuildStatus
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/config [get]
func (h *Handlers) GuildConfig(c *gin.Context) {
	if !h.requireOwner(c) {
		return
	}
	st, err := h.guildSvc.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, st)
}

//
// Permission handlers
//

// ListPermissions godoc
// @ID          listPermissions
// @Summary     List permission grants in a guild
// @Tags        Permissions
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Success     200 {array} domain.Permission
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/permissions [get]
func (h *Handlers) ListPermissions(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	grants, err := h.access.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	if grants == nil {
		grants = []domain.Permission{}
	}
	ok(c, http.StatusOK, grants)
}

// GrantPermission godoc
// @ID          grantPermission
// @Summary     Grant a permission level to a user or role
// @Description Re-granting the same target overwrites the level.
// @Tags        Permissions
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Param       body      body   handlers.GrantRequest true "Grant payload"
// @Success     204 {string} string "No Content"
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/permissions [put]
func (h *Handlers) GrantPermission(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	var req GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	err := h.access.Grant(
		c.Request.Context(),
		c.Param("id"),
		strings.ToLower(strings.TrimSpace(req.TargetType)),
		strings.TrimSpace(req.TargetID),
		strings.ToLower(strings.TrimSpace(req.Level)),
		middleware.UserID(c),
	)
	if err != nil {
		failFromErr(c, err)
		return
	}
	noContent(c)
}

// RevokePermission godoc
// @ID          revokePermission
// @Summary     Remove a permission grant
// @Tags        Permissions
// @Produce     json
// @Param       X-User-ID  header string true "Caller user ID"
// @Param       id         path   string true "Guild ID"
// @Param       targetType path   string true "user or role"
// @Param       targetID   path   string true "Target identifier"
// @Success     204 {string} string "No Content"
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/permissions/{targetType}/{targetID} [delete]
func (h *Handlers) RevokePermission(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	err := h.access.Revoke(
		c.Request.Context(),
		c.Param("id"),
		strings.ToLower(c.Param("targetType")),
		c.Param("targetID"),
	)
	if err != nil {
		failFromErr(c, err)
		return
	}
	noContent(c)
}
