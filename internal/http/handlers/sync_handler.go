// Sync, repair, and announce HTTP handlers.
//
//   - POST /guilds/{id}/sync     (admin) forced refresh + profile snapshot
//   - POST /guilds/{id}/repair   (admin) normalize every record, write back
//   - POST /guilds/{id}/announce (admin) post a record to the guild webhook
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dropforge/catalog-bot/internal/domain"
)

// AnnounceRequest names the record to announce.
type AnnounceRequest struct {
	Type string `json:"type" binding:"required" example:"product"`
	ID   string `json:"id" binding:"required" example:"prod-123"`
}

// SyncGuild godoc
// @ID          syncGuild
// @Summary     Force a refresh from the remote document
// @Description Bypasses the cache, re-fetches the document, refreshes the stored schema profile, and returns collection counts.
// @Tags        Sync
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Success     200 {object} services.SyncResult
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     409 {object} handlers.ErrorResponse "Guild not configured"
// @Failure     502 {object} handlers.ErrorResponse "Remote read failed"
// @Router      /guilds/{id}/sync [post]
func (h *Handlers) SyncGuild(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	res, err := h.syncSvc.Resync(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// RepairGuild godoc
// @ID          repairGuild
// @Summary     Normalize every record and write the document back
// @Description Re-fetches the document, conforms every record to the union shape of its collection, and persists the result remotely.
// @Tags        Sync
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Success     200 {object} services.SyncResult
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     409 {object} handlers.ErrorResponse "Guild not configured"
// @Failure     502 {object} handlers.ErrorResponse "Remote write failed"
// @Router      /guilds/{id}/repair [post]
func (h *Handlers) RepairGuild(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	res, err := h.syncSvc.Repair(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// AnnounceRecord godoc
// @ID          announceRecord
// @Summary     Announce a record to the guild webhook
// @Tags        Announce
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Param       body      body   handlers.AnnounceRequest true "Record reference"
// @Success     204 {string} string "No Content"
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     409 {object} handlers.ErrorResponse "No webhook configured"
// @Router      /guilds/{id}/announce [post]
func (h *Handlers) AnnounceRecord(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	var req AnnounceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := h.announce.Announce(c.Request.Context(), c.Param("id"), req.Type, req.ID); err != nil {
		failFromErr(c, err)
		return
	}
	noContent(c)
}
