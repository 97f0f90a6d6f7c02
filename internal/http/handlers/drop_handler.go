// Drop HTTP handlers.
//
//   - GET    /guilds/{id}/drops        (allowed; paginated)
//   - GET    /guilds/{id}/drops/{did}  (allowed)
//   - POST   /guilds/{id}/drops        (admin)
//   - PUT    /guilds/{id}/drops/{did}  (admin)
//   - DELETE /guilds/{id}/drops/{did}  (admin)
//
// The drops collection lives under a document-dependent key; responses to
// list requests include the detected key so operators can see which name
// their document uses.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dropforge/catalog-bot/internal/domain"
	"github.com/dropforge/catalog-bot/internal/schema"
)

// ListDropsResponse wraps a page of drops, pagination, and the detected
// collection key.
type ListDropsResponse struct {
	Records    []schema.Record `json:"records"`
	Collection string          `json:"collection"`
	Pagination Pagination      `json:"pagination"`
}

// ListDrops godoc
// @ID          listDrops
// @Summary     List drops (paginated)
// @Tags        Drops
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       id        path   string true  "Guild ID"
// @Param       page      query  int    false "Page number"    minimum(1) default(1)
// @Param       page_size query  int    false "Items per page" minimum(1) maximum(100) default(20)
// @Success     200 {object} handlers.ListDropsResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     409 {object} handlers.ErrorResponse "Guild not configured"
// @Router      /guilds/{id}/drops [get]
func (h *Handlers) ListDrops(c *gin.Context) {
	if !h.require(c, domain.PermissionAllowed) {
		return
	}
	page, pageSize := clampPagination(c)
	records, total, key, err := h.drops.List(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListDropsResponse{
		Records:    records,
		Collection: key,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// GetDrop godoc
// @ID          getDrop
// @Summary     Get one drop by id
// @Tags        Drops
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Param       did       path   string true "Drop record ID"
// @Success     200 {object} schema.Record
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/drops/{did} [get]
func (h *Handlers) GetDrop(c *gin.Context) {
	if !h.require(c, domain.PermissionAllowed) {
		return
	}
	rec, err := h.drops.Get(c.Request.Context(), c.Param("id"), c.Param("did"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, rec)
}

// CreateDrop godoc
// @ID          createDrop
// @Summary     Create a drop
// @Description Appends a record to the drops collection (created as "drops" when absent). Requires an id field; status defaults to PENDING. Supports Idempotency-Key.
// @Tags        Drops
// @Accept      json
// @Produce     json
// @Param       X-User-ID       header string true  "Caller user ID"
// @Param       Idempotency-Key header string false "Retry deduplication key"
// @Param       id              path   string true  "Guild ID"
// @Param       body            body   object true  "Drop record"
// @Success     201 {object} schema.Record
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/drops [post]
func (h *Handlers) CreateDrop(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	if h.serveReplay(c) {
		return
	}
	rec, okBody := bindRecord(c)
	if !okBody {
		return
	}
	created, err := h.drops.Create(c.Request.Context(), c.Param("id"), rec)
	if err != nil {
		failFromErr(c, err)
		return
	}
	id, _ := created["id"].(string)
	h.recordIdempotency(c, id, http.StatusCreated)
	ok(c, http.StatusCreated, created)
}

// UpdateDrop godoc
// @ID          updateDrop
// @Summary     Update a drop
// @Tags        Drops
// @Accept      json
// @Produce     json
// @Param       X-User-ID       header string true  "Caller user ID"
// @Param       Idempotency-Key header string false "Retry deduplication key"
// @Param       id              path   string true  "Guild ID"
// @Param       did             path   string true  "Drop record ID"
// @Param       body            body   object true  "Changed fields"
// @Success     200 {object} schema.Record
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/drops/{did} [put]
func (h *Handlers) UpdateDrop(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	if h.serveReplay(c) {
		return
	}
	changes, okBody := bindRecord(c)
	if !okBody {
		return
	}
	updated, err := h.drops.Update(c.Request.Context(), c.Param("id"), c.Param("did"), changes)
	if err != nil {
		failFromErr(c, err)
		return
	}
	h.recordIdempotency(c, c.Param("did"), http.StatusOK)
	ok(c, http.StatusOK, updated)
}

// DeleteDrop godoc
// @ID          deleteDrop
// @Summary     Delete a drop
// @Tags        Drops
// @Produce     json
// @Param       X-User-ID       header string true  "Caller user ID"
// @Param       Idempotency-Key header string false "Retry deduplication key"
// @Param       id              path   string true  "Guild ID"
// @Param       did             path   string true  "Drop record ID"
// @Success     204 {string} string "No Content"
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/drops/{did} [delete]
func (h *Handlers) DeleteDrop(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	if h.serveReplay(c) {
		return
	}
	if err := h.drops.Delete(c.Request.Context(), c.Param("id"), c.Param("did")); err != nil {
		failFromErr(c, err)
		return
	}
	h.recordIdempotency(c, c.Param("did"), http.StatusNoContent)
	noContent(c)
}
