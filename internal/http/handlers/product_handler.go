// Product HTTP handlers.
//
//   - GET    /guilds/{id}/products          (allowed; paginated)
//   - GET    /guilds/{id}/products/search   (allowed; autocomplete)
//   - GET    /guilds/{id}/products/{pid}    (allowed)
//   - POST   /guilds/{id}/products          (admin)
//   - PUT    /guilds/{id}/products/{pid}    (admin)
//   - DELETE /guilds/{id}/products/{pid}    (admin)
//
// Records are schemaless JSON objects; bodies are accepted as-is and the
// service layer conforms them to the collection shape.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dropforge/catalog-bot/internal/domain"
	"github.com/dropforge/catalog-bot/internal/schema"
	"github.com/dropforge/catalog-bot/internal/utils"
)

// ListRecordsResponse wraps a page of records and pagination information.
type ListRecordsResponse struct {
	Records    []schema.Record `json:"records"`
	Pagination Pagination      `json:"pagination"`
}

// SearchResult is one autocomplete hit.
type SearchResult struct {
	Record schema.Record `json:"record"`
	Score  float64       `json:"score"`
}

func paginationMeta(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// bindRecord decodes the request body into a record, rejecting non-object
// payloads.
func bindRecord(c *gin.Context) (schema.Record, bool) {
	var rec schema.Record
	if err := c.ShouldBindJSON(&rec); err != nil || rec == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "body must be a JSON object")
		return nil, false
	}
	return rec, true
}

// ListProducts godoc
// @ID          listProducts
// @Summary     List products (paginated)
// @Tags        Products
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       id        path   string true  "Guild ID"
// @Param       page      query  int    false "Page number"    minimum(1) default(1)
// @Param       page_size query  int    false "Items per page" minimum(1) maximum(100) default(20)
// @Success     200 {object} handlers.ListRecordsResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     409 {object} handlers.ErrorResponse "Guild not configured"
// @Failure     502 {object} handlers.ErrorResponse "Remote read failed"
// @Router      /guilds/{id}/products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	if !h.require(c, domain.PermissionAllowed) {
		return
	}
	page, pageSize := clampPagination(c)
	records, total, err := h.products.List(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListRecordsResponse{
		Records:    records,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// SearchProducts godoc
// @ID          searchProducts
// @Summary     Autocomplete search over products
// @Tags        Products
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       id        path   string true  "Guild ID"
// @Param       q         query  string true  "Query text"
// @Param       limit     query  int    false "Max results" default(10) maximum(50)
// @Success     200 {array} handlers.SearchResult
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/products/search [get]
func (h *Handlers) SearchProducts(c *gin.Context) {
	if !h.require(c, domain.PermissionAllowed) {
		return
	}
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "q is required")
		return
	}
	limit := utils.ClampLimit(utils.AtoiDefault(c.Query("limit"), 10), 10, 50)

	hits, err := h.products.Search(c.Request.Context(), c.Param("id"), q, limit)
	if err != nil {
		failFromErr(c, err)
		return
	}
	out := make([]SearchResult, len(hits))
	for i, hit := range hits {
		out[i] = SearchResult{Record: hit.Record, Score: hit.Score}
	}
	ok(c, http.StatusOK, out)
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Get one product by id
// @Tags        Products
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Guild ID"
// @Param       pid       path   string true "Product record ID"
// @Success     200 {object} schema.Record
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/products/{pid} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	if !h.require(c, domain.PermissionAllowed) {
		return
	}
	rec, err := h.products.Get(c.Request.Context(), c.Param("id"), c.Param("pid"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, rec)
}

// CreateProduct godoc
// @ID          createProduct
// @Summary     Create a product
// @Description Appends a record to the products collection. Requires an id field; stock defaults to STABLE. Supports Idempotency-Key.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       X-User-ID       header string true  "Caller user ID"
// @Param       Idempotency-Key header string false "Retry deduplication key"
// @Param       id              path   string true  "Guild ID"
// @Param       body            body   object true  "Product record"
// @Success     201 {object} schema.Record
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     502 {object} handlers.ErrorResponse "Remote write failed"
// @Router      /guilds/{id}/products [post]
func (h *Handlers) CreateProduct(c *gin.Context) {
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
	created, err := h.products.Create(c.Request.Context(), c.Param("id"), rec)
	if err != nil {
		failFromErr(c, err)
		return
	}
	id, _ := created["id"].(string)
	h.recordIdempotency(c, id, http.StatusCreated)
	ok(c, http.StatusCreated, created)
}

// UpdateProduct godoc
// @ID          updateProduct
// @Summary     Update a product
// @Description Overlays the provided fields onto the stored record. The id field cannot be changed. Supports Idempotency-Key.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       X-User-ID       header string true  "Caller user ID"
// @Param       Idempotency-Key header string false "Retry deduplication key"
// @Param       id              path   string true  "Guild ID"
// @Param       pid             path   string true  "Product record ID"
// @Param       body            body   object true  "Changed fields"
// @Success     200 {object} schema.Record
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/products/{pid} [put]
func (h *Handlers) UpdateProduct(c *gin.Context) {
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
	updated, err := h.products.Update(c.Request.Context(), c.Param("id"), c.Param("pid"), changes)
	if err != nil {
		failFromErr(c, err)
		return
	}
	h.recordIdempotency(c, c.Param("pid"), http.StatusOK)
	ok(c, http.StatusOK, updated)
}

// DeleteProduct godoc
// @ID          deleteProduct
// @Summary     Delete a product
// @Tags        Products
// @Produce     json
// @Param       X-User-ID       header string true  "Caller user ID"
// @Param       Idempotency-Key header string false "Retry deduplication key"
// @Param       id              path   string true  "Guild ID"
// @Param       pid             path   string true  "Product record ID"
// @Success     204 {string} string "No Content"
// @Failure     403 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /guilds/{id}/products/{pid} [delete]
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if !h.require(c, domain.PermissionAdmin) {
		return
	}
	if h.serveReplay(c) {
		return
	}
	if err := h.products.Delete(c.Request.Context(), c.Param("id"), c.Param("pid")); err != nil {
		failFromErr(c, err)
		return
	}
	h.recordIdempotency(c, c.Param("pid"), http.StatusNoContent)
	noContent(c)
}
