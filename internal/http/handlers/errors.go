// Package handlers defines the HTTP-layer error taxonomy and the mapping
// from service/transport errors to HTTP responses.
//
// Codes are lowercase snake_case and stable; clients branch on them for
// programmatic handling. Generic codes mirror HTTP status semantics;
// domain codes cover outcomes a status alone cannot convey (a failed remote
// read is not the same as a missing record, even though both are errors).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dropforge/catalog-bot/internal/gist"
	"github.com/dropforge/catalog-bot/internal/repo"
	"github.com/dropforge/catalog-bot/internal/services"
)

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeNotConfigured     = "not_configured"
	ErrCodeInvalidDocument   = "invalid_document"
	ErrCodeRemoteReadFailed  = "remote_read_failed"
	ErrCodeRemoteWriteFailed = "remote_write_failed"
	ErrCodeNoWebhook         = "no_webhook"
	ErrCodeAnnounceFailed    = "announce_failed"
	ErrCodeMethodNotAllowed  = "method_not_allowed"
)

// failFromErr translates a service-layer error into the HTTP response.
// Every branch surfaces the underlying error text to the caller; commands
// either succeed visibly or fail visibly, never silently.
func failFromErr(c *gin.Context, err error) {
	var remote *gist.RemoteError

	switch {
	case errors.Is(err, gist.ErrNotConfigured):
		fail(c, http.StatusConflict, ErrCodeNotConfigured,
			"guild is not configured; set a token and gist id first")
	case errors.Is(err, gist.ErrInvalidDocument):
		fail(c, http.StatusBadGateway, ErrCodeInvalidDocument, err.Error())
	case errors.As(err, &remote):
		code := ErrCodeRemoteReadFailed
		if remote.Op == gist.OpWrite {
			code = ErrCodeRemoteWriteFailed
		}
		fail(c, http.StatusBadGateway, code, err.Error())
	case errors.Is(err, services.ErrRecordNotFound), errors.Is(err, repo.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "record not found")
	case errors.Is(err, services.ErrNoWebhook):
		fail(c, http.StatusConflict, ErrCodeNoWebhook, err.Error())
	case errors.Is(err, services.ErrMissingID),
		errors.Is(err, services.ErrInvalidURL),
		errors.Is(err, services.ErrEmptyToken),
		errors.Is(err, services.ErrEmptyGistID),
		errors.Is(err, services.ErrInvalidTarget),
		errors.Is(err, services.ErrInvalidLevel),
		errors.Is(err, services.ErrInvalidType):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
