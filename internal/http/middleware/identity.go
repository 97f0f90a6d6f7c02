// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file extracts the caller identity supplied by the chat gateway in
// front of this API. The gateway authenticates the end user against the chat
// platform and forwards the resolved identity as plain headers; this service
// trusts them (it must only be reachable from the gateway).
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderUserID carries the caller's stable user identifier.
	HeaderUserID = "X-User-ID"
	// HeaderRoleIDs carries the caller's role memberships, comma separated.
	HeaderRoleIDs = "X-Role-IDs"

	userIDKey  = "userID"
	roleIDsKey = "roleIDs"
)

// Identity reads the gateway identity headers into the Gin context.
// Requests without X-User-ID are rejected with 401; every operation on this
// API is attributable to a user.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "missing_identity",
				"message":    "X-User-ID header is required",
			})
			return
		}
		c.Set(userIDKey, uid)

		var roles []string
		for _, r := range strings.Split(c.GetHeader(HeaderRoleIDs), ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}
		c.Set(roleIDsKey, roles)

		c.Next()
	}
}

// UserID returns the caller identity set by Identity.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RoleIDs returns the caller's role memberships set by Identity.
func RoleIDs(c *gin.Context) []string {
	if v, ok := c.Get(roleIDsKey); ok {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}
