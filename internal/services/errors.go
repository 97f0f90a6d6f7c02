// Package services defines the business logic for guild setup, catalog and
// drop management, permissions, and announcements. This file centralizes
// common service-level error values so that they can be consistently
// returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed
// at the handler layer.
package services

import "errors"

var (
	// ErrRecordNotFound indicates that the looked-up record ID is absent
	// from its collection. Surfaced to the user, not fatal.
	ErrRecordNotFound = errors.New("record not found")

	// ErrMissingID is returned when a record is submitted without an id
	// field.
	ErrMissingID = errors.New("record id is required")

	// ErrInvalidURL is returned when a submitted link is not an http(s)
	// URL.
	ErrInvalidURL = errors.New("url must start with http:// or https://")

	// ErrEmptyToken is returned when a setup request carries a blank gist
	// token.
	ErrEmptyToken = errors.New("token is empty")

	// ErrEmptyGistID is returned when a setup request carries a blank gist
	// ID.
	ErrEmptyGistID = errors.New("gist id is empty")

	// ErrInvalidTarget is returned when a permission grant names a target
	// type other than user or role.
	ErrInvalidTarget = errors.New("target type must be user or role")

	// ErrInvalidLevel is returned when a permission grant names a level
	// other than admin or allowed.
	ErrInvalidLevel = errors.New("permission level must be admin or allowed")

	// ErrNoWebhook is returned by Announce when the guild has no
	// announcement webhook configured.
	ErrNoWebhook = errors.New("no announce webhook configured")

	// ErrInvalidType is returned by Announce when the record type is
	// neither product nor drop.
	ErrInvalidType = errors.New("record type must be product or drop")
)
