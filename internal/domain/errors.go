package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrFilingNotFound     = errors.New("filing not found")
	ErrDuplicateFiling    = errors.New("filing already exists for this GSTIN and period")
	ErrPayloadTooLarge    = errors.New("payload exceeds maximum allowed size")
	ErrInvalidPayload     = errors.New("payload is not valid JSON")
	ErrFilingNotGenerated = errors.New("filing report has not been generated yet")
	ErrInvalidStatus      = errors.New("invalid filing status")
	ErrUploadFailed       = errors.New("payload upload to storage failed")
)
