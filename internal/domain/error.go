package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownState    = errors.New("unknown dialogue state")
	ErrCodeNotFound    = errors.New("certificate code not found")
	ErrCodeAlreadyUsed = errors.New("certificate code already redeemed")
	ErrCodeExpired     = errors.New("certificate code expired")
	ErrCodeBusy        = errors.New("certificate code is being redeemed")
	ErrReadDatabaseRow = errors.New("failed to read database row")
)
