package service

import "errors"

// Catalog refusals. Absence and a full match are valid outcomes the HTTP
// layer maps onto their own statuses; they never mean storage failure.
var (
	ErrComplexNotFound = errors.New("complex not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrMatchFull       = errors.New("match is full")
	ErrInvalidMatch    = errors.New("invalid match")
)
