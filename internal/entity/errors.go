package entity

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrBookNotFound   = errors.New("book not found")

	// ErrBookAlreadyPublished guards the one-way status transition:
	// a published book can never go back to unpublished.
	ErrBookAlreadyPublished = errors.New("published book can not be unpublished")

	ErrUnknownStatus = errors.New("unknown publication status")
)
