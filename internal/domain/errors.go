package domain

import "errors"

var (
	ErrReleaseNotFound        = errors.New("release not found")
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")
	ErrNoPriceData            = errors.New("no price data available")
)
