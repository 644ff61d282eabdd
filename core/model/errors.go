package model

import "errors"

var (
	ErrInvalidRecord = errors.New("invalid usage record")
	ErrInvalidWindow = errors.New("invalid date range")
)
