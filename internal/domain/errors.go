package domain

import "errors"

var (
	ErrUnknownStatus = errors.New("unknown order status")
	ErrEmptyMessage  = errors.New("message text is empty")
)
