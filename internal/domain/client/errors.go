package client

import "errors"

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidRequestData = errors.New("invalid request data")
)
