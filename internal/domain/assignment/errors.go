package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrWorkerNotFound     = errors.New("worker not found for assignment")
	ErrClientNotFound     = errors.New("client not found for assignment")
	ErrInvalidSlotFormat  = errors.New("unrecognized time slot format")
	ErrInvalidRequestData = errors.New("invalid request data")
)
