package planning

import "errors"

var (
	ErrSnapshotNotFound   = errors.New("monthly balance snapshot not found")
	ErrInvalidPeriod      = errors.New("invalid year/month period")
	ErrInvalidRequestData = errors.New("invalid request data")
)
