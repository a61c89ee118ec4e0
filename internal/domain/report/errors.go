package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date or month range")
)
