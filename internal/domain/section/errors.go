package section

import "errors"

var (
	ErrSectionNotFound     = errors.New("section not found")
	ErrSectionNameExists   = errors.New("section name already exists in this department")
	ErrSectionHasEmployees = errors.New("section still has employees assigned")
)
