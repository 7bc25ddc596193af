package domain

import "errors"

var (
	ErrInvalidProject = errors.New("project title, description and image are required")
)
