package tasks

import (
	"errors"

	"github.com/dmitrymomot/taskapi/handler"
)

// ErrTaskNotFound is a 404 "not_found".
var ErrTaskNotFound = handler.ErrNotFound

// ErrNoOwner means the route was mounted without the bearer middleware.
var ErrNoOwner = errors.New("tasks: request has no authenticated owner")
