package todo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")

	ErrAlreadySubscribed = fmt.Errorf("%w: listener already subscribed", ErrInvalidArgument)
	// ErrReentrantMutation is returned when a listener mutates the collection
	// while it is being notified.
	ErrReentrantMutation = fmt.Errorf("%w: mutation during change notification", ErrInvalidState)
)
