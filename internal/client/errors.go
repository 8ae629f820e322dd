package client

import "errors"

var (
	// ErrUnknownCommand is returned for a sub-command the client does not
	// implement.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a sub-command lacks an operand.
	ErrMissingArgument = errors.New("missing argument")
)
