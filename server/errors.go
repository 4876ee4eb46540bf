// Copyright (C) 2018. See AUTHORS.

package server

import (
	"errors"
	"fmt"
)

// ErrSyntax is returned when an argument cannot be parsed
var ErrSyntax = errors.New("syntax error")

// ErrWrongNumArgs is returned when the arg count is wrong
var ErrWrongNumArgs = errors.New("wrong number of arguments")

// ErrUnknownCommand is returned when a command is not known
var ErrUnknownCommand = errors.New("unknown command")

func errUnknownCommand(name string) error {
	return fmt.Errorf("%w '%s'", ErrUnknownCommand, name)
}
