package application

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")
var ErrAlreadyExists = errors.New("already exists")
var ErrExternalSource = errors.New("external source failure")
var ErrBadRequest = errors.New("bad request")

func alreadyExists(code string) error {
	return fmt.Errorf("%w: currency with code %s already exists", ErrAlreadyExists, code)
}

// asExternal tags err as an upstream failure unless it already is one.
func asExternal(err error) error {
	if errors.Is(err, ErrExternalSource) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrExternalSource, err)
}
