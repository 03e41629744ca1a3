package domain

import "errors"

var ErrInvalidCode = errors.New("invalid currency code")
