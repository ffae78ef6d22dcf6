package apperror

import "errors"

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrOccupiedPosition = errors.New("position is already occupied")
	ErrMatchAlreadyOver = errors.New("match is already over")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrSameSymbol       = errors.New("participants must hold distinct symbols")
	ErrInputClosed      = errors.New("input closed")
)
