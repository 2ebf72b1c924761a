package core

import "errors"

var (
	ErrInvalidPostalCode  = errors.New("invalid postal code")
	ErrPostalCodeNotFound = errors.New("postal code not found")
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidCartAction  = errors.New("invalid cart action")
	ErrInvalidMoney       = errors.New("invalid money value")
)
