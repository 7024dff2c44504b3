package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidProductID    = errors.New("invalid product id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
