package services

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrCartNotFound       = errors.New("cart not found")
	ErrLineNotFound       = errors.New("item not found in cart")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)
