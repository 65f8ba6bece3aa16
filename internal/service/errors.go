package service

import "errors"

var (
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNotAuthenticated    = errors.New("login required")
	ErrEmptyCart           = errors.New("cart is empty, nothing to checkout")
	ErrInvalidShippingInfo = errors.New("shipping info must include name and address")
)
