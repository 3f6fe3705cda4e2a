package service

import "errors"

// Sentinel errors returned by the service layer. Handlers match them with
// errors.Is to choose the client-facing response message.
var (
	// ErrInvalidDataProvided indicates that a caller passed empty or
	// malformed parameters to a service method.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword indicates that the supplied password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidAdminCredentials indicates that the supplied email/password
	// pair does not match the configured administrator credentials.
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")

	// ErrInvalidOrderStatus indicates an unknown fulfilment status value.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrEmptyCart indicates an attempt to place an order with no items.
	ErrEmptyCart = errors.New("cart is empty")
)
