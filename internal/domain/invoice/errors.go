package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrAlreadyPaid     = errors.New("invoice already paid")
	ErrLeadNotWon      = errors.New("invoice requires a won lead")
)
