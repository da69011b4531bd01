package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to
// implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ConnectRequest is the DTO for the wallet-connect form.
type ConnectRequest struct {
	Wallet  string `form:"wallet" validate:"required,oneof=keplr ledger"`
	Chain   string `form:"chain" validate:"required"`
	Network string `form:"network" validate:"required,oneof=mainnet testnet"`
}
