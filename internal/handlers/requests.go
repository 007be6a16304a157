package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
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

// GridRequest is the filter state the gallery page and the grid fragment
// share. It round-trips through query parameters; the server keeps no view
// state beyond the favorites session.
type GridRequest struct {
	Q          string   `query:"q" validate:"max=200"`
	Categories []string `query:"category" validate:"max=50,dive,max=100"`
	Favorites  bool     `query:"favorites"`
	Expanded   string   `query:"expanded" validate:"omitempty,max=200"`
}
