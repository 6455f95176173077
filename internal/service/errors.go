package service

import "errors"

var (
	// ErrInvalidQuantity is returned when grams or quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrFoodNotFound is returned when an operation references an unknown food id.
	ErrFoodNotFound = errors.New("food not found")
	// ErrInvalidMeal is returned for a meal outside the fixed enumeration.
	ErrInvalidMeal = errors.New("invalid meal type")
	// ErrInvalidFoodName is returned when a food name is empty or whitespace.
	ErrInvalidFoodName = errors.New("food name is required")
	// ErrInvalidDate is returned for a malformed YYYY-MM-DD date string.
	ErrInvalidDate = errors.New("invalid date")
)
