package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Validation errors returned by the form parsers.
var (
	ErrMissingFields  = errors.New("title and price are required")
	ErrInvalidNumber  = errors.New("invalid year or price format")
	ErrInvalidPayment = errors.New("invalid payment amount")
)

// ParseMotorForm validates the raw add-motor fields. Title and price are
// mandatory; year is optional but must be an integer when present.
func ParseMotorForm(title, brand, year, price, description string) (MotorInput, error) {
	in := MotorInput{
		Title:       strings.TrimSpace(title),
		Brand:       strings.TrimSpace(brand),
		Description: strings.TrimSpace(description),
	}
	if in.Title == "" || price == "" {
		return MotorInput{}, ErrMissingFields
	}

	// A field holding only whitespace was filled in, so it must parse.
	if year != "" {
		y, err := strconv.Atoi(strings.TrimSpace(year))
		if err != nil {
			return MotorInput{}, ErrInvalidNumber
		}
		in.Year = &y
	}

	p, ok := parseAmount(strings.TrimSpace(price))
	if !ok {
		return MotorInput{}, ErrInvalidNumber
	}
	in.Price = p

	return in, nil
}

// ParsePricePaid returns the amount paid for a purchase. Only an empty field
// means the buyer pays the listed price; whitespace is an invalid amount.
func ParsePricePaid(raw string, listed float64) (float64, error) {
	if raw == "" {
		return listed, nil
	}
	p, ok := parseAmount(strings.TrimSpace(raw))
	if !ok {
		return 0, ErrInvalidPayment
	}
	return p, nil
}

// parseAmount parses a finite floating-point amount.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
