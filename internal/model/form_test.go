package model

import (
	"errors"
	"testing"
)

func TestParseMotorForm(t *testing.T) {
	in, err := ParseMotorForm("  Test X ", " Kawasaki ", "2021", "12345.50", " Mulus ")
	if err != nil {
		t.Fatalf("ParseMotorForm: %v", err)
	}
	if in.Title != "Test X" {
		t.Errorf("expected trimmed title, got %q", in.Title)
	}
	if in.Brand != "Kawasaki" || in.Description != "Mulus" {
		t.Errorf("expected trimmed brand/description, got %q/%q", in.Brand, in.Description)
	}
	if in.Year == nil || *in.Year != 2021 {
		t.Errorf("expected year 2021, got %v", in.Year)
	}
	if in.Price != 12345.50 {
		t.Errorf("expected price 12345.50, got %v", in.Price)
	}
}

func TestParseMotorFormOptionalYear(t *testing.T) {
	in, err := ParseMotorForm("Vespa", "", "", "1000", "")
	if err != nil {
		t.Fatalf("ParseMotorForm: %v", err)
	}
	if in.Year != nil {
		t.Errorf("expected nil year, got %d", *in.Year)
	}
}

func TestParseMotorFormErrors(t *testing.T) {
	tests := []struct {
		name               string
		title, year, price string
		want               error
	}{
		{"empty title", "", "2020", "1000", ErrMissingFields},
		{"blank title", "   ", "", "1000", ErrMissingFields},
		{"empty price", "Vespa", "2020", "", ErrMissingFields},
		{"non-numeric year", "Vespa", "dua ribu", "1000", ErrInvalidNumber},
		{"fractional year", "Vespa", "2020.5", "1000", ErrInvalidNumber},
		{"non-numeric price", "Vespa", "", "murah", ErrInvalidNumber},
		{"nan price", "Vespa", "", "NaN", ErrInvalidNumber},
		{"blank price", "Vespa", "", "   ", ErrInvalidNumber},
		{"blank year", "Vespa", "  ", "1000", ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMotorForm(tt.title, "", tt.year, tt.price, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParsePricePaid(t *testing.T) {
	got, err := ParsePricePaid("", 25000000)
	if err != nil {
		t.Fatalf("ParsePricePaid empty: %v", err)
	}
	if got != 25000000 {
		t.Errorf("expected listed price, got %v", got)
	}

	got, err = ParsePricePaid(" 24000000.5 ", 25000000)
	if err != nil {
		t.Fatalf("ParsePricePaid override: %v", err)
	}
	if got != 24000000.5 {
		t.Errorf("expected override 24000000.5, got %v", got)
	}

	for _, raw := range []string{"gratis", "   ", "\t"} {
		if _, err := ParsePricePaid(raw, 25000000); !errors.Is(err, ErrInvalidPayment) {
			t.Errorf("ParsePricePaid(%q): expected ErrInvalidPayment, got %v", raw, err)
		}
	}
}
