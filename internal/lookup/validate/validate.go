// Package validate turns raw user input into the canonical key for each
// lookup domain. A rejected input never reaches the cache or the network.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"lookupdesk/internal/card"
	"lookupdesk/internal/lookup/models"
	dErrors "lookupdesk/pkg/domain-errors"
)

var (
	vehiclePattern    = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{2}\d{4}$`)
	nationalIDPattern = regexp.MustCompile(`^\d{12}$`)
	cardPattern       = regexp.MustCompile(`^\d{13,19}$`)
)

// Normalize validates input for domain and returns the cache key.
func Normalize(domain models.Domain, input string) (string, error) {
	switch domain {
	case models.DomainPhone:
		return Phone(input)
	case models.DomainVehicle:
		return Vehicle(input)
	case models.DomainNationalID:
		return NationalID(input)
	case models.DomainCard:
		return Card(input)
	}
	return "", dErrors.New(dErrors.CodeBadRequest, "unknown lookup domain")
}

// Phone keeps only the digits and requires exactly ten of them.
func Phone(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", dErrors.New(dErrors.CodeValidation, "Please enter a phone number")
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, trimmed)
	if len(digits) != 10 {
		return "", dErrors.New(dErrors.CodeValidation, "Please enter a valid 10-digit phone number")
	}
	return digits, nil
}

// Vehicle upper-cases an RC number such as MP07SD7547.
func Vehicle(input string) (string, error) {
	rc := strings.ToUpper(strings.TrimSpace(input))
	if rc == "" {
		return "", dErrors.New(dErrors.CodeValidation, "Please enter an RC number")
	}
	if !vehiclePattern.MatchString(rc) {
		return "", dErrors.New(dErrors.CodeValidation, "Invalid RC number format (e.g., MP07SD7547)")
	}
	return rc, nil
}

// NationalID requires twelve digits with no separators.
func NationalID(input string) (string, error) {
	id := strings.TrimSpace(input)
	if id == "" {
		return "", dErrors.New(dErrors.CodeValidation, "Please enter a national ID number")
	}
	if !nationalIDPattern.MatchString(id) {
		return "", dErrors.New(dErrors.CodeValidation, "Please enter a valid 12-digit national ID number")
	}
	return id, nil
}

// Card strips whitespace, then checks length and the Luhn checksum.
func Card(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", dErrors.New(dErrors.CodeValidation, "Please enter a card number")
	}
	number := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)
	if !cardPattern.MatchString(number) {
		return "", dErrors.New(dErrors.CodeValidation, "Please enter a valid card number (13-19 digits)")
	}
	if !card.LuhnCheck(number) {
		return "", dErrors.New(dErrors.CodeValidation, "Invalid card number (Luhn check failed)")
	}
	return number, nil
}
