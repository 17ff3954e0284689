// Package card derives a profile for a payment card number from its digits
// alone: Luhn validity, network brand, and issuing bank by BIN.
package card

import "strings"

// TypeCredit is the only card type reported. Debit detection needs a BIN
// source that distinguishes products, which the issuer table does not.
const TypeCredit = "CREDIT"

// Profile is the analysis of a single card number. Values are derived purely
// from the number and never change after Analyze returns.
type Profile struct {
	Number string `json:"number"`
	BIN    string `json:"bin"`
	Last4  string `json:"last4"`
	Brand  Brand  `json:"brand"`
	Type   string `json:"type"`
	Bank   string `json:"bank"`
	Length int    `json:"length"`
	Valid  bool   `json:"valid"`
}

// DetectType reports the card type. Always TypeCredit.
func DetectType(string) string {
	return TypeCredit
}

// Analyze builds the profile for a number that already passed validation,
// so Valid is always true.
func Analyze(number string) Profile {
	return Profile{
		Number: number,
		BIN:    BIN(number),
		Last4:  last4(number),
		Brand:  DetectBrand(number),
		Type:   DetectType(number),
		Bank:   DetectIssuingBank(number),
		Length: len(number),
		Valid:  true,
	}
}

// Masked renders the number as "first4 •••• •••• last4".
func (p Profile) Masked() string {
	head := p.Number
	if len(head) > 4 {
		head = head[:4]
	}
	return head + " •••• •••• " + p.Last4
}

// MaskAllButLast4 replaces every character but the last four with '*',
// keeping the original length.
func MaskAllButLast4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

func last4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
