package card

import "strconv"

// Brand is the card network inferred from the leading digits.
type Brand string

const (
	BrandVisa            Brand = "VISA"
	BrandMastercard      Brand = "MASTERCARD"
	BrandAmericanExpress Brand = "AMERICAN EXPRESS"
	BrandDiscover        Brand = "DISCOVER"
	BrandJCB             Brand = "JCB"
	BrandDinersClub      Brand = "DINERS CLUB"
	BrandUnionPay        Brand = "UNIONPAY"
	BrandAura            Brand = "AURA"
	BrandUnknown         Brand = "UNKNOWN"
)

type brandRule struct {
	brand Brand
	match func(p prefixes) bool
}

// Rules are evaluated in order; the first match wins. Rule 4 claims every
// prefix from 6011 upward, so 62xx numbers classify as DISCOVER before the
// UNIONPAY rule is consulted.
var brandRules = []brandRule{
	{BrandVisa, func(p prefixes) bool { return p.first1 == 4 }},
	{BrandMastercard, func(p prefixes) bool {
		return inRange(p.first2, 51, 59) || (p.first2 == 22 && inRange(p.digits3to4, 20, 23))
	}},
	{BrandAmericanExpress, func(p prefixes) bool { return p.first2 == 34 || p.first2 == 37 }},
	{BrandDiscover, func(p prefixes) bool { return p.first4 >= 6011 || p.first2 == 65 || p.first2 == 64 }},
	{BrandJCB, func(p prefixes) bool { return inRange(p.first4, 3528, 3589) }},
	{BrandDinersClub, func(p prefixes) bool { return p.first2 == 36 || p.first2 == 38 || p.first2 == 39 }},
	{BrandUnionPay, func(p prefixes) bool { return p.first2 == 62 }},
	{BrandAura, func(p prefixes) bool { return p.first2 == 50 }},
}

// prefixes holds the numeric value of leading digit groups; -1 marks a group
// the number is too short for or that contains non-digits.
type prefixes struct {
	first1     int
	first2     int
	first4     int
	digits3to4 int
}

func parsePrefixes(number string) prefixes {
	return prefixes{
		first1:     digitsAt(number, 0, 1),
		first2:     digitsAt(number, 0, 2),
		first4:     digitsAt(number, 0, 4),
		digits3to4: digitsAt(number, 2, 4),
	}
}

func digitsAt(number string, from, to int) int {
	if len(number) < to {
		return -1
	}
	part := number[from:to]
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return -1
		}
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return -1
	}
	return n
}

func inRange(n, lo, hi int) bool {
	return n >= lo && n <= hi
}

// DetectBrand classifies a card number by its leading digits.
func DetectBrand(number string) Brand {
	p := parsePrefixes(number)
	for _, rule := range brandRules {
		if rule.match(p) {
			return rule.brand
		}
	}
	return BrandUnknown
}
