package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	profile := Analyze("4130000000000004")

	assert.Equal(t, Profile{
		Number: "4130000000000004",
		BIN:    "413000",
		Last4:  "0004",
		Brand:  BrandVisa,
		Type:   TypeCredit,
		Bank:   "STATE BANK OF INDIA (SBI)",
		Length: 16,
		Valid:  true,
	}, profile)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	first := Analyze("374245455400126")
	second := Analyze("374245455400126")

	assert.Equal(t, first, second)
	assert.Equal(t, BrandAmericanExpress, first.Brand)
	assert.Equal(t, UnknownIssuer, first.Bank)
	assert.Equal(t, 15, first.Length)
}

func TestDetectTypeIsAlwaysCredit(t *testing.T) {
	for _, number := range []string{"4539578763621486", "5105105105105100", "3530111333300000"} {
		assert.Equal(t, TypeCredit, DetectType(number))
	}
}

func TestMasking(t *testing.T) {
	profile := Analyze("4539578763621486")

	assert.Equal(t, "4539 •••• •••• 1486", profile.Masked())
	assert.Equal(t, "************1486", MaskAllButLast4("4539578763621486"))
	assert.Equal(t, "*********0126", MaskAllButLast4("3742454550126"))
	assert.Equal(t, "123", MaskAllButLast4("123"))
}
