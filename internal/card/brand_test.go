package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBrand(t *testing.T) {
	tests := []struct {
		number string
		want   Brand
	}{
		{"4539578763621486", BrandVisa},
		{"4000000000000002", BrandVisa},
		{"5105105105105100", BrandMastercard},
		{"5999999999999999", BrandMastercard},
		{"2221000000000009", BrandMastercard},
		{"2223000000000007", BrandMastercard},
		{"2224000000000006", BrandUnknown},
		{"374245455400126", BrandAmericanExpress},
		{"341111111111111", BrandAmericanExpress},
		{"6011000000000004", BrandDiscover},
		{"6500000000000002", BrandDiscover},
		{"6400000000000000", BrandDiscover},
		{"6200000000000005", BrandDiscover},
		{"3530111333300000", BrandJCB},
		{"3589000000000000", BrandJCB},
		{"3590000000000000", BrandUnknown},
		{"36227206271667", BrandDinersClub},
		{"38520000023237", BrandDinersClub},
		{"5000000000000000", BrandAura},
		{"6010000000000000", BrandUnknown},
		{"1234567890123", BrandUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBrand(tt.number))
		})
	}
}

func TestDetectBrandShortInput(t *testing.T) {
	assert.Equal(t, BrandVisa, DetectBrand("4"))
	assert.Equal(t, BrandAmericanExpress, DetectBrand("37"))
	assert.Equal(t, BrandUnknown, DetectBrand(""))
	assert.Equal(t, BrandUnknown, DetectBrand("x1"))
}

func TestDetectIssuingBank(t *testing.T) {
	assert.Equal(t, "STATE BANK OF INDIA (SBI)", DetectIssuingBank("4130001234567890"))
	assert.Equal(t, "HDFC BANK", DetectIssuingBank("4150009999999999"))
	assert.Equal(t, "DISCOVER/UNIONPAY", DetectIssuingBank("6000001111111111"))
	assert.Equal(t, UnknownIssuer, DetectIssuingBank("4539578763621486"))
	assert.Equal(t, UnknownIssuer, DetectIssuingBank("41300"))
	assert.Len(t, issuers, 26)
}
