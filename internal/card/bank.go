package card

// UnknownIssuer is reported when a BIN is not in the issuer table.
const UnknownIssuer = "UNKNOWN ISSUER"

// issuers maps 6-digit BINs to institution names. Static data.
var issuers = map[string]string{
	"413000": "STATE BANK OF INDIA (SBI)",
	"414000": "AXIS BANK",
	"415000": "HDFC BANK",
	"416000": "ICICI BANK",
	"417000": "KOTAK BANK",
	"418000": "BANK OF BARODA",
	"419000": "UNION BANK OF INDIA",
	"420000": "BANK OF INDIA",
	"421000": "PUNJAB NATIONAL BANK",
	"422000": "CANARA BANK",
	"423000": "BANK OF MAHARASHTRA",
	"424000": "IDBI BANK",
	"425000": "CENTRAL BANK OF INDIA",
	"451000": "CITIBANK",
	"452000": "HSBC BANK",
	"453000": "STANDARD CHARTERED",
	"454000": "DEUTSCHE BANK",
	"500000": "MASTERCARD GENERIC",
	"510000": "MASTERCARD GENERIC",
	"520000": "MASTERCARD GENERIC",
	"530000": "MASTERCARD GENERIC",
	"540000": "MASTERCARD GENERIC",
	"550000": "MASTERCARD GENERIC",
	"600000": "DISCOVER/UNIONPAY",
	"640000": "DISCOVER",
	"650000": "DISCOVER",
}

// BIN returns the first six characters of number, or all of it when shorter.
func BIN(number string) string {
	if len(number) < 6 {
		return number
	}
	return number[:6]
}

// DetectIssuingBank looks the BIN up in the issuer table.
func DetectIssuingBank(number string) string {
	if len(number) < 6 {
		return UnknownIssuer
	}
	if name, ok := issuers[BIN(number)]; ok {
		return name
	}
	return UnknownIssuer
}
