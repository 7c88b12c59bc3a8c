package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/wirix/market-sfu/models"
)

var (
	ErrCardNumber = errors.New("card number must be 16 digits")
	ErrCardExpiry = errors.New("expiry date must be in MM/YY format")
	ErrCardCVV    = errors.New("cvv must be 3 digits")
	ErrCardHolder = errors.New("cardholder name is too short")
)

var (
	digitsRe = regexp.MustCompile(`^[0-9]{16}$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvRe    = regexp.MustCompile(`^[0-9]{3}$`)
)

// CardDetails are the draft fields of the card payment form.
type CardDetails struct {
	Number     string `json:"cardNumber"`
	Expiry     string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	HolderName string `json:"cardholderName"`
}

// Validate applies the payment form's format constraints. Separators in
// the card number ("1234 5678 9012 3456") are stripped before checking.
func (d CardDetails) Validate() error {
	number := strings.NewReplacer(" ", "", "-", "").Replace(d.Number)
	if !digitsRe.MatchString(number) {
		return ErrCardNumber
	}
	if !expiryRe.MatchString(d.Expiry) {
		return ErrCardExpiry
	}
	if !cvvRe.MatchString(d.CVV) {
		return ErrCardCVV
	}
	if len(strings.TrimSpace(d.HolderName)) <= 2 {
		return ErrCardHolder
	}
	return nil
}

// ParsePaymentMethod maps a request value onto the payment enum.
func ParsePaymentMethod(s string) (models.PaymentMethod, error) {
	switch models.PaymentMethod(s) {
	case models.PaymentMethodCard:
		return models.PaymentMethodCard, nil
	case models.PaymentMethodCash:
		return models.PaymentMethodCash, nil
	default:
		return "", errors.New("invalid payment method: " + s)
	}
}
