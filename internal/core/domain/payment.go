package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

type PaymentMethodCode string

const (
	PaymentMethodCreditCard    PaymentMethodCode = "credit_card"
	PaymentMethodDigitalWallet PaymentMethodCode = "digital_wallet"
	PaymentMethodBankTransfer  PaymentMethodCode = "bank_transfer"
	PaymentMethodPayLater      PaymentMethodCode = "pay_later"
)

func (c PaymentMethodCode) IsValid() bool {
	return c == PaymentMethodCreditCard || c == PaymentMethodDigitalWallet || c == PaymentMethodBankTransfer || c == PaymentMethodPayLater
}

func (c PaymentMethodCode) RequiresCard() bool {
	return c == PaymentMethodCreditCard
}

type PaymentMethod struct {
	Code      PaymentMethodCode
	Title     string
	Providers string
	Icon      Icon
}

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{Code: PaymentMethodCreditCard, Title: "Credit Card", Providers: "Visa, Mastercard, AMEX", Icon: ResourceIcon("ic_credit_card")},
		{Code: PaymentMethodDigitalWallet, Title: "Digital Wallet", Providers: "GoPay, OVO, DANA", Icon: ResourceIcon("ic_account_balance_wallet")},
		{Code: PaymentMethodBankTransfer, Title: "Bank Transfer", Providers: "BCA, BRI, Mandiri", Icon: ResourceIcon("ic_account_balance")},
		{Code: PaymentMethodPayLater, Title: "Buy Now Pay Later", Providers: "Kredivo, Akulaku", Icon: ResourceIcon("ic_schedule")},
	}
}

// ValidationError describes a rejected form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

type CardDetails struct {
	HolderName string
	Number     string
	Expiry     string
	CVV        string
}

func (c CardDetails) Validate(now time.Time) error {
	if strings.TrimSpace(c.HolderName) == "" {
		return invalid("card_holder_name", "is required")
	}
	number := strings.ReplaceAll(c.Number, " ", "")
	if len(number) < 13 || len(number) > 19 || !allDigits(number) {
		return invalid("card_number", "must be 13 to 19 digits")
	}
	if !luhnValid(number) {
		return invalid("card_number", "failed checksum")
	}
	if err := validateExpiry(c.Expiry, now); err != nil {
		return err
	}
	if (len(c.CVV) != 3 && len(c.CVV) != 4) || !allDigits(c.CVV) {
		return invalid("cvv", "must be 3 or 4 digits")
	}
	return nil
}

// Last4 returns the final four digits of the card number.
func (c CardDetails) Last4() string {
	number := strings.ReplaceAll(c.Number, " ", "")
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}

func validateExpiry(expiry string, now time.Time) error {
	month, year, ok := strings.Cut(expiry, "/")
	if !ok || len(month) != 2 || len(year) != 2 || !allDigits(month) || !allDigits(year) {
		return invalid("expiry_date", "must be MM/YY")
	}
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	if m < 1 || m > 12 {
		return invalid("expiry_date", "month out of range")
	}
	// a card is valid through the last day of its expiry month
	expiresAt := time.Date(2000+y, time.Month(m)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.Before(expiresAt) {
		return invalid("expiry_date", "card has expired")
	}
	return nil
}

func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

type ShippingAddress struct {
	Street  string
	City    string
	ZipCode string
}

func (a ShippingAddress) Validate() error {
	if strings.TrimSpace(a.Street) == "" {
		return invalid("address", "is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return invalid("city", "is required")
	}
	zip := strings.TrimSpace(a.ZipCode)
	if len(zip) < 4 || len(zip) > 10 {
		return invalid("zip_code", "must be 4 to 10 characters")
	}
	for _, r := range zip {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return invalid("zip_code", "must be alphanumeric")
		}
	}
	return nil
}

type PromoCode string

// PromoDiscountRate is the extra rate granted by any accepted promo code.
var PromoDiscountRate = MustDiscountRate("0.05")

var knownPromoCodes = map[PromoCode]struct{}{
	"GLOW2024": {},
	"BEAUTY15": {},
	"NEWBIE":   {},
}

func NormalizePromoCode(code string) PromoCode {
	return PromoCode(strings.ToUpper(strings.TrimSpace(code)))
}

func (p PromoCode) IsKnown() bool {
	_, ok := knownPromoCodes[p]
	return ok
}

func SuggestedPromoCodes() []PromoCode {
	return []PromoCode{"GLOW2024", "BEAUTY15", "NEWBIE"}
}
