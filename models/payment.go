package models

import (
	"encoding/json"
	"errors"
	"time"
)

// PaymentType enumerates the supported payment descriptors
type PaymentType string

const (
	PaymentCreditCard PaymentType = "credit_card"
	PaymentDebitCard  PaymentType = "debit_card"
	PaymentUPI        PaymentType = "upi"
	PaymentPaypal     PaymentType = "paypal"
	PaymentNetBanking PaymentType = "net_banking"
)

// PaymentMethod is a stored payment descriptor. It is never charged against;
// checkout only records it on the order.
type PaymentMethod struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	UserID         uint        `json:"user_id" gorm:"not null;index"`
	Type           PaymentType `json:"type" gorm:"not null"`
	CardNumber     string      `json:"card_number,omitempty"`
	CardHolderName string      `json:"card_holder_name,omitempty"`
	ExpiryDate     string      `json:"expiry_date,omitempty"`
	UPIID          string      `json:"upi_id,omitempty"`
	IsDefault      bool        `json:"is_default" gorm:"default:false"`
	Country        Country     `json:"country" gorm:"not null"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// MaskCardNumber hides all but the last four digits of a stored card number.
func MaskCardNumber(cardNumber string) string {
	if cardNumber == "" {
		return ""
	}
	last4 := cardNumber
	if len(cardNumber) > 4 {
		last4 = cardNumber[len(cardNumber)-4:]
	}
	return "**** **** **** " + last4
}

// MarshalJSON masks the card number on every read. The raw value is only
// ever accepted as input, never rendered back.
func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	type alias PaymentMethod
	masked := alias(p)
	masked.CardNumber = MaskCardNumber(p.CardNumber)
	return json.Marshal(masked)
}

// PaymentDetails is the per-type variant of a payment descriptor. Each variant
// carries only its own required fields, so validation is a type switch rather
// than field-level conditionals.
type PaymentDetails interface {
	Validate() error
}

type CardDetails struct {
	Number     string
	HolderName string
	ExpiryDate string
}

func (d CardDetails) Validate() error {
	if d.Number == "" {
		return errors.New("card number is required for card payments")
	}
	if d.HolderName == "" {
		return errors.New("card holder name is required for card payments")
	}
	if d.ExpiryDate == "" {
		return errors.New("expiry date is required for card payments")
	}
	return nil
}

type UPIDetails struct {
	UPIID string
}

func (d UPIDetails) Validate() error {
	if d.UPIID == "" {
		return errors.New("upi id is required for upi payments")
	}
	return nil
}

// ExternalDetails covers types holding no fields of their own (paypal,
// net banking).
type ExternalDetails struct{}

func (ExternalDetails) Validate() error { return nil }

// Details projects the flat record into its typed variant.
func (p PaymentMethod) Details() (PaymentDetails, error) {
	switch p.Type {
	case PaymentCreditCard, PaymentDebitCard:
		return CardDetails{Number: p.CardNumber, HolderName: p.CardHolderName, ExpiryDate: p.ExpiryDate}, nil
	case PaymentUPI:
		return UPIDetails{UPIID: p.UPIID}, nil
	case PaymentPaypal, PaymentNetBanking:
		return ExternalDetails{}, nil
	default:
		return nil, errors.New("unknown payment type: " + string(p.Type))
	}
}
