package reservation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case PaymentCash, PaymentCard:
		return m, nil
	}
	return "", fmt.Errorf("invalid payment method %q (want cash or card)", s)
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCard:
		return "Card"
	}
	return string(m)
}

// PaymentStatus is controlled by the server; only PAID is set by the client.
type PaymentStatus string

const PaymentPaid PaymentStatus = "PAID"

func (s PaymentStatus) IsPaid() bool { return s == PaymentPaid }

// Draft is the unconfirmed booking form held by the wizard.
type Draft struct {
	GuestName       string        `json:"guestName" validate:"required"`
	Email           string        `json:"email" validate:"required"`
	ContactNumber   string        `json:"contactNumber"`
	Address         string        `json:"address"`
	IDNumber        string        `json:"idNumber"`
	RoomType        string        `json:"roomType"`
	NumberOfGuests  int           `json:"numberOfGuests" validate:"min=1"`
	CheckInDate     Date          `json:"checkInDate"`
	CheckOutDate    Date          `json:"checkOutDate"`
	SpecialRequests string        `json:"specialRequests"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" validate:"oneof=cash card"`
}

var validate = validator.New()

// NewDraft returns a draft with the form defaults.
func NewDraft() Draft {
	return Draft{
		RoomType:       "single",
		NumberOfGuests: 1,
		PaymentMethod:  PaymentCash,
	}
}

// GuestDetailsComplete reports whether guest name and email are both set.
func (d Draft) GuestDetailsComplete() bool {
	return validate.StructPartial(d, "GuestName", "Email") == nil
}

// StayDatesComplete reports whether both stay dates are set.
func (d Draft) StayDatesComplete() bool {
	return !d.CheckInDate.IsZero() && !d.CheckOutDate.IsZero()
}

// Set assigns one form field by its wire name.
func (d *Draft) Set(field, value string) error {
	switch field {
	case "guestName":
		d.GuestName = value
	case "email":
		d.Email = value
	case "contactNumber":
		d.ContactNumber = value
	case "address":
		d.Address = value
	case "idNumber":
		d.IDNumber = value
	case "roomType":
		d.RoomType = strings.TrimSpace(value)
	case "numberOfGuests":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 1 {
			return fmt.Errorf("numberOfGuests must be a whole number >= 1")
		}
		d.NumberOfGuests = n
	case "checkInDate":
		v, err := ParseDate(value)
		if err != nil {
			return fmt.Errorf("checkInDate: %w", err)
		}
		d.CheckInDate = v
	case "checkOutDate":
		v, err := ParseDate(value)
		if err != nil {
			return fmt.Errorf("checkOutDate: %w", err)
		}
		d.CheckOutDate = v
	case "specialRequests":
		d.SpecialRequests = value
	case "paymentMethod":
		m, err := ParsePaymentMethod(value)
		if err != nil {
			return err
		}
		d.PaymentMethod = m
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Reservation is the server-authoritative record. Fields the server sends that
// are not modeled here survive a decode/encode round trip unchanged.
type Reservation struct {
	ReservationNumber string        `json:"reservationNumber"`
	GuestName         string        `json:"guestName"`
	Email             string        `json:"email"`
	ContactNumber     string        `json:"contactNumber"`
	Address           string        `json:"address"`
	IDNumber          string        `json:"idNumber"`
	RoomType          string        `json:"roomType"`
	NumberOfGuests    int           `json:"numberOfGuests"`
	CheckInDate       Date          `json:"checkInDate"`
	CheckOutDate      Date          `json:"checkOutDate"`
	SpecialRequests   string        `json:"specialRequests"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	TotalBill         float64       `json:"totalBill"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`

	extra map[string]json.RawMessage
}

// reservationFields has Reservation's layout without its JSON methods.
type reservationFields Reservation

func (r *Reservation) UnmarshalJSON(b []byte) error {
	var f reservationFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	known, err := json.Marshal(f)
	if err != nil {
		return err
	}
	var knownKeys map[string]json.RawMessage
	if err := json.Unmarshal(known, &knownKeys); err != nil {
		return err
	}
	// encoding/json matches field names case-insensitively, so must we.
	for k := range all {
		if hasKeyFold(knownKeys, k) {
			delete(all, k)
		}
	}
	*r = Reservation(f)
	if len(all) > 0 {
		r.extra = all
	}
	return nil
}

func (r Reservation) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(reservationFields(r))
	if err != nil || len(r.extra) == 0 {
		return b, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	for k, v := range r.extra {
		if !hasKeyFold(all, k) {
			all[k] = v
		}
	}
	return json.Marshal(all)
}

func hasKeyFold(m map[string]json.RawMessage, key string) bool {
	for k := range m {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// WithPaymentStatus returns a copy of r with the status replaced.
func (r Reservation) WithPaymentStatus(s PaymentStatus) Reservation {
	out := r
	if r.extra != nil {
		out.extra = make(map[string]json.RawMessage, len(r.extra))
		for k, v := range r.extra {
			out.extra[k] = v
		}
	}
	out.PaymentStatus = s
	return out
}
