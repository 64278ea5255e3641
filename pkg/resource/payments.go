package resource

import (
	"encoding/json"
	"strings"
)

// Payment is a money movement tied to a booking: charge, refund, payout,
// or damage fee. Refunds carry negative amounts.
type Payment struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"bookingId"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Method      string  `json:"method"`
	Date        string  `json:"date"`
	RenterName  string  `json:"renterName"`
	HostName    string  `json:"hostName"`
	PlatformFee float64 `json:"platformFee"`
	HostEarning float64 `json:"hostEarning"`
}

func (p Payment) RecordID() string    { return p.ID }
func (p Payment) StatusValue() string { return strings.ToLower(p.Status) }

// SearchText matches the payments page: id, booking, renter, or host.
func (p Payment) SearchText() []string {
	return []string{p.ID, p.BookingID, p.RenterName, p.HostName}
}

// DecodePayments normalizes a raw /admin/payments payload.
func DecodePayments(raw json.RawMessage) ([]Payment, error) {
	items, err := listItems(raw, "payments", "data")
	if err != nil {
		return nil, err
	}
	payments := make([]Payment, 0, len(items))
	for _, m := range items {
		payments = append(payments, decodePayment(m))
	}
	return payments, nil
}

func decodePayment(m map[string]any) Payment {
	return Payment{
		ID:          str(m, "", "id", "_id", "payment_id"),
		BookingID:   str(m, "", "bookingId", "booking_id"),
		Type:        str(m, "Booking Payment", "type", "payment_type"),
		Amount:      num(m, "amount", "totalAmount", "total_price"),
		Status:      str(m, "Unknown", "status", "payment_status"),
		Method:      str(m, "Unknown", "method", "payment_method"),
		Date:        date(m, "date", "createdAt", "created_at"),
		RenterName:  str(m, "Unknown", "renterName", "renter_name"),
		HostName:    str(m, "Unknown", "hostName", "host_name"),
		PlatformFee: num(m, "platformFee", "platform_fee", "fee"),
		HostEarning: num(m, "hostEarning", "host_earning", "host_amount"),
	}
}

// Commission is the platform's cut of a completed booking, as returned by
// /admin/commissions. Read-only; there is no mutate endpoint.
type Commission struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"bookingId"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	HostEarning float64 `json:"hostEarning"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

func (c Commission) RecordID() string    { return c.ID }
func (c Commission) StatusValue() string { return strings.ToLower(c.Status) }

func (c Commission) SearchText() []string { return []string{c.ID, c.BookingID} }

// DecodeCommissions normalizes a raw /admin/commissions payload.
func DecodeCommissions(raw json.RawMessage) ([]Commission, error) {
	items, err := listItems(raw, "commissions", "data")
	if err != nil {
		return nil, err
	}
	commissions := make([]Commission, 0, len(items))
	for _, m := range items {
		commissions = append(commissions, Commission{
			ID:          str(m, "", "id", "_id"),
			BookingID:   str(m, "", "bookingId", "booking_id"),
			Rate:        num(m, "rate", "commission_rate"),
			Amount:      num(m, "amount", "commission_amount"),
			HostEarning: num(m, "hostEarning", "host_earning"),
			Status:      str(m, "Unknown", "status"),
			Date:        date(m, "date", "createdAt", "created_at"),
		})
	}
	return commissions, nil
}
