package resource

import (
	"encoding/json"
	"strings"
)

// Booking is a rental transaction between a renter and a host.
type Booking struct {
	ID          string  `json:"id"`
	RenterName  string  `json:"renterName"`
	HostName    string  `json:"hostName"`
	CarName     string  `json:"carName"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	BookingDate string  `json:"bookingDate"`
	Status      string  `json:"status"`
	Location    string  `json:"location"`
	TotalAmount float64 `json:"totalAmount"`
}

func (b Booking) RecordID() string    { return b.ID }
func (b Booking) StatusValue() string { return strings.ToLower(b.Status) }

// SearchText matches the bookings page: id, renter, host, or car.
func (b Booking) SearchText() []string {
	return []string{b.ID, b.RenterName, b.HostName, b.CarName}
}

// DecodeBookings normalizes a raw /admin/bookings payload.
func DecodeBookings(raw json.RawMessage) ([]Booking, error) {
	items, err := listItems(raw, "bookings", "data")
	if err != nil {
		return nil, err
	}
	bookings := make([]Booking, 0, len(items))
	for _, m := range items {
		bookings = append(bookings, decodeBooking(m))
	}
	return bookings, nil
}

func decodeBooking(m map[string]any) Booking {
	return Booking{
		ID:          str(m, "", "id", "_id", "booking_id"),
		RenterName:  str(m, "Unknown", "renterName", "renter_name", "renter"),
		HostName:    str(m, "Unknown", "hostName", "host_name", "host"),
		CarName:     str(m, "Unknown", "carName", "car_name", "car"),
		StartDate:   date(m, "startDate", "start_date", "pickup_date"),
		EndDate:     date(m, "endDate", "end_date", "return_date"),
		BookingDate: date(m, "bookingDate", "booking_date", "createdAt", "created_at"),
		Status:      str(m, "Unknown", "status", "booking_status"),
		Location:    str(m, "", "location", "pickup_location"),
		TotalAmount: num(m, "totalAmount", "total_price", "total_amount"),
	}
}
