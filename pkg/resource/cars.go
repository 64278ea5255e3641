package resource

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Car is a vehicle listing. VerificationStatus tracks the listing review
// workflow; Available reflects whether the car can currently be booked.
type Car struct {
	ID                 string  `json:"id"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	LicensePlate       string  `json:"licensePlate"`
	HostName           string  `json:"hostName"`
	Status             string  `json:"status"`
	VerificationStatus string  `json:"verification_status"`
	Location           string  `json:"location"`
	DailyRate          float64 `json:"dailyRate"`
	TotalTrips         int     `json:"totalTrips"`
	TotalEarnings      float64 `json:"totalEarnings"`
	Available          bool    `json:"available"`
}

func (c Car) RecordID() string    { return c.ID }
func (c Car) StatusValue() string { return strings.ToLower(c.Status) }

// SearchText matches the cars page: make, model, plate, and host name.
func (c Car) SearchText() []string {
	return []string{c.ID, c.Make, c.Model, c.LicensePlate, c.HostName}
}

// DisplayName renders "2020 BMW 3 Series".
func (c Car) DisplayName() string {
	if c.Year > 0 {
		return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
	}
	return strings.TrimSpace(c.Make + " " + c.Model)
}

// PendingVerification reports whether the listing awaits review.
func (c Car) PendingVerification() bool {
	return strings.EqualFold(c.VerificationStatus, "pending")
}

// DecodeCars normalizes a raw /admin/cars payload.
func DecodeCars(raw json.RawMessage) ([]Car, error) {
	items, err := listItems(raw, "cars", "data")
	if err != nil {
		return nil, err
	}
	cars := make([]Car, 0, len(items))
	for _, m := range items {
		cars = append(cars, decodeCar(m))
	}
	return cars, nil
}

func decodeCar(m map[string]any) Car {
	return Car{
		ID:                 str(m, "", "id", "_id"),
		Make:               str(m, "", "make", "brand"),
		Model:              str(m, "", "model"),
		Year:               count(m, "year"),
		LicensePlate:       str(m, "", "licensePlate", "license_plate", "plate_number"),
		HostName:           str(m, "Unknown", "hostName", "host_name", "owner_name"),
		Status:             str(m, "Unknown", "status"),
		VerificationStatus: strings.ToLower(str(m, "pending", "verification_status", "verificationStatus")),
		Location:           str(m, "", "location", "city"),
		DailyRate:          num(m, "dailyRate", "daily_rate", "price_per_day"),
		TotalTrips:         count(m, "totalTrips", "total_trips", "trips"),
		TotalEarnings:      num(m, "totalEarnings", "total_earnings", "earnings"),
		Available:          boolean(m, true, "available", "is_available"),
	}
}
