package models

import (
	"fmt"
	"strings"
	"time"
)

// Location is a (city, state) pair, keyed externally by its "City, State" form.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.City, l.State)
}

// ParseLocation splits a free-text "City, State" string. The state is
// everything after the last comma, matching how locations are keyed.
func ParseLocation(s string) (Location, error) {
	idx := strings.LastIndex(s, ",")
	if idx < 0 {
		return Location{}, &ValidationError{Message: fmt.Sprintf("location %q must be in \"City, State\" form", s)}
	}
	loc := Location{
		City:  strings.TrimSpace(s[:idx]),
		State: strings.TrimSpace(s[idx+1:]),
	}
	if loc.City == "" || loc.State == "" {
		return Location{}, &ValidationError{Message: fmt.Sprintf("location %q must be in \"City, State\" form", s)}
	}
	return loc, nil
}

type CarSize string

const (
	CarSizeAny      CarSize = "Any"
	CarSizeEconomy  CarSize = "Economy"
	CarSizeCompact  CarSize = "Compact"
	CarSizeMidSize  CarSize = "Mid-size"
	CarSizeFullSize CarSize = "Full-size"
	CarSizeSUV      CarSize = "SUV"
	CarSizeLuxury   CarSize = "Luxury"
)

// CarSizes lists the accepted filter values, in display order.
var CarSizes = []CarSize{
	CarSizeAny, CarSizeEconomy, CarSizeCompact, CarSizeMidSize,
	CarSizeFullSize, CarSizeSUV, CarSizeLuxury,
}

// ValidationError marks malformed user input, as opposed to transient
// acquisition failures which never surface to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Trip is a single rental request.
type Trip struct {
	Origin      Location
	Destination Location
	PickupDate  time.Time
	ReturnDate  time.Time
	RoundTrip   bool
	CarSize     CarSize
}

// Validate rejects malformed trips and normalizes round trips so that the
// drop-off location always equals the pickup location.
func (t *Trip) Validate() error {
	if t.RoundTrip {
		t.Destination = t.Origin
	} else if t.Origin == t.Destination {
		return &ValidationError{Message: "one-way rentals need different pickup and drop-off locations; choose a round trip to return to the same location"}
	}
	if t.ReturnDate.Before(t.PickupDate) {
		return &ValidationError{Message: "drop-off date must be on or after the pickup date"}
	}
	if t.CarSize == "" {
		t.CarSize = CarSizeAny
	}
	valid := false
	for _, size := range CarSizes {
		if t.CarSize == size {
			valid = true
			break
		}
	}
	if !valid {
		return &ValidationError{Message: fmt.Sprintf("unknown car size %q", t.CarSize)}
	}
	return nil
}

// RentalDays is the authoritative day count used for total pricing.
// Same-day returns are billed as one day.
func (t Trip) RentalDays() int {
	days := int(t.ReturnDate.Sub(t.PickupDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
