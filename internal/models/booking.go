package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Booking struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	Status  string `json:"status"`
	Price   Amount `json:"price,omitempty"`
	Notes   string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Amount is a price as entered in the console or booking form. Payloads carry
// it either as a JSON number or a free-text string, so it is kept verbatim
// and parsed leniently where arithmetic is needed.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*a = Amount(n.String())
		return nil
	}

	// null or a non-scalar: treat as unset
	*a = ""
	return nil
}

// Float returns the numeric value, or 0 when the amount is missing or not
// parseable as a decimal number.
func (a Amount) Float() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
	if err != nil {
		return 0
	}
	return f
}
