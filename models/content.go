package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ProjectContent is the free-form content block of a project page.
// Every member is optional; an empty value means "absent".
type ProjectContent struct {
	Title      string      `json:"title,omitempty"`
	Overview   string      `json:"overview,omitempty"`
	Highlights []Highlight `json:"highlights,omitempty"`
}

type Highlight struct {
	Title string     `json:"title"`
	Value FlexString `json:"value"`
}

type KeyFeature struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Stat struct {
	Label string     `json:"label"`
	Value FlexString `json:"value"`
	Icon  string     `json:"icon,omitempty"`
}

type UseCase struct {
	Icon        string   `json:"icon,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

// PurchaseInfo carries the commercial terms shown on investment and purchase panels.
// Includes keeps nil and empty apart: nil falls back to the default bundle,
// an explicit empty list stays empty.
type PurchaseInfo struct {
	InvestmentAmount FlexString `json:"investment_amount,omitempty"`
	MarketSize       FlexString `json:"market_size,omitempty"`
	Timeline         FlexString `json:"timeline,omitempty"`
	ProjectedROI     FlexString `json:"projected_roi,omitempty"`
	LicenseType      string     `json:"license_type,omitempty"`
	Includes         []string   `json:"includes"`
}

// FlexString holds a display value stored either as a JSON string or a JSON number
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Float reports the numeric value when the stored text is a plain number
func (f FlexString) Float() (float64, bool) {
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
