// Package receipt parses store app receipts and applies the free ad-removal rule.
package receipt

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedReceipt is returned for receipts that cannot be read.
var ErrMalformedReceipt = errors.New("malformed receipt")

// ErrInvalidPurchaseDate is returned when the AppReceipt is present but its
// PurchaseDate is missing or unreadable. Such a receipt never qualifies.
var ErrInvalidPurchaseDate = errors.New("invalid purchase date")

// Cutoff is the last purchase instant that qualifies for the free grant.
var Cutoff = time.Date(2017, time.May, 15, 5, 0, 0, 0, time.UTC)

// Receipt is the subset of an app receipt the eligibility rule needs.
type Receipt struct {
	AppID        string
	LicenseType  string
	PurchaseDate time.Time
}

type receiptXML struct {
	XMLName     xml.Name        `xml:"Receipt"`
	AppReceipts []appReceiptXML `xml:"AppReceipt"`
}

type appReceiptXML struct {
	AppID        string `xml:"AppId,attr"`
	LicenseType  string `xml:"LicenseType,attr"`
	PurchaseDate string `xml:"PurchaseDate,attr"`
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// Parse reads the first AppReceipt element of a receipt document. With
// ErrInvalidPurchaseDate the other fields are still filled in.
func Parse(data string) (Receipt, error) {
	var doc receiptXML
	if err := xml.Unmarshal([]byte(data), &doc); err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrMalformedReceipt, err)
	}
	if len(doc.AppReceipts) == 0 {
		return Receipt{}, fmt.Errorf("%w: no AppReceipt element", ErrMalformedReceipt)
	}

	app := doc.AppReceipts[0]
	r := Receipt{AppID: app.AppID, LicenseType: app.LicenseType}
	date, err := parseDate(app.PurchaseDate)
	if err != nil {
		return r, err
	}
	r.PurchaseDate = date
	return r, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: missing PurchaseDate", ErrInvalidPurchaseDate)
	}
	for _, layout := range dateLayouts {
		// Dates without an offset are read as UTC.
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPurchaseDate, value)
}

// Eligible reports whether a purchase at t qualifies for the free grant.
// The cutoff itself is eligible.
func Eligible(t time.Time) bool {
	return !t.After(Cutoff)
}

// Outcome is the result of validating a fetched receipt.
type Outcome int

const (
	OutcomeParseFailed Outcome = iota
	OutcomeEligible
	OutcomeNotEligible
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEligible:
		return "eligible"
	case OutcomeNotEligible:
		return "not-eligible"
	default:
		return "parse-failed"
	}
}

// Classify parses data and applies the eligibility rule. A receipt with an
// unreadable date is not eligible and carries no error.
func Classify(data string) (Outcome, Receipt, error) {
	r, err := Parse(data)
	if errors.Is(err, ErrInvalidPurchaseDate) {
		return OutcomeNotEligible, r, nil
	}
	if err != nil {
		return OutcomeParseFailed, Receipt{}, err
	}
	if Eligible(r.PurchaseDate) {
		return OutcomeEligible, r, nil
	}
	return OutcomeNotEligible, r, nil
}

// Build renders a minimal receipt document. The simulator and tests use it.
func Build(appID string, licenseType string, purchaseDate time.Time) string {
	return fmt.Sprintf(
		`<?xml version="1.0" encoding="utf-8"?>`+
			`<Receipt Version="1.0" xmlns="http://schemas.microsoft.com/windows/2012/store/receipt">`+
			`<AppReceipt Id="%s" AppId="%s" PurchaseDate="%s" LicenseType="%s" />`+
			`</Receipt>`,
		appID, appID, purchaseDate.UTC().Format(time.RFC3339Nano), licenseType,
	)
}
