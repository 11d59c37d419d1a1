package posting

import (
	"time"

	"github.com/hance08/tally/internal/model"
)

// Header holds the fields common to every transaction request.
type Header struct {
	UserID      int64
	Type        model.TxType
	Date        time.Time
	Description string
	ExternalID  string

	AccountIDPrimary   int64
	AccountIDSecondary int64
	AmountOCPrimary    float64
	CurrencyPrimary    string
}

// Request is either a SimpleRequest or a ForexRequest.
type Request interface {
	header() *Header
}

// SimpleRequest describes income, expense, transfer and credit card payments.
// The secondary leg mirrors the primary amount and currency.
type SimpleRequest struct {
	Header
}

// ForexRequest describes a currency exchange between two asset accounts,
// with an explicit amount and currency for each leg.
type ForexRequest struct {
	Header
	AmountOCSecondary float64
	CurrencySecondary string
}

func (r *SimpleRequest) header() *Header {
	if r == nil {
		return nil
	}
	return &r.Header
}

func (r *ForexRequest) header() *Header {
	if r == nil {
		return nil
	}
	return &r.Header
}

// HeaderOf exposes the common fields of any request. It is nil for a nil request.
func HeaderOf(req Request) *Header {
	if req == nil {
		return nil
	}
	return req.header()
}
