package entity

import (
	"github.com/shopspring/decimal"
)

const DefaultDealStage = "appointmentscheduled"

type Deal struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    Amount `json:"amount"`
	Stage     string `json:"stage"`
	CloseDate string `json:"closeDate,omitempty"`
}

type NewDeal struct {
	ContactID string `json:"contactId"`
	Name      string `json:"dealName"`
	Amount    Amount `json:"amount"`
	Stage     string `json:"stage"`
	CloseDate string `json:"closeDate"`
}

// Amount is a money value encoded as a bare JSON number.
type Amount struct {
	decimal.Decimal
}

func NewAmount(v int64) Amount {
	return Amount{decimal.NewFromInt(v)}
}

// ParseAmount reads the CRM string form. Unparsable input is treated as zero.
func ParseAmount(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}

	return Amount{d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	return a.Decimal.UnmarshalJSON(b)
}
