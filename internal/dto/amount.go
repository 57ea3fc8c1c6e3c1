package dto

import (
	"bytes"
	"encoding/json"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Amount is a money value accepted either as a JSON number or a string
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// Decimal parses the amount. A blank amount is zero; values outside the
// supported range fail with models.ErrAmountOutOfRange.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return models.ParseAmount(string(a))
}

// DecimalOrZero parses the amount and falls back to zero when it is not a number
func (a Amount) DecimalOrZero() decimal.Decimal {
	d, err := a.Decimal()
	if err != nil {
		return decimal.Zero
	}
	return d
}
