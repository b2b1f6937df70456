package api

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrConversionFailed is returned when the backend reports success:false.
var ErrConversionFailed = errors.New("conversion rejected by server")

// convertResponse mirrors GET /api/currency/convert.
type convertResponse struct {
	Success   bool `json:"success"`
	Converted struct {
		Amount decimal.Decimal `json:"amount"`
	} `json:"converted"`
	Error string `json:"error"`
}

// Convert asks the backend to convert amount from one ISO 4217 code to
// another. Callers fall back to the original amount in its original currency
// on any error, so a failed conversion is never shown mislabeled.
func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	var out convertResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"amount": amount.String(),
			"from":   from,
			"to":     to,
		}).
		SetResult(&out).
		Get("/api/currency/convert")
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "convert %s %s to %s", amount, from, to)
	}
	if !resp.IsSuccess() {
		return decimal.Zero, errors.Errorf("convert %s %s to %s: unexpected status %s", amount, from, to, resp.Status())
	}
	if !out.Success {
		if out.Error != "" {
			return decimal.Zero, errors.Wrap(ErrConversionFailed, out.Error)
		}
		return decimal.Zero, ErrConversionFailed
	}

	return out.Converted.Amount, nil
}
