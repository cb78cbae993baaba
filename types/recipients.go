package types

import (
	"github.com/shopspring/decimal"

	"merchantcore/apperror"
	"merchantcore/inputs"
	"merchantcore/secure"
)

// intermediateScale is the banker's-rounding precision applied to each
// percent expansion before the final rounding to the currency's
// minor-unit scale.
const intermediateScale = 6

// DistributedValue is one recipient's allocation in a split payment:
// either a fixed amount (> 0) in the payment currency, or a percent of
// the total in the open interval (0, 100).
type DistributedValue struct {
	percent bool
	value   decimal.Decimal
}

// NewDistributedAmount builds a fixed allocation; the amount must be positive.
func NewDistributedAmount(amount decimal.Decimal) (DistributedValue, error) {
	if !amount.IsPositive() {
		return DistributedValue{}, apperror.InvalidInput("recipient amount must be positive")
	}
	return DistributedValue{value: amount}, nil
}

// NewDistributedPercent builds a percent allocation in (0, 100) exclusive.
func NewDistributedPercent(percent decimal.Decimal) (DistributedValue, error) {
	if !percent.IsPositive() || percent.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return DistributedValue{}, apperror.InvalidInput("recipient percent must be between 0 and 100 (exclusive)")
	}
	return DistributedValue{percent: true, value: percent}, nil
}

func (v DistributedValue) IsPercent() bool        { return v.percent }
func (v DistributedValue) Value() decimal.Decimal { return v.value }

// expand returns the allocation in currency units against the total.
// Percent shares are banker's-rounded at the intermediate scale.
func (v DistributedValue) expand(total decimal.Decimal) decimal.Decimal {
	if !v.percent {
		return v.value
	}
	return total.Mul(v.value).Div(decimal.NewFromInt(100)).RoundBank(intermediateScale)
}

func distributedValueFromInput(in inputs.DistributedValue) (DistributedValue, error) {
	switch {
	case in.Amount != nil && in.Percent != nil:
		return DistributedValue{}, apperror.InvalidInput("recipient allocation must set amount or percent, not both")
	case in.Amount != nil:
		return NewDistributedAmount(*in.Amount)
	case in.Percent != nil:
		return NewDistributedPercent(*in.Percent)
	default:
		return DistributedValue{}, apperror.InvalidInput("recipient allocation must set amount or percent")
	}
}

// Recipients maps recipient ids to their allocations in a split
// payment. Ids are unique; insertion order is irrelevant.
type Recipients struct {
	allocations map[string]DistributedValue
}

// NewRecipients validates a boundary recipients map. At least one
// recipient is required.
func NewRecipients(in inputs.Recipients) (Recipients, error) {
	if len(in) == 0 {
		return Recipients{}, apperror.InvalidInput("recipients must not be empty")
	}
	allocations := make(map[string]DistributedValue, len(in))
	for rawID, rawValue := range in {
		id, err := secure.NewRecipientID(rawID)
		if err != nil {
			return Recipients{}, err
		}
		value, err := distributedValueFromInput(rawValue)
		if err != nil {
			return Recipients{}, err
		}
		allocations[id.Value()] = value
	}
	return Recipients{allocations: allocations}, nil
}

func (r Recipients) Len() int { return len(r.allocations) }

// Allocations returns a copy of the id-to-allocation map.
func (r Recipients) Allocations() map[string]DistributedValue {
	out := make(map[string]DistributedValue, len(r.allocations))
	for id, v := range r.allocations {
		out[id] = v
	}
	return out
}

// Allocation returns the allocation for a recipient id, if present.
func (r Recipients) Allocation(id secure.RecipientID) (DistributedValue, bool) {
	v, ok := r.allocations[id.Value()]
	return v, ok
}

// CalculateTotal sums all allocations against the given total: fixed
// amounts verbatim plus percent shares expanded against total. The sum
// is rounded to the currency's minor-unit scale with banker's rounding.
func (r Recipients) CalculateTotal(total decimal.Decimal, cur Currency) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range r.allocations {
		sum = sum.Add(v.expand(total))
	}
	return sum.RoundBank(cur.MinorUnits())
}

// RecipientsBuilder assembles a Recipients value step by step.
type RecipientsBuilder struct {
	in  inputs.Recipients
	err error
}

func NewRecipientsBuilder() *RecipientsBuilder {
	return &RecipientsBuilder{in: make(inputs.Recipients)}
}

// WithAmount allocates a fixed amount to the recipient.
func (b *RecipientsBuilder) WithAmount(id string, amount decimal.Decimal) *RecipientsBuilder {
	b.in[id] = inputs.DistributedValue{Amount: &amount}
	return b
}

// WithPercent allocates a percent of the total to the recipient.
func (b *RecipientsBuilder) WithPercent(id string, percent decimal.Decimal) *RecipientsBuilder {
	b.in[id] = inputs.DistributedValue{Percent: &percent}
	return b
}

func (b *RecipientsBuilder) Build() (Recipients, error) {
	if b.err != nil {
		return Recipients{}, b.err
	}
	return NewRecipients(b.in)
}
