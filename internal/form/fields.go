package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/pension-calculator/internal/domain"
	money "github.com/rpgo/pension-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Kind selects how a field's text is parsed.
type Kind int

const (
	KindInt Kind = iota
	KindAmount
	KindPercent
)

// Field describes one calculator input: how to show it, parse it and store it.
type Field struct {
	Key   string
	Label string
	Kind  Kind
	Min   decimal.Decimal
	Max   decimal.Decimal

	get func(domain.Parameters) string
	set func(*domain.Parameters, decimal.Decimal)
}

// Get renders the field's current value as editable text.
func (f Field) Get(p domain.Parameters) string { return f.get(p) }

// Hint describes the allowed range in the unit the user types.
func (f Field) Hint() string {
	switch f.Kind {
	case KindPercent:
		return fmt.Sprintf("%s%% to %s%%", money.Percent(f.Min), money.Percent(f.Max))
	default:
		return fmt.Sprintf("%s to %s", f.Min.String(), f.Max.String())
	}
}

// Parse converts text into the field's stored value. Percentages are
// returned as fractions.
func (f Field) Parse(s string) (decimal.Decimal, error) {
	switch f.Kind {
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: enter a whole number", f.Label)
		}
		return decimal.NewFromInt(int64(n)), nil
	case KindPercent:
		d, err := money.ParsePercent(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", f.Label, err)
		}
		return d, nil
	default:
		d, err := money.ParseAmount(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", f.Label, err)
		}
		return d, nil
	}
}

// Validate parses s and checks it against the field's range.
func (f Field) Validate(s string) error {
	d, err := f.Parse(s)
	if err != nil {
		return err
	}
	if d.LessThan(f.Min) || d.GreaterThan(f.Max) {
		return fmt.Errorf("%s out of range (%s)", f.Label, f.Hint())
	}
	return nil
}

// Set parses s and stores it into p without range checks.
func (f Field) Set(p *domain.Parameters, s string) error {
	d, err := f.Parse(s)
	if err != nil {
		return err
	}
	f.set(p, d)
	return nil
}

func intField(key, label string, r domain.IntRange, get func(domain.Parameters) int, set func(*domain.Parameters, int)) Field {
	return Field{
		Key: key, Label: label, Kind: KindInt,
		Min: decimal.NewFromInt(int64(r.Min)), Max: decimal.NewFromInt(int64(r.Max)),
		get: func(p domain.Parameters) string { return strconv.Itoa(get(p)) },
		set: func(p *domain.Parameters, d decimal.Decimal) { set(p, int(d.IntPart())) },
	}
}

func decimalField(key, label string, kind Kind, r domain.DecimalRange, ptr func(*domain.Parameters) *decimal.Decimal) Field {
	return Field{
		Key: key, Label: label, Kind: kind, Min: r.Min, Max: r.Max,
		get: func(p domain.Parameters) string {
			v := *ptr(&p)
			if kind == KindPercent {
				return money.Percent(v)
			}
			return v.String()
		},
		set: func(p *domain.Parameters, d decimal.Decimal) { *ptr(p) = d },
	}
}

// Fields lists the calculator inputs in display order. Percent ranges are
// expressed as fractions, the same as the stored values.
func Fields() []Field {
	return []Field{
		intField("start_age", "Start age", domain.StartAgeRange,
			func(p domain.Parameters) int { return p.StartAge },
			func(p *domain.Parameters, v int) { p.StartAge = v }),
		intField("retire_age", "Retirement age", domain.RetireAgeRange,
			func(p domain.Parameters) int { return p.RetireAge },
			func(p *domain.Parameters, v int) { p.RetireAge = v }),
		intField("existing_months", "Existing contribution months", domain.ExistingMonthsRange,
			func(p domain.Parameters) int { return p.ExistingMonths },
			func(p *domain.Parameters, v int) { p.ExistingMonths = v }),
		decimalField("last_wage", "Last insured wage", KindAmount, domain.WageRange,
			func(p *domain.Parameters) *decimal.Decimal { return &p.LastWage }),
		decimalField("ceiling", "Wage ceiling", KindAmount, domain.WageRange,
			func(p *domain.Parameters) *decimal.Decimal { return &p.Ceiling }),
		decimalField("contrib_rate", "Contribution rate %", KindPercent, domain.ContribRateRange,
			func(p *domain.Parameters) *decimal.Decimal { return &p.ContribRate }),
		decimalField("inc_pct", "Increase %", KindPercent, domain.IncPctRange,
			func(p *domain.Parameters) *decimal.Decimal { return &p.IncPct }),
		intField("inc_every", "Increase every N years", domain.IncEveryRange,
			func(p domain.Parameters) int { return p.IncEvery },
			func(p *domain.Parameters, v int) { p.IncEvery = v }),
		intField("inc_start_age", "Increase start age", domain.IncStartAgeRange,
			func(p domain.Parameters) int { return p.IncStartAge },
			func(p *domain.Parameters, v int) { p.IncStartAge = v }),
	}
}

// Apply parses every value into a copy of base and clamps the result into
// the input ranges. Missing keys keep base's value.
func Apply(base domain.Parameters, values map[string]string) (domain.Parameters, error) {
	p := base
	for _, f := range Fields() {
		s, ok := values[f.Key]
		if !ok {
			continue
		}
		if err := f.Set(&p, s); err != nil {
			return base, err
		}
	}
	return domain.ClampParameters(p), nil
}
