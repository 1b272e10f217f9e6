package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder is the glyph rendered instead of "0" when ZeroStyled is set.
const Placeholder = "-"

// Number is the stable display structure for a monetary or share value. The
// precise value always lives in Value; every string field is derived from it
// without ever passing through floating point.
type Number struct {
	Value         decimal.Decimal `json:"value"`
	Formatted     string          `json:"formatted"`
	Rounded       string          `json:"rounded"`
	FullPrecision string          `json:"full_precision"`
	Full          string          `json:"full"`
	Minimized     string          `json:"minimized"`
	Denomination  string          `json:"denomination"`
}

// Options controls how a Number is rendered.
type Options struct {
	// Decimals is the fixed fraction width of Formatted.
	Decimals int
	// DecimalsRounded is the fraction width of Rounded. Must not exceed
	// Decimals.
	DecimalsRounded int
	// Denomination is appended to Full (e.g. "ETH", "%", "Shares").
	Denomination string
	// PositiveSign prefixes positive values with "+".
	PositiveSign bool
	// ZeroStyled renders a zero value as the Placeholder glyph.
	ZeroStyled bool
}

func (o Options) validate() {
	if o.Decimals < 0 || o.DecimalsRounded < 0 || o.DecimalsRounded > o.Decimals {
		panic(fmt.Sprintf(
			"format: contradictory options: decimals=%d decimalsRounded=%d",
			o.Decimals, o.DecimalsRounded))
	}
}

// EtherOptions returns the default options for denominated monetary values.
func EtherOptions() Options {
	return Options{Decimals: 4, DecimalsRounded: 4, Denomination: "ETH"}
}

// SharesOptions returns the default options for share quantities.
func SharesOptions() Options {
	return Options{Decimals: 2, DecimalsRounded: 2, Denomination: "Shares"}
}

// PercentOptions returns the default options for percentage values.
func PercentOptions() Options {
	return Options{Decimals: 2, DecimalsRounded: 2, Denomination: "%"}
}

// Ether formats v as a monetary value with the default monetary options.
func Ether(v decimal.Decimal) Number { return FormatNumber(v, EtherOptions()) }

// Shares formats v as a share quantity with the default share options.
func Shares(v decimal.Decimal) Number { return FormatNumber(v, SharesOptions()) }

// Percent formats v (already scaled to 0-100) with the default percent
// options.
func Percent(v decimal.Decimal) Number { return FormatNumber(v, PercentOptions()) }

// FormatNumber renders v according to opts. Contradictory options are a
// programming error and panic.
func FormatNumber(v decimal.Decimal, opts Options) Number {
	opts.validate()

	n := Number{
		Value:         v,
		Denomination:  opts.Denomination,
		FullPrecision: v.String(),
	}
	n.Full = withDenomination(n.FullPrecision, opts.Denomination)
	n.Minimized = v.Round(int32(opts.Decimals)).String()
	n.Formatted = group(v.StringFixed(int32(opts.Decimals)))
	n.Rounded = group(v.Round(int32(opts.DecimalsRounded)).StringFixed(int32(opts.DecimalsRounded)))

	if opts.PositiveSign && v.Sign() > 0 {
		n.Formatted = "+" + n.Formatted
		n.Rounded = "+" + n.Rounded
		n.Minimized = "+" + n.Minimized
	}

	if opts.ZeroStyled && v.IsZero() {
		n.Formatted = Placeholder
		n.Rounded = Placeholder
		n.Full = Placeholder
		n.Minimized = Placeholder
	}

	return n
}

func withDenomination(s, denomination string) string {
	if denomination == "" {
		return s
	}
	if denomination == "%" {
		return s + "%"
	}
	return s + " " + denomination
}

// group inserts thousands separators into the integer part of an
// already-exact decimal string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	if hasFrac {
		return sign + intPart + "." + fracPart
	}
	return sign + intPart
}
