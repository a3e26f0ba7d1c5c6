// Package testutil holds helpers shared by tests.
package testutil

import (
	"github.com/shopspring/decimal"
)

// DecimalMatcher compares decimals by value rather than representation.
// It satisfies both gomock.Matcher and pgxmock.Argument.
type DecimalMatcher struct {
	want decimal.Decimal
}

func Dec(s string) DecimalMatcher {
	return DecimalMatcher{want: decimal.RequireFromString(s)}
}

func (m DecimalMatcher) Matches(x any) bool {
	switch v := x.(type) {
	case decimal.Decimal:
		return v.Equal(m.want)
	case *decimal.Decimal:
		return v != nil && v.Equal(m.want)
	}
	return false
}

func (m DecimalMatcher) Match(x any) bool {
	return m.Matches(x)
}

func (m DecimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

// D parses a decimal literal, panicking on malformed input.
func D(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
