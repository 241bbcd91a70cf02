package domain

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	m "github.com/kelcheone/notes/internal/model"
)

// CloneAndAppend copies s and appends suffix to the copy. The original is
// returned unchanged next to the extended copy.
func CloneAndAppend(s, suffix string) (string, string) {
	var b strings.Builder

	b.Grow(len(s) + len(suffix))
	b.WriteString(s)
	b.WriteString(suffix)

	return s, b.String()
}

// AppendInPlace appends suffix to the string s points to.
func AppendInPlace(s *string, suffix string) {
	if s == nil {
		return
	}

	*s += suffix
}

// NewOwnedString builds a string and hands it to the caller.
func NewOwnedString() string {
	s := "hello"
	return s
}

// FirstWord returns the prefix of s up to the first space byte, or s itself
// when it contains no space.
func FirstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}

	return s
}

// BooleanChain evaluates a fixed sequence of boolean expressions over a and b.
// The result is a tautology.
func BooleanChain(a, b bool) bool {
	out := !b || b
	nOut := out || a
	nnOut := !out

	return nnOut || nOut
}

// AreaOf is the free-function form of Rectangle.Area.
func AreaOf(r m.Rectangle) uint32 {
	return r.Length * r.Width
}

// ValueInCents maps a coin to its value in cents. Quarters log the region
// they were minted for.
func ValueInCents(ctx context.Context, coin m.Coin) uint32 {
	switch coin.Kind {
	case m.Penny:
		return 1
	case m.Nickel:
		return 5
	case m.Dime:
		return 10
	case m.Quarter:
		slog.DebugContext(ctx, "quarter matched", "state", coin.Region.String())
		return 25
	}

	return 0
}

// CentsToDollars expresses a cent amount in dollars.
func CentsToDollars(cents uint32) decimal.Decimal {
	return decimal.New(int64(cents), -2)
}

// PlusOne adds one to a present value and leaves absence unchanged.
func PlusOne(x m.Option[int32]) m.Option[int32] {
	v, ok := x.Get()
	if !ok {
		return m.None[int32]()
	}

	return m.Some(v + 1)
}
