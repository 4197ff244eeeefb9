// Package chart holds the small value types that describe Etterna charts and
// scores: rates, difficulties, keys, note rows and snaps.
package chart

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Rate is a music rate. Like in Etterna it is always a multiple of 0.05, so
// it is stored as 20 times the real rate: 1.15x is 23.
type Rate struct {
	x20 uint32
}

// NormalRate is 1.00x.
var NormalRate = RateFromX20(20)

// RateFromX20 builds a rate from 20 times its value.
func RateFromX20(x20 uint32) Rate {
	return Rate{x20: x20}
}

// ErrZeroRate is returned for rates that round to 0.00x.
var ErrZeroRate = errors.New("rate rounds to zero")

// RateFromFloat rounds r to the nearest valid rate. Negative, NaN, zero and
// out-of-range values are rejected.
func RateFromFloat(r float32) (Rate, error) {
	if r < 0 || math.IsNaN(float64(r)) {
		return Rate{}, fmt.Errorf("rate %v is negative or NaN", r)
	}
	x20, err := safecast.Round[uint32](float64(r) * 20)
	if err != nil {
		return Rate{}, fmt.Errorf("rate %v: %w", r, err)
	}
	if x20 == 0 {
		return Rate{}, fmt.Errorf("rate %v: %w", r, ErrZeroRate)
	}
	return Rate{x20: x20}, nil
}

// ParseRate parses strings like "1.15", "0.85x" or "2".
func ParseRate(s string) (Rate, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "x")
	f, err := strconv.ParseFloat(trimmed, 32)
	if err != nil {
		return Rate{}, fmt.Errorf("parsing rate %q: %w", s, err)
	}
	return RateFromFloat(float32(f))
}

func (r Rate) X20() uint32      { return r.x20 }
func (r Rate) Float32() float32 { return float32(r.x20) / 20 }

func (r Rate) Add(other Rate) Rate { return Rate{x20: r.x20 + other.x20} }

// Sub panics if other is larger than r.
func (r Rate) Sub(other Rate) Rate {
	if other.x20 > r.x20 {
		panic("chart: rate subtraction underflows")
	}
	return Rate{x20: r.x20 - other.x20}
}

// String formats the rate as Etterna does: "0.85x", "1.00x".
func (r Rate) String() string {
	return fmt.Sprintf("%.2fx", r.Float32())
}

func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rate) UnmarshalText(text []byte) error {
	parsed, err := ParseRate(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
