// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quadratic

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	bin "github.com/gagliardetto/binary"
)

var ErrInvalidCoefficients = errors.New("coefficients must be exactly three finite numbers")

// Coefficients parameterize the curve a·x² + b·x − c that the plugin program
// applies to a raw token balance. The field order matches the program's
// QuadraticCoefficients layout.
type Coefficients struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
}

// DefaultCoefficients yields a vote weight equal to the square root of the
// deposited balance.
var DefaultCoefficients = Coefficients{A: 1, B: 0, C: 0}

// OrDefault returns *c, or DefaultCoefficients when c is nil.
func (c *Coefficients) OrDefault() Coefficients {
	if c == nil {
		return DefaultCoefficients
	}
	return *c
}

func (c Coefficients) String() string {
	return fmt.Sprintf("a=%g b=%g c=%g", c.A, c.B, c.C)
}

// ParseCoefficients reads "a,b,c".
func ParseCoefficients(s string) (Coefficients, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Coefficients{}, fmt.Errorf("%w: got %d values in %q", ErrInvalidCoefficients, len(parts), s)
	}
	var values [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Coefficients{}, fmt.Errorf("%w: %v", ErrInvalidCoefficients, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Coefficients{}, fmt.Errorf("%w: %q is not finite", ErrInvalidCoefficients, p)
		}
		values[i] = v
	}
	return Coefficients{A: values[0], B: values[1], C: values[2]}, nil
}

func (c Coefficients) MarshalWithEncoder(encoder *bin.Encoder) error {
	for _, v := range [3]float64{c.A, c.B, c.C} {
		if err := encoder.WriteFloat64(v, binary.LittleEndian); err != nil {
			return err
		}
	}
	return nil
}

func (c *Coefficients) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	for _, dst := range []*float64{&c.A, &c.B, &c.C} {
		if *dst, err = decoder.ReadFloat64(binary.LittleEndian); err != nil {
			return err
		}
	}
	return nil
}
