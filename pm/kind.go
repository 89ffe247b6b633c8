// SPDX-License-Identifier: MIT

package pm

import (
	"fmt"
	"strings"
)

// Kind tags the numeric encoding of a PositionMatrix.
type Kind int

const (
	// Frequency is a PFM: non-negative counts.
	Frequency Kind = iota
	// Probability is a PPM: rows sum to 1.
	Probability
	// Weight is a PWM: log2-odds scores.
	Weight

	numKinds = 3
)

// Kinds lists every kind in declaration order.
func Kinds() []Kind { return []Kind{Frequency, Probability, Weight} }

// String returns the conventional short name: "pfm", "ppm" or "pwm".
func (k Kind) String() string {
	switch k {
	case Frequency:
		return "pfm"
	case Probability:
		return "ppm"
	case Weight:
		return "pwm"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the three declared kinds.
func (k Kind) Valid() bool { return k >= Frequency && k <= Weight }

// ParseKind accepts "pfm", "ppm", "pwm" (any case) and the long names
// "frequency", "probability", "weight".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pfm", "frequency":
		return Frequency, nil
	case "ppm", "probability":
		return Probability, nil
	case "pwm", "weight":
		return Weight, nil
	}
	return 0, fmt.Errorf("pm: unknown matrix kind %q: %w", s, ErrInputType)
}
