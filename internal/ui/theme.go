package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Palette.
const (
	ColorPrimary    = "#ff9000"
	ColorBackground = "#312e38"
	ColorInput      = "#232129"
	ColorMuted      = "#666360"
	ColorText       = "#f4ede8"
	ColorError      = "#c53030"
	ColorErrorBg    = "#fddede"
	ColorSuccess    = "#2e656a"
	ColorSuccessBg  = "#e6fffa"
	ColorInfo       = "#3172b7"
	ColorInfoBg     = "#ebf8ff"
)

// Shade mixes hex toward black by amount (0 keeps the color, 1 is black).
// hex may be #rgb or #rrggbb.
func Shade(amount float64, hex string) (string, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	amount = math.Max(0, math.Min(1, amount))
	mix := func(c uint8) uint8 {
		return uint8(math.Round(float64(c) * (1 - amount)))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(r), mix(g), mix(b)), nil
}

// MustShade is Shade for palette constants.
func MustShade(amount float64, hex string) string {
	s, err := Shade(amount, hex)
	if err != nil {
		panic(err)
	}
	return s
}

func parseHex(hex string) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
