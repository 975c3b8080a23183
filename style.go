package vxspin

import (
	"fmt"
	"strings"
)

// Style selects how a [Spinner] is drawn. All styles are drawn from primitive
// shapes and scale to any size
type Style uint8

const (
	// Dots lazily dance around
	Dots Style = iota
	// Bars are classic pulsing vertical bars
	Bars
	// Squares chase each other around the edge of a 3x3 grid
	Squares
)

// Styles returns every style, in declaration order
func Styles() []Style {
	return []Style{Dots, Bars, Squares}
}

func (s Style) String() string {
	switch s {
	case Dots:
		return "dots"
	case Bars:
		return "bars"
	case Squares:
		return "squares"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}

// ParseStyle returns the style with the given name. Names are case insensitive
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles() {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}
	return Dots, fmt.Errorf("unknown spinner style %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case Dots, Bars, Squares:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown spinner style %d", uint8(s))
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Style) UnmarshalText(text []byte) error {
	style, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = style
	return nil
}
