// Package chibi generates the parts of a printable chibi figurine: body
// parts and socket/insert connector pairs positioned in one model frame and
// sized by a single scale factor.
package chibi

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Configuration errors
var (
	ErrInvalidScale        = errors.New("scale must be a finite number greater than zero")
	ErrInvalidTolerance    = errors.New("tolerance must be a finite number less than or equal to zero")
	ErrUnknownHairStyle    = errors.New("unknown hair style")
	ErrDegenerateConnector = errors.New("connector radius or depth is not positive")
)

// HairStyle selects the hair primitive
type HairStyle string

const (
	HairShort HairStyle = "short"
	HairLong  HairStyle = "long"
	HairNone  HairStyle = "none"
)

// HairStyles lists the accepted hair styles in display order
var HairStyles = []HairStyle{HairShort, HairLong, HairNone}

// Clothing is accepted for forward compatibility and does not change geometry yet
type Clothing string

const (
	ClothingNone  Clothing = "none"
	ClothingShirt Clothing = "shirt"
	ClothingHat   Clothing = "hat"
)

// Choices offered by the control panel. Character type and gender are free
// strings; these are the known values.
var (
	CharacterTypes = []string{"human", "child", "dog", "cat", "bear"}
	Genders        = []string{"male", "female", "neutral"}
	Clothings      = []Clothing{ClothingNone, ClothingShirt, ClothingHat}
)

// Configuration drives one generation pass. It is passed by value, so a
// pass always sees the values from the moment it started.
type Configuration struct {
	CharacterType string    `yaml:"character_type"`
	Gender        string    `yaml:"gender"`
	Scale         float64   `yaml:"scale"`
	Tolerance     float64   `yaml:"tolerance"`
	HairStyle     HairStyle `yaml:"hair_style"`
	Clothing      Clothing  `yaml:"clothing,omitempty"`
}

// Default returns the control panel's initial values
func Default() Configuration {
	return Configuration{
		CharacterType: "human",
		Gender:        "male",
		Scale:         1.0,
		Tolerance:     -0.05,
		HairStyle:     HairShort,
		Clothing:      ClothingNone,
	}
}

// ParseHairStyle accepts a hair style name in any case
func ParseHairStyle(s string) (HairStyle, error) {
	style := HairStyle(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range HairStyles {
		if style == known {
			return style, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHairStyle, s)
}

// Validate rejects configurations that would make a builder produce
// degenerate geometry. CharacterType, Gender and Clothing accept any value.
func (c Configuration) Validate() error {
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) || c.Scale <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, c.Scale)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance > 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTolerance, c.Tolerance)
	}
	if _, err := ParseHairStyle(string(c.HairStyle)); err != nil {
		return err
	}
	if r := InsertRadius(ConnectorRadius*c.Scale, c.Tolerance); r <= 0 {
		return fmt.Errorf("%w: insert radius %.4f at scale %v and tolerance %v",
			ErrDegenerateConnector, r, c.Scale, c.Tolerance)
	}
	return nil
}

// String summarizes the configuration for logs and the UI
func (c Configuration) String() string {
	clothing := c.Clothing
	if clothing == "" {
		clothing = ClothingNone
	}
	return fmt.Sprintf("%s/%s scale=%.2f tolerance=%.2f hair=%s clothing=%s",
		c.CharacterType, c.Gender, c.Scale, c.Tolerance, c.HairStyle, clothing)
}
