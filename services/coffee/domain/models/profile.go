package models

import "fmt"

// RoastLevel is the roast classification of a coffee.
type RoastLevel string

// Supported roast levels.
const (
	RoastLight      RoastLevel = "LIGHT"
	RoastMedium     RoastLevel = "MEDIUM"
	RoastMediumDark RoastLevel = "MEDIUM_DARK"
	RoastDark       RoastLevel = "DARK"
)

// ParseRoastLevel validates s against the known roast levels.
func ParseRoastLevel(s string) (RoastLevel, error) {
	switch RoastLevel(s) {
	case RoastLight, RoastMedium, RoastMediumDark, RoastDark:
		return RoastLevel(s), nil
	}
	return "", fmt.Errorf("unknown roast level %q", s)
}

// String returns the underlying string value.
func (r RoastLevel) String() string {
	return string(r)
}

// BeanType is the bean classification of a coffee.
type BeanType string

// Supported bean types.
const (
	BeanArabica BeanType = "ARABICA"
	BeanRobusta BeanType = "ROBUSTA"
	BeanBlend   BeanType = "BLEND"
)

// ParseBeanType validates s against the known bean types.
func ParseBeanType(s string) (BeanType, error) {
	switch BeanType(s) {
	case BeanArabica, BeanRobusta, BeanBlend:
		return BeanType(s), nil
	}
	return "", fmt.Errorf("unknown bean type %q", s)
}

// String returns the underlying string value.
func (b BeanType) String() string {
	return string(b)
}

// ProcessingMethod is the post-harvest processing classification of a coffee.
type ProcessingMethod string

// Supported processing methods.
const (
	ProcessWashed    ProcessingMethod = "WASHED"
	ProcessNatural   ProcessingMethod = "NATURAL"
	ProcessHoney     ProcessingMethod = "HONEY"
	ProcessAnaerobic ProcessingMethod = "ANAEROBIC"
)

// ParseProcessingMethod validates s against the known processing methods.
func ParseProcessingMethod(s string) (ProcessingMethod, error) {
	switch ProcessingMethod(s) {
	case ProcessWashed, ProcessNatural, ProcessHoney, ProcessAnaerobic:
		return ProcessingMethod(s), nil
	}
	return "", fmt.Errorf("unknown processing method %q", s)
}

// String returns the underlying string value.
func (p ProcessingMethod) String() string {
	return string(p)
}

// Sensory score bounds. Every dimension is scored on the same scale.
const (
	MinSensoryScore = 1
	MaxSensoryScore = 5
)

// SensoryProfile holds the five taste dimensions of a coffee, each scored
// in [MinSensoryScore, MaxSensoryScore]. Similarity queries match on roast
// level and bean type rather than numeric distance over these scores.
type SensoryProfile struct {
	Acidity    int `json:"acidity"`
	Body       int `json:"body"`
	Sweetness  int `json:"sweetness"`
	Bitterness int `json:"bitterness"`
	Aroma      int `json:"aroma"`
}

// Validate checks that every dimension is within the sensory scale.
func (p SensoryProfile) Validate() error {
	for _, dim := range []struct {
		name  string
		score int
	}{
		{"acidity", p.Acidity},
		{"body", p.Body},
		{"sweetness", p.Sweetness},
		{"bitterness", p.Bitterness},
		{"aroma", p.Aroma},
	} {
		if dim.score < MinSensoryScore || dim.score > MaxSensoryScore {
			return fmt.Errorf("%s must be between %d and %d, got %d",
				dim.name, MinSensoryScore, MaxSensoryScore, dim.score)
		}
	}
	return nil
}
