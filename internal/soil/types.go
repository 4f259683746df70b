package soil

import "fmt"

// Sample holds the laboratory test values a USCS classification needs.
// Fractions are percentages of total dry mass and should sum to ~100.
type Sample struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Grain-size distribution (%)
	Gravel float64 `json:"gravel"` // retained on No.4 sieve
	Sand   float64 `json:"sand"`   // passing No.4, retained on No.200
	Fines  float64 `json:"fines"`  // passing No.200 sieve

	// Gradation coefficients (coarse-grained soils)
	Cu float64 `json:"cu,omitempty"` // coefficient of uniformity D60/D10
	Cc float64 `json:"cc,omitempty"` // coefficient of curvature D30²/(D10·D60)

	// Atterberg limits (%) (fine-grained soils and dirty coarse soils)
	LiquidLimit  float64 `json:"liquid_limit,omitempty"`
	PlasticLimit float64 `json:"plastic_limit,omitempty"`
}

// PlasticityIndex returns LL − PL.
func (s *Sample) PlasticityIndex() float64 {
	return s.LiquidLimit - s.PlasticLimit
}

// Validate checks that the sample fractions make sense before
// classification.
func (s *Sample) Validate() error {
	if s.Gravel < 0 || s.Sand < 0 || s.Fines < 0 {
		return &ValidationError{"grain-size fractions must be non-negative"}
	}
	total := s.Gravel + s.Sand + s.Fines
	if total < 99 || total > 101 {
		return &ValidationError{msg: fmt.Sprintf("grain-size fractions must sum to 100%%, got %.1f%%", total)}
	}
	if s.LiquidLimit < 0 || s.PlasticLimit < 0 {
		return &ValidationError{"Atterberg limits must be non-negative"}
	}
	if s.PlasticLimit > s.LiquidLimit {
		return &ValidationError{"plastic limit cannot exceed liquid limit"}
	}
	return nil
}

// ValidationError represents a sample validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
