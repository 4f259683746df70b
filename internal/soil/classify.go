package soil

import (
	"encoding/json"
	"fmt"
	"os"
)

// USCS classification per ASTM D2487, simplified to the group symbols
// the lab data in Sample can resolve (no organic or dual-borderline
// fine-grained groups).

// Classification is the result of a USCS classification.
type Classification struct {
	Symbol string
	Name   string
}

// ALine returns the plasticity index on Casagrande's A-line for a
// liquid limit: PI = 0.73(LL − 20).
func ALine(ll float64) float64 {
	return 0.73 * (ll - 20)
}

// Classify determines the USCS group symbol for a sample.
func Classify(s *Sample) (*Classification, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Fines >= 50 {
		return classifyFine(s), nil
	}
	return classifyCoarse(s)
}

func classifyFine(s *Sample) *Classification {
	pi := s.PlasticityIndex()
	ll := s.LiquidLimit

	if ll >= 50 {
		if pi > ALine(ll) {
			return &Classification{"CH", "Fat clay of high plasticity"}
		}
		return &Classification{"MH", "Elastic silt of high plasticity"}
	}

	switch {
	case pi > 7 && pi > ALine(ll):
		return &Classification{"CL", "Lean clay of low plasticity"}
	case pi < 4 || pi <= ALine(ll):
		return &Classification{"ML", "Silt of low plasticity"}
	default:
		return &Classification{"CL-ML", "Silty clay"}
	}
}

func classifyCoarse(s *Sample) (*Classification, error) {
	gravelly := s.Gravel > s.Sand
	prefix, soil := "S", "sand"
	if gravelly {
		prefix, soil = "G", "gravel"
	}

	// Gradation criteria differ between gravels and sands.
	cuWell := 6.0
	if gravelly {
		cuWell = 4.0
	}
	wellGraded := s.Cu >= cuWell && s.Cc >= 1 && s.Cc <= 3

	switch {
	case s.Fines < 5:
		if s.Cu == 0 {
			return nil, &ValidationError{msg: fmt.Sprintf("clean %s needs Cu and Cc to classify gradation", soil)}
		}
		if wellGraded {
			return &Classification{prefix + "W", "Well-graded " + soil}, nil
		}
		return &Classification{prefix + "P", "Poorly graded " + soil}, nil

	case s.Fines > 12:
		if clayeyFines(s) {
			return &Classification{prefix + "C", "Clayey " + soil}, nil
		}
		return &Classification{prefix + "M", "Silty " + soil}, nil

	default:
		// 5-12% fines take a dual symbol, so the gradation half still
		// needs the curve data.
		if s.Cu == 0 {
			return nil, &ValidationError{msg: fmt.Sprintf("borderline %s needs Cu and Cc to classify gradation", soil)}
		}
		grade := prefix + "P"
		if wellGraded {
			grade = prefix + "W"
		}
		if clayeyFines(s) {
			return &Classification{grade + "-" + prefix + "C", "Borderline clayey " + soil}, nil
		}
		return &Classification{grade + "-" + prefix + "M", "Borderline silty " + soil}, nil
	}
}

// clayeyFines reports whether the fines plot as clay (above the A-line
// with PI > 7).
func clayeyFines(s *Sample) bool {
	pi := s.PlasticityIndex()
	return pi > 7 && pi > ALine(s.LiquidLimit)
}

// LoadSample loads a soil sample definition from a JSON file
func LoadSample(filepath string) (*Sample, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var sample Sample
	if err := json.Unmarshal(data, &sample); err != nil {
		return nil, err
	}

	if err := sample.Validate(); err != nil {
		return nil, err
	}

	return &sample, nil
}
