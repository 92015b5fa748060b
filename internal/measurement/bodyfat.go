package measurement

import (
	"fmt"
	"math"
)

// EstimateBodyFat uses the Jackson-Pollock 3-site skinfold body density (chest, abdomen, thigh,
// in mm) and converts it with the Siri equation. The result is rounded to one decimal.
func EstimateBodyFat(gender Gender, age int, chest, abdomen, thigh float64) (float64, error) {
	if chest <= 0 || abdomen <= 0 || thigh <= 0 {
		return 0, fmt.Errorf("%w: skinfold sites must be positive", ErrInvalidMeasurement)
	}
	if age <= 0 {
		return 0, fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	}

	sum := chest + abdomen + thigh
	a := float64(age)

	var density float64
	switch gender {
	case GenderMale:
		density = 1.10938 - 0.0008267*sum + 0.0000016*sum*sum - 0.0002574*a
	case GenderFemale:
		density = 1.0994921 - 0.0009929*sum + 0.0000023*sum*sum - 0.0001392*a
	default:
		return 0, fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, gender)
	}

	bodyFat := 495/density - 450
	if bodyFat <= 0 || bodyFat >= 100 {
		return 0, fmt.Errorf("%w: estimated body fat %.1f%% out of range", ErrInvalidMeasurement, bodyFat)
	}
	return math.Round(bodyFat*10) / 10, nil
}

// LeanMass is the fat free mass for the given weight and body fat percent.
func LeanMass(weight, bodyFatPercent float64) float64 {
	return math.Round(weight*(1-bodyFatPercent/100)*10) / 10
}

// BodyFatRange is one row of the body fat chart. Max 0 means no upper bound.
type BodyFatRange struct {
	Classification string  `json:"classification"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max,omitempty"`
	Women          string  `json:"women"`
	Men            string  `json:"men"`
}

var bodyFatChart = []struct {
	classification string
	women, men     [2]float64
}{
	{"Essential Fat", [2]float64{10, 13}, [2]float64{2, 5}},
	{"Athletes", [2]float64{14, 20}, [2]float64{6, 13}},
	{"Fitness", [2]float64{21, 24}, [2]float64{14, 17}},
	{"Average", [2]float64{25, 31}, [2]float64{18, 24}},
	{"Obese", [2]float64{32, 0}, [2]float64{25, 0}},
}

func formatRange(r [2]float64) string {
	if r[1] == 0 {
		return fmt.Sprintf("%.0f%%+", r[0])
	}
	return fmt.Sprintf("%.0f-%.0f%%", r[0], r[1])
}

// BodyFatChart returns the classification rows with Min/Max set for the given gender.
func BodyFatChart(gender Gender) ([]BodyFatRange, error) {
	if !gender.IsValid() {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, gender)
	}

	chart := make([]BodyFatRange, len(bodyFatChart))
	for i, row := range bodyFatChart {
		bounds := row.men
		if gender == GenderFemale {
			bounds = row.women
		}
		chart[i] = BodyFatRange{
			Classification: row.classification,
			Min:            bounds[0],
			Max:            bounds[1],
			Women:          formatRange(row.women),
			Men:            formatRange(row.men),
		}
	}
	return chart, nil
}

// Classify returns the chart row the body fat percent falls in. Values between two rows
// belong to the lower one, values under the essential minimum to the first row.
func Classify(gender Gender, bodyFatPercent float64) (BodyFatRange, error) {
	chart, err := BodyFatChart(gender)
	if err != nil {
		return BodyFatRange{}, err
	}
	for i := len(chart) - 1; i > 0; i-- {
		if bodyFatPercent >= chart[i].Min {
			return chart[i], nil
		}
	}
	return chart[0], nil
}
