package valueobject

import "fmt"

// RiskGrade is an immutable value object classifying an applicant's
// creditworthiness band.
type RiskGrade struct {
	value string
}

var (
	RiskGradeExcellent = RiskGrade{value: "EXCELLENT"}
	RiskGradeGood      = RiskGrade{value: "GOOD"}
	RiskGradeFair      = RiskGrade{value: "FAIR"}
	RiskGradePoor      = RiskGrade{value: "POOR"}
)

// RiskGradeFromString reconstructs a RiskGrade from its string representation.
func RiskGradeFromString(s string) (RiskGrade, error) {
	switch s {
	case "EXCELLENT":
		return RiskGradeExcellent, nil
	case "GOOD":
		return RiskGradeGood, nil
	case "FAIR":
		return RiskGradeFair, nil
	case "POOR":
		return RiskGradePoor, nil
	default:
		return RiskGrade{}, fmt.Errorf("invalid risk grade: %s", s)
	}
}

// RiskGradeFromScore derives the RiskGrade from a credit score. The 650
// boundary between FAIR and GOOD matches the cutoff lenders commonly apply
// when pre-screening applicants.
func RiskGradeFromScore(score int) RiskGrade {
	switch {
	case score >= 750:
		return RiskGradeExcellent
	case score >= 650:
		return RiskGradeGood
	case score >= 550:
		return RiskGradeFair
	default:
		return RiskGradePoor
	}
}

// String returns the string representation.
func (g RiskGrade) String() string {
	return g.value
}

// IsZero returns true if the RiskGrade has not been set.
func (g RiskGrade) IsZero() bool {
	return g.value == ""
}

// Equal checks equality with another RiskGrade.
func (g RiskGrade) Equal(other RiskGrade) bool {
	return g.value == other.value
}
