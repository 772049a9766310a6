package wages

import (
	"fmt"

	"jobboard/internal/config"
	"jobboard/internal/models"
)

// ViolationError reports a submission whose pay falls below the floor for
// its category/arrangement pair.
type ViolationError struct {
	Category    models.Category
	Arrangement models.WorkArrangement
	Floor       float64
	RateUnit    string // "month" or "hour"
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("The pay for a %s %s category job must be at least R%.2f per %s.",
		e.Arrangement, e.Category, e.Floor, e.RateUnit)
}

// Validator checks proposed jobs against the configured wage floors.
// It is pure: no I/O, no state beyond the floors it was built with.
type Validator struct {
	floors config.WageFloors
}

func NewValidator(floors config.WageFloors) *Validator {
	return &Validator{floors: floors}
}

// Check decides whether the proposed pay satisfies the wage floor for the
// given category and arrangement. Only Maid and Landscaper are regulated;
// the branch is an explicit guard so a future category stays unregulated
// until someone decides otherwise. A nil pay compares as zero, so a missing
// figure fails the floor for regulated full-time and part-time submissions
// instead of slipping through.
func (v *Validator) Check(category models.Category, arrangement models.WorkArrangement, pay *float64) error {
	if category != models.CategoryMaid && category != models.CategoryLandscaper {
		return nil
	}

	amount := 0.0
	if pay != nil {
		amount = *pay
	}

	switch arrangement {
	case models.ArrangementFullTime:
		if amount < v.floors.FullTimeMonthly {
			return &ViolationError{
				Category:    category,
				Arrangement: arrangement,
				Floor:       v.floors.FullTimeMonthly,
				RateUnit:    "month",
			}
		}
	case models.ArrangementPartTime:
		if amount < v.floors.PartTimeHourly {
			return &ViolationError{
				Category:    category,
				Arrangement: arrangement,
				Floor:       v.floors.PartTimeHourly,
				RateUnit:    "hour",
			}
		}
	}
	// accommodation and anything else carry no floor
	return nil
}
