package domain

// ExerciseStats is one calendar day of aggregated history for a single
// exercise. Date is a UTC day key in YYYY-MM-DD form. MaxWeight is the
// heaviest set of the day and MaxWeightReps the reps performed at that
// weight; ties keep the earlier set. TotalVolume is the sum of
// weight*reps across every set of the day.
type ExerciseStats struct {
	Date          string `json:"date"`
	MaxWeight     int64  `json:"maxWeight"`
	MaxWeightReps int64  `json:"maxWeightReps"`
	MaxWeightUnit string `json:"maxWeightUnit"`
	TotalVolume   int64  `json:"totalVolume"`
}
