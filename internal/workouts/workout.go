package workouts

import "time"

// Record is a workout to be stored, date_actual is stamped by the database.
type Record struct {
	Username    string
	WorkoutID   int
	NominalDate int
	Categories  []string
}

type Workout struct {
	ID          int       `json:"id"`
	WorkoutID   int       `json:"workoutId"`
	NominalDate int       `json:"workoutDate"`
	DateActual  time.Time `json:"dateActual"`
	Categories  []string  `json:"categories"`
}
