package models

// HealthProfile holds the static attributes of a user for the duration of a
// session. It is created once from validated input and never mutated.
type HealthProfile struct {
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
}
