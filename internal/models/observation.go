package models

// Diet is the self-reported diet quality for a day.
type Diet string

const (
	DietHealthy   Diet = "healthy"
	DietUnhealthy Diet = "unhealthy"
)

// MedicationAdherence reports whether prescribed medication was taken as
// directed.
type MedicationAdherence string

const (
	MedicationGood MedicationAdherence = "good"
	MedicationPoor MedicationAdherence = "poor"
)

// StressLevel is the self-reported stress level for a day.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// Hydration reports whether the user considers themselves well hydrated.
type Hydration string

const (
	HydrationYes Hydration = "yes"
	HydrationNo  Hydration = "no"
)

// DailyObservation is one day's health readings. Instances are produced by
// the validator and are immutable afterwards; the categorical fields only
// ever hold the constants declared above.
type DailyObservation struct {
	BloodGlucose            int                 `json:"blood_glucose"`
	Diet                    Diet                `json:"diet"`
	PhysicalActivityMinutes int                 `json:"physical_activity"`
	MedicationAdherence     MedicationAdherence `json:"medication_adherence"`
	StressLevel             StressLevel         `json:"stress_level"`
	SleepHours              float64             `json:"sleep_hours"`
	Hydration               Hydration           `json:"hydration_level"`
}
