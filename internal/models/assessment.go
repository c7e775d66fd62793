package models

import (
	"time"

	"github.com/google/uuid"
)

// BMICategory buckets a BMI value for display and advice lookup.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// ActivityLevel buckets daily physical activity minutes.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// RiskTier is the classified band of the adjusted risk score.
type RiskTier string

const (
	RiskLow      RiskTier = "Low"
	RiskModerate RiskTier = "Moderate"
	RiskHigh     RiskTier = "High"
)

// DerivedMetrics are computed from a profile and an observation on every
// assessment. BMI keeps full precision for the feature vector; BMIDisplay
// is rounded to one decimal place for presentation.
type DerivedMetrics struct {
	BMI           float64       `json:"bmi"`
	BMIDisplay    float64       `json:"bmi_display"`
	BMICategory   BMICategory   `json:"bmi_category"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// MetricAdvice is the status and guidance text for one tracked health
// metric.
type MetricAdvice struct {
	Metric string `json:"metric"`
	Status string `json:"status"`
	Advice string `json:"advice"`
}

// RiskAssessment is the output record of one assessment run. It is created
// once, never mutated, and handed off to presentation and record-export
// consumers. The adjusted score is intentionally unbounded in both
// directions; clamping to a display range is left to consumers.
type RiskAssessment struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Timestamp time.Time `json:"timestamp"`

	BloodGlucose            int                 `json:"blood_glucose"`
	Diet                    Diet                `json:"diet"`
	PhysicalActivityMinutes int                 `json:"physical_activity"`
	MedicationAdherence     MedicationAdherence `json:"medication_adherence"`
	StressLevel             StressLevel         `json:"stress_level"`
	SleepHours              float64             `json:"sleep_hours"`
	Hydration               Hydration           `json:"hydration_level"`

	BMI           float64       `json:"bmi"`
	BMICategory   BMICategory   `json:"bmi_category"`
	ActivityLevel ActivityLevel `json:"activity_level"`

	BaseScore     float64            `json:"base_score"`
	Adjustments   map[string]float64 `json:"adjustments"`
	AdjustedScore float64            `json:"adjusted_score"`
	RiskTier      RiskTier           `json:"risk_tier"`

	Advice []MetricAdvice `json:"advice"`
}
