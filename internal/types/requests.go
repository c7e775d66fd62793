package types

// AssessmentRequest carries the raw form fields for one assessment. All
// values arrive as strings, matching the entry fields of the client form;
// typing and range checks happen in the risk validator, not at bind time.
type AssessmentRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Age      string `json:"age"`
	WeightKg string `json:"weight_kg"`
	HeightCm string `json:"height_cm"`

	BloodGlucose        string `json:"blood_glucose"`
	Diet                string `json:"diet"`
	PhysicalActivity    string `json:"physical_activity"`
	MedicationAdherence string `json:"medication_adherence"`
	StressLevel         string `json:"stress_level"`
	SleepHours          string `json:"sleep_hours"`
	HydrationLevel      string `json:"hydration_level"`
}
