// Package export hands finished assessments off to a clinician-facing
// record system. Records are serialized as FHIR-style JSON documents and
// published to a message queue; export failures are reported to the caller
// but never invalidate the assessment itself.
package export

import (
	"github.com/diatrack/diatrack-v2/backend/internal/models"
)

const recordDateFormat = "2006-01-02 15:04:05"

// ClinicalRecord is the FHIR-style exchange document for one or more
// assessment entries of a single user. The field names form the wire
// contract with the receiving EHR system and must not change.
type ClinicalRecord struct {
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Age     int             `json:"age"`
	Records []ClinicalEntry `json:"records"`
}

// ClinicalEntry is one day's readings plus the adjusted risk score.
type ClinicalEntry struct {
	Date                string  `json:"date"`
	BloodGlucose        int     `json:"blood_glucose"`
	Diet                string  `json:"diet"`
	PhysicalActivity    int     `json:"physical_activity"`
	MedicationAdherence string  `json:"medication_adherence"`
	StressLevel         string  `json:"stress_level"`
	SleepHours          float64 `json:"sleep_hours"`
	HydrationLevel      string  `json:"hydration_level"`
	RiskScore           float64 `json:"risk_score"`
}

// NewClinicalRecord builds the exchange document for a single assessment.
func NewClinicalRecord(a *models.RiskAssessment) ClinicalRecord {
	return ClinicalRecord{
		UserID: a.UserID,
		Name:   a.Name,
		Age:    a.Age,
		Records: []ClinicalEntry{
			{
				Date:                a.Timestamp.Format(recordDateFormat),
				BloodGlucose:        a.BloodGlucose,
				Diet:                string(a.Diet),
				PhysicalActivity:    a.PhysicalActivityMinutes,
				MedicationAdherence: string(a.MedicationAdherence),
				StressLevel:         string(a.StressLevel),
				SleepHours:          a.SleepHours,
				HydrationLevel:      string(a.Hydration),
				RiskScore:           a.AdjustedScore,
			},
		},
	}
}
