package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diatrack/diatrack-v2/backend/internal/models"
)

func TestNewClinicalRecord(t *testing.T) {
	assessment := &models.RiskAssessment{
		ID:        uuid.New(),
		UserID:    "user-1",
		Name:      "Alex",
		Age:       50,
		Timestamp: time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC),

		BloodGlucose:            190,
		Diet:                    models.DietUnhealthy,
		PhysicalActivityMinutes: 15,
		MedicationAdherence:     models.MedicationPoor,
		StressLevel:             models.StressHigh,
		SleepHours:              5,
		Hydration:               models.HydrationNo,

		AdjustedScore: 65,
	}

	record := NewClinicalRecord(assessment)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "Alex", record.Name)
	assert.Equal(t, 50, record.Age)
	require.Len(t, record.Records, 1)

	entry := record.Records[0]
	assert.Equal(t, "2026-08-25 14:30:00", entry.Date)
	assert.Equal(t, 190, entry.BloodGlucose)
	assert.Equal(t, "unhealthy", entry.Diet)
	assert.Equal(t, 15, entry.PhysicalActivity)
	assert.Equal(t, "poor", entry.MedicationAdherence)
	assert.Equal(t, "high", entry.StressLevel)
	assert.Equal(t, 5.0, entry.SleepHours)
	assert.Equal(t, "no", entry.HydrationLevel)
	assert.Equal(t, 65.0, entry.RiskScore)
}

// The JSON field names are the wire contract with the receiving system.
func TestClinicalRecordWireFormat(t *testing.T) {
	record := ClinicalRecord{
		UserID: "user-1",
		Name:   "Alex",
		Age:    50,
		Records: []ClinicalEntry{{
			Date:                "2026-08-25 14:30:00",
			BloodGlucose:        190,
			Diet:                "unhealthy",
			PhysicalActivity:    15,
			MedicationAdherence: "poor",
			StressLevel:         "high",
			SleepHours:          5,
			HydrationLevel:      "no",
			RiskScore:           65,
		}},
	}

	payload, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Contains(t, decoded, "user_id")
	assert.Contains(t, decoded, "name")
	assert.Contains(t, decoded, "age")
	require.Contains(t, decoded, "records")

	entries := decoded["records"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	for _, field := range []string{
		"date", "blood_glucose", "diet", "physical_activity",
		"medication_adherence", "stress_level", "sleep_hours",
		"hydration_level", "risk_score",
	} {
		assert.Contains(t, entry, field)
	}
}
