package risk

import "github.com/diatrack/diatrack-v2/backend/internal/models"

// Tracked metric names as they appear in assessment output.
const (
	MetricPhysicalActivity = "Physical Activity"
	MetricBMI              = "BMI"
	MetricBloodGlucose     = "Blood Glucose"
	MetricDiet             = "Diet"
	MetricMedication       = "Medication"
	MetricStress           = "Stress"
	MetricSleep            = "Sleep"
	MetricHydration        = "Hydration"
)

// adviceTable maps (metric, status) to guidance text. The table is static;
// ValidateAdviceTable asserts at engine construction that every status a
// metric can produce has an entry.
var adviceTable = map[string]map[string]string{
	MetricPhysicalActivity: {
		"low":      "Less than 30 minutes of activity. Aim for at least 30 minutes of moderate exercise daily.",
		"moderate": "Good activity level! Try to maintain or gradually increase your activity.",
		"high":     "Excellent activity level! Remember to stay hydrated and rest adequately.",
	},
	MetricBMI: {
		"Underweight":   "Consider increasing caloric intake and strength training exercises.",
		"Normal weight": "Great job maintaining a healthy weight! Keep up your current habits.",
		"Overweight":    "Consider increasing physical activity and watching portion sizes.",
		"Obese":         "Please consult with a healthcare provider about a weight management plan.",
	},
	MetricBloodGlucose: {
		"low":     "Blood glucose is low. Consider regular small meals and consulting your doctor.",
		"normal":  "Blood glucose is in a healthy range. Maintain your current diet and medication routine.",
		"high":    "Blood glucose is elevated. Review your diet and medication adherence.",
		"extreme": "Blood glucose level is critically high. Please seek medical attention immediately!",
	},
	MetricDiet: {
		"healthy":   "Excellent dietary choices! Keep maintaining a balanced, healthy diet.",
		"unhealthy": "Consider incorporating more whole foods and reducing processed foods.",
	},
	MetricMedication: {
		"good": "Great medication adherence! Keep maintaining this routine.",
		"poor": "Important to take medications as prescribed. Set reminders if needed.",
	},
	MetricStress: {
		"low":    "Great stress management! Keep using your effective coping strategies.",
		"medium": "Consider stress-reduction techniques like meditation or yoga.",
		"high":   "High stress detected. Please prioritize stress management and consider professional support.",
	},
	MetricSleep: {
		"low":     "Less than 7 hours of sleep. Aim for 7-9 hours for better health.",
		"optimal": "Great sleep duration! Keep maintaining this healthy sleep schedule.",
		"high":    "More than 9 hours of sleep. Consider consulting your healthcare provider.",
	},
	MetricHydration: {
		"yes": "Well hydrated! Keep drinking water throughout the day.",
		"no":  "Increase your water intake for better blood sugar control.",
	},
}

// metricStatuses is the closed status vocabulary each metric can produce.
var metricStatuses = map[string][]string{
	MetricPhysicalActivity: {"low", "moderate", "high"},
	MetricBMI:              {"Underweight", "Normal weight", "Overweight", "Obese"},
	MetricBloodGlucose:     {"low", "normal", "high", "extreme"},
	MetricDiet:             {"healthy", "unhealthy"},
	MetricMedication:       {"good", "poor"},
	MetricStress:           {"low", "medium", "high"},
	MetricSleep:            {"low", "optimal", "high"},
	MetricHydration:        {"yes", "no"},
}

// GlucoseStatus derives the advice status key for a blood glucose reading
// in mg/dL.
func GlucoseStatus(mgdl int) string {
	switch {
	case mgdl > 300:
		return "extreme"
	case mgdl < 70:
		return "low"
	case mgdl > 180:
		return "high"
	default:
		return "normal"
	}
}

// SleepStatus derives the advice status key for sleep hours.
func SleepStatus(hours float64) string {
	switch {
	case hours < 7:
		return "low"
	case hours > 9:
		return "high"
	default:
		return "optimal"
	}
}

// AdviceFor looks up the guidance text for a metric and status key. An
// absent pair is a *MissingAdviceError; given the fixed vocabularies this
// is unreachable unless the table and the vocabulary drift apart, which is
// a configuration error rather than a user error.
func AdviceFor(metric, status string) (string, error) {
	statuses, ok := adviceTable[metric]
	if !ok {
		return "", &MissingAdviceError{Metric: metric, Status: status}
	}
	advice, ok := statuses[status]
	if !ok {
		return "", &MissingAdviceError{Metric: metric, Status: status}
	}
	return advice, nil
}

// ValidateAdviceTable checks that every (metric, status) pair in the closed
// vocabularies has guidance text. Run once at engine construction so a
// table mismatch fails the process at start-up instead of mid-assessment.
func ValidateAdviceTable() error {
	for metric, statuses := range metricStatuses {
		for _, status := range statuses {
			if _, err := AdviceFor(metric, status); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildAdvice assembles the status and guidance text for all eight tracked
// metrics, in a fixed display order.
func BuildAdvice(obs models.DailyObservation, derived models.DerivedMetrics) ([]models.MetricAdvice, error) {
	entries := []struct {
		metric string
		status string
	}{
		{MetricPhysicalActivity, string(derived.ActivityLevel)},
		{MetricBMI, string(derived.BMICategory)},
		{MetricBloodGlucose, GlucoseStatus(obs.BloodGlucose)},
		{MetricDiet, string(obs.Diet)},
		{MetricMedication, string(obs.MedicationAdherence)},
		{MetricStress, string(obs.StressLevel)},
		{MetricSleep, SleepStatus(obs.SleepHours)},
		{MetricHydration, string(obs.Hydration)},
	}

	advice := make([]models.MetricAdvice, 0, len(entries))
	for _, e := range entries {
		text, err := AdviceFor(e.metric, e.status)
		if err != nil {
			return nil, err
		}
		advice = append(advice, models.MetricAdvice{Metric: e.metric, Status: e.status, Advice: text})
	}
	return advice, nil
}
