package models

// FeatureCount is the width of the predictor's trained schema.
const FeatureCount = 10

// Feature vector positions. The order must match the column order the
// scaler and regression model were fitted with; reordering any two entries
// silently invalidates every prediction, so the positions are pinned here
// and asserted by tests.
const (
	FeatureWeight = iota
	FeatureHeight
	FeatureBMI
	FeatureBloodGlucose
	FeaturePhysicalActivity
	FeatureDiet
	FeatureMedicationAdherence
	FeatureStressLevel
	FeatureSleepHours
	FeatureHydration
)

// FeatureVector is the fixed-order numeric encoding of one observation,
// in raw (unscaled) units.
type FeatureVector [FeatureCount]float64
