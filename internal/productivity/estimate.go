package productivity

import "math"

// ExperienceLevel buckets months-on-the-job; nil means unknown and defaults
// to experienced.
func ExperienceLevel(months *int) string {
	if months == nil {
		return "experienced"
	}
	switch {
	case *months < 3:
		return "novice"
	case *months < 6:
		return "intermediate"
	case *months <= 12:
		return "experienced"
	default:
		return "expert"
	}
}

// ValidFlightType reports whether the math model knows this flight type.
func ValidFlightType(flightType string) bool {
	_, ok := complexityMultipliers[flightType]
	return ok
}

// FlightTypes lists the types the model accepts (for error messages).
func FlightTypes() []string {
	return []string{"Economy", "Business", "First-Class", "Premium Economy", "International", "Domestic"}
}

// BaseEstimate is the pure mathematical model: no AI, no I/O, instant.
func BaseEstimate(itemCount int, flightType string, experienceMonths *int) Estimate {
	baseTime := float64(itemCount * baseTimePerItem)

	complexity, ok := complexityMultipliers[flightType]
	if !ok {
		complexity = 1.0
	}
	adjusted := baseTime * complexity

	level := ExperienceLevel(experienceMonths)
	experience := experienceAdjustments[level]
	final := adjusted * experience

	return Estimate{
		EstimatedTimeSeconds: int(final),
		EstimatedTimeMinutes: roundMinutes(final),
		ComplexityMultiplier: complexity,
		ExperienceMultiplier: experience,
		ExperienceLevel:      level,
	}
}

// Compare evaluates a real assembly time against the model's estimate.
func Compare(actualSeconds, itemCount int, flightType string, experienceMonths *int) Comparison {
	estimate := BaseEstimate(itemCount, flightType, experienceMonths)
	estimatedSeconds := estimate.EstimatedTimeSeconds

	diffSeconds := actualSeconds - estimatedSeconds
	diffMinutes := roundMinutes(float64(diffSeconds))
	diffPercent := math.Round(float64(diffSeconds)/float64(estimatedSeconds)*1000) / 10

	performance := "on_target"
	switch {
	case diffPercent <= -15:
		performance = "excellent"
	case diffPercent <= 15:
		performance = "on_target"
	default:
		performance = "needs_improvement"
	}

	messages := map[string]string{
		"excellent":         "Excelente, terminaste más rápido de lo estimado",
		"on_target":         "Buen trabajo, dentro del tiempo esperado",
		"needs_improvement": "Tomó más tiempo del estimado",
	}

	return Comparison{
		ActualTime: TimePair{
			Seconds: actualSeconds,
			Minutes: roundMinutes(float64(actualSeconds)),
		},
		EstimatedTime: TimePair{
			Seconds: estimatedSeconds,
			Minutes: estimate.EstimatedTimeMinutes,
		},
		Difference: Diff{
			Seconds: diffSeconds,
			Minutes: diffMinutes,
			Percent: diffPercent,
		},
		Performance: performance,
		Message:     messages[performance],
	}
}

// roundMinutes converts seconds to minutes with one decimal.
func roundMinutes(seconds float64) float64 {
	return math.Round(seconds/60*10) / 10
}
