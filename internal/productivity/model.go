package productivity

// Hand-tuned assembly-time model constants. Times are in seconds.
const baseTimePerItem = 15

// complexityMultipliers scale assembly time by cabin/flight type.
var complexityMultipliers = map[string]float64{
	"Economy":         1.0,
	"Business":        1.3,
	"First-Class":     1.6,
	"Premium Economy": 1.15,
	"International":   1.2,
	"Domestic":        0.95,
}

// experienceAdjustments scale by how long the employee has been on the job.
var experienceAdjustments = map[string]float64{
	"novice":       1.4,  // < 3 months
	"intermediate": 1.2,  // 3-6 months
	"experienced":  1.0,  // 6-12 months
	"expert":       0.85, // > 12 months
}

// Industry benchmark: minutes per assembled drawer.
const targetMinutesPerDrawer = 18.0

// Estimate is the output of the mathematical model.
type Estimate struct {
	EstimatedTimeSeconds int     `json:"estimated_time_seconds"`
	EstimatedTimeMinutes float64 `json:"estimated_time_minutes"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	ExperienceMultiplier float64 `json:"experience_multiplier"`
	ExperienceLevel      string  `json:"experience_level"`
}

// History aggregates an employee's completed drawer assemblies.
type History struct {
	CompletedDrawers   int   `json:"completed_drawers"`
	TotalTimeSeconds   int   `json:"total_time_seconds"`
	AverageTimeSeconds int   `json:"average_time_seconds"`
	MinTimeSeconds     int   `json:"min_time_seconds"`
	MaxTimeSeconds     int   `json:"max_time_seconds"`
	PeriodDays         int   `json:"period_days"`
	TimesList          []int `json:"times_list"` // most recent assembly times
}

// Statistics is the human-facing summary included in insights responses.
type Statistics struct {
	CompletedDrawers   int     `json:"completed_drawers"`
	AverageTimeMinutes float64 `json:"average_time_minutes"`
	DrawersPerDay      float64 `json:"drawers_per_day"`
	BestTimeMinutes    float64 `json:"best_time_minutes"`
	WorstTimeMinutes   float64 `json:"worst_time_minutes"`
}

// Insights is the analysis for one employee, LLM-generated when possible.
type Insights struct {
	EmployeeID       string      `json:"employee_id"`
	PeriodDays       int         `json:"period_days"`
	HasData          bool        `json:"has_data"`
	Statistics       *Statistics `json:"statistics,omitempty"`
	EfficiencyRating string      `json:"efficiency_rating"`
	PerformanceLabel string      `json:"performance_label,omitempty"`
	Strengths        []string    `json:"strengths"`
	ImprovementAreas []string    `json:"improvement_areas"`
	Recommendations  []string    `json:"recommendations"`
	Narrative        string      `json:"insights,omitempty"`
	AIGenerated      bool        `json:"ai_generated"`
	FallbackReason   string      `json:"fallback_reason,omitempty"`
	Message          string      `json:"message,omitempty"`
	Benchmarks       *Benchmarks `json:"benchmarks,omitempty"`
}

// Benchmarks compares the employee against the industry target.
type Benchmarks struct {
	TargetTimeMinutes float64 `json:"target_time_minutes"`
	YourVsTarget      float64 `json:"your_vs_target"`
}

// Comparison is the actual-vs-estimated result.
type Comparison struct {
	ActualTime    TimePair `json:"actual_time"`
	EstimatedTime TimePair `json:"estimated_time"`
	Difference    Diff     `json:"difference"`
	Performance   string   `json:"performance"`
	Message       string   `json:"message"`
}

type TimePair struct {
	Seconds int     `json:"seconds"`
	Minutes float64 `json:"minutes"`
}

type Diff struct {
	Seconds int     `json:"seconds"`
	Minutes float64 `json:"minutes"`
	Percent float64 `json:"percent"`
}
