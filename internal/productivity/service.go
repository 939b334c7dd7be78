package productivity

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"gateapp/internal/llm"
)

type Service struct {
	repo Repository
	llm  llm.Client
}

func NewService(repo Repository, client llm.Client) *Service {
	return &Service{repo: repo, llm: client}
}

// EmployeeInsights builds the productivity analysis for one employee. LLM
// output is used when available; any failure falls back to locally computed
// ratings so the endpoint always answers.
func (s *Service) EmployeeInsights(ctx context.Context, employeeID string, daysBack int) (Insights, error) {
	history, err := s.repo.History(ctx, employeeID, daysBack)
	if err != nil {
		return Insights{}, err
	}

	if history == nil || history.CompletedDrawers == 0 {
		return Insights{
			EmployeeID:       employeeID,
			PeriodDays:       daysBack,
			HasData:          false,
			Message:          "Completa más drawers para ver análisis personalizado",
			EfficiencyRating: "unknown",
			Strengths:        []string{},
			ImprovementAreas: []string{"Completar drawers para generar insights"},
			Recommendations:  []string{"Enfócate en mantener consistencia"},
		}, nil
	}

	stats := &Statistics{
		CompletedDrawers:   history.CompletedDrawers,
		AverageTimeMinutes: roundMinutes(float64(history.AverageTimeSeconds)),
		DrawersPerDay:      round1(float64(history.CompletedDrawers) / float64(daysBack)),
		BestTimeMinutes:    roundMinutes(float64(history.MinTimeSeconds)),
		WorstTimeMinutes:   roundMinutes(float64(history.MaxTimeSeconds)),
	}

	insights, llmErr := s.aiInsights(ctx, history)
	if llmErr != nil {
		log.Printf("INSIGHTS_FALLBACK employee=%s reason=%v", employeeID, llmErr)
		fallback := localInsights(stats)
		fallback.EmployeeID = employeeID
		fallback.PeriodDays = daysBack
		fallback.Statistics = stats
		fallback.FallbackReason = llmErr.Error()
		return fallback, nil
	}

	insights.EmployeeID = employeeID
	insights.PeriodDays = daysBack
	insights.HasData = true
	insights.Statistics = stats
	insights.AIGenerated = true
	insights.Benchmarks = &Benchmarks{
		TargetTimeMinutes: targetMinutesPerDrawer,
		YourVsTarget:      round1(stats.AverageTimeMinutes - targetMinutesPerDrawer),
	}
	return insights, nil
}

// aiInsights asks the LLM for the structured analysis.
func (s *Service) aiInsights(ctx context.Context, history *History) (Insights, error) {
	raw, err := s.llm.Complete(ctx, llm.CompletionRequest{
		Prompt:      buildInsightsPrompt(history),
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return Insights{}, err
	}

	var parsed struct {
		EfficiencyRating string   `json:"efficiency_rating"`
		PerformanceLabel string   `json:"performance_label"`
		Strengths        []string `json:"strengths"`
		ImprovementAreas []string `json:"improvement_areas"`
		Recommendations  []string `json:"recommendations"`
		Insights         string   `json:"insights"`
	}
	if err := json.Unmarshal([]byte(llm.CleanResponse(raw)), &parsed); err != nil {
		return Insights{}, fmt.Errorf("invalid model JSON: %w", err)
	}

	return Insights{
		EfficiencyRating: parsed.EfficiencyRating,
		PerformanceLabel: parsed.PerformanceLabel,
		Strengths:        parsed.Strengths,
		ImprovementAreas: parsed.ImprovementAreas,
		Recommendations:  parsed.Recommendations,
		Narrative:        parsed.Insights,
	}, nil
}

// localInsights is the deterministic fallback rating.
func localInsights(stats *Statistics) Insights {
	rating := "medium"
	label := "Medio"
	switch {
	case stats.AverageTimeMinutes < 15:
		rating = "high"
		label = "Alto"
	case stats.AverageTimeMinutes > 20:
		rating = "low"
		label = "Bajo"
	}

	return Insights{
		HasData:          true,
		EfficiencyRating: rating,
		PerformanceLabel: label,
		Strengths:        []string{fmt.Sprintf("Promedio de %.1f min/drawer", stats.AverageTimeMinutes)},
		ImprovementAreas: []string{"Analiza tus tiempos para encontrar patrones"},
		Recommendations:  []string{"Mantén consistencia en tu trabajo"},
		Narrative: fmt.Sprintf("Has completado %d drawers en el período analizado.",
			stats.CompletedDrawers),
		AIGenerated: false,
	}
}

// buildInsightsPrompt renders the analysis prompt with the employee's
// aggregated numbers and the industry benchmarks.
func buildInsightsPrompt(history *History) string {
	timesParts := make([]string, 0, len(history.TimesList))
	for _, t := range history.TimesList {
		timesParts = append(timesParts, fmt.Sprintf("%.1f min", float64(t)/60))
	}

	var b strings.Builder
	b.WriteString("Eres un analista de productividad experto en operaciones de catering de aerolíneas.\n\n")
	b.WriteString("Analiza el desempeño de este empleado:\n\n")
	b.WriteString("DATOS DEL EMPLEADO:\n")
	fmt.Fprintf(&b, "- Período analizado: %d días\n", history.PeriodDays)
	fmt.Fprintf(&b, "- Drawers completados: %d\n", history.CompletedDrawers)
	fmt.Fprintf(&b, "- Tiempo promedio: %.1f minutos/drawer\n", float64(history.AverageTimeSeconds)/60)
	fmt.Fprintf(&b, "- Mejor tiempo: %.1f minutos\n", float64(history.MinTimeSeconds)/60)
	fmt.Fprintf(&b, "- Peor tiempo: %.1f minutos\n", float64(history.MaxTimeSeconds)/60)
	fmt.Fprintf(&b, "- Últimos tiempos: %s\n\n", strings.Join(timesParts, ", "))
	b.WriteString("BENCHMARKS DE LA INDUSTRIA:\n")
	b.WriteString("- Objetivo: 18 min/drawer\n")
	b.WriteString("- Excelente: < 15 min\n")
	b.WriteString("- Bueno: 15-20 min\n")
	b.WriteString("- Necesita mejora: > 20 min\n\n")
	b.WriteString("Genera un análisis profesional en formato JSON con:\n")
	b.WriteString(`1. "efficiency_rating": "high", "medium" o "low"` + "\n")
	b.WriteString(`2. "performance_label": etiqueta descriptiva en español` + "\n")
	b.WriteString(`3. "strengths": array de 2-4 fortalezas identificadas` + "\n")
	b.WriteString(`4. "improvement_areas": array de 2-3 áreas de mejora específicas` + "\n")
	b.WriteString(`5. "recommendations": array de 3-5 recomendaciones accionables` + "\n")
	b.WriteString(`6. "insights": string con análisis narrativo (2-3 oraciones)` + "\n\n")
	b.WriteString("Responde SOLO con JSON válido, sin texto adicional.")

	return b.String()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
