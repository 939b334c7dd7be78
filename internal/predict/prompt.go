package predict

import (
	"fmt"
	"strconv"
	"strings"
)

const systemPrompt = "Eres un analista profesional redactando reportes para ejecutivos de aerolíneas."

// buildPrompt assembles the demand-analysis prompt. Prompt text stays in
// Spanish: the reports are consumed by Spanish-speaking operations staff.
func buildPrompt(p Params, products []string) string {
	var b strings.Builder

	b.WriteString("Eres un experto en análisis de consumo a bordo de vuelos internacionales. ")
	b.WriteString("Recibiste los siguientes parámetros:\n")
	fmt.Fprintf(&b, "- País de origen del vuelo: %s\n", p.OriginCountry)
	fmt.Fprintf(&b, "- Duración estimada: %s\n", humanDuration(p.FlightDuration))
	fmt.Fprintf(&b, "- Hora del despegue: %s\n", p.TimeOfDay)
	fmt.Fprintf(&b, "- Pasajeros confirmados: %d\n\n", p.ConfirmedPassengers)
	b.WriteString("Analiza el contexto y elabora un informe ejecutivo claro y profesional que incluya:\n")
	fmt.Fprintf(&b, "1. Predicciones para estos productos: %s, con su demanda esperada (número) y tendencia ('up', 'down', 'steady').\n", strings.Join(products, ", "))
	b.WriteString("2. Justificación detallada para cada producto, basada en duración, origen, número de pasajeros, preferencias culturales y horario del vuelo.\n")
	b.WriteString("3. Usa referencias o supuestos reales si es posible (como costumbres, hábitos o datos relevantes del país de origen).\n\n")
	b.WriteString("Devuelve un JSON con:\n")
	b.WriteString("- 'predictions': lista de objetos con 'product', 'predicted_demand' y 'trend'\n")
	b.WriteString("- 'report': párrafo extenso profesional y sin comillas ni formato de string literal.")

	return b.String()
}

// humanDuration renders "HH:MM" as readable Spanish ("2 horas y 30 minutos").
func humanDuration(duration string) string {
	parts := strings.SplitN(duration, ":", 2)
	if len(parts) != 2 {
		return "duración desconocida"
	}

	hours, err1 := strconv.Atoi(parts[0])
	minutes, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return "duración desconocida"
	}

	var out []string
	if hours > 0 {
		unit := "horas"
		if hours == 1 {
			unit = "hora"
		}
		out = append(out, fmt.Sprintf("%d %s", hours, unit))
	}
	if minutes > 0 {
		out = append(out, fmt.Sprintf("%d minutos", minutes))
	}
	if len(out) == 0 {
		return "duración desconocida"
	}

	return strings.Join(out, " y ")
}

// formatReport turns escaped newlines into real ones and inserts a blank
// line every 8 lines so long reports stay readable in the mobile client.
func formatReport(report string) string {
	clean := strings.ReplaceAll(report, `\n\n`, "\n\n")
	clean = strings.ReplaceAll(clean, `\n`, "\n")
	clean = strings.TrimSpace(clean)

	lines := strings.Split(clean, "\n")
	var blocks []string
	for i := 0; i < len(lines); i += 8 {
		end := i + 8
		if end > len(lines) {
			end = len(lines)
		}
		blocks = append(blocks, strings.Join(lines[i:end], "\n"))
	}

	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}
