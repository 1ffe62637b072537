// Package recommend builds fertilizer recommendation prompts and delegates
// their phrasing to a generative-AI service.
package recommend

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/kipkoech/shamba/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var promptTemplate = template.Must(
	template.New("recommendation.tmpl").
		Funcs(template.FuncMap{
			"add": func(a, b int) int { return a + b },
		}).
		ParseFS(templateFS, "templates/recommendation.tmpl"),
)

// promptRow is one classified soil property rendered into the prompt.
type promptRow struct {
	Label string
	Value string
	Unit  string
	Level model.Level
}

type promptData struct {
	Rows    []promptRow
	Options []model.FertilizerOption
}

var propertyLabels = map[model.Property]string{
	model.PropertyNitrogen:   "Nitrogen (N)",
	model.PropertyPhosphorus: "Phosphorus (P)",
	model.PropertyPotassium:  "Potassium (K)",
	model.PropertyPH:         "pH",
}

// BuildPrompt renders the classified soil state and the fertilizer catalog
// into the prompt sent to the generative-AI service.
func BuildPrompt(reading model.SoilReading, classification model.Classification, catalog []model.FertilizerOption) (string, error) {
	data := promptData{
		Rows:    make([]promptRow, 0, len(model.Properties)),
		Options: catalog,
	}

	for _, property := range model.Properties {
		data.Rows = append(data.Rows, promptRow{
			Label: propertyLabels[property],
			Value: fmt.Sprintf("%.2f", reading.Value(property)),
			Unit:  property.Unit(),
			Level: classification[property],
		})
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	return buf.String(), nil
}
