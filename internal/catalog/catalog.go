package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UnknownDescription se devuelve cuando una etiqueta no tiene descripcion configurada.
const UnknownDescription = "No description available"

//go:embed labels.yaml
var defaultLabelsYAML []byte

//go:embed templates.yaml
var defaultTemplatesYAML []byte

// PlanTemplates agrupa las partes declarativas del plan de accion.
type PlanTemplates struct {
	WeeklySchedule    map[string][]string `yaml:"weekly_schedule" json:"weeklySchedule"`
	MonthlyMilestones []string            `yaml:"monthly_milestones" json:"monthlyMilestones"`
	ProgressTracking  []string            `yaml:"progress_tracking" json:"progressTracking"`
}

type labelsFile struct {
	Labels map[string]string `yaml:"labels"`
}

// Catalog contiene las descripciones por etiqueta de clasificacion y las plantillas del plan.
type Catalog struct {
	labels map[string]string
	plan   PlanTemplates
}

// Default construye el catalogo a partir de los YAML embebidos.
func Default() *Catalog {
	labels, err := parseLabels(defaultLabelsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded labels.yaml: %v", err))
	}
	plan, err := parseTemplates(defaultTemplatesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded templates.yaml: %v", err))
	}
	return &Catalog{labels: labels, plan: plan}
}

// Load arma el catalogo; una ruta vacia usa el YAML embebido correspondiente.
// Si un archivo no se puede leer se devuelve el catalogo por defecto junto con el error.
func Load(labelsPath, templatesPath string) (*Catalog, error) {
	cat := Default()
	if labelsPath != "" {
		content, err := os.ReadFile(filepath.Clean(labelsPath))
		if err != nil {
			return cat, fmt.Errorf("read labels file: %w", err)
		}
		labels, err := parseLabels(content)
		if err != nil {
			return cat, err
		}
		cat.labels = labels
	}
	if templatesPath != "" {
		content, err := os.ReadFile(filepath.Clean(templatesPath))
		if err != nil {
			return cat, fmt.Errorf("read templates file: %w", err)
		}
		plan, err := parseTemplates(content)
		if err != nil {
			return cat, err
		}
		cat.plan = plan
	}
	return cat, nil
}

func parseLabels(content []byte) (map[string]string, error) {
	var f labelsFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	if len(f.Labels) == 0 {
		return nil, errors.New("no labels configured")
	}
	return f.Labels, nil
}

func parseTemplates(content []byte) (PlanTemplates, error) {
	var p PlanTemplates
	if err := yaml.Unmarshal(content, &p); err != nil {
		return PlanTemplates{}, fmt.Errorf("parse templates: %w", err)
	}
	if len(p.WeeklySchedule) == 0 {
		return PlanTemplates{}, errors.New("templates: weekly_schedule is empty")
	}
	return p, nil
}

// Describe devuelve la descripcion de la etiqueta o UnknownDescription.
func (c *Catalog) Describe(label string) string {
	if c == nil {
		return UnknownDescription
	}
	if desc, ok := c.labels[label]; ok && desc != "" {
		return desc
	}
	return UnknownDescription
}

// Labels lista las etiquetas conocidas.
func (c *Catalog) Labels() map[string]string {
	out := make(map[string]string, len(c.labels))
	for k, v := range c.labels {
		out[k] = v
	}
	return out
}

// Plan devuelve una copia de las plantillas para que el llamador pueda modificarla.
func (c *Catalog) Plan() PlanTemplates {
	schedule := make(map[string][]string, len(c.plan.WeeklySchedule))
	for day, items := range c.plan.WeeklySchedule {
		schedule[day] = append([]string(nil), items...)
	}
	return PlanTemplates{
		WeeklySchedule:    schedule,
		MonthlyMilestones: append([]string(nil), c.plan.MonthlyMilestones...),
		ProgressTracking:  append([]string(nil), c.plan.ProgressTracking...),
	}
}
