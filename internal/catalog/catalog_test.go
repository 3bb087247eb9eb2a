package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	plan := cat.Plan()
	assert.Len(t, plan.WeeklySchedule, 7)
	assert.Len(t, plan.MonthlyMilestones, 5)
	assert.Len(t, plan.ProgressTracking, 7)
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		assert.NotEmpty(t, plan.WeeklySchedule[day], day)
	}

	assert.Len(t, cat.Labels(), 7)
	assert.NotEqual(t, UnknownDescription, cat.Describe("Obesity_Type_I"))
}

func TestDescribeFallback(t *testing.T) {
	cat := Default()
	if got := cat.Describe("Something_Else"); got != UnknownDescription {
		t.Fatalf("expected fallback description, got %q", got)
	}
	var nilCat *Catalog
	if got := nilCat.Describe("Normal_Weight"); got != UnknownDescription {
		t.Fatalf("expected fallback on nil catalog, got %q", got)
	}
}

func TestPlanReturnsCopy(t *testing.T) {
	cat := Default()
	plan := cat.Plan()
	plan.WeeklySchedule["Monday"][0] = "changed"
	plan.MonthlyMilestones[0] = "changed"

	fresh := cat.Plan()
	assert.NotEqual(t, "changed", fresh.WeeklySchedule["Monday"][0])
	assert.NotEqual(t, "changed", fresh.MonthlyMilestones[0])
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	labels := filepath.Join(dir, "labels.yaml")
	require.NoError(t, os.WriteFile(labels, []byte("labels:\n  Normal_Weight: custom text\n"), 0o600))

	cat, err := Load(labels, "")
	require.NoError(t, err)
	assert.Equal(t, "custom text", cat.Describe("Normal_Weight"))
	assert.Equal(t, UnknownDescription, cat.Describe("Obesity_Type_I"))
	assert.Len(t, cat.Plan().WeeklySchedule, 7)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("labels: {}\n"), 0o600))
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("weekly_schedule: [\n"), 0o600))

	tests := []struct {
		name      string
		labels    string
		templates string
	}{
		{name: "missing labels file", labels: filepath.Join(dir, "missing.yaml")},
		{name: "empty labels", labels: empty},
		{name: "broken templates", templates: broken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Load(tt.labels, tt.templates)
			if err == nil {
				t.Fatalf("expected error")
			}
			if cat == nil {
				t.Fatalf("expected default catalog alongside the error")
			}
			assert.Len(t, cat.Plan().MonthlyMilestones, 5)
		})
	}
}
