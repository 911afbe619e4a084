package inspector

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag    string
		widget Widget
		opts   map[string]string
	}{
		{"", WidgetAuto, nil},
		{"bar", WidgetBar, nil},
		{"bar,max:200", WidgetBar, map[string]string{"max": "200"}},
		{"bar,max:field:MaxHealth", WidgetBar, map[string]string{"max": "field:MaxHealth"}},
		{"label,fmt:%.1fs", WidgetLabel, map[string]string{"fmt": "%.1fs"}},
		{"enum", WidgetEnum, nil},
		{"count", WidgetCount, nil},
		{"skip", WidgetSkip, nil},
		{"sparkle", WidgetAuto, nil},
	}

	for _, tt := range tests {
		widget, opts := ParseTag(tt.tag)
		if widget != tt.widget {
			t.Errorf("ParseTag(%q) widget = %v, want %v", tt.tag, widget, tt.widget)
		}
		for k, want := range tt.opts {
			if opts[k] != want {
				t.Errorf("ParseTag(%q) option %s = %q, want %q", tt.tag, k, opts[k], want)
			}
		}
	}
}

func fieldsByName(fields []Field) map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.Name] = f
	}
	return m
}

func TestExtractFields_Flower(t *testing.T) {
	f := components.NewFlower("Lavender", 25, 80, 0.08)
	f.Health = 40
	f.AddPollinator(ecs.Entity{})

	fields := fieldsByName(ExtractFields(f))

	health, ok := fields["Health"]
	if !ok {
		t.Fatal("Health field missing")
	}
	if health.Widget != WidgetBar || health.Max != 80 {
		t.Errorf("Health widget=%v max=%v, want bar with max 80", health.Widget, health.Max)
	}

	if got := FormatField(fields["Pollinators"]); got != "1" {
		t.Errorf("Pollinators = %q, want 1", got)
	}
	if got := FormatField(fields["Wilting"]); got != "yes" {
		t.Errorf("Wilting = %q, want yes", got)
	}
	if got := FormatField(fields["Cost"]); got != "$25" {
		t.Errorf("Cost = %q, want $25", got)
	}
}

func TestExtractFields_Bee(t *testing.T) {
	b := components.Bee{State: components.BeeForaging, ForageTimer: 2.5, Speed: 80}

	fields := fieldsByName(ExtractFields(&b))

	if _, ok := fields["Hive"]; ok {
		t.Error("skipped field Hive was extracted")
	}
	if _, ok := fields["Target"]; ok {
		t.Error("skipped field Target was extracted")
	}
	if got := FormatField(fields["State"]); got != "foraging" {
		t.Errorf("State = %q, want foraging", got)
	}
	if got := FormatField(fields["ForageTimer"]); got != "2.5s" {
		t.Errorf("ForageTimer = %q, want 2.5s", got)
	}
}

func TestExtractFields_NotAStruct(t *testing.T) {
	var nilHive *components.Hive
	if fields := ExtractFields(nilHive); fields != nil {
		t.Errorf("nil pointer gave %d fields", len(fields))
	}
	if fields := ExtractFields(42); fields != nil {
		t.Errorf("int gave %d fields", len(fields))
	}
}

func TestResolveMax_Literal(t *testing.T) {
	type gauge struct {
		Level float64 `inspect:"bar,max:200"`
		Fill  float64 `inspect:"bar"`
		Bad   float64 `inspect:"bar,max:field:Missing"`
	}

	fields := fieldsByName(ExtractFields(gauge{Level: 50}))
	tests := map[string]float64{"Level": 200, "Fill": 1, "Bad": 1}
	for name, want := range tests {
		if got := fields[name].Max; got != want {
			t.Errorf("%s max = %v, want %v", name, got, want)
		}
	}
}
