package citation

import (
	"encoding/json"
	"testing"
)

func TestNormalize_Lists(t *testing.T) {
	raw := map[string]any{
		"title":           []any{"  Rivers of the North  "},
		"author":          []any{map[string]any{"family": " Smith ", "given": "J."}},
		"date":            []any{"2020"},
		"container-title": []any{"Journal of Rivers"},
		"volume":          []any{json.Number("12")},
		"issue":           []any{},
		"note":            "kept as extra",
	}

	c := Normalize(raw)
	if c.Title != "Rivers of the North" {
		t.Errorf("Title = %q, want %q", c.Title, "Rivers of the North")
	}
	if len(c.Author) != 1 || c.Author[0] != (Person{Family: "Smith", Given: "J."}) {
		t.Errorf("Author = %+v, want [{Smith J.}]", c.Author)
	}
	if c.Date != "2020" {
		t.Errorf("Date = %q, want 2020", c.Date)
	}
	if c.ContainerTitle != "Journal of Rivers" {
		t.Errorf("ContainerTitle = %q, want Journal of Rivers", c.ContainerTitle)
	}
	if c.Volume != "12" {
		t.Errorf("Volume = %q, want 12", c.Volume)
	}
	if c.Issue != "" {
		t.Errorf("Issue = %q, want empty", c.Issue)
	}
	if c.Extra["note"] != "kept as extra" {
		t.Errorf("Extra[note] = %v, want kept as extra", c.Extra["note"])
	}
}

func TestNormalize_ContainerTitleSpelling(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"underscore only", map[string]any{"container_title": "A"}, "A"},
		{"hyphen only", map[string]any{"container-title": []any{"B"}}, "B"},
		{"underscore wins", map[string]any{"container_title": "A", "container-title": "B"}, "A"},
		{"empty underscore falls back", map[string]any{"container_title": []any{}, "container-title": "B"}, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw).ContainerTitle; got != tt.want {
				t.Errorf("ContainerTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize_Malformed(t *testing.T) {
	c := Normalize(map[string]any{
		"title":  map[string]any{"nested": true},
		"author": 42,
	})
	if len(c.Author) != 0 {
		t.Errorf("Author = %+v, want none", c.Author)
	}
	if IsValid(c) {
		t.Error("IsValid() = true for malformed record, want false")
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "  x  ", "x"},
		{"list", []any{" first ", "second"}, "first"},
		{"empty list", []any{}, ""},
		{"string list", []string{"a", "b"}, "a"},
		{"number", json.Number("2024"), "2024"},
		{"float", 3.5, "3.5"},
		{"list of number", []any{json.Number("7")}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scalar(tt.input); got != tt.want {
				t.Errorf("Scalar(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPeople(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []Person
	}{
		{"nil", nil, nil},
		{"list of maps", []any{
			map[string]any{"family": "Doe", "given": "Jane"},
			map[string]any{"family": []any{"Roe"}},
		}, []Person{{Family: "Doe", Given: "Jane"}, {Family: "Roe"}}},
		{"single map", map[string]any{"family": "Solo"}, []Person{{Family: "Solo"}}},
		{"bare string", []any{"Plato"}, []Person{{Family: "Plato"}}},
		{"anonymous kept", []any{map[string]any{"literal": "x"}}, []Person{{}}},
		{"wrong type", "Smith", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := People(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("People() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("People()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestContributors(t *testing.T) {
	a := Citation{Author: []Person{{Family: "A"}}, Editor: []Person{{Family: "E"}}}
	if people, editors := a.Contributors(); editors || people[0].Family != "A" {
		t.Errorf("Contributors() = %+v, %v, want authors", people, editors)
	}

	e := Citation{Editor: []Person{{Family: "E"}}}
	if people, editors := e.Contributors(); !editors || people[0].Family != "E" {
		t.Errorf("Contributors() = %+v, %v, want editors", people, editors)
	}

	if people, editors := (Citation{}).Contributors(); people != nil || editors {
		t.Errorf("Contributors() = %+v, %v, want nil, false", people, editors)
	}
}
