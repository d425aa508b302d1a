package openfda

import (
	"encoding/json"
	"testing"
)

func mustLabel(t *testing.T, raw string) LabelResult {
	t.Helper()
	var rec LabelResult
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("Failed to unmarshal label: %v", err)
	}
	return rec
}

func TestSectionAbsentIsEmpty(t *testing.T) {
	rec := mustLabel(t, `{"description":["text"]}`)

	if got := rec.Section("warnings_and_precautions"); len(got) != 0 {
		t.Errorf("Absent section should be empty, got %v", got)
	}
	if got := rec.Section("description"); len(got) != 1 || got[0] != "text" {
		t.Errorf("Unexpected section: %v", got)
	}
}

func TestSectionMalformedIsEmpty(t *testing.T) {
	rec := mustLabel(t, `{"description":"not a list"}`)
	if got := rec.Section("description"); len(got) != 0 {
		t.Errorf("Malformed section should be empty, got %v", got)
	}
}

func TestIdentityDefaultsToEmptyLists(t *testing.T) {
	rec := mustLabel(t, `{"openfda":{"brand_name":["Aspirin"]}}`)
	id := rec.Identity()

	if len(id.BrandNames) != 1 || id.BrandNames[0] != "Aspirin" {
		t.Errorf("Unexpected brand names: %v", id.BrandNames)
	}
	for name, field := range map[string][]string{
		"generic_name":      id.GenericNames,
		"manufacturer_name": id.Manufacturers,
		"substance_name":    id.SubstanceNames,
		"product_ndc":       id.ProductNDCs,
	} {
		if field == nil {
			t.Errorf("Field %s should default to an empty list, got nil", name)
		}
		if len(field) != 0 {
			t.Errorf("Field %s should be empty, got %v", name, field)
		}
	}
}

func TestIdentityMissingOpenFDA(t *testing.T) {
	rec := mustLabel(t, `{"description":["text"]}`)
	id := rec.Identity()
	if id.BrandNames == nil || id.ProductNDCs == nil {
		t.Error("Identity fields should never be nil")
	}
}
