package vision

import (
	"encoding/json"
	"testing"
)

func TestSanitizeExtractionFlattensBareStrings(t *testing.T) {
	in := []byte(`{"brand_name": "Old Tom", "net_contents": {"value": "750 mL", "confidence": 0.8}}`)
	out, dropped, err := SanitizeExtraction(in)
	if err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}
	var m map[string]Field
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal sanitized: %v", err)
	}
	if m["brand_name"].Value != "Old Tom" {
		t.Fatalf("expected flattened brand_name, got %+v", m)
	}
	if m["net_contents"].Confidence != 0.8 {
		t.Fatalf("valid field must pass through, got %+v", m["net_contents"])
	}
	if len(dropped) != 1 {
		t.Fatalf("expected one rewrite note, got %v", dropped)
	}
}

func TestSanitizeExtractionDropsUnknownAndEmpty(t *testing.T) {
	in := []byte(`{"bottle_shape": {"value": "tall"}, "brand_name": null, "vintage": {"value": "  "}}`)
	out, dropped, err := SanitizeExtraction(in)
	if err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}
	var m map[string]Field
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal sanitized: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected everything dropped, got %v", m)
	}
	if len(dropped) != 3 {
		t.Fatalf("expected three drop notes, got %v", dropped)
	}
}

func TestSanitizeExtractionOutputValidates(t *testing.T) {
	in := []byte(`{"brand_name": "Old Tom", "alcohol_content": {"value": "45%", "confidence": 2.5}}`)
	out, _, err := SanitizeExtraction(in)
	if err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildLabelJSONSchema(), out); err != nil {
		t.Fatalf("sanitized output must validate: %v", err)
	}
}
