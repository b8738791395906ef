package toolspec

import "testing"

func TestSearchSchemaShape(t *testing.T) {
	schema := SearchSchema()
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("search schema properties missing")
	}
	if _, ok := props["query"]; !ok {
		t.Fatalf("expected search schema to include query property")
	}
	required, ok := schema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "query" {
		t.Fatalf("expected query to be the only required property, got %v", schema["required"])
	}

	options, ok := props["options"].(map[string]any)
	if !ok {
		t.Fatalf("expected search schema to include options property")
	}
	optProps, ok := options["properties"].(map[string]any)
	if !ok {
		t.Fatalf("options schema properties missing")
	}
	for _, key := range []string{"region", "safeSearch", "numResults"} {
		if _, ok := optProps[key]; !ok {
			t.Fatalf("expected options schema to include %s property", key)
		}
	}

	safeSearch := optProps["safeSearch"].(map[string]any)
	levels, ok := safeSearch["enum"].([]string)
	if !ok || len(levels) != 3 {
		t.Fatalf("expected three safeSearch levels, got %v", safeSearch["enum"])
	}
}
