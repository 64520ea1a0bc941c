package httputil

import (
	"encoding/json"
	"testing"
)

func TestOptionalString_UnmarshalJSON(t *testing.T) {
	type payload struct {
		FullName    OptionalString `json:"full_name"`
		DisplayName OptionalString `json:"display_name"`
	}

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantNil     bool
		wantValue   string
	}{
		{
			name:        "absent field",
			body:        `{"display_name": "x"}`,
			wantPresent: false,
		},
		{
			name:        "null clears",
			body:        `{"full_name": null}`,
			wantPresent: true,
			wantNil:     true,
		},
		{
			name:        "empty string is a value",
			body:        `{"full_name": ""}`,
			wantPresent: true,
			wantValue:   "",
		},
		{
			name:        "string value",
			body:        `{"full_name": "Ada Lovelace"}`,
			wantPresent: true,
			wantValue:   "Ada Lovelace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			field := p.FullName
			if field.Present != tt.wantPresent {
				t.Fatalf("Present = %v, want %v", field.Present, tt.wantPresent)
			}
			if !tt.wantPresent {
				return
			}
			if tt.wantNil {
				if field.Value != nil {
					t.Errorf("Value = %q, want nil", *field.Value)
				}
				return
			}
			if field.Value == nil {
				t.Fatalf("Value = nil, want %q", tt.wantValue)
			}
			if *field.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", *field.Value, tt.wantValue)
			}
		})
	}
}

func TestOptionalString_RejectsNonString(t *testing.T) {
	var o OptionalString
	if err := json.Unmarshal([]byte(`42`), &o); err == nil {
		t.Fatal("expected error for non-string value")
	}
}
