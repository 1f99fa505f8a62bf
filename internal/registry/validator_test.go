package registry

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantValid bool
		wantPath  string
	}{
		{
			name: "minimal",
			yaml: `format: 1.0.0
entries: []
services: {}
`,
			wantValid: true,
		},
		{
			name: "missing services",
			yaml: `format: 1.0.0
entries: []
`,
			wantValid: false,
		},
		{
			name: "unknown service",
			yaml: `format: 1.0.0
entries: []
services:
  bookmarks:
    entries: []
`,
			wantValid: false,
		},
		{
			name: "bad stable id",
			yaml: `format: 1.0.0
entries:
  - id: 7f3c8a4e-2b1d-4c55-9a0e-1d2c3b4a5f60
    kind: asset
    stable_id: guid-1234
    name: Red
services: {}
`,
			wantValid: false,
			wantPath:  "/entries/0/stable_id",
		},
		{
			name: "negative size limit",
			yaml: `format: 1.0.0
entries: []
services:
  history:
    size_limit: -1
    entries: []
`,
			wantValid: false,
			wantPath:  "/services/history/size_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if res.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", res.Valid, tt.wantValid, res.Issues)
			}
			if tt.wantPath == "" {
				return
			}
			for _, issue := range res.Issues {
				if issue.Path == tt.wantPath {
					return
				}
			}
			t.Errorf("no issue at %s: %v", tt.wantPath, res.Issues)
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	if _, err := Validate([]byte("format: [unclosed")); err == nil {
		t.Fatal("expected a parse error")
	}
}
