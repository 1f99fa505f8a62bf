package registry

import "testing"

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		format    string
		wantNewer bool
		wantErr   bool
	}{
		{"1.0.0", false, false},
		{"v1.0.0", false, false},
		{"1.2.3", true, false},
		{"0.9.0", false, true},
		{"2.0.0", false, true},
		{"garbage", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			newer, err := CheckFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if newer != tt.wantNewer {
				t.Errorf("CheckFormat(%q) newer = %v, want %v", tt.format, newer, tt.wantNewer)
			}
		})
	}
}
