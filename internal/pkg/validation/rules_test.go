package validation

import "testing"

func TestIsValidNationalID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid", "1234567890121", true},
		{"valid other prefix", "1103701234563", true},
		{"valid leading 3", "3100503264427", true},
		{"wrong check digit", "1234567890123", false},
		{"too short", "123456789012", false},
		{"too long", "12345678901234", false},
		{"non digits", "12345678901ab", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidNationalID(tt.id); got != tt.want {
				t.Errorf("IsValidNationalID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	for _, valid := range []string{"0812345678", "812345678", "021234567"} {
		if !IsValidPhone(valid) {
			t.Errorf("IsValidPhone(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "12345", "081-234-5678"} {
		if IsValidPhone(invalid) {
			t.Errorf("IsValidPhone(%q) = true, want false", invalid)
		}
	}
}
