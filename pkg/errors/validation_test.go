package errors

import (
	"testing"
)

func TestValidateAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "NSEW", false},
		{"french", "NSEO", false},
		{"lowercase", "nsew", false},

		{"empty", "", true},
		{"too short", "NSE", true},
		{"too long", "NSEWX", true},
		{"repeated", "NSEN", true},
		{"digit", "NS3W", true},
		{"newline", "NS\nW", true},
		{"space", "NS W", true},
		{"non ascii", "NSÉW", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlphabet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAlphabet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidAlphabet) {
				t.Errorf("ValidateAlphabet(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidAlphabet)
			}
		})
	}
}

func TestValidateAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"host and port", "challenges1.france-cybersecurity-challenge.fr:7002", false},
		{"ip and port", "127.0.0.1:7002", false},
		{"listen all", ":8080", false},
		{"ipv6", "[::1]:7002", false},

		{"empty", "", true},
		{"no port", "localhost", true},
		{"non numeric port", "localhost:http", true},
		{"port zero", "localhost:0", true},
		{"port too large", "localhost:70000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddr(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAddr(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDir(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "diagnostics", false},
		{"absolute", "/var/lib/ventriglisse", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDir(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDir(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
