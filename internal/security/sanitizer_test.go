package security

import (
	"testing"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Plain text untouched",
			input: "A wonderful book about friendship.",
			want:  "A wonderful book about friendship.",
		},
		{
			name:  "Script tag stripped",
			input: "great read<script>alert('x')</script>",
			want:  "great read",
		},
		{
			name:  "Markup stripped, text kept",
			input: "<b>loved</b> it",
			want:  "loved it",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeHTML(tt.input); got != tt.want {
				t.Errorf("SanitizeHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Trims whitespace",
			input: "  hello  ",
			want:  "hello",
		},
		{
			name:  "Removes null bytes",
			input: "he\x00llo",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeString(tt.input); got != tt.want {
				t.Errorf("SanitizeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateFileType(t *testing.T) {
	allowed := []string{".jpg", ".png"}

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{
			name:     "Allowed jpg",
			filename: "cover.jpg",
			want:     true,
		},
		{
			name:     "Allowed uppercase",
			filename: "COVER.PNG",
			want:     true,
		},
		{
			name:     "Disallowed executable",
			filename: "payload.exe",
			want:     false,
		},
		{
			name:     "No extension",
			filename: "noext",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateFileType(tt.filename, allowed); got != tt.want {
				t.Errorf("ValidateFileType(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	if !ValidateFileSize(100, 1000) {
		t.Error("ValidateFileSize(100, 1000) = false, want true")
	}
	if ValidateFileSize(0, 1000) {
		t.Error("ValidateFileSize(0, 1000) = true, want false")
	}
	if ValidateFileSize(1001, 1000) {
		t.Error("ValidateFileSize(1001, 1000) = true, want false")
	}
}
