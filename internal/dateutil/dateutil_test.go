package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)

func TestParseDateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{"iso tokens", "YYYY-MM-DD", "2006-01-02", false},
		{"long month", "MMMM D, YYYY", "January 2, 2006", false},
		{"short month", "MMM YY", "Jan 06", false},
		{"single digit tokens", "M/D/YY", "1/2/06", false},
		{"literal text in brackets", "[Date]: YYYY", "Date: 2006", false},
		{"non-token literals preserved", "YYYY.MM.DD", "2006.01.02", false},
		{"empty format", "", "", true},
		{"unclosed bracket", "[Date YYYY", "", true},
		{"too long", strings.Repeat("Y", MaxDateFormatLength+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("error = %v, want ErrInvalidDateFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"passthrough literal", "March 2025", "March 2025", false},
		{"passthrough empty", "", "", false},
		{"auto default", "auto", "2025-03-07", false},
		{"auto custom format", "auto:DD/MM/YYYY", "07/03/2025", false},
		{"auto preset long", "auto:long", "March 7, 2025", false},
		{"auto preset case-insensitive", "auto:ISO", "2025-03-07", false},
		{"auto with empty format", "auto:", "", true},
		{"invalid auto syntax", "automatic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.value, fixedTime)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("error = %v, want ErrInvalidDateFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
