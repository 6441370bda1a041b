package render

import (
	"testing"
	"time"
)

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		format string
		want   string
	}{
		{name: "full", value: "2023-05-01T10:00:00", format: "full", want: "Monday May, 1, 2023 at 10:00AM"},
		{name: "medium", value: "2023-05-01T10:00:00", format: "medium", want: "Mon 05, 01, 2023 10:00AM"},
		{name: "empty format is medium", value: "2023-05-01T10:00:00", format: "", want: "Mon 05, 01, 2023 10:00AM"},
		{name: "afternoon", value: "2035-04-15 20:00:00", format: "full", want: "Sunday April, 15, 2035 at 8:00PM"},
		{name: "midnight", value: "2019-06-15 00:30", format: "medium", want: "Sat 06, 15, 2019 12:30AM"},
		{name: "rfc3339", value: "2019-05-21T21:30:00.000Z", format: "full", want: "Tuesday May, 21, 2019 at 9:30PM"},
		{name: "date only", value: "2024-02-29", format: "medium", want: "Thu 02, 29, 2024 12:00AM"},
		{name: "custom pattern", value: "2023-05-01T10:00:00", format: "y-MM-dd HH:mm 'h'", want: "2023-05-01 10:00 h"},
		{name: "abbreviated month", value: "2023-12-01T10:00:00", format: "d MMM yy", want: "1 Dec 23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDateTime(tt.value, tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatDateTime(%q, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatDateTimeDeterministic(t *testing.T) {
	full1, _ := FormatDateTime("2023-05-01T10:00:00", "full")
	full2, _ := FormatDateTime("2023-05-01T10:00:00", "full")
	medium, _ := FormatDateTime("2023-05-01T10:00:00", "medium")

	if full1 != full2 {
		t.Errorf("full output not deterministic: %q vs %q", full1, full2)
	}
	if full1 == medium {
		t.Errorf("full and medium outputs should differ, both %q", full1)
	}
}

func TestFormatDateTimeErrors(t *testing.T) {
	if _, err := FormatDateTime("next tuesday", "full"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := FormatDateTime("2023-05-01", "QQQ"); err == nil {
		t.Error("expected unsupported pattern error")
	}
}

func TestTemplateDateTime(t *testing.T) {
	ts := time.Date(2023, time.May, 1, 10, 0, 0, 0, time.UTC)

	got, err := templateDateTime(ts, "full")
	if err != nil || got != "Monday May, 1, 2023 at 10:00AM" {
		t.Errorf("time.Time: got %q, %v", got, err)
	}

	got, err = templateDateTime("2023-05-01T10:00:00")
	if err != nil || got != "Mon 05, 01, 2023 10:00AM" {
		t.Errorf("string: got %q, %v", got, err)
	}

	if _, err := templateDateTime(42); err == nil {
		t.Error("expected error for unsupported type")
	}
}
