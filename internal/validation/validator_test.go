package validation

import (
	"strings"
	"testing"
)

type sampleForm struct {
	Name    string   `form:"name" validate:"required,max=120"`
	Website string   `form:"website" validate:"omitempty,url"`
	Genres  []string `form:"genres" validate:"max=3"`
	VenueID int64    `form:"venue_id" validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		form       sampleForm
		wantFields []string
	}{
		{
			name: "valid form",
			form: sampleForm{Name: "The Musical Hop", Website: "https://themusicalhop.com", VenueID: 1},
		},
		{
			name:       "missing name",
			form:       sampleForm{VenueID: 1},
			wantFields: []string{"name"},
		},
		{
			name:       "bad url and zero id",
			form:       sampleForm{Name: "x", Website: "not a url"},
			wantFields: []string{"website", "venue_id"},
		},
		{
			name:       "too many genres",
			form:       sampleForm{Name: "x", VenueID: 2, Genres: []string{"Jazz", "Folk", "Swing", "Blues"}},
			wantFields: []string{"genres"},
		},
		{
			name:       "name too long",
			form:       sampleForm{Name: strings.Repeat("a", 121), VenueID: 1},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.form)
			if len(tt.wantFields) == 0 {
				if verr != nil {
					t.Fatalf("unexpected validation error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected validation error for fields %v", tt.wantFields)
			}
			if len(verr.Errors()) != len(tt.wantFields) {
				t.Fatalf("got %d errors (%v), want %d", len(verr.Errors()), verr, len(tt.wantFields))
			}
			for _, f := range tt.wantFields {
				if !verr.HasField(f) {
					t.Errorf("expected error on field %q, got %v", f, verr)
				}
			}
		})
	}
}

func TestRequestValidationErrorMessage(t *testing.T) {
	verr := ValidateStruct(sampleForm{})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	msg := verr.Error()
	if !strings.Contains(msg, "name is required") {
		t.Errorf("message %q should mention the name field", msg)
	}
	if !strings.Contains(msg, "venue_id must be positive") {
		t.Errorf("message %q should mention venue_id", msg)
	}

	empty := &RequestValidationError{}
	if empty.Error() != "validation failed" {
		t.Errorf("empty error message = %q", empty.Error())
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}
