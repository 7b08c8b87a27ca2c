package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Role string `binding:"omitempty,role"`
	Date string `binding:"omitempty,iso_date"`
}

func TestRegister(t *testing.T) {
	Register()

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"valid", sample{Role: "Husband", Date: "2024-01-31"}, false},
		{"empty", sample{}, false},
		{"unknown role", sample{Role: "Guest"}, true},
		{"lowercase role", sample{Role: "wife"}, true},
		{"bad date", sample{Date: "31/01/2024"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
