package join

import (
	"testing"

	"github.com/cherryclub/campus-api/utils/validation"
)

func validRequest() NewJoinRequest {
	return NewJoinRequest{
		Name:         "김체리",
		Phone:        "010-1234-5678",
		Password:     "secret-pass",
		UniversityID: 1,
	}
}

func TestNewJoinRequestValidation(t *testing.T) {
	v := validation.NewValidator()

	if err := v.ValidateStruct(validRequest()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*NewJoinRequest)
	}{
		{"missing name", func(r *NewJoinRequest) { r.Name = "" }},
		{"missing phone", func(r *NewJoinRequest) { r.Phone = "" }},
		{"missing password", func(r *NewJoinRequest) { r.Password = "" }},
		{"short password", func(r *NewJoinRequest) { r.Password = "short" }},
		{"missing university", func(r *NewJoinRequest) { r.UniversityID = 0 }},
		{"bad gender value", func(r *NewJoinRequest) { r.Gender = "other" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			if err := v.ValidateStruct(req); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
