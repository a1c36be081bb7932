package utils

import (
	"errors"
	"reflect"
	"testing"

	"travelapi/internal/domain"
)

func TestSplitCommaList(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"a.jpg,b.jpg", []string{"a.jpg", "b.jpg"}},
		{" c.jpg , a.jpg ,, b.jpg", []string{"c.jpg", "a.jpg", "b.jpg"}},
		{"", []string{}},
	}
	for _, tc := range cases {
		if got := SplitCommaList(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitCommaList(%q) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
	if got := JoinCommaList([]string{" a.jpg", "", "b.jpg "}); got != "a.jpg,b.jpg" {
		t.Fatalf("JoinCommaList = %q", got)
	}
}

func TestRedactEmail(t *testing.T) {
	if got := RedactEmail("john.doe@example.com"); got != "jo***@example.com" {
		t.Fatalf("got %q", got)
	}
	if got := RedactEmail("ab@example.com"); got != "***@example.com" {
		t.Fatalf("got %q", got)
	}
	if got := RedactEmail("broken"); got != "***@***" {
		t.Fatalf("got %q", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	for _, ok := range []string{"ana@example.com", "first.last+tag@sub.example.org"} {
		if !IsValidEmail(ok) {
			t.Fatalf("%q should be valid", ok)
		}
	}
	for _, bad := range []string{"", "not-an-email", "a@", "@example.com", "a b@example.com"} {
		if IsValidEmail(bad) {
			t.Fatalf("%q should be invalid", bad)
		}
	}
}

type sampleRequest struct {
	Name  string  `json:"name" validate:"required"`
	Score float64 `json:"score" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
}

func TestValidateRequest(t *testing.T) {
	if err := ValidateRequest(sampleRequest{Name: "Ana", Score: 1, Email: "ana@example.com"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	err := ValidateRequest(sampleRequest{Name: "Ana", Email: "not-an-email"})
	var ve domain.ValidationError
	if !errors.As(err, &ve) || ve.Msg != MsgMissingFields || ve.Field != "score" {
		t.Fatalf("missing field should win, got %#v", err)
	}

	err = ValidateRequest(sampleRequest{Name: "Ana", Score: 2, Email: "not-an-email"})
	if !errors.As(err, &ve) || ve.Msg != MsgInvalidEmail || ve.Field != "email" {
		t.Fatalf("expected invalid email, got %#v", err)
	}
}
