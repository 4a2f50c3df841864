package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFallbackIsValid(t *testing.T) {
	doc := Fallback()
	if err := doc.Validate(); err != nil {
		t.Fatalf("fallback document invalid: %v", err)
	}
	if doc.Brand.Name == "" || doc.Contact.Phone == "" {
		t.Error("fallback is missing required display fields")
	}
	if len(doc.ServiceAreas) == 0 || len(doc.SearchPlaceholders) == 0 {
		t.Error("fallback lists must be non-empty")
	}
}

func TestFallbackJSONKeys(t *testing.T) {
	data, err := json.Marshal(Fallback())
	if err != nil {
		t.Fatal(err)
	}
	// The wire shape the site and admin panel agree on.
	for _, key := range []string{
		`"brand"`, `"contact"`, `"serviceAreas"`, `"services"`,
		`"reviews"`, `"faqs"`, `"searchPlaceholders"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled document missing %s", key)
		}
	}
}

func TestServiceValidation(t *testing.T) {
	if err := (Service{ID: "ac-repair", Title: "Repair"}).Validate(); err != nil {
		t.Errorf("minimal service rejected: %v", err)
	}
	if err := (Service{Title: "Repair"}).Validate(); err == nil {
		t.Error("service without id accepted")
	}
	if err := (Service{ID: "ac-repair"}).Validate(); err == nil {
		t.Error("service without title accepted")
	}
}

func TestFAQValidation(t *testing.T) {
	if err := (FAQ{Question: "q", Answer: "a"}).Validate(); err != nil {
		t.Errorf("valid FAQ rejected: %v", err)
	}
	if err := (FAQ{Question: "q"}).Validate(); err == nil {
		t.Error("FAQ without answer accepted")
	}
}

func TestReviewValidation(t *testing.T) {
	if err := (Review{Name: "Asha", Text: "Great service"}).Validate(); err != nil {
		t.Errorf("valid review rejected: %v", err)
	}
	if err := (Review{Location: "Delhi"}).Validate(); err == nil {
		t.Error("review without name and text accepted")
	}
}
