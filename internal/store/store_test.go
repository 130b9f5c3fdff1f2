package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCompanyRoundtrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateCompany("Ekinci Elektrik A.Ş.", "electrical")
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	c, err := s.GetCompany(id)
	if err != nil {
		t.Fatalf("GetCompany: %v", err)
	}
	if c.Name != "Ekinci Elektrik A.Ş." || c.Sector != "electrical" {
		t.Fatalf("company = %+v", c)
	}

	list, err := s.ListCompanies()
	if err != nil {
		t.Fatalf("ListCompanies: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("companies = %d, want 1", len(list))
	}

	if _, err := s.GetCompany(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing company err = %v, want ErrNotFound", err)
	}
}

func TestAnalysisRoundtrip(t *testing.T) {
	s := newTestStore(t)

	companyID, err := s.CreateCompany("Test", "defense")
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}
	if err := s.CreateUpload("u-1", companyID, "mizan.xlsx", "/tmp/u-1.xlsx"); err != nil {
		t.Fatalf("CreateUpload: %v", err)
	}
	if err := s.CreateAnalysis("a-1", companyID, "u-1", `{"bullets":[]}`); err != nil {
		t.Fatalf("CreateAnalysis: %v", err)
	}

	a, err := s.GetAnalysis("a-1")
	if err != nil {
		t.Fatalf("GetAnalysis: %v", err)
	}
	if a.CompanyID != companyID || a.UploadID != "u-1" {
		t.Fatalf("analysis = %+v", a)
	}

	list, err := s.ListAnalyses(companyID)
	if err != nil {
		t.Fatalf("ListAnalyses: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("analyses = %d, want 1", len(list))
	}

	if _, err := s.GetAnalysis("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing analysis err = %v, want ErrNotFound", err)
	}
}
