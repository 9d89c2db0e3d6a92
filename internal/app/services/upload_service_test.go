package services

import (
	"strings"
	"testing"
	"time"
)

func TestMapDepartmentRows(t *testing.T) {
	records := [][]string{
		{"1", "Supply Chain"},
		{"2", "Maintenance"},
		{"", ""},
		{"x", "Accounting"},
		{"4", ""},
		{"5", "Staff", "extra"},
	}

	departments, failures := mapDepartmentRows(records)

	if len(departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(departments))
	}
	if departments[0].ID != 1 || departments[0].Name != "Supply Chain" {
		t.Errorf("unexpected first department: %+v", departments[0])
	}

	if len(failures) != 3 {
		t.Fatalf("expected 3 failures, got %d: %v", len(failures), failures)
	}
	if failures[0].Row != 4 || !strings.Contains(failures[0].Reason, "invalid id") {
		t.Errorf("unexpected failure for bad id: %+v", failures[0])
	}
	if failures[1].Row != 5 || !strings.Contains(failures[1].Reason, "name cannot be empty") {
		t.Errorf("unexpected failure for empty name: %+v", failures[1])
	}
	if failures[2].Row != 6 || !strings.Contains(failures[2].Reason, "expected 2 columns, got 3") {
		t.Errorf("unexpected failure for wrong shape: %+v", failures[2])
	}
}

func TestMapJobRows(t *testing.T) {
	records := [][]string{
		{"1", "Recruiter"},
		{"2", "Manager"},
		{"-3", "Analyst"},
	}

	jobs, failures := mapJobRows(records)

	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[1].ID != 2 || jobs[1].Title != "Manager" {
		t.Errorf("unexpected second job: %+v", jobs[1])
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if failures[0].Row != 3 {
		t.Errorf("expected failure on row 3, got %d", failures[0].Row)
	}
}

func TestParseEmployeeRowComplete(t *testing.T) {
	employee, failure := parseEmployeeRow([]string{"4535", "Marcelo Gonzalez", "2021-07-27T16:02:08Z", "1", "2"}, 1)
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}

	if employee.ID != 4535 {
		t.Errorf("expected id 4535, got %d", employee.ID)
	}
	if employee.Name == nil || *employee.Name != "Marcelo Gonzalez" {
		t.Errorf("unexpected name: %v", employee.Name)
	}
	want := time.Date(2021, 7, 27, 16, 2, 8, 0, time.UTC)
	if employee.HireDatetime == nil || !employee.HireDatetime.Equal(want) {
		t.Errorf("unexpected hire timestamp: %v", employee.HireDatetime)
	}
	if employee.DepartmentID == nil || *employee.DepartmentID != 1 {
		t.Errorf("unexpected department id: %v", employee.DepartmentID)
	}
	if employee.JobID == nil || *employee.JobID != 2 {
		t.Errorf("unexpected job id: %v", employee.JobID)
	}
}

func TestParseEmployeeRowOptionalFields(t *testing.T) {
	employee, failure := parseEmployeeRow([]string{"4572", "", "", "", ""}, 1)
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}

	if employee.Name != nil {
		t.Errorf("expected nil name, got %v", *employee.Name)
	}
	if employee.HireDatetime != nil {
		t.Errorf("expected nil hire timestamp, got %v", *employee.HireDatetime)
	}
	if employee.DepartmentID != nil || employee.JobID != nil {
		t.Errorf("expected nil references, got %v / %v", employee.DepartmentID, employee.JobID)
	}
}

func TestParseEmployeeRowFailures(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		reason string
	}{
		{"wrong shape", []string{"1", "a", "b"}, "expected 5 columns"},
		{"bad id", []string{"zero", "a", "", "", ""}, "invalid id"},
		{"bad timestamp", []string{"1", "a", "yesterday", "", ""}, "invalid hire timestamp"},
		{"bad department reference", []string{"1", "a", "", "abc", ""}, "invalid department_id"},
		{"bad job reference", []string{"1", "a", "", "1", "-9"}, "invalid job_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee, failure := parseEmployeeRow(tt.row, 7)
			if employee != nil {
				t.Fatalf("expected nil employee, got %+v", employee)
			}
			if failure == nil {
				t.Fatal("expected a row failure")
			}
			if failure.Row != 7 {
				t.Errorf("expected row 7, got %d", failure.Row)
			}
			if !strings.Contains(failure.Reason, tt.reason) {
				t.Errorf("reason %q does not mention %q", failure.Reason, tt.reason)
			}
		})
	}
}

func TestParseRowIDCleansCells(t *testing.T) {
	id, err := parseRowID(`="42"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected 42, got %d", id)
	}
}

func TestParseOptionalID(t *testing.T) {
	if got, err := parseOptionalID("", "department_id"); err != nil || got != nil {
		t.Errorf("expected nil for blank cell, got %v, %v", got, err)
	}

	got, err := parseOptionalID(" 12 ", "department_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != 12 {
		t.Errorf("expected 12, got %v", got)
	}

	if _, err := parseOptionalID("12.5", "job_id"); err == nil {
		t.Error("expected error for non-integer cell")
	}
}
