package calendarfile

import (
	"strings"
	"testing"
	"time"
)

const sampleDoc = `{
  "country": "ES",
  "year": 2024,
  "holidays": [
    {"date": "2024-01-01", "description": "Año Nuevo", "region": "NACIONAL"},
    {"date": "2024-04-23", "description": "Sant Jordi", "region": "Cataluña"},
    {"date": "2024-12-25", "description": "Navidad", "region": ""}
  ]
}`

func TestParse(t *testing.T) {
	cal, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cal.Country != "ES" || cal.Year != 2024 {
		t.Errorf("header = %s/%d, want ES/2024", cal.Country, cal.Year)
	}
	if len(cal.Holidays) != 3 {
		t.Fatalf("parsed %d holidays, want 3", len(cal.Holidays))
	}

	first := cal.Holidays[0]
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(want) {
		t.Errorf("first date = %v, want %v", first.Date, want)
	}
	if first.Description != "Año Nuevo" || first.Region != "NACIONAL" {
		t.Errorf("first entry = %+v", first)
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "nope"},
		{name: "missing country", doc: `{"year": 2024, "holidays": []}`},
		{name: "missing year", doc: `{"country": "ES", "holidays": []}`},
		{
			name: "bad date",
			doc:  `{"country": "ES", "year": 2024, "holidays": [{"date": "01/01/2024", "description": "x"}]}`,
		},
		{
			name: "wrong year",
			doc:  `{"country": "ES", "year": 2024, "holidays": [{"date": "2023-01-01", "description": "x"}]}`,
		},
		{
			name: "missing description",
			doc:  `{"country": "ES", "year": 2024, "holidays": [{"date": "2024-01-01"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.doc)); err == nil {
				t.Error("Parse() should reject the document")
			}
		})
	}
}
