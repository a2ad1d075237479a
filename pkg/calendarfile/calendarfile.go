// Package calendarfile parses holiday-calendar JSON documents used for bulk
// holiday import. A document covers one country and one year:
//
//	{
//	  "country": "ES",
//	  "year": 2024,
//	  "holidays": [
//	    {"date": "2024-01-01", "description": "Año Nuevo", "region": "NACIONAL"},
//	    {"date": "2024-04-23", "description": "Sant Jordi", "region": "Cataluña"}
//	  ]
//	}
package calendarfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type calendarJSON struct {
	Country  string      `json:"country"`
	Year     int         `json:"year"`
	Holidays []entryJSON `json:"holidays"`
}

type entryJSON struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Region      string `json:"region"`
}

// Entry is one parsed holiday
type Entry struct {
	Date        time.Time
	Description string
	Region      string
}

// Calendar is a parsed holiday-calendar document
type Calendar struct {
	Country  string
	Year     int
	Holidays []Entry
}

// Parse reads and validates a holiday-calendar JSON document
func Parse(r io.Reader) (*Calendar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar document: %w", err)
	}

	var doc calendarJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal calendar JSON: %w", err)
	}

	if doc.Country == "" {
		return nil, fmt.Errorf("calendar document is missing the country")
	}
	if doc.Year == 0 {
		return nil, fmt.Errorf("calendar document is missing the year")
	}

	cal := &Calendar{Country: doc.Country, Year: doc.Year, Holidays: []Entry{}}

	for i, e := range doc.Holidays {
		if e.Description == "" {
			return nil, fmt.Errorf("holiday %d has no description", i)
		}

		date, err := time.ParseInLocation("2006-01-02", e.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date %q of holiday %q: %w", e.Date, e.Description, err)
		}
		if date.Year() != doc.Year {
			return nil, fmt.Errorf("holiday %q falls in %d, document covers %d", e.Description, date.Year(), doc.Year)
		}

		cal.Holidays = append(cal.Holidays, Entry{
			Date:        date,
			Description: e.Description,
			Region:      e.Region,
		})
	}

	return cal, nil
}

// ParseFile parses a holiday-calendar document from disk
func ParseFile(path string) (*Calendar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
