package engine

import (
	"fmt"

	"staff-planner/internal/models"
)

// CapacityRow is one flat per-person/per-project line for on-screen tables
type CapacityRow struct {
	PersonName    string  `json:"person_name"`
	ProjectCode   string  `json:"project_code"`
	ProjectName   string  `json:"project_name"`
	EffectiveDays float64 `json:"effective_days"`
}

// FormatCapacityRows flattens a team summary into display rows, one per
// person/project pair, with a trailing availability row per person when any
// unassigned capacity remains.
func FormatCapacityRows(team *TeamCapacitySummary, projects []models.Project) []CapacityRow {
	byID := map[uint]models.Project{}
	for i := range projects {
		byID[projects[i].ID] = projects[i]
	}

	rows := []CapacityRow{}
	for _, person := range team.People {
		for _, alloc := range person.ByProject {
			p := byID[alloc.ProjectID]
			rows = append(rows, CapacityRow{
				PersonName:    person.PersonName,
				ProjectCode:   p.Code,
				ProjectName:   p.Name,
				EffectiveDays: alloc.EffectiveDays,
			})
		}
		if person.UnassignedDays > 0 {
			rows = append(rows, CapacityRow{
				PersonName:    person.PersonName,
				ProjectCode:   "-",
				ProjectName:   "Disponibilidad",
				EffectiveDays: person.UnassignedDays,
			})
		}
	}
	return rows
}

// ExportSheet is the wide week-bucketed structure handed to spreadsheet and
// PDF renderers: a header row plus one row of numbers per person, with one
// column group (one column per bucket) per week. Rendering is not done here.
type ExportSheet struct {
	Headers []string    `json:"headers"`
	Rows    [][]float64 `json:"rows"`
	Names   []string    `json:"names"` // row labels, parallel to Rows
}

// FormatWeeklyExport shapes a weekly staffing table for export collaborators
func FormatWeeklyExport(table *WeeklyStaffingTable) *ExportSheet {
	sheet := &ExportSheet{Headers: []string{}, Rows: [][]float64{}, Names: []string{}}

	for _, week := range table.Weeks {
		label := week.NominalStart.Format("02 Jan")
		for _, b := range StaffingBuckets {
			sheet.Headers = append(sheet.Headers, fmt.Sprintf("%s %s", label, b))
		}
	}

	for _, row := range table.Rows {
		values := []float64{}
		for _, cell := range row.Weeks {
			for _, b := range StaffingBuckets {
				values = append(values, cell.Buckets[b])
			}
		}
		sheet.Names = append(sheet.Names, row.PersonName)
		sheet.Rows = append(sheet.Rows, values)
	}

	return sheet
}
