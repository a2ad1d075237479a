package engine

import (
	"time"

	"staff-planner/internal/models"
)

// ProjectAllocation accumulates the fractional effective days a person spends
// on one project within the report range.
type ProjectAllocation struct {
	ProjectID     uint    `json:"project_id"`
	EffectiveDays float64 `json:"effective_days"`
}

type PersonCapacitySummary struct {
	PersonID       uint                `json:"person_id"`
	PersonName     string              `json:"person_name"`
	TotalDays      int                 `json:"total_days"`
	WeekendDays    int                 `json:"weekend_days"`
	HolidayDays    int                 `json:"holiday_days"` // non-weekend holidays only
	WorkDays       int                 `json:"work_days"`    // total - weekends; holidays stay in the base
	AssignedDays   float64             `json:"assigned_days"`
	UnassignedDays float64             `json:"unassigned_days"`
	ByProject      []ProjectAllocation `json:"by_project"`
}

type TeamCapacitySummary struct {
	People                   []PersonCapacitySummary `json:"people"`
	TotalDays                int                     `json:"total_days"`
	WeekendDays              int                     `json:"weekend_days"`
	HolidayDays              int                     `json:"holiday_days"`
	WorkDays                 int                     `json:"work_days"`
	AssignedDays             float64                 `json:"assigned_days"`
	UnassignedDays           float64                 `json:"unassigned_days"`
	AvailableCapacityPercent float64                 `json:"available_capacity_percent"`
}

// PersonCapacity aggregates one person's capacity over [start, end].
// Assignments are clipped to the range; only non-weekend, non-holiday days
// consume capacity, weighted by allocation percent.
func PersonCapacity(person models.Person, start, end time.Time, assignments []models.Assignment, holidays []models.Holiday) (*PersonCapacitySummary, error) {
	days, err := EnumerateDays(start, end)
	if err != nil {
		return nil, err
	}
	start, end = Day(start), Day(end)

	s := &PersonCapacitySummary{
		PersonID:   person.ID,
		PersonName: person.Name,
		TotalDays:  len(days),
		ByProject:  []ProjectAllocation{},
	}

	for _, d := range days {
		if IsWeekend(d) {
			s.WeekendDays++
		} else if IsHoliday(d, person.Region, holidays) {
			s.HolidayDays++
		}
	}
	s.WorkDays = s.TotalDays - s.WeekendDays

	byProject := map[uint]float64{}
	order := []uint{}

	for i := range assignments {
		a := assignments[i]
		if a.PersonID != person.ID || !a.Overlaps(start, end) {
			continue
		}

		from, to := Day(a.StartDate), Day(a.EndDate)
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}

		effective := 0.0
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if IsWeekend(d) || IsHoliday(d, person.Region, holidays) {
				continue
			}
			effective += float64(a.AllocationPercent) / 100.0
		}
		if effective == 0 {
			continue
		}

		if _, ok := byProject[a.ProjectID]; !ok {
			order = append(order, a.ProjectID)
		}
		byProject[a.ProjectID] += effective
		s.AssignedDays += effective
	}

	for _, id := range order {
		s.ByProject = append(s.ByProject, ProjectAllocation{ProjectID: id, EffectiveDays: byProject[id]})
	}

	s.UnassignedDays = float64(s.WorkDays-s.HolidayDays) - s.AssignedDays
	if s.UnassignedDays < 0 {
		s.UnassignedDays = 0
	}

	return s, nil
}

// TeamCapacity sums each per-person metric over the same range. The available
// percentage uses the holiday-adjusted work capacity as its base so the team
// view agrees with the per-person unassigned figures.
func TeamCapacity(people []models.Person, start, end time.Time, assignments []models.Assignment, holidays []models.Holiday) (*TeamCapacitySummary, error) {
	team := &TeamCapacitySummary{People: []PersonCapacitySummary{}}

	workCapacity := 0.0
	for i := range people {
		s, err := PersonCapacity(people[i], start, end, assignments, holidays)
		if err != nil {
			return nil, err
		}
		team.People = append(team.People, *s)
		team.TotalDays += s.TotalDays
		team.WeekendDays += s.WeekendDays
		team.HolidayDays += s.HolidayDays
		team.WorkDays += s.WorkDays
		team.AssignedDays += s.AssignedDays
		team.UnassignedDays += s.UnassignedDays
		workCapacity += float64(s.WorkDays - s.HolidayDays)
	}

	if workCapacity > 0 {
		team.AvailableCapacityPercent = team.UnassignedDays / workCapacity * 100
	}
	if team.AvailableCapacityPercent < 0 {
		team.AvailableCapacityPercent = 0
	}

	return team, nil
}

// StaffingBucket labels how a day's allocation is classified in the weekly
// staffing report.
type StaffingBucket string

const (
	BucketBillableProject StaffingBucket = "billable_project"
	BucketInternalProduct StaffingBucket = "internal_product"
	BucketAvailability    StaffingBucket = "availability"
	BucketManagement      StaffingBucket = "management"
	BucketSupport         StaffingBucket = "support"
	BucketOtherBillable   StaffingBucket = "other_billable"
	BucketUnavailable     StaffingBucket = "unavailable"
)

// StaffingBuckets is the fixed column order of a week group
var StaffingBuckets = []StaffingBucket{
	BucketBillableProject,
	BucketInternalProduct,
	BucketAvailability,
	BucketManagement,
	BucketSupport,
	BucketOtherBillable,
	BucketUnavailable,
}

// bucketForTipology maps a project classification to its report bucket
func bucketForTipology(tipology string) StaffingBucket {
	switch tipology {
	case models.TipologyInternalProduct:
		return BucketInternalProduct
	case models.TipologyAvailability:
		return BucketAvailability
	case models.TipologyManagement:
		return BucketManagement
	case models.TipologySupport:
		return BucketSupport
	case models.TipologyOtherBillable:
		return BucketOtherBillable
	default:
		return BucketBillableProject
	}
}

// WeekCell holds the fractional days per bucket for one person in one week
type WeekCell struct {
	Buckets map[StaffingBucket]float64 `json:"buckets"`
}

type WeeklyStaffingRow struct {
	PersonID   uint       `json:"person_id"`
	PersonName string     `json:"person_name"`
	Weeks      []WeekCell `json:"weeks"`
}

type WeeklyStaffingTable struct {
	Weeks []WeekWindow        `json:"weeks"`
	Rows  []WeeklyStaffingRow `json:"rows"`
}

// WeeklyStaffing partitions the range into Monday-aligned weeks and, for each
// person and week, classifies every day's allocation by the assigned
// project's tipology. Unassigned workday fractions fall into availability;
// weekend and holiday days fall into unavailable.
func WeeklyStaffing(people []models.Person, start, end time.Time, assignments []models.Assignment, holidays []models.Holiday, projects []models.Project) (*WeeklyStaffingTable, error) {
	weeks, err := WeeksInRange(start, end)
	if err != nil {
		return nil, err
	}

	tipologyByProject := map[uint]string{}
	for i := range projects {
		tipologyByProject[projects[i].ID] = projects[i].Tipology
	}

	table := &WeeklyStaffingTable{Weeks: weeks, Rows: []WeeklyStaffingRow{}}

	for pi := range people {
		person := people[pi]
		row := WeeklyStaffingRow{PersonID: person.ID, PersonName: person.Name, Weeks: []WeekCell{}}

		for _, week := range weeks {
			cell := WeekCell{Buckets: map[StaffingBucket]float64{}}
			for _, b := range StaffingBuckets {
				cell.Buckets[b] = 0
			}

			for d := week.Start; !d.After(week.End); d = d.AddDate(0, 0, 1) {
				if IsWeekend(d) || IsHoliday(d, person.Region, holidays) {
					cell.Buckets[BucketUnavailable]++
					continue
				}

				allocated := 0.0
				for i := range assignments {
					a := assignments[i]
					if a.PersonID != person.ID || !a.CoversDay(d) {
						continue
					}
					fraction := float64(a.AllocationPercent) / 100.0
					cell.Buckets[bucketForTipology(tipologyByProject[a.ProjectID])] += fraction
					allocated += fraction
				}
				if allocated < 1 {
					cell.Buckets[BucketAvailability] += 1 - allocated
				}
			}

			row.Weeks = append(row.Weeks, cell)
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
