// Package stats computes the recruiting dashboard figures from a board
package stats

import (
	"sort"

	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// ColumnCount is the number of candidates in one stage
type ColumnCount struct {
	ColumnID string `json:"columnId"`
	Title    string `json:"title"`
	Count    int    `json:"count"`
}

// FunnelStep is the share of active candidates that reached a stage
type FunnelStep struct {
	ColumnID string  `json:"columnId"`
	Reached  int     `json:"reached"`
	Rate     float64 `json:"rate"`
}

// Summary holds every figure shown on the statistics dashboard
type Summary struct {
	Total         int                     `json:"total"`
	Active        int                     `json:"active"`
	Hired         int                     `json:"hired"`
	Rejected      int                     `json:"rejected"`
	AverageSalary float64                 `json:"averageSalary"`
	ByColumn      []ColumnCount           `json:"byColumn"`
	ByPriority    map[models.Priority]int `json:"byPriority"`
	ByDepartment  map[string]int          `json:"byDepartment"`
	Funnel        []FunnelStep            `json:"funnel"`
}

// Summarize computes the dashboard summary of a board.
// Rejected candidates are excluded from the funnel.
func Summarize(b *pipeline.Board) Summary {
	s := Summary{
		ByPriority:   make(map[models.Priority]int, len(models.Priorities)),
		ByDepartment: make(map[string]int),
	}
	for _, p := range models.Priorities {
		s.ByPriority[p] = 0
	}

	var salarySum float64
	var salaryCount int
	reachedAt := make([]int, 0, len(b.ColumnIDs()))

	for _, col := range b.Columns() {
		s.ByColumn = append(s.ByColumn, ColumnCount{ColumnID: col.ID, Title: col.Title, Count: len(col.Items)})
		s.Total += len(col.Items)

		switch col.ID {
		case models.StageContratado:
			s.Hired += len(col.Items)
		case models.StageDescartado:
			s.Rejected += len(col.Items)
		}

		for _, item := range col.Items {
			s.ByPriority[item.Priority]++
			dept := item.Department
			if dept == "" {
				dept = "Sin departamento"
			}
			s.ByDepartment[dept]++
			if item.Salary > 0 {
				salarySum += item.Salary
				salaryCount++
			}
		}

		if col.ID != models.StageDescartado {
			reachedAt = append(reachedAt, len(col.Items))
		}
	}

	s.Active = s.Total - s.Rejected
	if salaryCount > 0 {
		s.AverageSalary = salarySum / float64(salaryCount)
	}
	s.Funnel = funnel(b, reachedAt, s.Active)
	return s
}

// funnel turns per-stage counts into "reached at least this stage" counts
func funnel(b *pipeline.Board, counts []int, active int) []FunnelStep {
	ids := make([]string, 0, len(counts))
	for _, id := range b.ColumnIDs() {
		if id != models.StageDescartado {
			ids = append(ids, id)
		}
	}

	steps := make([]FunnelStep, len(counts))
	reached := 0
	for i := len(counts) - 1; i >= 0; i-- {
		reached += counts[i]
		step := FunnelStep{ColumnID: ids[i], Reached: reached}
		if active > 0 {
			step.Rate = float64(reached) / float64(active)
		}
		steps[i] = step
	}
	return steps
}

// TopDepartments returns department names ordered by candidate count
func (s Summary) TopDepartments() []string {
	names := make([]string, 0, len(s.ByDepartment))
	for name := range s.ByDepartment {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.ByDepartment[names[i]] != s.ByDepartment[names[j]] {
			return s.ByDepartment[names[i]] > s.ByDepartment[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
