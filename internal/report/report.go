package report

import (
	"github.com/Dan9191/loan-dataset/internal/derive"
	"github.com/Dan9191/loan-dataset/internal/models"
)

// GroupRate is the default rate within one group of loans
type GroupRate struct {
	Group    string  `json:"group"`
	Loans    int     `json:"loans"`
	Defaults int     `json:"defaults"`
	Rate     float64 `json:"rate"`
}

// Summary describes the outcome mix of a golden table
type Summary struct {
	Rows        int         `json:"rows"`
	Defaults    int         `json:"defaults"`
	DefaultRate float64     `json:"default_rate"`
	ByGrade     []GroupRate `json:"by_grade"`
	ByDTI       []GroupRate `json:"by_dti_category"`
}

// Summarize computes default rates overall, per grade (A..G) and per DTI category
func Summarize(rows []models.DerivedRecord) Summary {
	grades := make([]string, len(models.Grades))
	for i, g := range models.Grades {
		grades[i] = string(g)
	}
	byGrade := newGroups(grades)
	byDTI := newGroups(derive.DTIBins.Labels)

	s := Summary{Rows: len(rows)}
	for _, d := range rows {
		isDefault := d.Loan.LoanStatus == models.LoanStatusDefault
		if isDefault {
			s.Defaults++
		}
		byGrade.add(string(d.Loan.Grade), isDefault)
		byDTI.add(d.DTICategory, isDefault)
	}
	s.DefaultRate = rate(s.Defaults, s.Rows)
	s.ByGrade = byGrade.rates()
	s.ByDTI = byDTI.rates()
	return s
}

type groups struct {
	order []string
	index map[string]int
	stats []GroupRate
}

func newGroups(order []string) *groups {
	g := &groups{order: order, index: make(map[string]int, len(order)), stats: make([]GroupRate, len(order))}
	for i, name := range order {
		g.index[name] = i
		g.stats[i].Group = name
	}
	return g
}

func (g *groups) add(name string, isDefault bool) {
	i, ok := g.index[name]
	if !ok {
		return
	}
	g.stats[i].Loans++
	if isDefault {
		g.stats[i].Defaults++
	}
}

func (g *groups) rates() []GroupRate {
	for i := range g.stats {
		g.stats[i].Rate = rate(g.stats[i].Defaults, g.stats[i].Loans)
	}
	return g.stats
}

func rate(defaults, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(defaults) / float64(total)
}
