package hours

// DaysBreakdown counts every calendar day of a month into exactly one
// bucket. The Spanish field names match the payload the web client renders.
type DaysBreakdown struct {
	Laborables    int `json:"laborables"`
	Festivos      int `json:"festivos"`
	FinesDeSemana int `json:"finesDeSemana"`
}

// MonthlyCalculation is the derived reconciliation result for one month.
// It is recomputed on request and never persisted.
type MonthlyCalculation struct {
	Month                int           `json:"month"`
	Year                 int           `json:"year"`
	TotalCalculatedHours float64       `json:"totalCalculatedHours"`
	AssignedHours        float64       `json:"assignedHours"`
	Difference           float64       `json:"difference"`
	DaysBreakdown        DaysBreakdown `json:"daysBreakdown"`
	VarianceLabel        string        `json:"varianceLabel"`
}
