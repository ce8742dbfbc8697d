// Package ledger computes the dashboard views of a wallet from its raw
// transaction rows. Every function is pure: rows in, aggregates out.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"twobolsos/internal/store"
)

const (
	// DefaultSeriesDays matches the dashboard's default window.
	DefaultSeriesDays = 7
	// MaxSeriesDays caps the caller-supplied window; the request would
	// otherwise allocate an unbounded number of buckets.
	MaxSeriesDays = 365

	breakdownWindowDays = 30
	dateLayout          = "2006-01-02"
	uncategorizedTag    = "Outros"
)

// KPIs are the wallet headline numbers. Monetary values are minor units;
// the ratio KPIs are rounded to two places and zero when their denominator
// is zero.
type KPIs struct {
	IncomeMinor     int64
	ExpenseMinor    int64
	BalanceMinor    int64
	TotalDistanceKM float64
	TotalFuelLiters float64
	FuelEfficiency  decimal.Decimal
	IncomePerKM     decimal.Decimal
}

func Summarize(transactions []store.Transaction) KPIs {
	var kpis KPIs
	for _, t := range transactions {
		switch t.Kind {
		case store.KindIncome:
			kpis.IncomeMinor += t.AmountMinor
		case store.KindExpense:
			kpis.ExpenseMinor += t.AmountMinor
		}
		kpis.TotalDistanceKM += t.DistanceKM
		kpis.TotalFuelLiters += t.FuelLiters
	}
	kpis.BalanceMinor = kpis.IncomeMinor - kpis.ExpenseMinor
	if kpis.TotalFuelLiters > 0 {
		kpis.FuelEfficiency = decimal.NewFromFloat(kpis.TotalDistanceKM).
			DivRound(decimal.NewFromFloat(kpis.TotalFuelLiters), 2)
	}
	if kpis.TotalDistanceKM > 0 {
		kpis.IncomePerKM = decimal.New(kpis.BalanceMinor, -2).
			DivRound(decimal.NewFromFloat(kpis.TotalDistanceKM), 2)
	}
	return kpis
}

// Series holds one bucket per calendar day, oldest first.
type Series struct {
	Labels       []string
	IncomeMinor  []int64
	ExpenseMinor []int64
}

// ClampSeriesDays normalizes the caller-supplied window size.
func ClampSeriesDays(days int) int {
	if days < 1 {
		return DefaultSeriesDays
	}
	if days > MaxSeriesDays {
		return MaxSeriesDays
	}
	return days
}

// DailySeries buckets the transactions over the last days calendar days
// ending at today (inclusive). Labels are day/month, e.g. "26/12".
func DailySeries(transactions []store.Transaction, days int, today time.Time) Series {
	series := Series{
		Labels:       make([]string, 0, days),
		IncomeMinor:  make([]int64, 0, days),
		ExpenseMinor: make([]int64, 0, days),
	}
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		iso := day.Format(dateLayout)
		var income, expense int64
		for _, t := range transactions {
			if t.Date != iso {
				continue
			}
			switch t.Kind {
			case store.KindIncome:
				income += t.AmountMinor
			case store.KindExpense:
				expense += t.AmountMinor
			}
		}
		series.Labels = append(series.Labels, day.Format("02/01"))
		series.IncomeMinor = append(series.IncomeMinor, income)
		series.ExpenseMinor = append(series.ExpenseMinor, expense)
	}
	return series
}

// CategoryTotals sums expenses of the last 30 days per tag. Rows without a
// tag fall into "Outros".
func CategoryTotals(transactions []store.Transaction, today time.Time) map[string]int64 {
	since := today.AddDate(0, 0, -breakdownWindowDays).Format(dateLayout)
	totals := make(map[string]int64)
	for _, t := range transactions {
		if t.Kind != store.KindExpense || t.Date < since {
			continue
		}
		tag := t.Tag
		if tag == "" {
			tag = uncategorizedTag
		}
		totals[tag] += t.AmountMinor
	}
	return totals
}

// PaidInMonth reports whether any of the payment rows falls inside the
// calendar month of today. Rows with unparseable dates are skipped.
func PaidInMonth(payments []store.Transaction, today time.Time) bool {
	for _, p := range payments {
		day, err := time.Parse(dateLayout, p.Date)
		if err != nil {
			continue
		}
		if day.Month() == today.Month() && day.Year() == today.Year() {
			return true
		}
	}
	return false
}

// FirstOfMonth returns the ISO date of the first day of today's month.
func FirstOfMonth(today time.Time) string {
	return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).Format(dateLayout)
}
