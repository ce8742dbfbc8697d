package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"twobolsos/internal/store"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSummarizeBalance(t *testing.T) {
	transactions := []store.Transaction{
		{Kind: store.KindIncome, AmountMinor: 100000, Date: "2024-12-01"},
		{Kind: store.KindExpense, AmountMinor: 30000, Date: "2024-12-02", Tag: "Aluguel"},
	}
	kpis := Summarize(transactions)
	assert.Equal(t, int64(100000), kpis.IncomeMinor)
	assert.Equal(t, int64(30000), kpis.ExpenseMinor)
	assert.Equal(t, int64(70000), kpis.BalanceMinor)
	assert.Equal(t, kpis.IncomeMinor-kpis.ExpenseMinor, kpis.BalanceMinor)
}

func TestSummarizeRatiosZeroDenominators(t *testing.T) {
	kpis := Summarize([]store.Transaction{
		{Kind: store.KindIncome, AmountMinor: 5000, Date: "2024-12-01"},
	})
	assert.True(t, kpis.FuelEfficiency.IsZero(), "no fuel means zero efficiency")
	assert.True(t, kpis.IncomePerKM.IsZero(), "no distance means zero income per km")
}

func TestSummarizeDriverRatios(t *testing.T) {
	kpis := Summarize([]store.Transaction{
		{Kind: store.KindIncome, AmountMinor: 20000, Date: "2024-12-01", DistanceKM: 100},
		{Kind: store.KindExpense, AmountMinor: 10000, Date: "2024-12-01", DistanceKM: 100, FuelLiters: 25},
	})
	assert.Equal(t, float64(200), kpis.TotalDistanceKM)
	assert.Equal(t, float64(25), kpis.TotalFuelLiters)
	// 200 km / 25 l = 8 km/l
	assert.Equal(t, "8", kpis.FuelEfficiency.String())
	// balance 100.00 over 200 km = 0.50 per km
	assert.Equal(t, "0.5", kpis.IncomePerKM.String())
}

func TestDailySeriesBucketsOldestFirst(t *testing.T) {
	today := date("2024-12-26")
	transactions := []store.Transaction{
		{Kind: store.KindIncome, AmountMinor: 1500, Date: "2024-12-26"},
		{Kind: store.KindExpense, AmountMinor: 500, Date: "2024-12-25"},
		{Kind: store.KindIncome, AmountMinor: 9999, Date: "2024-12-10"}, // outside window
	}
	series := DailySeries(transactions, 3, today)
	assert.Equal(t, []string{"24/12", "25/12", "26/12"}, series.Labels)
	assert.Equal(t, []int64{0, 0, 1500}, series.IncomeMinor)
	assert.Equal(t, []int64{0, 500, 0}, series.ExpenseMinor)
}

func TestDailySeriesUnorderedInput(t *testing.T) {
	today := date("2024-12-26")
	transactions := []store.Transaction{
		{Kind: store.KindIncome, AmountMinor: 200, Date: "2024-12-26"},
		{Kind: store.KindIncome, AmountMinor: 100, Date: "2024-12-24"},
		{Kind: store.KindIncome, AmountMinor: 300, Date: "2024-12-26"},
	}
	series := DailySeries(transactions, 3, today)
	assert.Equal(t, []int64{100, 0, 500}, series.IncomeMinor)
}

func TestClampSeriesDays(t *testing.T) {
	assert.Equal(t, DefaultSeriesDays, ClampSeriesDays(0))
	assert.Equal(t, DefaultSeriesDays, ClampSeriesDays(-5))
	assert.Equal(t, 30, ClampSeriesDays(30))
	assert.Equal(t, MaxSeriesDays, ClampSeriesDays(10000))
}

func TestCategoryTotals(t *testing.T) {
	today := date("2024-12-26")
	transactions := []store.Transaction{
		{Kind: store.KindExpense, AmountMinor: 30000, Date: "2024-12-02", Tag: "Aluguel"},
		{Kind: store.KindExpense, AmountMinor: 4500, Date: "2024-12-20", Tag: ""},
		{Kind: store.KindExpense, AmountMinor: 7000, Date: "2024-10-01", Tag: "Aluguel"}, // too old
		{Kind: store.KindIncome, AmountMinor: 100000, Date: "2024-12-01", Tag: "Salario"},
	}
	totals := CategoryTotals(transactions, today)
	assert.Equal(t, map[string]int64{
		"Aluguel": 30000,
		"Outros":  4500,
	}, totals)
}

func TestCategoryTotalsInclusiveLowerBound(t *testing.T) {
	today := date("2024-12-31")
	transactions := []store.Transaction{
		{Kind: store.KindExpense, AmountMinor: 100, Date: "2024-12-01", Tag: "Conta"},
	}
	totals := CategoryTotals(transactions, today)
	assert.Equal(t, int64(100), totals["Conta"])
}

func TestPaidInMonth(t *testing.T) {
	today := date("2024-12-15")
	assert.False(t, PaidInMonth(nil, today))
	assert.False(t, PaidInMonth([]store.Transaction{{Date: "2024-11-30"}}, today))
	assert.False(t, PaidInMonth([]store.Transaction{{Date: "2023-12-15"}}, today), "same month of another year does not count")
	assert.True(t, PaidInMonth([]store.Transaction{{Date: "2024-12-01"}}, today))
	assert.False(t, PaidInMonth([]store.Transaction{{Date: "not-a-date"}}, today))
}

func TestFirstOfMonth(t *testing.T) {
	assert.Equal(t, "2024-12-01", FirstOfMonth(date("2024-12-15")))
	assert.Equal(t, "2024-02-01", FirstOfMonth(date("2024-02-29")))
}
