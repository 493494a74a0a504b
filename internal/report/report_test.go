package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func expense(t *testing.T, date, amount, category, desc string) model.Expense {
	t.Helper()
	e, err := model.New(date, dec(amount), category, desc)
	require.NoError(t, err)
	return e
}

func sampleLedger(t *testing.T) []model.Expense {
	t.Helper()
	return []model.Expense{
		expense(t, "2024-05-01", "12.50", "Food", "grocery run"),
		expense(t, "2024-05-03", "3.20", "Transport", "bus fare"),
		expense(t, "2024-05-20", "40.00", "Food", "dinner out"),
		expense(t, "2024-06-02", "55.00", "Bills", "electricity"),
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	ledger := sampleLedger(t)

	got := Search(ledger, "GROCERY")
	require.Len(t, got, 1)
	assert.Equal(t, "grocery run", got[0].Description)
}

func TestSearch_EmptyKeywordMatchesAll(t *testing.T) {
	ledger := sampleLedger(t)

	got := Search(ledger, "")
	require.Len(t, got, len(ledger))
	for i := range ledger {
		assert.Equal(t, ledger[i].Description, got[i].Description, "order preserved")
	}
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Search(sampleLedger(t), "unicorn"))
}

func TestMonthlyTotal(t *testing.T) {
	ledger := sampleLedger(t)

	assert.True(t, MonthlyTotal(ledger, "2024-05").Equal(dec("55.70")))
	assert.True(t, MonthlyTotal(ledger, "2024-06").Equal(dec("55.00")))
	assert.True(t, MonthlyTotal(ledger, "2024-07").IsZero(), "empty month totals zero")
	assert.True(t, MonthlyTotal(nil, "2024-05").IsZero())
}

func TestCategoryBreakdown_FirstEncounterOrder(t *testing.T) {
	ledger := sampleLedger(t)

	got := CategoryBreakdown(ledger)
	require.Len(t, got, 3)

	assert.Equal(t, model.CategoryFood, got[0].Category)
	assert.True(t, got[0].Total.Equal(dec("52.50")))
	assert.Equal(t, model.CategoryTransport, got[1].Category)
	assert.True(t, got[1].Total.Equal(dec("3.20")))
	assert.Equal(t, model.CategoryBills, got[2].Category)
	assert.True(t, got[2].Total.Equal(dec("55.00")))
}

func TestCategoryBreakdown_SumsToGrandTotal(t *testing.T) {
	ledger := sampleLedger(t)

	sum := decimal.Zero
	for _, row := range CategoryBreakdown(ledger) {
		sum = sum.Add(row.Total)
	}

	st, err := Statistics(ledger)
	require.NoError(t, err)
	assert.True(t, sum.Equal(st.Total))
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
}

func TestStatistics(t *testing.T) {
	ledger := []model.Expense{
		expense(t, "2024-05-01", "10.0", "Food", "a"),
		expense(t, "2024-05-02", "20.0", "Bills", "b"),
		expense(t, "2024-05-03", "30.0", "Other", "c"),
	}

	st, err := Statistics(ledger)
	require.NoError(t, err)

	assert.True(t, st.Total.Equal(dec("60.0")))
	assert.True(t, st.Max.Equal(dec("30.0")))
	assert.True(t, st.Min.Equal(dec("10.0")))
	assert.True(t, st.Mean.Equal(dec("20.0")))
}

func TestStatistics_FractionalMean(t *testing.T) {
	ledger := []model.Expense{
		expense(t, "2024-05-01", "10.00", "Food", "a"),
		expense(t, "2024-05-02", "10.00", "Food", "b"),
		expense(t, "2024-05-03", "5.00", "Food", "c"),
	}

	st, err := Statistics(ledger)
	require.NoError(t, err)
	assert.True(t, st.Mean.Equal(dec("8.3333333333333333")), "mean uses true division, got %s", st.Mean)
}

func TestStatistics_Empty(t *testing.T) {
	_, err := Statistics(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyLedger)
}
