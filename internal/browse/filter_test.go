package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	schema := employeeSchema()
	records := []employee{
		{ID: "e1", Name: "Alice Moore"},
		{ID: "e2", Name: "Bob Mooney"},
		{ID: "e3", Name: "Carol Smith"},
	}

	got := schema.Filter(records, Criteria{"name": {Value: "moo"}})
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e2", got[1].ID)
}

func TestFilterEnumExactMatch(t *testing.T) {
	schema := employeeSchema()
	records := []employee{
		{ID: "e1", Department: "Sales"},
		{ID: "e2", Department: "Salesforce Ops"},
	}

	got := schema.Filter(records, Criteria{"department": {Value: "Sales"}})
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestFilterNumberExact(t *testing.T) {
	schema := employeeSchema()
	records := []employee{
		{ID: "e1", Salary: 3000},
		{ID: "e2", Salary: 3025},
	}

	got := schema.Filter(records, Criteria{"salary": {Value: "3025"}})
	require.Len(t, got, 1)
	assert.Equal(t, "e2", got[0].ID)
}

func TestFilterDateRangeInclusive(t *testing.T) {
	schema := employeeSchema()
	records := []employee{
		{ID: "e1", JoinedAt: day("2021-01-01")},
		{ID: "e2", JoinedAt: day("2021-06-15")},
		{ID: "e3", JoinedAt: day("2021-12-31")},
	}

	got := schema.Filter(records, Criteria{"joinedAt": {From: "2021-06-15", To: "2021-12-31"}})
	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[0].ID)
	assert.Equal(t, "e3", got[1].ID)

	got = schema.Filter(records, Criteria{"joinedAt": {From: "2021-06-16"}})
	require.Len(t, got, 1)
	assert.Equal(t, "e3", got[0].ID)
}

func TestFilterEmptyCriterionVacuous(t *testing.T) {
	schema := employeeSchema()
	records := staff(10)

	got := schema.Filter(records, Criteria{"name": {}, "department": {Value: ""}})
	assert.Len(t, got, len(records))
}

func TestFilterUnknownFieldMatchesNothing(t *testing.T) {
	schema := employeeSchema()
	records := staff(10)

	got := schema.Filter(records, Criteria{"nickname": {Value: "x"}})
	assert.Empty(t, got)
}

func TestFilterCompositionIsIntersection(t *testing.T) {
	schema := employeeSchema()
	records := staff(40)

	byDept := schema.Filter(records, Criteria{"department": {Value: "Sales"}})
	byStatus := schema.Filter(records, Criteria{"status": {Value: "active"}})
	both := schema.Filter(records, Criteria{
		"department": {Value: "Sales"},
		"status":     {Value: "active"},
	})

	inStatus := make(map[string]bool, len(byStatus))
	for _, rec := range byStatus {
		inStatus[rec.ID] = true
	}
	want := 0
	for _, rec := range byDept {
		if inStatus[rec.ID] {
			want++
		}
	}
	require.Equal(t, want, len(both))
	for _, rec := range both {
		assert.Equal(t, "Sales", rec.Department)
		assert.Equal(t, "active", rec.Status)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	schema := employeeSchema()
	records := staff(5)
	snapshot := make([]employee, len(records))
	copy(snapshot, records)

	schema.Filter(records, Criteria{"department": {Value: "Sales"}})
	assert.Equal(t, snapshot, records)
}
