package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testOrders() []Order {
	return []Order{
		{
			ID: "1", OrderNumber: "ORD-2024-001",
			Customer:    Customer{Name: "John Smith", Company: "ABC Construction Ltd."},
			Status:      StatusProcessing,
			Priority:    PriorityHigh,
			TotalAmount: 2520.75,
			AssignedTo:  "Mike Wilson",
			CreatedAt:   time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "2", OrderNumber: "ORD-2024-002",
			Customer:    Customer{Name: "Maria Garcia", Company: "XYZ Supply Inc."},
			Status:      StatusShipped,
			Priority:    PriorityMedium,
			TotalAmount: 1377.00,
			AssignedTo:  "Lisa Chen",
			CreatedAt:   time.Date(2024, 1, 12, 14, 0, 0, 0, time.UTC),
		},
		{
			ID: "3", OrderNumber: "ORD-2024-003",
			Customer:    Customer{Name: "Robert Johnson", Company: "BuildTech Solutions"},
			Status:      StatusDelivered,
			Priority:    PriorityLow,
			TotalAmount: 787.92,
			CreatedAt:   time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	got := Apply(testOrders(), Filter{})
	assert.Len(t, got, 3)
}

func TestFilterStatusSet(t *testing.T) {
	got := Apply(testOrders(), Filter{Status: []Status{StatusShipped, StatusDelivered}})
	assert.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilterCustomerMatchesNameOrCompany(t *testing.T) {
	list := testOrders()

	byName := Apply(list, Filter{Customer: "maria"})
	assert.Len(t, byName, 1)
	assert.Equal(t, "2", byName[0].ID)

	byCompany := Apply(list, Filter{Customer: "buildtech"})
	assert.Len(t, byCompany, 1)
	assert.Equal(t, "3", byCompany[0].ID)
}

func TestFilterAmountRange(t *testing.T) {
	got := Apply(testOrders(), Filter{MinAmount: 1000, MaxAmount: 2000})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterDateToIsInclusive(t *testing.T) {
	list := testOrders()

	// order 2 was created at 14:00 on the 12th; a DateTo of the same day
	// must still include it
	got := Apply(list, Filter{DateFrom: "2024-01-12", DateTo: "2024-01-12"})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterAssignedToExact(t *testing.T) {
	got := Apply(testOrders(), Filter{AssignedTo: "Lisa Chen"})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSearchTermAppliesToCustomerAndNumber(t *testing.T) {
	list := testOrders()

	// a term present in every order number matches regardless of customer,
	// as long as the customer fields contain it too; "ord" only appears in
	// the order numbers, so nothing matches
	assert.Empty(t, Apply(list, Search("ord-2024")))

	// but a term that appears in both fields of the same order matches it
	list[0].Customer.Company = "ORD Holdings"
	got := Apply(list, Search("ord"))
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterIsIdempotent(t *testing.T) {
	f := Filter{Status: []Status{StatusProcessing}, MinAmount: 100}
	once := Apply(testOrders(), f)
	twice := Apply(once, f)
	assert.Equal(t, once, twice)
}

func TestFilterTighteningNeverGrowsResult(t *testing.T) {
	list := testOrders()
	loose := Apply(list, Filter{MinAmount: 500})
	tight := Apply(list, Filter{MinAmount: 500, Status: []Status{StatusShipped}})

	assert.LessOrEqual(t, len(tight), len(loose))
	for _, o := range tight {
		assert.Contains(t, loose, o)
	}
}
