package planner

import "testing"

func testCatalogData() CatalogData {
	return CatalogData{
		Activities: map[Interest][]string{
			InterestCulture:   {"Visit museums", "Explore historical sites", "Attend local festivals", "Take guided tours"},
			InterestAdventure: {"Hiking trails", "Water sports", "Rock climbing", "Zip lining"},
			InterestFood:      {"Cooking classes", "Food tours", "Wine tasting", "Local market visits"},
			InterestNature:    {"National parks", "Wildlife watching", "Botanical gardens", "Scenic drives"},
		},
		Budgets: map[BudgetTier]CostBreakdown{
			BudgetBudget:   {Accommodation: 4150, Food: 2490, Activities: 3320, Transport: 1660},
			BudgetModerate: {Accommodation: 8300, Food: 4980, Activities: 6640, Transport: 3320},
			BudgetLuxury:   {Accommodation: 16600, Food: 9960, Activities: 12450, Transport: 6640},
			BudgetPremium:  {Accommodation: 24900, Food: 16600, Activities: 20750, Transport: 9960},
		},
		Places: map[string][]NearbyPlace{
			"bali": {
				{Name: "Ubud Sacred Monkey Forest", Description: "Sacred sanctuary with playful monkeys", Photos: []string{"https://img/ubud-1.jpg", "https://img/ubud-2.jpg"}, Rate: "₹400", Distance: "35 km", Rating: "4.6"},
				{Name: "Tanah Lot Temple", Description: "Iconic sea temple on rocky outcrop", Photos: []string{"https://img/tanah-1.jpg"}, Rate: "₹650", Distance: "20 km", Rating: "4.8"},
				{Name: "Rice Terraces", Description: "Ancient agricultural landscapes", Photos: []string{"https://img/rice-1.jpg"}, Rate: "₹300", Distance: "25 km", Rating: "4.7"},
			},
			"Paris": {
				{Name: "Versailles Palace", Description: "Magnificent royal palace with stunning gardens", Photos: []string{"https://img/versailles.jpg"}, Rate: "₹2,500", Distance: "20 km", Rating: "4.8"},
			},
		},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(testCatalogData())
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return catalog
}

// firstPick always selects the first candidate.
func firstPick(int) int { return 0 }

// cyclingPick walks through candidate indexes in order.
type cyclingPick struct{ next int }

func (c *cyclingPick) intn(n int) int {
	v := c.next % n
	c.next++
	return v
}
