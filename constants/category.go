package constants

// Category is the spending taxonomy assigned to a parsed receipt.
type Category string

const (
	Transportation   Category = "Transportation"
	FoodAndBeverage  Category = "Food & Beverage"
	Shopping         Category = "Shopping"
	Bills            Category = "Bills"
	Health           Category = "Health"
	DailyNecessities Category = "Daily Necessities"
	Uncategorized    Category = "Uncategorized"
)

var allCategories = []Category{
	Transportation,
	FoodAndBeverage,
	Shopping,
	Bills,
	Health,
	DailyNecessities,
	Uncategorized,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}
