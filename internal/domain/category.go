package domain

// Category is an event taxonomy label.
type Category string

const (
	CategoryArtCulture       Category = "Art & Culture"
	CategoryFitnessLifestyle Category = "Fitness & Lifestyle"
	CategoryFoodDrinks       Category = "Food & Drinks"
	CategoryEntertainment    Category = "Entertainment"
	CategoryOutdoor          Category = "Outdoor"
	CategoryPartyConcerts    Category = "Party & Concerts"
	CategoryTravelWellness   Category = "Travel & Wellness"
	CategoryUncategorized    Category = "Uncategorized"
)

// Categories lists the taxonomy in prompt order. Uncategorized is not part of it.
func Categories() []Category {
	return []Category{
		CategoryArtCulture,
		CategoryFitnessLifestyle,
		CategoryFoodDrinks,
		CategoryEntertainment,
		CategoryOutdoor,
		CategoryPartyConcerts,
		CategoryTravelWellness,
	}
}

// ParseCategory returns the taxonomy entry matching s exactly.
// The fallback label is never accepted.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return CategoryUncategorized, false
}

func (c Category) String() string {
	return string(c)
}
