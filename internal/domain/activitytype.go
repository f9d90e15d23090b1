package domain

// ActivityType is a presentation-only tag for an activity. The bulk importer
// infers it from keywords in the place/description text; edit resolution
// never dispatches on it.
type ActivityType string

const (
	TypeMuseum       ActivityType = "museum"
	TypeRestaurant   ActivityType = "restaurant"
	TypeHotel        ActivityType = "hotel"
	TypeThemePark    ActivityType = "themePark"
	TypeNeighborhood ActivityType = "neighborhood"
	TypeTransport    ActivityType = "transport"
	TypeTrain        ActivityType = "train"
	TypeStore        ActivityType = "store"
	TypeShrine       ActivityType = "shrine"
	TypeGeneral      ActivityType = "general"
)

// ParseActivityType maps a stored token to an ActivityType, falling back to
// TypeGeneral for anything unrecognized. Unlike priorities, an unknown type
// tag is never an error — it only affects presentation.
func ParseActivityType(s string) ActivityType {
	switch ActivityType(s) {
	case TypeMuseum, TypeRestaurant, TypeHotel, TypeThemePark, TypeNeighborhood,
		TypeTransport, TypeTrain, TypeStore, TypeShrine, TypeGeneral:
		return ActivityType(s)
	}
	return TypeGeneral
}
