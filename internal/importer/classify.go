package importer

import (
	"strings"

	"github.com/wanderlust-app/backend/internal/domain"
)

// typeRule maps substrings of the combined place+description text to an
// activity type. Rules are checked in order; the first hit wins, so more
// specific travel modes come before broader venue words.
type typeRule struct {
	activityType domain.ActivityType
	keywords     []string
}

var typeRules = []typeRule{
	{domain.TypeTransport, []string{"airport", "flight", "depart", "land in"}},
	{domain.TypeTrain, []string{"station", "train", "eurostar", "thalys", "centraal", "gare"}},
	{domain.TypeShrine, []string{"church", "cathedral", "basilica", "abbey", "temple", "shrine"}},
	{domain.TypeThemePark, []string{"disney", "universal", "theme park"}},
	{domain.TypeMuseum, []string{"museum", "gallery", "exhibition", "tower", "observation",
		"castle", "palace", "louvre", "rijksmuseum", "tate", "british museum"}},
	{domain.TypeHotel, []string{"hotel", "check in", "check-in", "hostel"}},
	{domain.TypeRestaurant, []string{"restaurant", "bistro", "café", "cafe", "dinner",
		"lunch", "breakfast", "pub", "bar"}},
	{domain.TypeNeighborhood, []string{"district", "quarter", "neighborhood", "walk",
		"explore", "wander", "marais", "jordaan", "montmartre", "covent"}},
	{domain.TypeStore, []string{"shop", "store", "mall", "market", "bookstore"}},
}

// InferActivityType guesses a presentation type from keywords in the place
// name and description. It is a heuristic classifier for imported data only;
// nothing in the edit pipeline depends on the result.
func InferActivityType(place, what string) domain.ActivityType {
	combined := strings.ToLower(place + " " + what)
	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(combined, kw) {
				return rule.activityType
			}
		}
	}
	return domain.TypeGeneral
}
