package catalog

// AttractionCategory groups places shown together on the discover tab
type AttractionCategory struct {
	Name   string  `json:"name"`
	Places []Place `json:"places"`
}

// Place is a single attraction with an insider tip
type Place struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
}

// CuisineEntry is a local dish and where to try it
type CuisineEntry struct {
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Restaurants []Restaurant `json:"restaurants"`
}

// Restaurant is rated from 0 to 5
type Restaurant struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// TravelTip is a piece of advice filed under a category
type TravelTip struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Readout is one of the fixed weather/time/exchange figures on the home tab
type Readout struct {
	Icon    string `json:"icon"`
	Value   string `json:"value"`
	Caption string `json:"caption"`
}

// Recommendation is the banner shown under the welcome panel
type Recommendation struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Feature is a teaser card on the home tab
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Welcome holds everything the home tab displays
type Welcome struct {
	Title          string         `json:"title"`
	Tagline        string         `json:"tagline"`
	Greeting       string         `json:"greeting"`
	Readouts       []Readout      `json:"readouts"`
	Recommendation Recommendation `json:"recommendation"`
	Features       []Feature      `json:"features"`
}

// Language is a translation target offered by the translate tab
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Home returns the home tab content
func Home() Welcome {
	w := welcome
	w.Readouts = append([]Readout(nil), welcome.Readouts...)
	w.Features = append([]Feature(nil), welcome.Features...)
	return w
}

// Attractions returns the attraction categories in display order
func Attractions() []AttractionCategory {
	out := make([]AttractionCategory, len(attractions))
	for i, category := range attractions {
		out[i] = AttractionCategory{
			Name:   category.Name,
			Places: append([]Place(nil), category.Places...),
		}
	}
	return out
}

// Cuisines returns the cuisines in display order
func Cuisines() []CuisineEntry {
	out := make([]CuisineEntry, len(cuisines))
	for i, cuisine := range cuisines {
		out[i] = CuisineEntry{
			Type:        cuisine.Type,
			Description: cuisine.Description,
			Restaurants: append([]Restaurant(nil), cuisine.Restaurants...),
		}
	}
	return out
}

// Tips returns the travel tips in display order
func Tips() []TravelTip {
	return append([]TravelTip(nil), tips...)
}

// Languages returns the selectable translation targets
func Languages() []Language {
	return append([]Language(nil), languages...)
}
