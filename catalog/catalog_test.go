package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttractionsDeclaredOrder(t *testing.T) {
	categories := Attractions()
	require.Len(t, categories, 2)
	require.Equal(t, "Historical Palaces", categories[0].Name)
	require.Equal(t, "Great Wall Sections", categories[1].Name)

	var names []string
	for _, category := range categories {
		require.Len(t, category.Places, 2)
		for _, place := range category.Places {
			names = append(names, place.Name)
		}
	}
	require.Equal(t, []string{"Forbidden City", "Summer Palace", "Mutianyu", "Jinshanling"}, names)
}

func TestCuisinesDeclaredOrder(t *testing.T) {
	entries := Cuisines()
	require.Len(t, entries, 2)
	require.Equal(t, "Peking Duck", entries[0].Type)
	require.Equal(t, "Dumplings", entries[1].Type)
	for _, entry := range entries {
		require.Len(t, entry.Restaurants, 2)
	}
	require.Equal(t, "Dadong Roast Duck Restaurant", entries[0].Restaurants[0].Name)
	require.Equal(t, "Baoyuan Dumplings", entries[1].Restaurants[1].Name)
}

func TestTipsDeclaredOrder(t *testing.T) {
	var categories []string
	for _, tip := range Tips() {
		categories = append(categories, tip.Category)
	}
	require.Equal(t, []string{"Cultural Etiquette", "Transportation", "Shopping", "Dining"}, categories)
}

func TestHomeContent(t *testing.T) {
	home := Home()
	require.Equal(t, "Welcome to Beijing!", home.Greeting)
	require.Len(t, home.Readouts, 3)
	require.Equal(t, "1 USD = 6.45 CNY", home.Readouts[2].Value)

	var titles []string
	for _, feature := range home.Features {
		titles = append(titles, feature.Title)
	}
	require.Equal(t, []string{"Translate", "Discover", "Taste", "Tips"}, titles)
}

func TestLanguages(t *testing.T) {
	var codes []string
	for _, language := range Languages() {
		codes = append(codes, language.Code)
	}
	require.Equal(t, []string{"zh", "en", "es", "fr"}, codes)
}

func TestAccessorsReturnCopies(t *testing.T) {
	categories := Attractions()
	categories[0].Places[0].Name = "changed"
	categories[1].Name = "changed"
	require.Equal(t, "Forbidden City", Attractions()[0].Places[0].Name)
	require.Equal(t, "Great Wall Sections", Attractions()[1].Name)

	entries := Cuisines()
	entries[0].Restaurants[0].Rating = 0
	require.Equal(t, 4.5, Cuisines()[0].Restaurants[0].Rating)

	tipList := Tips()
	tipList[0].Text = ""
	require.NotEmpty(t, Tips()[0].Text)

	home := Home()
	home.Features[0].Title = "changed"
	require.Equal(t, "Translate", Home().Features[0].Title)
}

func TestValidateSeededCatalog(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidateRejectsOutOfRangeRating(t *testing.T) {
	saved := cuisines
	t.Cleanup(func() { cuisines = saved })

	cuisines = []CuisineEntry{{Type: "Hotpot", Restaurants: []Restaurant{{Name: "Too Good", Rating: 5.5}}}}
	err := Validate()
	require.ErrorIs(t, err, ErrInvalidCatalog)
	require.Contains(t, err.Error(), "Too Good")
}
