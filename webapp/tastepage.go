package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/travelGenius/catalog"
)

// TastePage lists local dishes and rated restaurants
type TastePage struct {
	app.Compo
}

// Render renders the taste page
func (t *TastePage) Render() app.UI {
	cuisines := catalog.Cuisines()

	return app.Div().
		Class("taste-page").
		Body(
			app.H1().Text("Taste Beijing"),
			app.Range(cuisines).Slice(func(i int) app.UI {
				cuisine := cuisines[i]
				return app.Div().Class("card cuisine").Body(
					app.H2().Text(cuisine.Type),
					app.P().Class("muted").Text(cuisine.Description),
					app.H3().Text("Where to try:"),
					app.Range(cuisine.Restaurants).Slice(func(j int) app.UI {
						restaurant := cuisine.Restaurants[j]
						return app.Div().Class("restaurant").Body(
							app.Span().Text(restaurant.Name),
							app.Span().Class("stars").Text(catalog.Stars(restaurant.Rating)),
						)
					}),
				)
			}),
		)
}
