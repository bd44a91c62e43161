package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/travelGenius/catalog"
)

// DiscoveryPage lists attractions grouped by category
type DiscoveryPage struct {
	app.Compo
}

// Render renders the discovery page
func (d *DiscoveryPage) Render() app.UI {
	categories := catalog.Attractions()

	return app.Div().
		Class("discovery-page").
		Body(
			app.H1().Text("Discover Beijing"),
			app.Range(categories).Slice(func(i int) app.UI {
				category := categories[i]
				return app.Div().Class("section").Body(
					app.H2().Text(category.Name),
					app.Range(category.Places).Slice(func(j int) app.UI {
						return renderPlace(category.Places[j])
					}),
				)
			}),
		)
}

func renderPlace(place catalog.Place) app.UI {
	return app.Div().
		Class("card place").
		Body(
			app.H3().Text(place.Name),
			app.P().Class("muted").Text(place.Description),
			app.P().Class("tip").Body(
				app.Strong().Text("Travel Genius Tip:"),
				app.Text(" "+place.Tip),
			),
		)
}
