package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/travelGenius/catalog"
)

// TipsPage lists the travel tips
type TipsPage struct {
	app.Compo
}

// Render renders the tips page
func (t *TipsPage) Render() app.UI {
	tips := catalog.Tips()

	return app.Div().
		Class("tips-page").
		Body(
			app.H1().Text("Travel Tips"),
			app.Range(tips).Slice(func(i int) app.UI {
				return app.Div().Class("card tip-entry").Body(
					app.H2().Text(tips[i].Category),
					app.P().Class("muted").Text(tips[i].Text),
				)
			}),
		)
}
