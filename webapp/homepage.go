package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/travelGenius/catalog"
)

// HomePage shows the welcome panel, today's recommendation and the feature grid
type HomePage struct {
	app.Compo
}

// Render renders the home page
func (h *HomePage) Render() app.UI {
	home := catalog.Home()

	return app.Div().
		Class("home-page").
		Body(
			app.H1().Class("home-title").Text(home.Title),
			app.P().Class("home-tagline").Text(home.Tagline),
			app.Div().Class("card welcome").Body(
				app.H2().Text(home.Greeting),
				app.Div().Class("readouts").Body(
					app.Range(home.Readouts).Slice(func(i int) app.UI {
						readout := home.Readouts[i]
						return app.Div().Class("readout").Body(
							app.Span().Class("readout-icon").Text(readout.Icon),
							app.P().Class("readout-value").Text(readout.Value),
							app.P().Class("readout-caption").Text(readout.Caption),
						)
					}),
				),
			),
			app.Div().Class("recommendation").Body(
				app.H2().Text(home.Recommendation.Title),
				app.P().Text(home.Recommendation.Text),
			),
			app.Div().Class("feature-grid").Body(
				app.Range(home.Features).Slice(func(i int) app.UI {
					return &FeatureCard{Feature: home.Features[i]}
				}),
			),
		)
}

// FeatureCard displays a single feature teaser
type FeatureCard struct {
	app.Compo
	Feature catalog.Feature
}

// Render renders the feature card
func (f *FeatureCard) Render() app.UI {
	return app.Div().
		Class("card feature-card").
		Body(
			app.Span().Class("feature-icon").Text(f.Feature.Icon),
			app.H3().Text(f.Feature.Title),
			app.P().Class("muted").Text(f.Feature.Description),
		)
}
