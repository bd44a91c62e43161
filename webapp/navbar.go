package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

var navEntries = []struct {
	tab   Tab
	icon  string
	label string
}{
	{TabHome, "🏠", "Home"},
	{TabTranslate, "🌐", "Translate"},
	{TabDiscover, "🧭", "Discover"},
	{TabTaste, "🍴", "Taste"},
	{TabTips, "☀️", "Tips"},
}

// NavItem is a single entry of the bottom navigation bar
type NavItem struct {
	Tab      Tab
	Icon     string
	Label    string
	Active   bool
	OnSelect func(Tab)
}

// Render renders the navigation entry
func (n NavItem) Render() app.UI {
	return app.Li().
		Class(n.class()).
		OnClick(n.onClick).
		Body(
			app.Span().Class("nav-icon").Text(n.Icon),
			app.Span().Class("nav-label").Text(n.Label),
		)
}

// Select hands the entry's tab back up to whoever owns the selection
func (n NavItem) Select() {
	if n.OnSelect != nil {
		n.OnSelect(n.Tab)
	}
}

func (n NavItem) class() string {
	if n.Active {
		return "nav-item nav-item-active"
	}
	return "nav-item"
}

func (n NavItem) onClick(ctx app.Context, e app.Event) {
	n.Select()
}

// renderNavBar renders the fixed bottom bar. Items are rendered inline, not
// as a child component, so their click handlers update App.
func renderNavBar(items []NavItem) app.UI {
	return app.Nav().
		Class("navbar").
		Body(
			app.Ul().Class("navbar-menu").Body(
				app.Range(items).Slice(func(i int) app.UI {
					return items[i].Render()
				}),
			),
		)
}
