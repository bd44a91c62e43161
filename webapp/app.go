package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// App is the root component of the application, it owns the selected tab
type App struct {
	app.Compo
	active Tab
}

// Render renders the app
func (a *App) Render() app.UI {
	return app.Div().
		Class("app-container").
		Body(
			app.Main().Class("content").Body(
				a.renderPage(),
			),
			renderNavBar(a.navItems()),
		)
}

// Active reports the selected tab
func (a *App) Active() Tab {
	return a.active
}

func (a *App) selectTab(tab Tab) {
	a.active = tab
}

// renderPage renders the page for the selected tab
func (a *App) renderPage() app.UI {
	switch a.active {
	case TabHome:
		return &HomePage{}
	case TabTranslate:
		return &TranslationPage{}
	case TabDiscover:
		return &DiscoveryPage{}
	case TabTaste:
		return &TastePage{}
	case TabTips:
		return &TipsPage{}
	default:
		return &HomePage{}
	}
}

// navItems builds the bottom bar entries, marking the selected one
func (a *App) navItems() []NavItem {
	items := make([]NavItem, 0, len(navEntries))
	for _, entry := range navEntries {
		items = append(items, NavItem{
			Tab:      entry.tab,
			Icon:     entry.icon,
			Label:    entry.label,
			Active:   entry.tab == a.active,
			OnSelect: a.selectTab,
		})
	}
	return items
}
