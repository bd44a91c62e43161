package webapp

import "fmt"

// Tab is one of the five top-level screens
type Tab int

const (
	TabHome Tab = iota
	TabTranslate
	TabDiscover
	TabTaste
	TabTips
)

var tabNames = [...]string{
	TabHome:      "home",
	TabTranslate: "translate",
	TabDiscover:  "discover",
	TabTaste:     "taste",
	TabTips:      "tips",
}

// Tabs lists every tab in navigation bar order
func Tabs() []Tab {
	return []Tab{TabHome, TabTranslate, TabDiscover, TabTaste, TabTips}
}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabNames[t]
}

// ParseTab looks a tab up by name
func ParseTab(name string) (Tab, bool) {
	for i, tabName := range tabNames {
		if tabName == name {
			return Tab(i), true
		}
	}
	return TabHome, false
}
