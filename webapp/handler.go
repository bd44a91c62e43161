package webapp

import (
	"net/http"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Options configures the page the go-app handler serves
type Options struct {
	Name        string
	Description string
	Version     string
	Stylesheet  string //URL the stylesheet is served from
}

// RegisterRoutes registers the app component, shared by the server and the wasm build
func RegisterRoutes() {
	app.Route("/", func() app.Composer { return &App{} })
}

// Handler returns an HTTP handler for the web app
func Handler(opts Options) http.Handler {
	RegisterRoutes()
	app.RunWhenOnBrowser()

	// app.wasm is served from /web/app.wasm by Echo
	return &app.Handler{
		Name:        opts.Name,
		ShortName:   opts.Name,
		Title:       opts.Name,
		Description: opts.Description,
		Version:     opts.Version,
		Styles: []string{
			opts.Stylesheet,
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
	}
}
