package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/travelGenius/catalog"
)

// TranslationPage is the translation form. Translating is not implemented,
// the button is accepted and does nothing.
type TranslationPage struct {
	app.Compo
	text     string
	language string
}

// Render renders the translation page
func (t *TranslationPage) Render() app.UI {
	languages := catalog.Languages()

	return app.Div().
		Class("translation-page").
		Body(
			app.H1().Text("AI-Powered Translation"),
			app.Textarea().
				Class("input").
				Placeholder("Enter text to translate...").
				Rows(4).
				OnInput(t.onTextInput).
				Text(t.text),
			app.Select().
				Class("input").
				OnChange(t.onLanguageChange).
				Body(
					app.Option().Value("").Text("Select target language"),
					app.Range(languages).Slice(func(i int) app.UI {
						return app.Option().
							Value(languages[i].Code).
							Selected(languages[i].Code == t.language).
							Text(languages[i].Name)
					}),
				),
			app.Button().
				Class("btn-primary").
				OnClick(t.onTranslateClick).
				Body(app.Text("Translate")),
		)
}

func (t *TranslationPage) onTextInput(ctx app.Context, e app.Event) {
	t.text = ctx.JSSrc().Get("value").String()
}

func (t *TranslationPage) onLanguageChange(ctx app.Context, e app.Event) {
	t.language = ctx.JSSrc().Get("value").String()
}

// onTranslateClick handles the translate button click
func (t *TranslationPage) onTranslateClick(ctx app.Context, e app.Event) {
	t.submit()
}

// submit is a placeholder, there is no translation backend
func (t *TranslationPage) submit() {}
