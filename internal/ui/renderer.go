package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*.html templates/*.css
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer renders the embedded pages.
type Renderer struct {
	pages      map[string]*template.Template
	stylesheet []byte
	builtAt    time.Time
}

var funcs = template.FuncMap{
	"icon": Icon,
}

// NewRenderer parses the layout with every page.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages:   make(map[string]*template.Template),
		builtAt: time.Now(),
	}

	for _, name := range []string{PageSignIn, PageSignUp, PageDashboard} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}

	css, err := renderStylesheet()
	if err != nil {
		return nil, err
	}
	r.stylesheet = css

	return r, nil
}

// Render writes page name with status. Output is buffered so template
// failures never leave a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Stylesheet returns the generated CSS.
func (r *Renderer) Stylesheet() []byte { return r.stylesheet }

// AssetsHandler serves app.css and the embedded static files. Mount it
// under /static/ with the prefix stripped.
func (r *Renderer) AssetsHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	files := http.FileServer(http.FS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "app.css" || req.URL.Path == "/app.css" {
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
			http.ServeContent(w, req, "app.css", r.builtAt, bytes.NewReader(r.stylesheet))
			return
		}
		files.ServeHTTP(w, req)
	})
}

type stylesheetData struct {
	Primary, PrimaryHover            string
	Background, Input, Muted, Text   string
	Error, ErrorBg                   string
	Success, SuccessBg, Info, InfoBg string
}

func renderStylesheet() ([]byte, error) {
	t, err := texttemplate.ParseFS(templateFS, "templates/app.css")
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet: %w", err)
	}
	hover, err := Shade(0.2, ColorPrimary)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, stylesheetData{
		Primary:      ColorPrimary,
		PrimaryHover: hover,
		Background:   ColorBackground,
		Input:        ColorInput,
		Muted:        ColorMuted,
		Text:         ColorText,
		Error:        ColorError,
		ErrorBg:      ColorErrorBg,
		Success:      ColorSuccess,
		SuccessBg:    ColorSuccessBg,
		Info:         ColorInfo,
		InfoBg:       ColorInfoBg,
	})
	if err != nil {
		return nil, fmt.Errorf("render stylesheet: %w", err)
	}
	return buf.Bytes(), nil
}
