package web

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/erazemk/motortrade/internal/flash"
	webembed "github.com/erazemk/motortrade/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"rupiah": formatRupiah,
		"amount": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"year": func(y *int) string {
			if y == nil {
				return "-"
			}
			return strconv.Itoa(*y)
		},
		"timestamp": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.UTC().Format("2006-01-02 15:04:05")
		},
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
	}
}

// formatRupiah renders an amount the Indonesian way: "Rp 30.000.000" or
// "Rp 12.345,50".
func formatRupiah(v float64) string {
	digits := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if v < 0 && strings.Trim(digits, "0.") != "" {
		b.WriteByte('-')
	}
	b.WriteString("Rp ")
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if frac != "00" {
		b.WriteString("," + frac)
	}
	return b.String()
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"index.html",
		"motor_detail.html",
		"add.html",
		"buy.html",
		"purchases.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title string
	Flash *flash.Notice
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB            *sql.DB
	Templates     *Templates
	Secret        string
	MaxImageBytes int64
	Now           func() time.Time
}

// page builds the base page data, consuming any pending notice.
func (s *Server) page(w http.ResponseWriter, r *http.Request, title string) PageData {
	return PageData{Title: title, Flash: flash.Pop(w, r, s.Secret)}
}

// redirectWithNotice stores a notice and sends the browser to target.
func (s *Server) redirectWithNotice(w http.ResponseWriter, r *http.Request, target, kind, message string) {
	if err := flash.Set(w, s.Secret, kind, message); err != nil {
		slog.Error("failed to set notice", "error", err)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
