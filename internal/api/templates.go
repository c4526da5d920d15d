package api

import (
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/agstats/shionweb/internal/display"
)

var templatePatterns = []string{
	"templates/layouts/*.html",
	"templates/pages/*.html",
	"templates/partials/*.html",
}

// LoadTemplates parses every layout, page and partial found in fsys.
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		// dict builds a map from key/value pairs for passing several values to a partial.
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, fmt.Errorf("dict: odd number of arguments")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
		"flagURL":     display.FlagURL,
		"langFlagURL": display.LanguageFlagURL,
		"rankColor": func(position int) template.CSS {
			return template.CSS(display.RankColor(position))
		},
		"signed": func(n int) string {
			if n > 0 {
				return fmt.Sprintf("+%d", n)
			}
			return fmt.Sprintf("%d", n)
		},
		"ping": func(v float64) string { return fmt.Sprintf("%.0f", v) },
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
		// shortDate keeps the calendar date of an ISO timestamp.
		"shortDate": func(s string) string {
			if len(s) >= 10 {
				return s[:10]
			}
			return s
		},
	}

	t := template.New("base").Funcs(funcs)
	for _, p := range templatePatterns {
		if matches, _ := fs.Glob(fsys, p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseFS(fsys, p); err != nil {
			return nil, err
		}
	}
	return t, nil
}
