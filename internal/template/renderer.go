package template

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cradlecare/cradle/internal/risk"
)

var funcs = template.FuncMap{
	// "ago" turns a zero-padded ISO exam date into "3 weeks ago".
	"ago": func(date string) string {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return date
		}
		return humanize.Time(t)
	},
	"riskCategory": func(score int) string {
		return string(risk.Classify(score))
	},
	"riskColor": func(score int) string {
		return risk.Classify(score).Color()
	},
}

type Renderer struct {
	dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render executes one page template on top of base.html. Templates are
// parsed per request, which keeps the demo editable without restarts.
func (rd *Renderer) Render(w http.ResponseWriter, tmpl string, td any) error {
	t, err := template.New(tmpl).Funcs(funcs).ParseFiles(
		rd.dir+"/"+tmpl,
		rd.dir+"/"+"base.html",
	)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}

	err = t.ExecuteTemplate(buf, tmpl, td)
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}
