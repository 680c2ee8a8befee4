package web

import (
	"html/template"
	"math"
	"strconv"
	"time"

	"specialroom-backend/internal/reveal"
)

var funcs = template.FuncMap{
	"revealOpen":  revealOpen,
	"revealClose": revealClose,
	"stagger":     stagger,
	"hospital": func() map[string]string {
		return map[string]string{"URL": HospitalURL, "TH": HospitalNameTH, "EN": HospitalNameEN}
	},
}

// revealOpen opens a revealed element. Options are "key=value" pairs, see
// reveal.Options.
func revealOpen(tag string, pairs ...string) (template.HTML, error) {
	cfg, attrs, err := reveal.Options(pairs...)
	if err != nil {
		return "", err
	}
	return reveal.Open(reveal.ParseTag(tag), cfg, attrs), nil
}

func revealClose(tag string) template.HTML {
	return reveal.Close(reveal.ParseTag(tag))
}

// stagger yields the delay option of the i-th sibling, in seconds.
func stagger(base, increment float64, i int) string {
	d := reveal.Stagger(seconds(base), seconds(increment), i)
	return "delay=" + strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

func seconds(f float64) time.Duration {
	return time.Duration(math.Round(f * float64(time.Second)))
}
