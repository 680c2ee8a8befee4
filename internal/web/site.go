// Package web serves the booking website pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"

	"specialroom-backend/internal/booking"
	"specialroom-backend/internal/flash"
)

//go:embed templates static
var assets embed.FS

var pageFiles = []string{
	"home",
	"special_room",
	"checkbooking",
	"progress",
	"contact",
	"not_found",
	"error",
}

// Options are the dependencies of a Site.
type Options struct {
	Fetcher booking.Fetcher
	Flash   *flash.Store
	Log     *zap.Logger
	// Location is the hospital's time zone, used for admission dates.
	Location *time.Location
}

// Site renders the pages. It is safe for concurrent use.
type Site struct {
	fetcher booking.Fetcher
	flash   *flash.Store
	log     *zap.Logger
	loc     *time.Location
	pages   map[string]*template.Template
}

// New parses the embedded templates.
func New(opts Options) (*Site, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("web: fetcher is required")
	}
	if opts.Flash == nil {
		opts.Flash = flash.NewStore(3 * time.Second)
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		t, err := template.New(name).Funcs(funcs).ParseFS(assets,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Site{
		fetcher: opts.Fetcher,
		flash:   opts.Flash,
		log:     opts.Log,
		loc:     opts.Location,
		pages:   pages,
	}, nil
}

// Register mounts the pages and static assets on r.
func (s *Site) Register(r *gin.Engine) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET(RouteHome, s.Home)
	r.GET(RouteSpecialRoom, s.SpecialRoom)
	r.POST(RouteSpecialRoom, s.SubmitSpecialRoom)
	r.GET(RouteCheckBooking, s.CheckBooking)
	r.POST(RouteCheckBooking, s.SubmitCheckBooking)
	r.GET(RouteProgress+"/:id", s.Progress)
	r.GET(RouteContact, s.Contact)
	r.POST(RouteContact, s.SubmitContact)

	r.NoRoute(s.NotFound)
}

// Page is the data every page template receives.
type Page struct {
	Title  string
	Active string
	Nav    []NavLink
	Toast  *flash.Toast
	Year   int
}

func (s *Site) page(c *gin.Context, title, active string) Page {
	p := Page{
		Title:  title,
		Active: active,
		Nav:    navLinks,
		Year:   time.Now().In(s.loc).Year(),
	}
	if t, ok := s.flash.Take(flash.Session(c)); ok {
		p.Toast = &t
	}
	return p
}

func (s *Site) errorToast(p *Page, text string) {
	t := s.flash.New(flash.Error, text)
	p.Toast = &t
}

// redirect queues a toast for the next page and sends the visitor there.
func (s *Site) redirect(c *gin.Context, location string, kind flash.Kind, text string) {
	s.flash.Show(flash.Session(c), kind, text)
	c.Redirect(http.StatusSeeOther, location)
}

func (s *Site) render(c *gin.Context, code int, name string, data any) {
	t, ok := s.pages[name]
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Render(code, render.HTML{Template: t, Name: "layout", Data: data})
}

// NotFound renders the 404 page.
func (s *Site) NotFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "not_found", s.page(c, "ไม่พบหน้าที่ต้องการ", ""))
}

func (s *Site) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	s.render(c, http.StatusInternalServerError, "error", s.page(c, "เกิดข้อผิดพลาด", ""))
}
