package router

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/InventoryViewer_Go/internal/domain"
)

// Route maps a path to the view rendered for it
type Route struct {
	Path    string
	Name    string
	Handler http.Handler
}

// Routes returns the application's route table: the home route at "/"
// rendering view
func Routes(view http.Handler) []Route {
	return []Route{
		{Path: "/", Name: domain.RouteNameHome, Handler: view},
	}
}

// Table is an immutable set of routes mounted under a base path
type Table struct {
	basePath string
	routes   []Route
	byName   map[string]Route
}

// NewTable validates routes and normalizes basePath
func NewTable(basePath string, routes []Route) (*Table, error) {
	t := &Table{
		basePath: NormalizeBasePath(basePath),
		routes:   make([]Route, 0, len(routes)),
		byName:   make(map[string]Route, len(routes)),
	}

	paths := make(map[string]bool, len(routes))
	for _, rt := range routes {
		switch {
		case !strings.HasPrefix(rt.Path, "/"):
			return nil, fmt.Errorf("%w: route path %q must start with /", domain.ErrInvalidInput, rt.Path)
		case rt.Handler == nil:
			return nil, fmt.Errorf("%w: route %q has no handler", domain.ErrInvalidInput, rt.Path)
		case paths[rt.Path]:
			return nil, fmt.Errorf("%w: duplicate route path %q", domain.ErrInvalidInput, rt.Path)
		}
		paths[rt.Path] = true

		if rt.Name != "" {
			if _, dup := t.byName[rt.Name]; dup {
				return nil, fmt.Errorf("%w: duplicate route name %q", domain.ErrInvalidInput, rt.Name)
			}
			t.byName[rt.Name] = rt
		}
		t.routes = append(t.routes, rt)
	}

	return t, nil
}

// New builds the route table and returns a router serving it under basePath
func New(basePath string, routes []Route) (chi.Router, error) {
	t, err := NewTable(basePath, routes)
	if err != nil {
		return nil, err
	}
	return t.Router(), nil
}

// BasePath returns the normalized base path
func (t *Table) BasePath() string {
	return t.basePath
}

// Routes returns a copy of the table's routes in declaration order
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup resolves a named route
func (t *Table) Lookup(name string) (Route, bool) {
	rt, ok := t.byName[name]
	return rt, ok
}

// URL returns the absolute path of a named route, base path included
func (t *Table) URL(name string) (string, error) {
	rt, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown route %q", domain.ErrInvalidInput, name)
	}
	if t.basePath == "/" {
		return rt.Path, nil
	}
	if rt.Path == "/" {
		return t.basePath + "/", nil
	}
	return t.basePath + rt.Path, nil
}

// Router returns a chi router serving every route with GET under the base path
func (t *Table) Router() chi.Router {
	views := chi.NewRouter()
	for _, rt := range t.routes {
		views.Method(http.MethodGet, rt.Path, rt.Handler)
	}

	if t.basePath == "/" {
		return views
	}

	r := chi.NewRouter()
	r.Mount(t.basePath, views)
	return r
}

// NormalizeBasePath cleans a history base path: always a leading slash,
// never a trailing one except for the root
func NormalizeBasePath(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return "/"
	}
	return path.Clean("/" + base)
}
