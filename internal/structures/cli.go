package structures

import "net/http"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Method  string
	Url     string
	Handler http.Handler
}

// Pattern is the ServeMux pattern for the route, e.g. "GET /sessions".
func (r Route) Pattern() string {
	if r.Method == "" {
		return r.Url
	}
	return r.Method + " " + r.Url
}
