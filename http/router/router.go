package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/middleware"
	"github.com/xy-planning-network/rango/logger"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for resources to their location in rango.
type Router struct {
	Env           rango.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	l             logger.Logger
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
// Panics recovered from handlers are logged with l.
func New(env rango.Environment, l logger.Logger) *Router {
	return &Router{
		Env:    env,
		logReq: middleware.LogRequest(l),
		l:      l,
		r:      mux.NewRouter(),
	}
}

// AuthedRoutes registers the set of Routes as those requiring authentication.
// AuthedRoutes applies the given middlewares before performing that check,
// using middleware.RequireAuthed.
//
// middleware.RequireAuthed requires loginUrl and logoffUrl to appropriately
// redirect applicable requests.
func (r *Router) AuthedRoutes(
	loginUrl,
	logoffUrl string,
	routes []Route,
	middlewares ...middleware.Adapter,
) {
	mws := append(middlewares, middleware.RequireAuthed(loginUrl, logoffUrl))
	r.HandleRoutes(routes, mws...)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env, r.l)(handler),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(r.Env, r.l)(route.Handler), mws...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/category") handles requests to endpoints like /category/python/
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		l:             r.l,
		logReq:        r.logReq,
		everyReqStack: r.everyReqStack,
	}
}

// UnauthedRoutes registers the set of Routes as those requiring unauthenticated users.
// It applies the given middlewares before performing that check.
func (r *Router) UnauthedRoutes(routes []Route, middlewares ...middleware.Adapter) {
	r.HandleRoutes(routes, append(middlewares, middleware.RequireUnauthed())...)
}
