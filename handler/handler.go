package handler

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/auth"
	"github.com/xy-planning-network/rango/http/middleware"
	"github.com/xy-planning-network/rango/http/req"
	"github.com/xy-planning-network/rango/http/resp"
	"github.com/xy-planning-network/rango/http/router"
	"github.com/xy-planning-network/rango/logger"
	"github.com/xy-planning-network/rango/store"
	"github.com/xy-planning-network/rango/visit"
)

const (
	// Routes
	IndexURL       = "/"
	AboutURL       = "/about/"
	CategoryURL    = "/category/{slug}/"
	AddCategoryURL = "/add_category/"
	AddPageURL     = "/category/{slug}/add_page/"
	RegisterURL    = "/register/"
	LoginURL       = "/login/"
	LogoutURL      = "/logout/"
	RestrictedURL  = "/restricted/"
	MetricsURL     = "/metrics"

	// Templates
	tmplDir         = "tmpl/rango/"
	aboutTmpl       = tmplDir + "about.tmpl"
	addCategoryTmpl = tmplDir + "add_category.tmpl"
	addPageTmpl     = tmplDir + "add_page.tmpl"
	categoryTmpl    = tmplDir + "category.tmpl"
	indexTmpl       = tmplDir + "index.tmpl"
	loginTmpl       = tmplDir + "login.tmpl"
	registerTmpl    = tmplDir + "register.tmpl"
	restrictedTmpl  = tmplDir + "restricted.tmpl"

	boldMessage = "Crunchy, creamy, cookie, candy, cupcake!"
	topN        = 5
)

// A Handler serves rango's pages.
type Handler struct {
	*resp.Responder

	auth     auth.AuthService
	counter  *visit.Counter
	gatherer prometheus.Gatherer
	idem     middleware.IdempotencyCacher
	logger   logger.Logger
	parser   *req.Parser
	store    store.Store
	visitors *middleware.Visitors
}

// A HandlerOpt configures a *Handler when constructing a new one.
type HandlerOpt func(*Handler)

// WithCounter sets the *visit.Counter the index and about pages count visits with.
func WithCounter(c *visit.Counter) HandlerOpt {
	return func(h *Handler) {
		if c != nil {
			h.counter = c
		}
	}
}

// WithGatherer sets where the metrics page gathers metrics from.
func WithGatherer(g prometheus.Gatherer) HandlerOpt {
	return func(h *Handler) {
		if g != nil {
			h.gatherer = g
		}
	}
}

// WithIdempotencyCache sets the cache form submissions are deduplicated with.
func WithIdempotencyCache(c middleware.IdempotencyCacher) HandlerOpt {
	return func(h *Handler) {
		h.idem = c
	}
}

// WithLogger sets the logger.Logger a Handler uses.
func WithLogger(l logger.Logger) HandlerOpt {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithVisitors sets the *middleware.Visitors limiting login attempts.
func WithVisitors(vs *middleware.Visitors) HandlerOpt {
	return func(h *Handler) {
		if vs != nil {
			h.visitors = vs
		}
	}
}

// New constructs a *Handler.
func New(d *resp.Responder, s store.Store, a auth.AuthService, opts ...HandlerOpt) (*Handler, error) {
	if d == nil || s == nil || a == nil {
		return nil, fmt.Errorf("%w: responder, store and auth service are required", rango.ErrBadConfig)
	}

	h := &Handler{
		Responder: d,
		auth:      a,
		counter:   visit.NewCounter(),
		gatherer:  prometheus.DefaultGatherer,
		logger:    logger.New(),
		parser:    req.NewParser(),
		store:     s,
		visitors:  middleware.NewVisitors(0, 0),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// Routes registers every page on rt.
func (h *Handler) Routes(rt *router.Router) {
	idem := middleware.Idempotent(h.idem, nil)
	limit := middleware.RateLimit(h.visitors)

	rt.HandleRoutes([]router.Route{
		{Path: IndexURL, Method: http.MethodGet, Handler: h.index},
		{Path: AboutURL, Method: http.MethodGet, Handler: h.about},
		{Path: CategoryURL, Method: http.MethodGet, Handler: h.category},
		{Path: MetricsURL, Method: http.MethodGet, Handler: h.metrics().ServeHTTP},
	})

	rt.UnauthedRoutes([]router.Route{
		{Path: RegisterURL, Method: http.MethodGet, Handler: h.getRegister},
		{Path: RegisterURL, Method: http.MethodPost, Handler: h.postRegister, Middlewares: []middleware.Adapter{idem}},
		{Path: LoginURL, Method: http.MethodGet, Handler: h.getLogin},
		{Path: LoginURL, Method: http.MethodPost, Handler: h.postLogin, Middlewares: []middleware.Adapter{limit}},
	})

	authz := h.authorize()
	rt.AuthedRoutes(LoginURL, LogoutURL, []router.Route{
		{Path: AddCategoryURL, Method: http.MethodGet, Handler: h.getAddCategory, Middlewares: []middleware.Adapter{authz}},
		{Path: AddCategoryURL, Method: http.MethodPost, Handler: h.postAddCategory, Middlewares: []middleware.Adapter{authz, idem}},
		{Path: AddPageURL, Method: http.MethodGet, Handler: h.getAddPage, Middlewares: []middleware.Adapter{authz}},
		{Path: AddPageURL, Method: http.MethodPost, Handler: h.postAddPage, Middlewares: []middleware.Adapter{authz, idem}},
		{Path: LogoutURL, Method: http.MethodGet, Handler: h.logout, Middlewares: []middleware.Adapter{authz}},
		{Path: RestrictedURL, Method: http.MethodGet, Handler: h.restricted, Middlewares: []middleware.Adapter{authz}},
	})
}

// authorize sends Users without access to their home page.
func (h *Handler) authorize() middleware.Adapter {
	return middleware.NewAuthorizeApplicator[rango.User](h.Responder).Apply(func(u rango.User) (string, bool) {
		return u.HomePath(), u.HasAccess()
	})
}

// metrics exposes the gathered metrics in the Prometheus text format.
func (h *Handler) metrics() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})
}
