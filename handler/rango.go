package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/http/req"
	"github.com/xy-planning-network/rango/http/resp"
	"github.com/xy-planning-network/rango/http/session"
	"github.com/xy-planning-network/rango/logger"
	"github.com/xy-planning-network/rango/visit"
)

const (
	categoryExistsMsg = "Category with this Name already exists."
	invalidURLMsg     = "Enter a valid URL."
)

var _ visit.Store = session.Session{}

// index renders the most liked Categories and most viewed Pages,
// counting the visit.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.TopCategories(r.Context(), topN)
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	pages, err := h.store.TopPages(r.Context(), topN)
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	visits, err := h.countVisit(w, r)
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	data := map[string]any{
		"boldmessage": boldMessage,
		"categories":  cats,
		"pages":       pages,
		"visits":      visits,
	}

	h.Html(w, r, resp.Layout(), resp.Tmpls(indexTmpl), resp.Data(data))
}

// about renders the about page, counting the visit.
func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	visits, err := h.countVisit(w, r)
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	h.Html(w, r, resp.Layout(), resp.Tmpls(aboutTmpl), resp.Data(map[string]any{"visits": visits}))
}

// category renders the Category matching the slug in the path and its Pages.
// An unknown slug renders the page without a Category.
func (h *Handler) category(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"category": nil, "pages": nil}

	cat, err := h.store.CategoryBySlug(r.Context(), mux.Vars(r)["slug"])
	switch {
	case errors.Is(err, rango.ErrNotFound):
	case err != nil:
		h.ErrPage(w, r, err)
		return
	default:
		pages, err := h.store.PagesByCategory(r.Context(), cat.ID)
		if err != nil {
			h.ErrPage(w, r, err)
			return
		}

		data["category"] = cat
		data["pages"] = pages
	}

	h.Html(w, r, resp.Layout(), resp.Tmpls(categoryTmpl), resp.Data(data))
}

func (h *Handler) getAddCategory(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"form": CategoryForm{}, "errors": map[string]string{}}
	h.Html(w, r, resp.Authed(), resp.Tmpls(addCategoryTmpl), resp.Data(data))
}

// postAddCategory creates a Category and redirects to the index.
// Invalid or duplicate names re-render the form with errors.
func (h *Handler) postAddCategory(w http.ResponseWriter, r *http.Request) {
	var form CategoryForm
	errs, err := h.parseForm(r, &form)
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	if len(errs) == 0 {
		cat := rango.Category{Name: strings.TrimSpace(form.Name)}
		err = h.store.CreateCategory(r.Context(), &cat)
		switch {
		case errors.Is(err, rango.ErrExists):
			errs["name"] = categoryExistsMsg
		case errors.Is(err, rango.ErrNotValid):
			errs["name"] = err.Error()
		case err != nil:
			h.ErrPage(w, r, err)
			return
		default:
			h.logger.Info(fmt.Sprintf("added category %s", cat), &logger.LogContext{Request: r})
			h.Redirect(w, r, resp.Url(IndexURL))
			return
		}
	}

	data := map[string]any{"form": form, "errors": errs}
	h.Html(w, r, resp.Authed(), resp.Tmpls(addCategoryTmpl), resp.Data(data))
}

func (h *Handler) getAddPage(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.pageCategory(w, r)
	if !ok {
		return
	}

	data := map[string]any{"category": cat, "form": PageForm{}, "errors": map[string]string{}}
	h.Html(w, r, resp.Authed(), resp.Tmpls(addPageTmpl), resp.Data(data))
}

// postAddPage files a new Page under the Category in the path and redirects to that Category.
// An unknown Category redirects to the index.
func (h *Handler) postAddPage(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.pageCategory(w, r)
	if !ok {
		return
	}

	var form PageForm
	errs, err := h.parseForm(r, &form)
	if err != nil {
		h.ErrPage(w, r, err)
		return
	}

	if _, ok := errs["url"]; !ok && !form.normalize() {
		errs["url"] = invalidURLMsg
	}

	if len(errs) == 0 {
		page := rango.Page{CategoryID: cat.ID, Title: form.Title, URL: form.URL, Views: 0}
		if err := h.store.CreatePage(r.Context(), &page); err != nil {
			h.ErrPage(w, r, err)
			return
		}

		h.Redirect(w, r, resp.Url(categoryPath(cat)))
		return
	}

	data := map[string]any{"category": cat, "form": form, "errors": errs}
	h.Html(w, r, resp.Authed(), resp.Tmpls(addPageTmpl), resp.Data(data))
}

// pageCategory finds the Category pages are added to.
// When it is not found, pageCategory responds and returns false.
func (h *Handler) pageCategory(w http.ResponseWriter, r *http.Request) (rango.Category, bool) {
	cat, err := h.store.CategoryBySlug(r.Context(), mux.Vars(r)["slug"])
	if errors.Is(err, rango.ErrNotFound) {
		h.Redirect(w, r, resp.Url(IndexURL))
		return rango.Category{}, false
	}

	if err != nil {
		h.ErrPage(w, r, err)
		return rango.Category{}, false
	}

	return cat, true
}

// countVisit records the page view in the request's session and saves it.
func (h *Handler) countVisit(w http.ResponseWriter, r *http.Request) (int, error) {
	s, err := h.Session(r.Context())
	if err != nil {
		return 0, err
	}

	visits, err := h.counter.Count(s)
	if err != nil {
		return 0, err
	}

	if err := s.Save(w, r); err != nil {
		return 0, err
	}

	return visits, nil
}

// parseForm decodes and validates r's form into structPtr.
// Invalid fields map to the rule they broke; any other failure returns as an error.
func (h *Handler) parseForm(r *http.Request, structPtr any) (map[string]string, error) {
	err := h.parser.ParseForm(r, structPtr)

	var verrs req.ValidationErrors
	switch {
	case err == nil:
		return map[string]string{}, nil
	case errors.As(err, &verrs):
		return verrs.Fields(), nil
	default:
		return nil, err
	}
}

func categoryPath(cat rango.Category) string { return "/category/" + cat.Slug + "/" }
