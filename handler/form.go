package handler

import (
	"net/url"
	"strings"
)

// A CategoryForm is the data a User submits to add a Category.
type CategoryForm struct {
	Name string `schema:"name" validate:"required,max=128"`
}

// A PageForm is the data a User submits to add a Page to a Category.
type PageForm struct {
	Title string `schema:"title" validate:"required,max=128"`
	URL   string `schema:"url" validate:"required,max=200"`
}

// normalize prefixes URL with http:// when no scheme was given,
// reporting whether the result is an absolute URL.
func (f *PageForm) normalize() bool {
	f.Title = strings.TrimSpace(f.Title)
	f.URL = strings.TrimSpace(f.URL)
	if !strings.HasPrefix(f.URL, "http://") && !strings.HasPrefix(f.URL, "https://") {
		f.URL = "http://" + f.URL
	}

	u, err := url.ParseRequestURI(f.URL)
	return err == nil && u.Host != ""
}
