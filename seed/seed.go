// Package seed populates a rango database with a starter set of categories and pages.
package seed

import (
	"context"
	"fmt"

	"github.com/xy-planning-network/rango/logger"
	"github.com/xy-planning-network/rango/store"
)

// A PageFixture is a page to file under a CategoryFixture.
type PageFixture struct {
	Title string
	URL   string
}

// A CategoryFixture is a category to create along with its pages.
type CategoryFixture struct {
	Name  string
	Views int
	Likes int
	Pages []PageFixture
}

// Fixtures returns the categories and pages Populate writes, in order.
func Fixtures() []CategoryFixture {
	return []CategoryFixture{
		{
			Name:  "Python",
			Views: 128,
			Likes: 64,
			Pages: []PageFixture{
				{"Official Python Tutorial", "http://docs.python.org/3/tutorial/"},
				{"How to Think like a Computer Scientist", "http://www.greenteapress.com/thinkpython/"},
				{"Learn Python in 10 Minutes", "http://www.korokithakis.net/tutorials/python/"},
			},
		},
		{
			Name:  "Django",
			Views: 64,
			Likes: 32,
			Pages: []PageFixture{
				{"Official Django Tutorial", "https://docs.djangoproject.com/en/2.1/intro/tutorial01/"},
				{"Django Rocks", "http://www.djangorocks.com/"},
				{"How to Tango with Django", "http://www.tangowithdjango.com/"},
			},
		},
		{
			Name:  "Other Frameworks",
			Views: 32,
			Likes: 16,
			Pages: []PageFixture{
				{"Bottle", "http://bottlepy.org/docs/dev/"},
				{"Flask", "http://flask.pocoo.org"},
			},
		},
	}
}

// Populate writes Fixtures to s.
// Running it again updates the existing records rather than duplicating them.
func Populate(ctx context.Context, s store.Store, l logger.Logger) error {
	l.Info("starting rango population", nil)

	for _, fix := range Fixtures() {
		cat, err := s.UpsertCategory(ctx, fix.Name, fix.Views, fix.Likes)
		if err != nil {
			return fmt.Errorf("failed adding category %q: %w", fix.Name, err)
		}

		for _, p := range fix.Pages {
			page, err := s.UpsertPage(ctx, cat, p.Title, p.URL, 0)
			if err != nil {
				return fmt.Errorf("failed adding page %q: %w", p.Title, err)
			}

			l.Info(fmt.Sprintf("- %s: %s", cat, page), &logger.LogContext{
				Data: map[string]any{"category": cat.Slug, "url": page.URL},
			})
		}
	}

	return nil
}
