package store

import (
	"context"

	"github.com/xy-planning-network/rango"
)

// A Store reads and writes rango's models.
type Store interface {
	// TopCategories returns up to n categories ordered by likes, most liked first.
	TopCategories(ctx context.Context, n int) ([]rango.Category, error)

	// TopPages returns up to n pages ordered by views, most viewed first.
	TopPages(ctx context.Context, n int) ([]rango.Page, error)

	// CategoryBySlug returns the category whose slug is slug
	// or an error wrapping rango.ErrNotFound.
	CategoryBySlug(ctx context.Context, slug string) (rango.Category, error)

	// PagesByCategory returns the pages filed under the category.
	PagesByCategory(ctx context.Context, categoryID uint) ([]rango.Page, error)

	// CreateCategory inserts cat.
	// A duplicate name returns an error wrapping rango.ErrExists.
	CreateCategory(ctx context.Context, cat *rango.Category) error

	// CreatePage inserts page.
	CreatePage(ctx context.Context, page *rango.Page) error

	// UpsertCategory gets or creates the category named name and sets its counts.
	UpsertCategory(ctx context.Context, name string, views, likes int) (rango.Category, error)

	// UpsertPage gets or creates the page titled title in cat and sets its URL and views.
	UpsertPage(ctx context.Context, cat rango.Category, title, url string, views int) (rango.Page, error)

	// CreateUser inserts user along with its profile, if set.
	// A duplicate username returns an error wrapping rango.ErrExists.
	CreateUser(ctx context.Context, user *rango.User) error

	// UserByUsername returns the user with the username
	// or an error wrapping rango.ErrNotFound.
	UserByUsername(ctx context.Context, username string) (rango.User, error)

	// UserByID returns the user with the ID
	// or an error wrapping rango.ErrNotFound.
	UserByID(ctx context.Context, id uint) (rango.User, error)
}
