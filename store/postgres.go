package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/postgres"
)

var _ Store = new(PGStore)

// PGStore implements Store over PostgreSQL.
type PGStore struct {
	db *postgres.DB
}

// New constructs a *PGStore.
func New(db *postgres.DB) *PGStore { return &PGStore{db: db} }

func (s *PGStore) TopCategories(ctx context.Context, n int) ([]rango.Category, error) {
	cats := make([]rango.Category, 0)
	err := s.db.WithContext(ctx).Order("likes DESC, id ASC").Limit(n).Find(&cats)
	if err != nil && !errors.Is(err, rango.ErrNotFound) {
		return nil, err
	}

	return cats, nil
}

func (s *PGStore) TopPages(ctx context.Context, n int) ([]rango.Page, error) {
	pages := make([]rango.Page, 0)
	err := s.db.WithContext(ctx).Order("views DESC, id ASC").Limit(n).Find(&pages)
	if err != nil && !errors.Is(err, rango.ErrNotFound) {
		return nil, err
	}

	return pages, nil
}

func (s *PGStore) CategoryBySlug(ctx context.Context, slug string) (rango.Category, error) {
	var cat rango.Category
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&cat); err != nil {
		return rango.Category{}, err
	}

	return cat, nil
}

func (s *PGStore) PagesByCategory(ctx context.Context, categoryID uint) ([]rango.Page, error) {
	pages := make([]rango.Page, 0)
	err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&pages)
	if err != nil && !errors.Is(err, rango.ErrNotFound) {
		return nil, err
	}

	return pages, nil
}

func (s *PGStore) CreateCategory(ctx context.Context, cat *rango.Category) error {
	if cat == nil {
		return fmt.Errorf("%w: nil category", rango.ErrMissingData)
	}

	return s.db.WithContext(ctx).Create(cat)
}

func (s *PGStore) CreatePage(ctx context.Context, page *rango.Page) error {
	if page == nil {
		return fmt.Errorf("%w: nil page", rango.ErrMissingData)
	}

	return s.db.WithContext(ctx).Create(page)
}

func (s *PGStore) UpsertCategory(ctx context.Context, name string, views, likes int) (rango.Category, error) {
	db := s.db.WithContext(ctx)

	var cat rango.Category
	err := db.Where("name = ?", name).First(&cat)
	switch {
	case errors.Is(err, rango.ErrNotFound):
		cat = rango.Category{Name: name, Views: views, Likes: likes}
		if err := db.Create(&cat); err != nil {
			return rango.Category{}, err
		}

		return cat, nil

	case err != nil:
		return rango.Category{}, err
	}

	err = db.Model(&cat).Update(postgres.Updates{"views": views, "likes": likes})
	if err != nil {
		return rango.Category{}, err
	}

	cat.Views, cat.Likes = views, likes

	return cat, nil
}

func (s *PGStore) UpsertPage(ctx context.Context, cat rango.Category, title, url string, views int) (rango.Page, error) {
	if !cat.Exists() {
		return rango.Page{}, fmt.Errorf("%w: category %q is not saved", rango.ErrNotValid, cat.Name)
	}

	db := s.db.WithContext(ctx)

	var page rango.Page
	err := db.Where("category_id = ?", cat.ID).Where("title = ?", title).First(&page)
	switch {
	case errors.Is(err, rango.ErrNotFound):
		page = rango.Page{CategoryID: cat.ID, Title: title, URL: url, Views: views}
		if err := db.Create(&page); err != nil {
			return rango.Page{}, err
		}

		return page, nil

	case err != nil:
		return rango.Page{}, err
	}

	err = db.Model(&page).Update(postgres.Updates{"url": url, "views": views})
	if err != nil {
		return rango.Page{}, err
	}

	page.URL, page.Views = url, views

	return page, nil
}

func (s *PGStore) CreateUser(ctx context.Context, user *rango.User) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", rango.ErrMissingData)
	}

	tx := s.db.WithContext(ctx).Begin()
	profile := user.Profile
	user.Profile = nil
	defer func() { user.Profile = profile }()

	if err := tx.Create(user); err != nil {
		_ = tx.Rollback()
		return err
	}

	if profile != nil {
		profile.UserID = user.ID
		if err := tx.Create(profile); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *PGStore) UserByUsername(ctx context.Context, username string) (rango.User, error) {
	var user rango.User
	err := s.db.WithContext(ctx).Preload("Profile").Where("username = ?", username).First(&user)
	if err != nil {
		return rango.User{}, err
	}

	return user, nil
}

func (s *PGStore) UserByID(ctx context.Context, id uint) (rango.User, error) {
	var user rango.User
	err := s.db.WithContext(ctx).Preload("Profile").Where("id = ?", id).First(&user)
	if err != nil {
		return rango.User{}, err
	}

	return user, nil
}
