package rango

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// A Model is the essential data points for primary ID-based models in a rango application,
// indicating when a record was created, last updated and soft deleted.
type Model struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

// Exists asserts whether the Model was loaded from or saved to the database.
func (m Model) Exists() bool { return !m.CreatedAt.IsZero() }

// A Category groups Pages under a unique name.
//
// A Category has many Pages.
type Category struct {
	Model
	Name  string `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Views int    `gorm:"not null;default:0" json:"views"`
	Likes int    `gorm:"not null;default:0" json:"likes"`

	// Associations
	Pages []Page `json:"pages,omitempty"`
}

// BeforeSave derives Slug from Name whenever a Category carrying a Name is written.
func (c *Category) BeforeSave(*gorm.DB) error {
	if c.Name == "" {
		return nil
	}

	c.Slug = Slugify(c.Name)
	if c.Slug == "" {
		return fmt.Errorf("%w: %q has no slug", ErrNotValid, c.Name)
	}

	return nil
}

// BeforeCreate rejects a Category without a slug.
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.Slug == "" {
		return fmt.Errorf("%w: category name is required", ErrNotValid)
	}

	return nil
}

// String implements fmt.Stringer.
func (c Category) String() string { return c.Name }

// A Page is a link to an external resource filed under a Category.
type Page struct {
	Model
	CategoryID uint   `gorm:"not null;index" json:"categoryId"`
	Title      string `gorm:"size:128;not null" json:"title"`
	URL        string `gorm:"not null" json:"url"`
	Views      int    `gorm:"not null;default:0" json:"views"`

	// Associations
	Category *Category `json:"category,omitempty"`
}

// String implements fmt.Stringer.
func (p Page) String() string { return p.Title }
