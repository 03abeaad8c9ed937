package store

import (
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/postgres"
	"gorm.io/gorm"
)

// Migrations lists, in order, every migration rango's database needs.
func Migrations() []postgres.Migration {
	return []postgres.Migration{
		{
			Key: "20240101000000_create_tables",
			Executor: func(db *gorm.DB) error {
				return db.AutoMigrate(
					new(rango.Category),
					new(rango.Page),
					new(rango.User),
					new(rango.UserProfile),
				)
			},
		},
		{
			Key: "20240102000000_index_top_lists",
			Executor: func(db *gorm.DB) error {
				if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_categories_likes ON categories (likes DESC)").Error; err != nil {
					return err
				}

				return db.Exec("CREATE INDEX IF NOT EXISTS idx_pages_views ON pages (views DESC)").Error
			},
		},
	}
}
