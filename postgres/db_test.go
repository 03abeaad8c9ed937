package postgres_test

import (
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/postgres"
)

func (suite *DBTestSuite) insertCategories() []rango.Category {
	cats := []rango.Category{
		{Name: "Python", Views: 128, Likes: 64},
		{Name: "Django", Views: 64, Likes: 32},
		{Name: "Other Frameworks", Views: 32, Likes: 16},
	}
	suite.Require().Nil(suite.db.Create(&cats))

	return cats
}

func (suite *DBTestSuite) TestCreate() {
	// Arrange
	cat := rango.Category{Name: "Go Lang"}

	// Act
	err := suite.db.Create(&cat)

	// Assert
	suite.Require().Nil(err)
	suite.Require().True(cat.Exists())
	suite.Require().Equal("go-lang", cat.Slug)

	// Act
	err = suite.db.Create(&rango.Category{Name: "Go Lang"})

	// Assert
	suite.Require().ErrorIs(err, rango.ErrExists)

	// Act
	err = suite.db.Create(rango.Category{Name: "Not a pointer"})

	// Assert
	suite.Require().ErrorIs(err, rango.ErrUnaddressable)

	// Act
	err = suite.db.Create(&rango.Page{CategoryID: 999, Title: "Orphan"})

	// Assert
	suite.Require().ErrorIs(err, rango.ErrNotValid)
}

func (suite *DBTestSuite) TestCount() {
	// Arrange
	suite.insertCategories()

	// Act
	count, err := suite.db.Model(new(rango.Category)).Where("likes > ?", 20).Count()

	// Assert
	suite.Require().Nil(err)
	suite.Require().EqualValues(2, count)

	// Act
	count, err = suite.db.Count()

	// Assert
	suite.Require().ErrorIs(err, rango.ErrUnexpected)
	suite.Require().Zero(count)
}

func (suite *DBTestSuite) TestExists() {
	// Arrange
	suite.insertCategories()

	// Act
	ok, err := suite.db.Model(new(rango.Category)).Where("slug = ?", "django").Exists()

	// Assert
	suite.Require().Nil(err)
	suite.Require().True(ok)

	// Act
	ok, err = suite.db.Model(new(rango.Category)).Where("slug = ?", "flask").Exists()

	// Assert
	suite.Require().Nil(err)
	suite.Require().False(ok)
}

func (suite *DBTestSuite) TestFind() {
	// Arrange
	suite.insertCategories()
	var cats []rango.Category

	// Act
	err := suite.db.Order("likes DESC").Limit(2).Find(&cats)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(cats, 2)
	suite.Require().Equal("Python", cats[0].Name)
	suite.Require().Equal("Django", cats[1].Name)

	// Act
	err = suite.db.Where("name = ?", "Flask").Find(&cats)

	// Assert
	suite.Require().ErrorIs(err, rango.ErrNotFound)

	// Act
	err = suite.db.Limit(-1).Find(&cats)

	// Assert
	suite.Require().ErrorIs(err, rango.ErrNotValid)
}

func (suite *DBTestSuite) TestFirst() {
	// Arrange
	cats := suite.insertCategories()
	suite.Require().Nil(suite.db.Create(&rango.Page{CategoryID: cats[0].ID, Title: "Official Python Tutorial", URL: "http://docs.python.org/3/tutorial/"}))

	// Act
	var cat rango.Category
	err := suite.db.Preload("Pages").Where("slug = ?", "python").First(&cat)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Equal(cats[0].ID, cat.ID)
	suite.Require().Len(cat.Pages, 1)

	// Act
	err = suite.db.Where("slug = ?", "flask").First(new(rango.Category))

	// Assert
	suite.Require().ErrorIs(err, rango.ErrNotFound)

	// Act
	err = suite.db.Where("slug = ? AND name = ?", "python", "Python").First(new(rango.Category))

	// Assert
	suite.Require().ErrorIs(err, rango.ErrNotValid)
}

func (suite *DBTestSuite) TestUpdate() {
	// Arrange
	cats := suite.insertCategories()

	// Act
	err := suite.db.Model(new(rango.Category)).Where("id = ?", cats[1].ID).Update(postgres.Updates{"likes": 100})

	// Assert
	suite.Require().Nil(err)
	var cat rango.Category
	suite.Require().Nil(suite.db.Where("id = ?", cats[1].ID).First(&cat))
	suite.Require().Equal(100, cat.Likes)

	// Act
	err = suite.db.Model(new(rango.Category)).Where("id = ?", 999).Update(postgres.Updates{"likes": 1})

	// Assert
	suite.Require().ErrorIs(err, rango.ErrNotFound)

	// Act
	err = suite.db.Model(new(rango.Category)).Update(postgres.Updates{})

	// Assert
	suite.Require().ErrorIs(err, rango.ErrMissingData)
}

func (suite *DBTestSuite) TestTransaction() {
	// Arrange
	tx := suite.db.Begin()

	// Act
	suite.Require().Nil(tx.Create(&rango.Category{Name: "Rolled Back"}))
	suite.Require().Nil(tx.Rollback())

	// Assert
	ok, err := suite.db.Model(new(rango.Category)).Where("name = ?", "Rolled Back").Exists()
	suite.Require().Nil(err)
	suite.Require().False(ok)
}
