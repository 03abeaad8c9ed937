package seed_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/logger"
	"github.com/xy-planning-network/rango/seed"
	"github.com/xy-planning-network/rango/store/mock"
)

func TestPopulate(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := mock.NewMockStore(ctrl)
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)))

	var pages int
	for i, fix := range seed.Fixtures() {
		cat := rango.Category{Name: fix.Name, Slug: rango.Slugify(fix.Name), Views: fix.Views, Likes: fix.Likes}
		cat.ID = uint(i + 1)
		s.EXPECT().UpsertCategory(ctx, fix.Name, fix.Views, fix.Likes).Return(cat, nil)
		for _, p := range fix.Pages {
			s.EXPECT().
				UpsertPage(ctx, cat, p.Title, p.URL, 0).
				Return(rango.Page{CategoryID: cat.ID, Title: p.Title, URL: p.URL}, nil)
			pages++
		}
	}

	// Act
	err := seed.Populate(ctx, s, l)

	// Assert
	require.Nil(t, err)
	require.Equal(t, 8, pages)
	require.Contains(t, b.String(), "- Python: Official Python Tutorial")
	require.Contains(t, b.String(), "- Other Frameworks: Flask")
}

func TestPopulateFixtures(t *testing.T) {
	fixtures := seed.Fixtures()
	require.Len(t, fixtures, 3)

	expected := map[string][3]int{
		"Python":           {128, 64, 3},
		"Django":           {64, 32, 3},
		"Other Frameworks": {32, 16, 2},
	}
	for _, fix := range fixtures {
		e, ok := expected[fix.Name]
		require.True(t, ok, fix.Name)
		require.Equal(t, e[0], fix.Views)
		require.Equal(t, e[1], fix.Likes)
		require.Len(t, fix.Pages, e[2])
	}
}

func TestPopulateError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := mock.NewMockStore(ctrl)
	l := logger.New(logger.WithLogger(log.New(new(bytes.Buffer), "", 0)))
	boom := errors.New("boom")
	s.EXPECT().UpsertCategory(ctx, "Python", 128, 64).Return(rango.Category{}, boom)

	// Act
	err := seed.Populate(ctx, s, l)

	// Assert
	require.ErrorIs(t, err, boom)
}
