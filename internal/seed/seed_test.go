package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	intdb "travelapi/internal/db"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalog = `
destinations:
  - id: kyoto
    name: Kyoto
    banner_image: kyoto-banner.jpg
    image: kyoto.jpg
    teaser: Temples and tea houses
    description: The old imperial capital.
    gallery_images:
      - kyoto-1.jpg
      - kyoto-2.jpg
    events:
      - name: Gion Matsuri
        date: July
        description: Float parade
  - id: oslo
    name: Oslo
`

func TestParse(t *testing.T) {
	list, err := Parse(strings.NewReader(catalog))
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, models.Destination{
		ID:            "kyoto",
		Name:          "Kyoto",
		BannerImage:   "kyoto-banner.jpg",
		Image:         "kyoto.jpg",
		Teaser:        "Temples and tea houses",
		Description:   "The old imperial capital.",
		GalleryImages: "kyoto-1.jpg,kyoto-2.jpg",
		Events:        `[{"name":"Gion Matsuri","date":"July","description":"Float parade"}]`,
	}, list[0])
	assert.Equal(t, "", list[1].GalleryImages)
	assert.Equal(t, "[]", list[1].Events)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	for name, doc := range map[string]string{
		"missing id":      "destinations:\n  - name: Kyoto\n",
		"duplicate id":    "destinations:\n  - {id: a, name: A}\n  - {id: a, name: B}\n",
		"comma in image":  "destinations:\n  - {id: a, name: A, gallery_images: ['x,y.jpg']}\n",
		"unknown field":   "destinations:\n  - {id: a, name: A, price: 10}\n",
		"not a yaml list": "destinations: 12\n",
	} {
		_, err := Parse(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

func TestParseEmpty(t *testing.T) {
	list, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	list, err := Parse(strings.NewReader(catalog))
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO destinations").WithArgs("kyoto", "Kyoto", "kyoto-banner.jpg", "kyoto.jpg",
		"Temples and tea houses", "The old imperial capital.", "kyoto-1.jpg,kyoto-2.jpg", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO destinations").WillReturnError(errors.New("disk full"))

	n, err := Apply(context.Background(), repositories.DestinationRepository{DB: db, Dialect: intdb.MySQL}, list)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
