package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/travel-planner/internal/domain/planner"
)

func TestEmbeddedCatalogBuilds(t *testing.T) {
	doc, err := EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)

	catalog, err := planner.NewCatalog(doc.CatalogData)
	require.NoError(t, err)

	moderate, ok := catalog.Budget(planner.BudgetModerate)
	require.True(t, ok)
	require.Equal(t, int64(8300+4980+6640+3320), moderate.Daily())

	bali := catalog.NearbyPlaces("Bali")
	require.Len(t, bali, 3)
	require.Equal(t, "Ubud Sacred Monkey Forest", bali[0].Name)
	require.Equal(t, "Tanah Lot Temple", bali[1].Name)
	require.Equal(t, "Rice Terraces", bali[2].Name)
	require.Len(t, bali[0].Photos, 4)

	require.Len(t, catalog.Activities(planner.InterestFood), 4)
}

func TestEmbeddedDestinations(t *testing.T) {
	doc, err := EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, doc.Destinations, 7)
	require.Equal(t, []string{"paris", "tokyo", "bali", "santorini", "newyork", "dubai", "venice"}, doc.Featured)

	paris := doc.Destinations["paris"]
	require.Equal(t, "Paris, France", paris.Name)
	require.Equal(t, "City of Love", paris.Subtitle)
	require.NotEmpty(t, paris.Image)
	require.Len(t, paris.Highlights, 5)
	require.Equal(t, "Versailles Palace", paris.NearbyPlaces[0].Name)

	// The detail panel rates drift from the planner gallery on purpose.
	require.Equal(t, "₹400", doc.Destinations["bali"].NearbyPlaces[0].Rate)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
activities:
  culture: ["Museum"]
budgets:
  budget: {accommodation: 1, food: 1, activities: 1, transport: 1}
places:
  oslo:
    - name: "Fjord"
      rate: "₹10"
destinations:
  oslo:
    name: "Oslo, Norway"
`), 0o600))

	doc, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Museum"}, doc.Activities[planner.InterestCulture])
	require.Equal(t, "Fjord", doc.Places["oslo"][0].Name)
	require.Equal(t, "Oslo, Norway", doc.Destinations["oslo"].Name)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load(context.Background())
	require.Error(t, err)
}
