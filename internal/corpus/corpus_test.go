package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `title,ingredients,instructions,food_types,description,average_rating,minutes
Spicy Fried Rice,"rice, egg, chili",Fry everything together.,asian,Quick weeknight dinner,4.5,20
Chocolate Cake,"flour, cocoa, sugar",Bake at 180C.,dessert,Rich chocolate cake,4.8,60
Veg Fried Rice,"rice, peas, carrot",Stir fry the veg.,asian,,,25
`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	snap, err := Load(writeCorpus(t, testCSV))
	require.NoError(t, err)

	require.Equal(t, 3, snap.Len())

	first := snap.Recipe(0)
	assert.Equal(t, "Spicy Fried Rice", first.Title)
	assert.Equal(t, "rice, egg, chili", first.Ingredients)
	assert.Equal(t, "asian", first.FoodTypes)
	assert.Equal(t, 4.5, first.AverageRating)
	assert.Equal(t, 20.0, first.Minutes)

	// Missing cells normalize to empty strings / zero values
	third := snap.Recipe(2)
	assert.Equal(t, "", third.Description)
	assert.Equal(t, 0.0, third.AverageRating)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoad_MissingColumn(t *testing.T) {
	csv := "title,ingredients,instructions,description,average_rating,minutes\na,b,c,d,4,5\n"
	_, err := Load(writeCorpus(t, csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "food_types")
}

func TestLoad_MalformedRow(t *testing.T) {
	csv := testCSV + "Bad Row,x,y,z,w,not-a-number,5\n"
	_, err := Load(writeCorpus(t, csv))
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestLoad_NegativeMinutes(t *testing.T) {
	csv := "title,ingredients,instructions,food_types,description,average_rating,minutes\na,b,c,d,e,4,-5\n"
	_, err := Load(writeCorpus(t, csv))
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestSnapshot_Features(t *testing.T) {
	snap, err := Load(writeCorpus(t, testCSV))
	require.NoError(t, err)

	features := snap.Features()
	require.Len(t, features, 3)

	// title + ingredients + description + instructions, normalized,
	// single-space joined
	assert.Equal(t,
		"spicy fried rice rice, egg, chili quick weeknight dinner fry everything together.",
		features[0])
}

func TestSnapshot_Fingerprint(t *testing.T) {
	a, err := Load(writeCorpus(t, testCSV))
	require.NoError(t, err)
	b, err := Load(writeCorpus(t, testCSV))
	require.NoError(t, err)

	// Same content, same fingerprint
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// Changed content, changed fingerprint (same row count)
	changed := `title,ingredients,instructions,food_types,description,average_rating,minutes
Spicy Fried Rice,"rice, egg, chili",Fry everything together.,asian,Quick weeknight dinner,4.5,20
Carrot Cake,"flour, carrot, sugar",Bake at 180C.,dessert,Moist carrot cake,4.8,60
Veg Fried Rice,"rice, peas, carrot",Stir fry the veg.,asian,,,25
`
	c, err := Load(writeCorpus(t, changed))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestSnapshot_FoodTypes(t *testing.T) {
	csv := `title,ingredients,instructions,food_types,description,average_rating,minutes
A,x,y,"asian, spicy",d,4,5
B,x,y,dessert,d,4,5
C,x,y,asian,d,4,5
`
	snap, err := Load(writeCorpus(t, csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"asian", "dessert", "spicy"}, snap.FoodTypes())
}

func TestSnapshot_FindByTitle(t *testing.T) {
	snap, err := Load(writeCorpus(t, testCSV))
	require.NoError(t, err)

	// Exact match wins over substring match
	idx, ok := snap.FindByTitle("  Veg Fried Rice ")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	// Substring fallback
	idx, ok = snap.FindByTitle("chocolate")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	// "fried rice" is a substring of row 0 first
	idx, ok = snap.FindByTitle("fried rice")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = snap.FindByTitle("lasagna")
	assert.False(t, ok)

	_, ok = snap.FindByTitle("")
	assert.False(t, ok)
}
