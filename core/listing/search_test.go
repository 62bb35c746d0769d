package listing_test

import (
	"math/rand"
	"testing"

	"inventory-manager/core/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTarget(t *testing.T, f listing.Field, raw string) listing.Value {
	t.Helper()
	v, err := listing.ParseTarget(f, raw)
	require.NoError(t, err)
	return v
}

func TestSearch_Identifier(t *testing.T) {
	in := []*item{
		{sku: "XYZ9"},
		{sku: "ABC123"},
		{sku: "lmn4"},
	}
	sorted, err := listing.Sort(in, listing.FieldIdentifier)
	require.NoError(t, err)

	got, err := listing.Search(sorted, mustTarget(t, listing.FieldIdentifier, "ABC123"), listing.FieldIdentifier)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Same(t, in[1], got[0])

	got, err = listing.Search(sorted, mustTarget(t, listing.FieldIdentifier, "nope"), listing.FieldIdentifier)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_ExactNotPrefix(t *testing.T) {
	in := []*item{{sku: "1", name: "Hammer"}, {sku: "2", name: "Hammer Drill"}}
	sorted, err := listing.Sort(in, listing.FieldName)
	require.NoError(t, err)

	got, err := listing.Search(sorted, mustTarget(t, listing.FieldName, "hammer"), listing.FieldName)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hammer", got[0].name)
}

func TestSearch_EdgeCases(t *testing.T) {
	got, err := listing.Search([]*item{}, listing.Int(1), listing.FieldQuantity)
	require.NoError(t, err)
	assert.Empty(t, got)

	all := withQty(7, 7, 7, 7, 7)
	got, err = listing.Search(all, listing.Int(7), listing.FieldQuantity)
	require.NoError(t, err)
	assert.Equal(t, all, got)
}

func TestSearch_Duplicates(t *testing.T) {
	in := withQty(4, 9, 4, 1, 4, 9)
	sorted, err := listing.Sort(in, listing.FieldQuantity)
	require.NoError(t, err)

	got, err := listing.Search(sorted, listing.Int(4), listing.FieldQuantity)
	require.NoError(t, err)
	// Returned in sorted (stable) order.
	assert.Equal(t, []*item{in[0], in[2], in[4]}, got)
}

func TestSearch_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 30; round++ {
		n := 1 + rng.Intn(30)
		in := make([]*item, n)
		for i := range in {
			in[i] = &item{sku: "s", qty: int64(rng.Intn(6))}
		}
		sorted, err := listing.Sort(in, listing.FieldQuantity)
		require.NoError(t, err)

		for _, r := range sorted {
			target, err := listing.Resolve(r, listing.FieldQuantity)
			require.NoError(t, err)

			got, err := listing.Search(sorted, target, listing.FieldQuantity)
			require.NoError(t, err)

			// Completeness.
			assert.Contains(t, got, r)

			// No false positives.
			for _, g := range got {
				assert.Equal(t, r.qty, g.qty)
			}

			want := 0
			for _, s := range sorted {
				if s.qty == r.qty {
					want++
				}
			}
			assert.Len(t, got, want)
		}
	}
}

func TestSearch_ResolveError(t *testing.T) {
	in := []*item{{sku: "a"}}
	_, err := listing.Search(in, listing.Text("x"), listing.FieldSupplier)
	assert.ErrorIs(t, err, listing.ErrMissingReference)
}

func TestFind(t *testing.T) {
	in := []*item{
		{sku: "A", category: "Tools"},
		{sku: "B", category: "garden"},
		{sku: "C", category: "tools"},
	}

	got, err := listing.Find(in, listing.FieldCategory, "  TOOLS ")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].sku)
	assert.Equal(t, "C", got[1].sku)

	_, err = listing.Find(in, listing.FieldQuantity, "many")
	assert.ErrorIs(t, err, listing.ErrInvalidTarget)
}
