package cart

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promosur.cl/app/internal/localstore"
	"promosur.cl/app/internal/modules/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func polera() catalog.Product {
	return catalog.Product{ID: 1, Name: "Polera Premium", SKU: "POL-001", BasePrice: 8000, Stock: 120}
}

func taza() catalog.Product {
	return catalog.Product{ID: 2, Name: "Taza Corporativa", SKU: "MUG-001", BasePrice: 3500, Stock: 300}
}

func TestAddMergesOnIdentityKey(t *testing.T) {
	s := NewStore(localstore.NewMem(), testLogger())

	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 2, SelectedColor: strPtr("rojo"), SelectedSize: strPtr("M")}))
	require.NoError(t, s.Add(Item{Product: taza(), Quantity: 1}))
	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 3, SelectedColor: strPtr("rojo"), SelectedSize: strPtr("M")}))

	items := s.Items()
	require.Len(t, items, 2)
	// The merged line keeps its original position.
	assert.Equal(t, 1, items[0].Product.ID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 2, items[1].Product.ID)
}

func TestAddDistinctVariantsAppend(t *testing.T) {
	s := NewStore(localstore.NewMem(), testLogger())

	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 1, SelectedColor: strPtr("rojo"), SelectedSize: strPtr("M")}))
	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 1, SelectedColor: strPtr("rojo"), SelectedSize: strPtr("L")}))
	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 1, SelectedColor: strPtr("azul"), SelectedSize: strPtr("M")}))
	// Unset and empty string are different variants.
	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 1, SelectedColor: strPtr(""), SelectedSize: strPtr("M")}))
	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 1, SelectedSize: strPtr("M")}))

	assert.Len(t, s.Items(), 5)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	s := NewStore(localstore.NewMem(), testLogger())

	assert.Error(t, s.Add(Item{Product: polera(), Quantity: 0}))
	assert.Error(t, s.Add(Item{Product: polera(), Quantity: -2}))
	assert.Empty(t, s.Items())
}

func TestRemoveMatchesAllThreeFields(t *testing.T) {
	s := NewStore(localstore.NewMem(), testLogger())

	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 1, SelectedColor: strPtr("rojo"), SelectedSize: strPtr("M")}))
	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 2, SelectedColor: strPtr("rojo"), SelectedSize: strPtr("L")}))
	require.NoError(t, s.Add(Item{Product: taza(), Quantity: 3}))

	require.NoError(t, s.Remove(1, strPtr("rojo"), strPtr("M")))

	items := s.Items()
	require.Len(t, items, 2)
	// The same product's other variant survives.
	assert.Equal(t, "L", *items[0].SelectedSize)
	assert.Equal(t, 2, items[1].Product.ID)

	// A nil option does not match an explicit value.
	require.NoError(t, s.Remove(1, strPtr("rojo"), nil))
	assert.Len(t, s.Items(), 2)

	// Removing a missing key is a no-op.
	require.NoError(t, s.Remove(99, nil, nil))
	assert.Len(t, s.Items(), 2)
}

func TestTotalItems(t *testing.T) {
	s := NewStore(localstore.NewMem(), testLogger())
	assert.Zero(t, s.TotalItems())

	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 2, SelectedSize: strPtr("M")}))
	require.NoError(t, s.Add(Item{Product: taza(), Quantity: 4}))
	assert.Equal(t, 6, s.TotalItems())

	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 1, SelectedSize: strPtr("M")}))
	assert.Equal(t, 7, s.TotalItems())

	require.NoError(t, s.Remove(2, nil, nil))
	assert.Equal(t, 3, s.TotalItems())
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage := localstore.NewMem()

	s := NewStore(storage, testLogger())
	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 2, SelectedColor: strPtr("rojo"), SelectedSize: strPtr("M")}))
	require.NoError(t, s.Add(Item{Product: taza(), Quantity: 1}))

	rehydrated := NewStore(storage, testLogger())
	assert.Equal(t, s.Items(), rehydrated.Items())
	assert.Equal(t, 3, rehydrated.TotalItems())
}

func TestPersistenceRoundTripThroughFileStore(t *testing.T) {
	storage := localstore.NewFile(t.TempDir(), []byte("secret"))

	s := NewStore(storage, testLogger())
	require.NoError(t, s.Add(Item{Product: polera(), Quantity: 2, SelectedColor: strPtr("rojo")}))

	rehydrated := NewStore(storage, testLogger())
	items := rehydrated.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Polera Premium", items[0].Product.Name)
	require.NotNil(t, items[0].SelectedColor)
	assert.Equal(t, "rojo", *items[0].SelectedColor)
	assert.Nil(t, items[0].SelectedSize)
}

func TestHydrationDefaultsToEmptyCart(t *testing.T) {
	storage := localstore.NewMem()
	require.NoError(t, storage.Set(StorageKey, []byte("{not json")))

	s := NewStore(storage, testLogger())
	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalItems())
}

func TestSnapshotIsImmuneToCatalogChanges(t *testing.T) {
	s := NewStore(localstore.NewMem(), testLogger())

	p := polera()
	require.NoError(t, s.Add(Item{Product: p, Quantity: 1}))

	p.BasePrice = 99999
	assert.Equal(t, 8000, s.Items()[0].Product.BasePrice)
}
