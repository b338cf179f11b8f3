// internal/menu/menu_test.go
package menu_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"biblioteka/internal/catalog"
	"biblioteka/internal/menu"
	"biblioteka/internal/storage"
)

// run feeds the given lines to a menu wired to a real service over a
// temp-dir file store and returns everything it printed.
func run(t *testing.T, input string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library_data.json")
	store := storage.NewFileStore(path, zap.NewNop())
	svc, err := catalog.NewService(store, zap.NewNop())
	require.NoError(t, err)

	var out bytes.Buffer
	m := menu.New(svc, strings.NewReader(input), &out)
	require.NoError(t, m.Run())
	return out.String()
}

func TestAddAndList(t *testing.T) {
	out := run(t, "1\nDune\nFrank Herbert\n1965\n4\n7\n")
	assert.Contains(t, out, `Added "Dune" with ID 1.`)
	assert.Contains(t, out, "ID: 1, Title: Dune, Author: Frank Herbert, Year: 1965, Status: available")
	assert.Contains(t, out, "Bye.")
}

func TestListEmptyCatalog(t *testing.T) {
	out := run(t, "4\n7\n")
	assert.Contains(t, out, "No books in the catalog.")
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	out := run(t, "1\n   \nHerbert\n1965\n4\n7\n")
	assert.Contains(t, out, "Title and author must not be empty.")
	assert.Contains(t, out, "No books in the catalog.")
}

func TestAddRejectsImplausibleYear(t *testing.T) {
	out := run(t, "1\nDune\nHerbert\n1453\n7\n")
	assert.Contains(t, out, "The year must be between 1500 and")
}

func TestAddRejectsNonNumericYear(t *testing.T) {
	out := run(t, "1\nDune\nHerbert\nsoon\n7\n")
	assert.Contains(t, out, "The year must be a number.")
}

func TestRemove(t *testing.T) {
	out := run(t, "1\nDune\nHerbert\n1965\n2\n1\n4\n7\n")
	assert.Contains(t, out, "Book removed.")
	assert.Contains(t, out, "No books in the catalog.")
}

func TestRemoveUnknownID(t *testing.T) {
	out := run(t, "2\n9\n7\n")
	assert.Contains(t, out, "No book with ID 9.")
}

func TestRemoveNonNumericID(t *testing.T) {
	out := run(t, "2\nfirst\n7\n")
	assert.Contains(t, out, "The ID must be a number.")
}

func TestSearch(t *testing.T) {
	out := run(t, "1\nDune\nFrank Herbert\n1965\n3\nherbert\n3\nasimov\n7\n")
	assert.Contains(t, out, "ID: 1, Title: Dune, Author: Frank Herbert, Year: 1965, Status: available")
	assert.Contains(t, out, "No books found.")
}

func TestBorrowAndReturn(t *testing.T) {
	out := run(t, "1\nDune\nHerbert\n1965\n5\n1\n5\n1\n6\n1\n6\n1\n7\n")
	assert.Contains(t, out, `"Dune" is borrowed.`)
	assert.Contains(t, out, `"Dune" is already borrowed.`)
	assert.Contains(t, out, `"Dune" is back on the shelf.`)
	assert.Contains(t, out, `"Dune" is already on the shelf.`)
}

func TestBorrowUnknownID(t *testing.T) {
	out := run(t, "5\n3\n7\n")
	assert.Contains(t, out, "No book with ID 3.")
}

func TestUnknownChoice(t *testing.T) {
	out := run(t, "9\n7\n")
	assert.Contains(t, out, "Unknown choice, try again.")
}

func TestEndOfInputQuits(t *testing.T) {
	out := run(t, "")
	assert.Contains(t, out, "Menu:")
}

// The catalog written by one session is what the next session sees.
func TestStatePersistsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library_data.json")

	store := storage.NewFileStore(path, zap.NewNop())
	svc, err := catalog.NewService(store, zap.NewNop())
	require.NoError(t, err)
	var out bytes.Buffer
	m := menu.New(svc, strings.NewReader("1\nDune\nHerbert\n1965\n5\n1\n7\n"), &out)
	require.NoError(t, m.Run())

	store = storage.NewFileStore(path, zap.NewNop())
	svc, err = catalog.NewService(store, zap.NewNop())
	require.NoError(t, err)
	out.Reset()
	m = menu.New(svc, strings.NewReader("4\n7\n"), &out)
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "ID: 1, Title: Dune, Author: Herbert, Year: 1965, Status: borrowed")
}
