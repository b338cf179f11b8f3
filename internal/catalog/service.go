// internal/catalog/service.go
package catalog

// Outcome tells how a mutation ended. Failing to locate a record or
// asking for a status a book already has are normal results, not errors;
// errors are reserved for persistence failures.
type Outcome int

const (
	OutcomeDone Outcome = iota
	OutcomeNotFound
	OutcomeUnchanged
)

// Store persists the whole collection as one document. A Load of a
// missing, empty or unreadable-but-recoverable document reports an
// empty collection; Save replaces the document entirely.
type Store interface {
	Load() ([]Book, error)
	Save(books []Book) error
}

// Service defines the interface for the catalog service.
type Service interface {
	Add(title, author string, year int) (Book, error)
	Remove(id int) (Outcome, error)
	Search(term string) []Book
	ChangeStatus(id int, status Status) (Outcome, error)
	Borrow(id int) (Book, Outcome, error)
	Return(id int) (Book, Outcome, error)
	Get(id int) (Book, bool)
	List() []Book
}
