// internal/catalog/implementation.go
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// service implements the Service interface. It owns the in-memory
// collection; the store holds no independent copy. Every successful
// mutation rewrites the whole document through the store, and a failed
// write rolls the in-memory change back so memory and disk agree.
type service struct {
	store Store
	log   *zap.Logger
	books []Book
}

// NewService loads the collection from the store and returns the service.
func NewService(store Store, log *zap.Logger) (Service, error) {
	books, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &service{store: store, log: log, books: books}, nil
}

// Add creates a record with the next free ID and status available.
// Field contents are not validated here; that is interactive policy.
func (s *service) Add(title, author string, year int) (Book, error) {
	book := Book{
		ID:     s.nextID(),
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}
	s.books = append(s.books, book)
	if err := s.store.Save(s.books); err != nil {
		s.books = s.books[:len(s.books)-1]
		return Book{}, fmt.Errorf("save catalog: %w", err)
	}
	s.log.Info("book added", zap.Int("id", book.ID), zap.String("title", book.Title))
	return book, nil
}

// nextID is max(existing ids, 0) + 1. An ID freed by Remove becomes
// eligible again once the maximum shifts below it.
func (s *service) nextID() int {
	max := 0
	for _, b := range s.books {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

func (s *service) Remove(id int) (Outcome, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return OutcomeNotFound, nil
	}
	books := make([]Book, 0, len(s.books)-1)
	books = append(books, s.books[:idx]...)
	books = append(books, s.books[idx+1:]...)
	if err := s.store.Save(books); err != nil {
		return OutcomeDone, fmt.Errorf("save catalog: %w", err)
	}
	s.books = books
	s.log.Info("book removed", zap.Int("id", id))
	return OutcomeDone, nil
}

// Search matches term as a case-insensitive substring of title or
// author, or as a plain substring of the decimal year. Results keep
// insertion order; no match is an empty slice.
func (s *service) Search(term string) []Book {
	needle := strings.ToLower(term)
	out := make([]Book, 0)
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) ||
			strings.Contains(strconv.Itoa(b.Year), term) {
			out = append(out, b)
		}
	}
	return out
}

func (s *service) ChangeStatus(id int, status Status) (Outcome, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return OutcomeNotFound, nil
	}
	if s.books[idx].Status == status {
		// Already there; skip the rewrite.
		return OutcomeUnchanged, nil
	}
	prev := s.books[idx].Status
	s.books[idx].Status = status
	if err := s.store.Save(s.books); err != nil {
		s.books[idx].Status = prev
		return OutcomeDone, fmt.Errorf("save catalog: %w", err)
	}
	s.log.Info("status changed", zap.Int("id", id), zap.Stringer("status", status))
	return OutcomeDone, nil
}

// Borrow marks the book borrowed. It also reports the book so the
// caller can phrase the "already borrowed" case with its title.
func (s *service) Borrow(id int) (Book, Outcome, error) {
	return s.shift(id, StatusBorrowed)
}

// Return puts the book back on the shelf.
func (s *service) Return(id int) (Book, Outcome, error) {
	return s.shift(id, StatusAvailable)
}

func (s *service) shift(id int, status Status) (Book, Outcome, error) {
	outcome, err := s.ChangeStatus(id, status)
	if err != nil || outcome == OutcomeNotFound {
		return Book{}, outcome, err
	}
	book, _ := s.Get(id)
	return book, outcome, nil
}

// Get looks a record up by ID with no side effects.
func (s *service) Get(id int) (Book, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Book{}, false
	}
	return s.books[idx], true
}

// List returns a copy of the collection in insertion order.
func (s *service) List() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *service) indexOf(id int) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
