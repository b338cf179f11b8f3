// internal/catalog/domain.go
package catalog

import (
	"encoding/json"
	"fmt"
)

// Status is the availability state of a book. The two constants below
// are the only valid values; anything else fails to marshal, and an
// unknown string in the stored document fails to unmarshal.
type Status int

const (
	StatusAvailable Status = iota
	StatusBorrowed
)

// Display strings, also the persisted representation.
const (
	statusAvailableText = "available"
	statusBorrowedText  = "borrowed"
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return statusAvailableText
	case StatusBorrowed:
		return statusBorrowedText
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON persists the status as its display string, not a number.
func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case StatusAvailable, StatusBorrowed:
		return json.Marshal(s.String())
	}
	return nil, fmt.Errorf("invalid status %d", int(s))
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	switch text {
	case statusAvailableText:
		*s = StatusAvailable
	case statusBorrowedText:
		*s = StatusBorrowed
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Book is a single catalog record. The ID is assigned by the service at
// creation; only Status changes afterwards.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}

// String renders the one-line form the menu prints.
func (b Book) String() string {
	return fmt.Sprintf("ID: %d, Title: %s, Author: %s, Year: %d, Status: %s",
		b.ID, b.Title, b.Author, b.Year, b.Status)
}
