// internal/menu/menu.go
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"biblioteka/internal/catalog"
)

// Menu is the interactive console loop around the catalog service. It
// reads from in and writes to out, so tests can drive it without a TTY.
type Menu struct {
	svc      catalog.Service
	in       *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
}

// bookInput is what the add action collects before a record is created.
// Validation lives here, not in the service: the catalog itself stays
// permissive about record contents.
type bookInput struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Year   int
}

// New builds a menu over the given service and streams.
func New(svc catalog.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc:      svc,
		in:       bufio.NewScanner(in),
		out:      out,
		validate: validator.New(),
	}
}

// Run drives the menu until the user quits or input ends. The only
// errors it returns are fatal persistence failures from the service.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.readLine("Choose an action: ")
		if !ok {
			return nil
		}
		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = m.addBook()
		case "2":
			err = m.removeBook()
		case "3":
			m.searchBooks()
		case "4":
			m.listBooks()
		case "5":
			err = m.borrowBook()
		case "6":
			err = m.returnBook()
		case "7":
			fmt.Fprintln(m.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown choice, try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Menu:")
	fmt.Fprintln(m.out, "1. Add a book")
	fmt.Fprintln(m.out, "2. Remove a book")
	fmt.Fprintln(m.out, "3. Search books")
	fmt.Fprintln(m.out, "4. List all books")
	fmt.Fprintln(m.out, "5. Borrow a book")
	fmt.Fprintln(m.out, "6. Return a book")
	fmt.Fprintln(m.out, "7. Quit")
}

func (m *Menu) addBook() error {
	title, ok := m.readLine("Book title: ")
	if !ok {
		return nil
	}
	author, ok := m.readLine("Book author: ")
	if !ok {
		return nil
	}
	yearText, ok := m.readLine("Publication year: ")
	if !ok {
		return nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearText))
	if err != nil {
		fmt.Fprintln(m.out, "The year must be a number.")
		return nil
	}

	in := bookInput{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Year:   year,
	}
	if err := m.validate.Struct(in); err != nil {
		fmt.Fprintln(m.out, "Title and author must not be empty.")
		return nil
	}
	maxYear := time.Now().Year()
	if err := m.validate.Var(in.Year, fmt.Sprintf("gte=1500,lte=%d", maxYear)); err != nil {
		fmt.Fprintf(m.out, "The year must be between 1500 and %d.\n", maxYear)
		return nil
	}

	book, err := m.svc.Add(in.Title, in.Author, in.Year)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Added %q with ID %d.\n", book.Title, book.ID)
	return nil
}

func (m *Menu) removeBook() error {
	id, ok := m.readID("ID of the book to remove: ")
	if !ok {
		return nil
	}
	outcome, err := m.svc.Remove(id)
	if err != nil {
		return err
	}
	if outcome == catalog.OutcomeNotFound {
		fmt.Fprintf(m.out, "No book with ID %d.\n", id)
		return nil
	}
	fmt.Fprintln(m.out, "Book removed.")
	return nil
}

func (m *Menu) searchBooks() {
	term, ok := m.readLine("Title, author or year to search for: ")
	if !ok {
		return
	}
	books := m.svc.Search(strings.TrimSpace(term))
	if len(books) == 0 {
		fmt.Fprintln(m.out, "No books found.")
		return
	}
	for _, b := range books {
		fmt.Fprintln(m.out, b)
	}
}

func (m *Menu) listBooks() {
	books := m.svc.List()
	if len(books) == 0 {
		fmt.Fprintln(m.out, "No books in the catalog.")
		return
	}
	for _, b := range books {
		fmt.Fprintln(m.out, b)
	}
}

func (m *Menu) borrowBook() error {
	id, ok := m.readID("ID of the book to borrow: ")
	if !ok {
		return nil
	}
	book, outcome, err := m.svc.Borrow(id)
	if err != nil {
		return err
	}
	switch outcome {
	case catalog.OutcomeNotFound:
		fmt.Fprintf(m.out, "No book with ID %d.\n", id)
	case catalog.OutcomeUnchanged:
		fmt.Fprintf(m.out, "%q is already borrowed.\n", book.Title)
	default:
		fmt.Fprintf(m.out, "%q is borrowed.\n", book.Title)
	}
	return nil
}

func (m *Menu) returnBook() error {
	id, ok := m.readID("ID of the book to return: ")
	if !ok {
		return nil
	}
	book, outcome, err := m.svc.Return(id)
	if err != nil {
		return err
	}
	switch outcome {
	case catalog.OutcomeNotFound:
		fmt.Fprintf(m.out, "No book with ID %d.\n", id)
	case catalog.OutcomeUnchanged:
		fmt.Fprintf(m.out, "%q is already on the shelf.\n", book.Title)
	default:
		fmt.Fprintf(m.out, "%q is back on the shelf.\n", book.Title)
	}
	return nil
}

// readLine prompts and reads one line; ok is false once input ends.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// readID reads an integer ID. A non-numeric answer is reported and
// aborts the current action, it never aborts the program.
func (m *Menu) readID(prompt string) (int, bool) {
	text, ok := m.readLine(prompt)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		fmt.Fprintln(m.out, "The ID must be a number.")
		return 0, false
	}
	return id, true
}
