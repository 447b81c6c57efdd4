package catalog

import (
	"fmt"
	"strings"
)

// Book is one catalog record.
//
// IDs are assigned by the caller and are not checked for uniqueness; operations act on the first
// book with a matching ID in insertion order. Books handed out by the Store are copies.
type Book struct {
	ID              int
	Title           string
	Author          string
	PublicationYear int
	ISBN            string
	Available       bool
}

// BookData is the descriptive part of a Book which Update replaces.
type BookData struct {
	Title           string
	Author          string
	PublicationYear int
	ISBN            string
}

// Data returns the descriptive part of the book.
func (b Book) Data() BookData {
	return BookData{
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
	}
}

func (b *Book) apply(data BookData) {
	b.Title = data.Title
	b.Author = data.Author
	b.PublicationYear = data.PublicationYear
	b.ISBN = data.ISBN
}

func (b Book) writtenBy(author string) bool {
	return strings.EqualFold(b.Author, author)
}

// String renders the book for listings, e.g. `#1 "War and Peace" by L.N. Tolstoy (1869, ISBN 978-5-17-090335-2), available`.
func (b Book) String() string {
	state := "borrowed"
	if b.Available {
		state = "available"
	}

	return fmt.Sprintf("#%d %q by %s (%d, ISBN %s), %s", b.ID, b.Title, b.Author, b.PublicationYear, b.ISBN, state)
}
