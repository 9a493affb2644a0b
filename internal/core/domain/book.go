package domain

const (
	StatusAvailable = "Available"
	StatusBorrowed  = "Borrowed"
)

// Book is a single catalog entry. Available is false exactly while one user
// holds a Loan for it.
type Book struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// Status returns the display status derived from Available.
func (b Book) Status() string {
	if b.Available {
		return StatusAvailable
	}
	return StatusBorrowed
}

// Catalog is the in-memory, ordered collection of books.
type Catalog struct {
	books []Book
}

// NewCatalog builds a catalog from previously persisted books, keeping order.
func NewCatalog(books []Book) *Catalog {
	c := &Catalog{books: make([]Book, len(books))}
	copy(c.books, books)
	return c
}

// Add appends a book. Ids are unique within a catalog.
func (c *Catalog) Add(b Book) error {
	if _, err := c.Find(b.ID); err == nil {
		return ErrDuplicateBook
	}
	c.books = append(c.books, b)
	return nil
}

// Find returns the stored book so callers inside the core can flip its
// availability in place.
func (c *Catalog) Find(id string) (*Book, error) {
	for i := range c.books {
		if c.books[i].ID == id {
			return &c.books[i], nil
		}
	}
	return nil, ErrBookNotFound
}

// Books returns a snapshot of the catalog in insertion order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int { return len(c.books) }
