package fixtures

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// Books 内置图书数据(catalog.source=fixtures时使用,也用于MySQL初始数据)
// 每次调用返回新的切片,调用方可以随意修改
func Books() []book.Book {
	return []book.Book{
		{
			ID:            "1",
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			Description:   "A story of the fabulously wealthy Jay Gatsby and his love for the beautiful Daisy Buchanan.",
			ISBN:          "978-0743273565",
			CoverImage:    "https://example.com/gatsby.jpg",
			Price:         1599,
			Category:      "Fiction",
			InStock:       true,
			Rating:        4.5,
			ReviewCount:   128,
			Stock:         50,
			Format:        book.FormatPaperback,
			PublishedDate: "1925-04-10",
		},
		{
			ID:            "2",
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			Description:   "A gripping tale of racial injustice and childhood innocence in the American South.",
			ISBN:          "978-0061120084",
			CoverImage:    "https://example.com/mockingbird.jpg",
			Price:         1899,
			SalePrice:     book.Int64Ptr(1499),
			Category:      "Fiction",
			InStock:       true,
			Rating:        4.8,
			ReviewCount:   342,
			Stock:         8,
			Format:        book.FormatHardcover,
			PublishedDate: "1960-07-11",
		},
		{
			ID:            "3",
			Title:         "1984",
			Author:        "George Orwell",
			Description:   "A dystopian novel about surveillance, totalitarianism and the manipulation of truth.",
			ISBN:          "978-0451524935",
			CoverImage:    "https://example.com/1984.jpg",
			Price:         1299,
			Category:      "Science Fiction",
			InStock:       true,
			Rating:        4.7,
			ReviewCount:   289,
			Stock:         20,
			Format:        book.FormatPaperback,
			PublishedDate: "1949-06-08",
		},
		{
			ID:            "4",
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			Description:   "Elizabeth Bennet navigates manners, morality and marriage in Regency England.",
			ISBN:          "978-0141439518",
			CoverImage:    "https://example.com/pride.jpg",
			Price:         1499,
			Category:      "Romance",
			InStock:       true,
			Rating:        4.6,
			ReviewCount:   201,
			Stock:         12,
			Format:        book.FormatPaperback,
			PublishedDate: "1813-01-28",
		},
		{
			ID:            "5",
			Title:         "Dune",
			Author:        "Frank Herbert",
			Description:   "On the desert planet Arrakis, Paul Atreides is drawn into a war over the most valuable substance in the universe.",
			ISBN:          "978-0441172719",
			CoverImage:    "https://example.com/dune.jpg",
			Price:         2199,
			SalePrice:     book.Int64Ptr(1699),
			Category:      "Science Fiction",
			InStock:       true,
			Rating:        4.6,
			ReviewCount:   175,
			Stock:         15,
			Format:        book.FormatHardcover,
			PublishedDate: "1965-08-01",
		},
		{
			ID:            "6",
			Title:         "Sapiens: A Brief History of Humankind",
			Author:        "Yuval Noah Harari",
			Description:   "An exploration of how Homo sapiens came to dominate the planet.",
			ISBN:          "978-0062316097",
			CoverImage:    "https://example.com/sapiens.jpg",
			Price:         2499,
			Category:      "History",
			InStock:       true,
			Rating:        4.4,
			ReviewCount:   96,
			Stock:         30,
			Format:        book.FormatHardcover,
			PublishedDate: "2015-02-10",
		},
		{
			ID:            "7",
			Title:         "The Pragmatic Programmer",
			Author:        "David Thomas, Andrew Hunt",
			Description:   "Practical advice for software developers on craftsmanship and career.",
			ISBN:          "978-0135957059",
			CoverImage:    "https://example.com/pragmatic.jpg",
			Price:         4999,
			Category:      "Technology",
			InStock:       true,
			Rating:        4.8,
			ReviewCount:   64,
			Stock:         10,
			Format:        book.FormatHardcover,
			PublishedDate: "2019-09-13",
		},
		{
			ID:            "8",
			Title:         "Clean Code",
			Author:        "Robert C. Martin",
			Description:   "A handbook of agile software craftsmanship.",
			ISBN:          "978-0132350884",
			CoverImage:    "https://example.com/clean-code.jpg",
			Price:         3999,
			SalePrice:     book.Int64Ptr(2999),
			Category:      "Technology",
			InStock:       false,
			Rating:        4.3,
			ReviewCount:   110,
			Stock:         0,
			Format:        book.FormatEBook,
			PublishedDate: "2008-08-01",
		},
		{
			ID:            "9",
			Title:         "The Hobbit",
			Author:        "J.R.R. Tolkien",
			Description:   "Bilbo Baggins is swept into a quest to reclaim a lost dwarf kingdom.",
			ISBN:          "978-0547928227",
			CoverImage:    "https://example.com/hobbit.jpg",
			Price:         1399,
			Category:      "Fantasy",
			InStock:       true,
			Rating:        4.7,
			ReviewCount:   254,
			Stock:         25,
			Format:        book.FormatPaperback,
			PublishedDate: "1937-09-21",
		},
		{
			ID:            "10",
			Title:         "Atomic Habits",
			Author:        "James Clear",
			Description:   "Tiny changes, remarkable results: a proven way to build good habits and break bad ones.",
			ISBN:          "978-0735211292",
			CoverImage:    "https://example.com/atomic-habits.jpg",
			Price:         2799,
			Category:      "Self-Help",
			InStock:       false,
			Rating:        4.5,
			ReviewCount:   188,
			Stock:         0,
			Format:        book.FormatHardcover,
			PublishedDate: "2018-10-16",
		},
		{
			ID:            "11",
			Title:         "The Catcher in the Rye",
			Author:        "J.D. Salinger",
			Description:   "Holden Caulfield wanders New York City after being expelled from prep school.",
			ISBN:          "978-0316769488",
			CoverImage:    "https://example.com/catcher.jpg",
			Price:         999,
			Category:      "Fiction",
			InStock:       true,
			Rating:        3.9,
			ReviewCount:   73,
			Stock:         18,
			Format:        book.FormatEBook,
			PublishedDate: "1951-07-16",
		},
		{
			ID:            "12",
			Title:         "A Brief History of Time",
			Author:        "Stephen Hawking",
			Description:   "From the Big Bang to black holes, a landmark volume in science writing.",
			ISBN:          "978-0553380163",
			CoverImage:    "https://example.com/brief-history.jpg",
			Price:         1899,
			Category:      "Science",
			InStock:       true,
			Rating:        4.6,
			ReviewCount:   142,
			Stock:         9,
			Format:        book.FormatPaperback,
			PublishedDate: "1998-09-01",
		},
	}
}

// Source 内置数据源
func Source() book.Source {
	return book.SourceFunc(func(ctx context.Context) ([]book.Book, error) {
		return Books(), nil
	})
}
