package library

import (
	"context"
	"time"

	"github.com/t-suguru/book-management/internal/entity"
)

type (
	AuthorUseCase interface {
		RegisterAuthor(ctx context.Context, name string, birthdate time.Time) (entity.Author, error)
		ChangeAuthorInfo(ctx context.Context, idAuthor, newName string, newBirthdate time.Time) (entity.Author, error)
		GetAuthorInfo(ctx context.Context, idAuthor string) (entity.Author, error)
	}

	BooksUseCase interface {
		AddBook(ctx context.Context, title string, price int, status entity.PublicationStatus, authorIDs []string) (entity.Book, error)
		UpdateBook(ctx context.Context, id, newTitle string, newPrice int, newStatus entity.PublicationStatus, newAuthorIDs []string) (entity.Book, error)
		GetBookInfo(ctx context.Context, bookID string) (entity.Book, error)
	}

	AuthorBooksUseCase interface {
		GetAuthorBooks(ctx context.Context, idAuthor string) ([]entity.Book, error)
	}
)
