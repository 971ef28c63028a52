package controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/t-suguru/book-management/internal/entity"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/controller_mocks.go -package=mocks

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

type implementation struct {
	logger             *zap.Logger
	booksUseCase       BooksUseCase
	authorUseCase      AuthorUseCase
	authorBooksUseCase AuthorBooksUseCase
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	authorUseCase AuthorUseCase,
	authorBooksUseCase AuthorBooksUseCase,
) *implementation {
	return &implementation{
		logger:             logger,
		booksUseCase:       booksUseCase,
		authorUseCase:      authorUseCase,
		authorBooksUseCase: authorBooksUseCase,
	}
}

func (i *implementation) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.POST("/authors", i.RegisterAuthor)
		api.PUT("/authors/:id", i.ChangeAuthorInfo)
		api.GET("/authors/:id", i.GetAuthorInfo)
		api.GET("/authors/:id/books", i.GetAuthorBooks)

		api.POST("/books", i.AddBook)
		api.PUT("/books/:id", i.UpdateBook)
		api.GET("/books/:id", i.GetBookInfo)
	}
}
