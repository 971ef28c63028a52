package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/pkg/logger"
	"go.uber.org/zap"
)

const ErrForeignKeyViolation = "23503"

var _ AuthorRepository = (*postgresRepository)(nil)
var _ BooksRepository = (*postgresRepository)(nil)

type DataBasePool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type postgresRepository struct {
	logger *zap.Logger
	db     DataBasePool
}

func New(logger *zap.Logger, db DataBasePool) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// withTx joins the transaction injected by the Transactor when there is one,
// otherwise opens its own and commits it after fn succeeds. The ambient
// transaction is never committed or rolled back here, it belongs to WithTx.
func (p *postgresRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	if tx, err := extractTx(ctx); err == nil {
		return fn(tx)
	}

	tx, err := p.db.Begin(ctx)

	if err != nil {
		return err
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		rbErr := tx.Rollback(ctx)
		if rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.CheckError(rbErr, p.logger, "failed rollback of tx", zap.Error(rbErr))
		}
	}(tx, ctx)

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (p *postgresRepository) RegisterAuthor(ctx context.Context, author entity.Author) (entity.Author, error) {
	result := entity.Author{
		ID:        uuid.NewString(),
		Name:      author.Name,
		Birthdate: author.Birthdate,
	}

	err := p.withTx(ctx, func(tx pgx.Tx) error {
		const query = `
INSERT INTO authors (id, name, birthdate)
VALUES ($1, $2, $3)
RETURNING created_at, updated_at
`
		return tx.QueryRow(ctx, query, result.ID, result.Name, result.Birthdate).
			Scan(&result.CreatedAt, &result.UpdatedAt)
	})

	if err != nil {
		return entity.Author{}, err
	}

	return result, nil
}

func (p *postgresRepository) ChangeAuthorInfo(ctx context.Context, updAuthor entity.Author) (entity.Author, error) {
	result := entity.Author{
		ID:        updAuthor.ID,
		Name:      updAuthor.Name,
		Birthdate: updAuthor.Birthdate,
	}

	err := p.withTx(ctx, func(tx pgx.Tx) error {
		const query = `
UPDATE authors SET name=$1, birthdate=$2, updated_at=now()
WHERE id=$3
RETURNING created_at, updated_at
`
		txErr := tx.QueryRow(ctx, query, updAuthor.Name, updAuthor.Birthdate, updAuthor.ID).
			Scan(&result.CreatedAt, &result.UpdatedAt)

		if errors.Is(txErr, pgx.ErrNoRows) {
			return entity.ErrAuthorNotFound
		}

		return txErr
	})

	if err != nil {
		return entity.Author{}, err
	}

	return result, nil
}

func (p *postgresRepository) GetAuthorInfo(ctx context.Context, idAuthor string) (entity.Author, error) {
	var author entity.Author

	err := p.withTx(ctx, func(tx pgx.Tx) error {
		const query = `
SELECT id, name, birthdate, created_at, updated_at
FROM authors
WHERE id = $1
`
		txErr := tx.QueryRow(ctx, query, idAuthor).
			Scan(&author.ID, &author.Name, &author.Birthdate, &author.CreatedAt, &author.UpdatedAt)

		if errors.Is(txErr, pgx.ErrNoRows) {
			return entity.ErrAuthorNotFound
		}

		return txErr
	})

	if err != nil {
		return entity.Author{}, err
	}

	return author, nil
}

func (p *postgresRepository) AddBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	result := entity.Book{
		ID:     uuid.NewString(),
		Title:  book.Title,
		Price:  book.Price,
		Status: book.Status,
	}

	err := p.withTx(ctx, func(tx pgx.Tx) error {
		const queryBook = `
INSERT INTO books (id, title, price, status_id)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at
`
		txErr := tx.QueryRow(ctx, queryBook, result.ID, result.Title, result.Price, int(result.Status)).
			Scan(&result.CreatedAt, &result.UpdatedAt)

		if txErr != nil {
			return txErr
		}

		if txErr = p.insertAuthorships(ctx, tx, result.ID, book.AuthorIDs); txErr != nil {
			return txErr
		}

		result.AuthorIDs, txErr = p.bookAuthorIDs(ctx, tx, result.ID)
		return txErr
	})

	if err != nil {
		return entity.Book{}, err
	}

	return result, nil
}

func (p *postgresRepository) UpdateBook(ctx context.Context, updBook entity.Book) (entity.Book, error) {
	result := entity.Book{
		ID:     updBook.ID,
		Title:  updBook.Title,
		Price:  updBook.Price,
		Status: updBook.Status,
	}

	err := p.withTx(ctx, func(tx pgx.Tx) error {
		const queryBook = `
UPDATE books SET title=$1, price=$2, status_id=$3, updated_at=now()
WHERE id=$4
RETURNING created_at, updated_at
`
		txErr := tx.QueryRow(ctx, queryBook, updBook.Title, updBook.Price, int(updBook.Status), updBook.ID).
			Scan(&result.CreatedAt, &result.UpdatedAt)

		if errors.Is(txErr, pgx.ErrNoRows) {
			return entity.ErrBookNotFound
		}

		if txErr != nil {
			return txErr
		}

		// Replace-all: drop every old link and write the supplied set, so the
		// persisted set always equals the request with no stale leftovers.
		const queryDeleteOldAuthors = `
DELETE FROM authorships WHERE book_id=$1
`
		if _, txErr = tx.Exec(ctx, queryDeleteOldAuthors, updBook.ID); txErr != nil {
			return txErr
		}

		if txErr = p.insertAuthorships(ctx, tx, updBook.ID, updBook.AuthorIDs); txErr != nil {
			return txErr
		}

		result.AuthorIDs, txErr = p.bookAuthorIDs(ctx, tx, updBook.ID)
		return txErr
	})

	if err != nil {
		return entity.Book{}, err
	}

	return result, nil
}

func (p *postgresRepository) GetBook(ctx context.Context, idBook string) (entity.Book, error) {
	var book entity.Book

	err := p.withTx(ctx, func(tx pgx.Tx) error {
		const query = `
SELECT id, title, price, status_id, created_at, updated_at
FROM books
WHERE id = $1 FOR UPDATE
`
		var statusID int
		txErr := tx.QueryRow(ctx, query, idBook).
			Scan(&book.ID, &book.Title, &book.Price, &statusID, &book.CreatedAt, &book.UpdatedAt)

		if errors.Is(txErr, pgx.ErrNoRows) {
			return entity.ErrBookNotFound
		}

		if txErr != nil {
			return txErr
		}

		if book.Status, txErr = entity.StatusFromID(statusID); txErr != nil {
			return txErr
		}

		book.AuthorIDs, txErr = p.bookAuthorIDs(ctx, tx, idBook)
		return txErr
	})

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (p *postgresRepository) GetAuthorBooks(ctx context.Context, idAuthor string) ([]entity.Book, error) {
	books := make([]entity.Book, 0)

	err := p.withTx(ctx, func(tx pgx.Tx) error {
		const query = `
SELECT b.id, b.title, b.price, b.status_id, b.created_at, b.updated_at
FROM books b
JOIN authorships ab ON b.id = ab.book_id
WHERE ab.author_id = $1
ORDER BY b.title, b.id
`
		rows, txErr := tx.Query(ctx, query, idAuthor)

		if txErr != nil {
			return txErr
		}

		statusIDs := make([]int, 0)
		for rows.Next() {
			var (
				book     entity.Book
				statusID int
			)

			if txErr = rows.Scan(&book.ID, &book.Title, &book.Price, &statusID,
				&book.CreatedAt, &book.UpdatedAt); txErr != nil {
				rows.Close()
				return txErr
			}

			books = append(books, book)
			statusIDs = append(statusIDs, statusID)
		}
		rows.Close()

		if txErr = rows.Err(); txErr != nil {
			return txErr
		}

		for i := range books {
			if books[i].Status, txErr = entity.StatusFromID(statusIDs[i]); txErr != nil {
				return txErr
			}

			if books[i].AuthorIDs, txErr = p.bookAuthorIDs(ctx, tx, books[i].ID); txErr != nil {
				return txErr
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return books, nil
}

func (p *postgresRepository) insertAuthorships(ctx context.Context, tx pgx.Tx, bookID string, authorIDs []string) error {
	const query = `
INSERT INTO authorships
(book_id, author_id)
VALUES ($1, $2)
`
	for _, authorID := range authorIDs {
		_, err := tx.Exec(ctx, query, bookID, authorID)

		if err != nil {
			var pgErr *pgconn.PgError

			if errors.As(err, &pgErr) && pgErr.Code == ErrForeignKeyViolation {
				return fmt.Errorf("author with ID %s does not exist: %w",
					authorID, entity.ErrAuthorNotFound)
			}

			return err
		}
	}

	return nil
}

// bookAuthorIDs returns the associated author ids ordered by the authors'
// names ascending, ties broken by id, so read-backs are deterministic.
func (p *postgresRepository) bookAuthorIDs(ctx context.Context, tx pgx.Tx, bookID string) ([]string, error) {
	const query = `
SELECT a.id
FROM authors a
JOIN authorships ab ON a.id = ab.author_id
WHERE ab.book_id = $1
ORDER BY a.name, a.id
`
	rows, err := tx.Query(ctx, query, bookID)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	authorIDs := make([]string, 0)
	for rows.Next() {
		var authorID string

		if err = rows.Scan(&authorID); err != nil {
			return nil, err
		}

		authorIDs = append(authorIDs, authorID)
	}

	return authorIDs, rows.Err()
}
