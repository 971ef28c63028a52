package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/t-suguru/book-management/internal/entity"
	"go.uber.org/mock/gomock"
)

func TestAddBook(t *testing.T) {
	t.Parallel()

	authorID := uuid.NewString()
	validBody := fmt.Sprintf(`{"title": "Kokoro", "price": 500, "status": "PUBLISHED", "authorIds": [%q]}`, authorID)

	tests := []struct {
		name         string
		body         string
		useCaseErr   error
		codeResponse int
	}{
		{
			name:         "valid adding",
			body:         validBody,
			useCaseErr:   nil,
			codeResponse: http.StatusCreated,
		},

		{
			name:         "malformed json",
			body:         `{"title": `,
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "empty title",
			body:         fmt.Sprintf(`{"title": "", "price": 500, "status": "PUBLISHED", "authorIds": [%q]}`, authorID),
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "missing price",
			body:         fmt.Sprintf(`{"title": "Kokoro", "status": "PUBLISHED", "authorIds": [%q]}`, authorID),
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "negative price",
			body:         fmt.Sprintf(`{"title": "Kokoro", "price": -1, "status": "PUBLISHED", "authorIds": [%q]}`, authorID),
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "unknown status",
			body:         fmt.Sprintf(`{"title": "Kokoro", "price": 500, "status": "DRAFT", "authorIds": [%q]}`, authorID),
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "no authors",
			body:         `{"title": "Kokoro", "price": 500, "status": "PUBLISHED", "authorIds": []}`,
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "author id is not a uuid",
			body:         `{"title": "Kokoro", "price": 500, "status": "PUBLISHED", "authorIds": ["123"]}`,
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "unknown referenced author",
			body:         validBody,
			useCaseErr:   fmt.Errorf("author with ID %s does not exist: %w", authorID, entity.ErrAuthorNotFound),
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "internal error",
			body:         validBody,
			useCaseErr:   errInternal,
			codeResponse: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			booksUseCase, router := initBooksTest(t)
			tErr := tt.useCaseErr
			tCode := tt.codeResponse

			if tt.body == validBody {
				booksUseCase.EXPECT().
					AddBook(gomock.Any(), "Kokoro", 500, entity.StatusPublished, []string{authorID}).
					DoAndReturn(func(_ any, title string, price int, status entity.PublicationStatus, authorIDs []string) (entity.Book, error) {
						if tErr != nil {
							return entity.Book{}, tErr
						}
						return entity.Book{
							ID:        uuid.NewString(),
							Title:     title,
							Price:     price,
							Status:    status,
							AuthorIDs: authorIDs,
						}, nil
					})
			}

			recorder := performRequest(t, router, http.MethodPost, "/api/books", tt.body)
			require.Equal(t, tCode, recorder.Code)

			if tCode == http.StatusCreated {
				var book entity.Book
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &book))
				require.NoError(t, uuid.Validate(book.ID))
				require.Equal(t, "Kokoro", book.Title)
				require.Equal(t, entity.StatusPublished, book.Status)
				require.Equal(t, []string{authorID}, book.AuthorIDs)
			}
		})
	}
}
