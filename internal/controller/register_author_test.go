package controller

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/t-suguru/book-management/internal/entity"
	"go.uber.org/mock/gomock"
)

func TestRegisterAuthor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		useCaseErr   error
		codeResponse int
	}{
		{
			name:         "valid registration",
			body:         `{"name": "Natsume Soseki", "birthdate": "1867-02-09"}`,
			useCaseErr:   nil,
			codeResponse: http.StatusCreated,
		},

		{
			name:         "malformed json",
			body:         `{"name": `,
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "empty name",
			body:         `{"name": "", "birthdate": "1867-02-09"}`,
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "birthdate in the future",
			body:         `{"name": "Natsume Soseki", "birthdate": "2867-02-09"}`,
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "birthdate with wrong layout",
			body:         `{"name": "Natsume Soseki", "birthdate": "09.02.1867"}`,
			codeResponse: http.StatusBadRequest,
		},

		{
			name:         "internal error",
			body:         `{"name": "Natsume Soseki", "birthdate": "1867-02-09"}`,
			useCaseErr:   errInternal,
			codeResponse: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authorUseCase, router := initAuthorTest(t)
			tErr := tt.useCaseErr
			tCode := tt.codeResponse

			if tCode != http.StatusBadRequest {
				birthdate, err := time.Parse(birthdateLayout, "1867-02-09")
				require.NoError(t, err)

				authorUseCase.EXPECT().RegisterAuthor(gomock.Any(), "Natsume Soseki", birthdate).
					DoAndReturn(func(_ any, name string, birthdate time.Time) (entity.Author, error) {
						if tErr != nil {
							return entity.Author{}, tErr
						}
						return entity.Author{
							ID:        uuid.NewString(),
							Name:      name,
							Birthdate: birthdate,
						}, nil
					})
			}

			recorder := performRequest(t, router, http.MethodPost, "/api/authors", tt.body)
			require.Equal(t, tCode, recorder.Code)

			if tCode == http.StatusCreated {
				var author entity.Author
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &author))
				require.NoError(t, uuid.Validate(author.ID))
				require.Equal(t, "Natsume Soseki", author.Name)
			}
		})
	}
}
