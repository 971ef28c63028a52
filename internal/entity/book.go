package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// PublicationStatus values match the persisted status_id column.
type PublicationStatus int

const (
	StatusUndefined PublicationStatus = iota
	StatusUnpublished
	StatusPublished
)

func (s PublicationStatus) String() string {
	switch s {
	case StatusUnpublished:
		return "UNPUBLISHED"
	case StatusPublished:
		return "PUBLISHED"
	default:
		return "UNDEFINED"
	}
}

func StatusFromID(id int) (PublicationStatus, error) {
	switch id {
	case int(StatusUnpublished):
		return StatusUnpublished, nil
	case int(StatusPublished):
		return StatusPublished, nil
	default:
		return StatusUndefined, fmt.Errorf("%w: %d", ErrUnknownStatus, id)
	}
}

func StatusFromString(s string) (PublicationStatus, error) {
	switch s {
	case "UNPUBLISHED":
		return StatusUnpublished, nil
	case "PUBLISHED":
		return StatusPublished, nil
	default:
		return StatusUndefined, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

func (s PublicationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PublicationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := StatusFromString(raw)

	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// Book keeps the association by author ids only. Read paths fill AuthorIDs
// ordered by the referenced authors' names ascending, ties broken by id.
type Book struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Price     int               `json:"price"`
	Status    PublicationStatus `json:"status"`
	AuthorIDs []string          `json:"authorIds"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
