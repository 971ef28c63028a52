package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var UpdateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "book_management_update_book_duration_ms",
	Help:    "Duration of UpdateBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(UpdateBookDuration)
}

func (i *implementation) UpdateBook(c *gin.Context) {
	start := time.Now()

	defer func() {
		UpdateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	idBook := c.Param("id")
	if _, err := uuid.Parse(idBook); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); log.ErrorUpdateBook(i.logger, err, "Got invalid request", traceID, idBook, req.Title, req.AuthorIDs) {
		span.SetAttributes(attribute.String("book_id", idBook))
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, _ := entity.StatusFromString(req.Status)
	book, err := i.booksUseCase.UpdateBook(ctx, idBook, req.Title, *req.Price, status, req.AuthorIDs)

	if err != nil {
		switch {
		case errors.Is(err, entity.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": entity.ErrBookNotFound.Error()})
		case errors.Is(err, entity.ErrBookAlreadyPublished), errors.Is(err, entity.ErrAuthorNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, book)
}
