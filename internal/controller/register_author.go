package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t-suguru/book-management/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var RegisterAuthorDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "book_management_register_author_duration_ms",
	Help:    "Duration of RegisterAuthor in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(RegisterAuthorDuration)
}

func (i *implementation) RegisterAuthor(c *gin.Context) {
	start := time.Now()

	defer func() {
		RegisterAuthorDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); log.ErrorRegisterAuthor(i.logger, err, "Got invalid request", traceID, req.Name) {
		span.SetAttributes(attribute.String("author_name", req.Name))
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := i.authorUseCase.RegisterAuthor(ctx, req.Name, req.ParsedBirthdate())

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, author)
}
