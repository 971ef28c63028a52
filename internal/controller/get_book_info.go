package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t-suguru/book-management/internal/entity"
)

var GetBookInfoDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "book_management_get_book_info_duration_ms",
	Help:    "Duration of GetBookInfo in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetBookInfoDuration)
}

func (i *implementation) GetBookInfo(c *gin.Context) {
	start := time.Now()

	defer func() {
		GetBookInfoDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	idBook := c.Param("id")
	if _, err := uuid.Parse(idBook); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := i.booksUseCase.GetBookInfo(c.Request.Context(), idBook)

	if err != nil {
		if errors.Is(err, entity.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": entity.ErrBookNotFound.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, book)
}
