package ginserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rateboard/internal/domain/rates"
	"rateboard/internal/domain/season"
	"rateboard/internal/domain/shared/daterange"
	"rateboard/internal/domain/shared/dates"
	"rateboard/internal/infra/storage/memory"
)

// writeError maps domain failures onto HTTP statuses. Validation problems are
// recoverable and come back as 422 naming the violated invariant; a
// resolution-time integrity gap (no default season) is a 500 so it never
// degrades into a silently displayed zero price.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, memory.ErrSeasonNotFound),
		errors.Is(err, memory.ErrManualPriceNotFound),
		errors.Is(err, memory.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, season.ErrEmptyName),
		errors.Is(err, season.ErrNoRanges),
		errors.Is(err, season.ErrOverlappingRanges),
		errors.Is(err, daterange.ErrInvalidRange),
		errors.Is(err, dates.ErrInvalidDate),
		errors.Is(err, memory.ErrSeasonConflict),
		errors.Is(err, memory.ErrDefaultSeasonExists),
		errors.Is(err, memory.ErrDefaultSeasonRequired),
		errors.Is(err, memory.ErrChannelNotSold):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, rates.ErrNoApplicableSeason):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
