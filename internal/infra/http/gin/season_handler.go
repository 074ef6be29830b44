package ginserver

import (
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"rateboard/internal/app/dto"
	"rateboard/internal/domain/season"
	"rateboard/internal/domain/shared/dates"
	"rateboard/internal/infra/storage/memory"
)

type SeasonHandler struct {
	Store *memory.Store
}

func (h SeasonHandler) List(c *gin.Context) {
	snap := h.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"seasons": snap.Seasons})
}

func (h SeasonHandler) Create(c *gin.Context) {
	var req dto.SeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	se := req.ToSeason("")
	snap, err := h.Store.AddSeason(c.Request.Context(), se)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"seasonId": se.ID, "seasons": snap.Seasons})
}

func (h SeasonHandler) Update(c *gin.Context) {
	var req dto.SeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	se := req.ToSeason(c.Param("id"))
	snap, err := h.Store.UpdateSeason(c.Request.Context(), se)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasons": snap.Seasons})
}

func (h SeasonHandler) Delete(c *gin.Context) {
	snap, err := h.Store.DeleteSeason(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasons": snap.Seasons})
}

// Ending lists non-default seasons whose last end date falls within the next
// N days (default 30). Backs the expiration alert banner.
func (h SeasonHandler) Ending(c *gin.Context) {
	within := 30
	if raw := c.Query("within"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "within must be a non-negative integer"})
			return
		}
		within = parsed
	}
	today := dates.Format(time.Now().UTC())
	snap := h.Store.Snapshot()
	ending := season.EndingWithin(snap.Seasons, today, within)
	c.JSON(http.StatusOK, gin.H{"seasons": ending})
}

var _ SeasonHTTP = SeasonHandler{}
