package ginserver

import (
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"

	"rateboard/internal/app/dto"
	"rateboard/internal/domain/rates"
	"rateboard/internal/domain/rooms"
	"rateboard/internal/domain/shared/dates"
	"rateboard/internal/infra/storage/memory"
)

type PricingHandler struct {
	Store *memory.Store
}

// Resolve returns the effective price for one date/room/channel triple.
func (h PricingHandler) Resolve(c *gin.Context) {
	date := c.Query("date")
	roomID := c.Query("room")
	channel := rooms.Channel(c.Query("channel"))
	if date == "" || roomID == "" || !channel.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, room and channel query parameters are required"})
		return
	}
	price, err := rates.ResolvePrice(h.Store.Snapshot(), date, roomID, channel)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ResolvedPrice{Date: date, RoomID: roomID, Channel: string(channel), Price: price})
}

// Day returns the daily summary for one date.
func (h PricingHandler) Day(c *gin.Context) {
	info, err := rates.DailyInfo(h.Store.Snapshot(), c.Param("date"), roomFilter(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Calendar returns a Sunday-start padded month grid of daily summaries, the
// payload behind the pricing calendar view.
func (h PricingHandler) Calendar(c *gin.Context) {
	month := c.Query("month")
	days, err := dates.CalendarDays(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap := h.Store.Snapshot()
	filter := roomFilter(c)
	infos := make([]rates.DailyPriceInfo, 0, len(days))
	for _, day := range days {
		info, err := rates.DailyInfo(snap, day, filter)
		if err != nil {
			writeError(c, err)
			return
		}
		infos = append(infos, info)
	}
	c.JSON(http.StatusOK, gin.H{"month": month, "days": infos})
}

func (h PricingHandler) AddManual(c *gin.Context) {
	var req dto.ManualPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.Store.AddManualPrice(c.Request.Context(), req.ToManualPrice())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"manualPrices": snap.ManualPrices})
}

func (h PricingHandler) BulkAdjust(c *gin.Context) {
	var req dto.BulkAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, written, err := h.Store.BulkAdjust(c.Request.Context(), req.ToStoreRequest())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkAdjustResult{Written: written})
}

func (h PricingHandler) DeleteManual(c *gin.Context) {
	snap, err := h.Store.DeleteManualPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manualPrices": snap.ManualPrices})
}

func (h PricingHandler) ClearManual(c *gin.Context) {
	snap, err := h.Store.ClearManualPrices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manualPrices": snap.ManualPrices})
}

func roomFilter(c *gin.Context) []string {
	raw := c.Query("rooms")
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

var _ PricingHTTP = PricingHandler{}
