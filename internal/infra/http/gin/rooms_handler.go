package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"rateboard/internal/infra/storage/memory"
)

type RoomsHandler struct {
	Store *memory.Store
}

func (h RoomsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rooms":  h.Store.Rooms(),
		"groups": h.Store.Groups(),
	})
}

var _ RoomsHTTP = RoomsHandler{}
