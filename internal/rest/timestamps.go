package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/discostamp/discostamp/api"
	"github.com/discostamp/discostamp/timestamp"
)

type TimestampHandler struct {
	clock clockwork.Clock
}

func NewTimestampHandler(clock clockwork.Clock) *TimestampHandler {
	return &TimestampHandler{
		clock: clock,
	}
}

func (h *TimestampHandler) RegisterRoutes(router *gin.Engine) {
	ts := router.Group("/timestamp")
	{
		ts.GET("/previews", h.GetPreviews)
		ts.GET("/timezones", h.GetTimezones)
	}
}

// GetPreviews resolves a date/time/tz selection into epoch seconds and
// the format preview table. The relative anchor is sampled here, once
// per request, so the wording is fixed at computation time.
func (h *TimestampHandler) GetPreviews(c *gin.Context) {
	sel := timestamp.Selection{
		Date:      c.Query("date"),
		TimeOfDay: c.Query("time"),
		Zone:      c.Query("tz"),
	}

	target, err := timestamp.Resolve(sel)
	if errors.Is(err, timestamp.ErrNoDate) {
		// Nothing selected yet: nothing to copy.
		c.JSON(http.StatusOK, api.PreviewsResponse{Previews: []timestamp.Preview{}})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	anchor := h.clock.Now()

	c.JSON(http.StatusOK, api.PreviewsResponse{
		EpochSeconds: timestamp.EpochSeconds(target),
		Previews:     timestamp.Previews(target, anchor),
	})
}

func (h *TimestampHandler) GetTimezones(c *gin.Context) {
	c.JSON(http.StatusOK, api.TimezonesResponse{Timezones: timestamp.Zones()})
}
