package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fathoor/calendra/internal/helpers"
	"github.com/fathoor/calendra/internal/middleware"
	"github.com/fathoor/calendra/internal/models"
)

type EventRequest struct {
	Title        string `json:"title" binding:"required,max=100"`
	Start        string `json:"start" binding:"required"`
	End          string `json:"end" binding:"required"`
	Color        string `json:"color"`
	Location     string `json:"location" binding:"max=500"`
	Description  string `json:"description" binding:"max=500"`
	Recurrence   string `json:"recurrence"`
	Notification *int   `json:"notification"`
	// GroupID rides along on full-replacement updates so a series member
	// keeps its series membership; create overwrites it when materializing
	// a new series.
	GroupID *uuid.UUID `json:"groupId"`
}

// bindEvent validates the request body and builds the domain event. It
// writes the 400 response itself and reports ok=false on failure, so the
// series logic never sees an invalid event.
func bindEvent(c *gin.Context) (models.Event, bool) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return models.Event{}, false
	}

	start, err := helpers.ParseEventTime(req.Start)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start time format.")
		return models.Event{}, false
	}
	end, err := helpers.ParseEventTime(req.End)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid end time format.")
		return models.Event{}, false
	}
	if !start.Before(end) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Start time must be before end time.")
		return models.Event{}, false
	}

	recurrence, err := models.ParseRecurrence(req.Recurrence)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid recurrence. Use none, daily, weekly, monthly or yearly.")
		return models.Event{}, false
	}

	return models.Event{
		Title:        req.Title,
		Start:        start,
		End:          end,
		Color:        req.Color,
		Location:     req.Location,
		Description:  req.Description,
		Recurrence:   recurrence,
		Notification: req.Notification,
		GroupID:      req.GroupID,
	}, true
}

func ListEvents(c *gin.Context) {
	events, err := middleware.GetEventService(c).List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	event, err := middleware.GetEventService(c).Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}
	if event == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func CreateEvent(c *gin.Context) {
	event, ok := bindEvent(c)
	if !ok {
		return
	}

	if err := middleware.GetEventService(c).Create(c.Request.Context(), &event); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	event, ok := bindEvent(c)
	if !ok {
		return
	}

	found, err := middleware.GetEventService(c).Update(c.Request.Context(), id, &event)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.Status(http.StatusNoContent)
}

func DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	found, err := middleware.GetEventService(c).Delete(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.Status(http.StatusNoContent)
}

func DeleteSeries(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid series id.")
		return
	}

	found, err := middleware.GetEventService(c).DeleteSeries(c.Request.Context(), groupID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete series.")
		return
	}
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Series not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
