package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/communitylens/ledger/internal/api/handler/v1/request"
	"github.com/communitylens/ledger/internal/api/handler/v1/response"
	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEventDetail(ctx context.Context, id uint) (domain.EventDetail, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	AddCostEntry(ctx context.Context, entry domain.CostEntry, rate *float64) (domain.CostEntry, error)
	DeleteCostEntry(ctx context.Context, id uint) (uint, error)
	RecomputeEventTotals(ctx context.Context, eventID uint) (income, expense float64, err error)
	AddDistribution(ctx context.Context, dist domain.ProfitDistribution) (domain.ProfitDistribution, error)
	DeleteDistribution(ctx context.Context, id uint) (uint, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

func eventFromRequest(req request.CreateEventRequest) (domain.Event, error) {
	date, err := time.Parse(request.DateFormat, req.EventDate)
	if err != nil {
		return domain.Event{}, fmt.Errorf("invalid event_date %q", req.EventDate)
	}

	return domain.Event{
		Name:                 req.EventName,
		Date:                 date,
		EventTypeID:          req.EventTypeID,
		OrganizationID:       req.OrganizationID,
		LensCategoryID:       req.LensCategoryID,
		LensSubcategoryID:    req.LensSubcategoryID,
		Location:             req.Location,
		Description:          req.Description,
		CoordinatorName:      req.CoordinatorName,
		CoordinatorPhone:     req.CoordinatorPhone,
		CoordinatorEmail:     req.CoordinatorEmail,
		ExpectedParticipants: req.ExpectedParticipants,
		ActualParticipants:   req.ActualParticipants,
		Notes:                req.Notes,
		Status:               req.Status,
	}, nil
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Records a new event; quarter and year are derived from the date
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "Event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var input request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := eventFromRequest(input)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event)
	if err != nil {
		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListEvents godoc
// @Summary      List events
// @Description  Lists all events, newest event date first
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get event detail
// @Description  Returns an event with its entries, breakdowns and distributions
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.EventDetail
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	detail, err := h.svc.GetEventDetail(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventID", id))
			return
		}

		err = fmt.Errorf("HandleGetEvent -> h.svc.GetEventDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Description  Rewrites an event's profile fields; totals are untouched
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                         true  "event ID"
// @Param        input    body      request.UpdateEventRequest  true  "Event details"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateEventRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := eventFromRequest(input.CreateEventRequest)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	event.ID = id

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventID", id))
			return
		}

		err = fmt.Errorf("HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  Removes an event with its entries and distributions
// @Tags         events
// @Produce      json
// @Param        eventID  path  int  true  "event ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteEvent(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAddCostEntry godoc
// @Summary      Add a cost entry
// @Description  Records an expense or income line item and recomputes the event's totals
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                          true  "event ID"
// @Param        input    body      request.AddCostEntryRequest  true  "Entry details"
// @Success      201      {object}  domain.CostEntry
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/costs [post]
func (h *EventHandler) HandleAddCostEntry(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.AddCostEntryRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry := domain.CostEntry{
		EventID:          id,
		CostTypeID:       input.CostTypeID,
		Description:      input.Description,
		Hours:            input.Hours,
		Amount:           input.Amount,
		VolunteerID:      input.VolunteerID,
		VolunteerName:    input.VolunteerName,
		VolunteerContact: input.VolunteerContact,
		IsIncome:         input.IsIncome,
	}

	created, err := h.svc.AddCostEntry(ctx.Request.Context(), entry, input.RatePerHour)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventID", id))
			return
		}

		err = fmt.Errorf("HandleAddCostEntry -> h.svc.AddCostEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteCostEntry godoc
// @Summary      Delete a cost entry
// @Description  Removes an entry and recomputes the owning event's totals
// @Tags         events
// @Produce      json
// @Param        costID  path      int  true  "cost entry ID"
// @Success      200     {object}  map[string]uint
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /costs/{costID} [delete]
func (h *EventHandler) HandleDeleteCostEntry(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "costID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	eventID, err := h.svc.DeleteCostEntry(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCostEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("cost entry", "costID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteCostEntry -> h.svc.DeleteCostEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"event_id": eventID})
}

// HandleRecomputeTotals godoc
// @Summary      Recompute event totals
// @Description  Re-derives the event's totals from its cost entries
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  map[string]float64
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/recompute [post]
func (h *EventHandler) HandleRecomputeTotals(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	income, expense, err := h.svc.RecomputeEventTotals(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventID", id))
			return
		}

		err = fmt.Errorf("HandleRecomputeTotals -> h.svc.RecomputeEventTotals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total_income":  income,
		"total_expense": expense,
		"net_profit":    income - expense,
	})
}

// HandleAddDistribution godoc
// @Summary      Add a profit distribution
// @Description  Allocates a percentage of the event's net profit to a recipient
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                             true  "event ID"
// @Param        input    body      request.AddDistributionRequest  true  "Distribution details"
// @Success      201      {object}  domain.ProfitDistribution
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/distributions [post]
func (h *EventHandler) HandleAddDistribution(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.AddDistributionRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	dist := domain.ProfitDistribution{
		EventID:              id,
		TargetType:           input.TargetType,
		TargetName:           input.TargetName,
		TargetOrganizationID: input.TargetOrganizationID,
		Percentage:           input.Percentage,
		Notes:                input.Notes,
	}

	created, err := h.svc.AddDistribution(ctx.Request.Context(), dist)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventID", id))
			return
		}

		err = fmt.Errorf("HandleAddDistribution -> h.svc.AddDistribution -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteDistribution godoc
// @Summary      Delete a profit distribution
// @Tags         events
// @Produce      json
// @Param        distributionID  path      int  true  "distribution ID"
// @Success      200             {object}  map[string]uint
// @Failure      400             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /distributions/{distributionID} [delete]
func (h *EventHandler) HandleDeleteDistribution(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "distributionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	eventID, err := h.svc.DeleteDistribution(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDistributionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("distribution", "distributionID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteDistribution -> h.svc.DeleteDistribution -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"event_id": eventID})
}
