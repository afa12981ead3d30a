package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communitylens/ledger/internal/api/handler/v1/request"
	"github.com/communitylens/ledger/internal/api/handler/v1/response"
	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/service"
)

type CatalogService interface {
	ListEventTypes(ctx context.Context) ([]domain.EventType, error)
	CreateEventType(ctx context.Context, et domain.EventType) (domain.EventType, error)
	DeleteEventType(ctx context.Context, id uint) error
	ListCostTypes(ctx context.Context) ([]domain.CostType, error)
	CreateCostType(ctx context.Context, ct domain.CostType) (domain.CostType, error)
	DeleteCostType(ctx context.Context, id uint) error
}

// CatalogHandler serves the event-type and cost-type lookup tables.
type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListEventTypes godoc
// @Summary      List event types
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.EventType
// @Failure      500  {object}  response.Err
// @Router       /event-types [get]
func (h *CatalogHandler) HandleListEventTypes(ctx *gin.Context) {
	types, err := h.svc.ListEventTypes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListEventTypes -> h.svc.ListEventTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, types)
}

// HandleCreateEventType godoc
// @Summary      Add an event type
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventTypeRequest  true  "Event type details"
// @Success      201    {object}  domain.EventType
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /event-types [post]
func (h *CatalogHandler) HandleCreateEventType(ctx *gin.Context) {
	var input request.CreateEventTypeRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEventType(ctx.Request.Context(), domain.EventType{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrNameExists) {
			response.RenderErr(ctx, response.ErrDuplicateName("event type", input.Name))
			return
		}

		err = fmt.Errorf("HandleCreateEventType -> h.svc.CreateEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteEventType godoc
// @Summary      Delete an event type
// @Tags         catalog
// @Produce      json
// @Param        eventTypeID  path  int  true  "event type ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /event-types/{eventTypeID} [delete]
func (h *CatalogHandler) HandleDeleteEventType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventTypeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteEventType(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "eventTypeID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteEventType -> h.svc.DeleteEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListCostTypes godoc
// @Summary      List cost types
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.CostType
// @Failure      500  {object}  response.Err
// @Router       /cost-types [get]
func (h *CatalogHandler) HandleListCostTypes(ctx *gin.Context) {
	types, err := h.svc.ListCostTypes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListCostTypes -> h.svc.ListCostTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, types)
}

// HandleCreateCostType godoc
// @Summary      Add a cost type
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCostTypeRequest  true  "Cost type details"
// @Success      201    {object}  domain.CostType
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /cost-types [post]
func (h *CatalogHandler) HandleCreateCostType(ctx *gin.Context) {
	var input request.CreateCostTypeRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCostType(ctx.Request.Context(), domain.CostType{
		Name:        input.Name,
		DefaultRate: input.DefaultRate,
		Description: input.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrNameExists) {
			response.RenderErr(ctx, response.ErrDuplicateName("cost type", input.Name))
			return
		}

		err = fmt.Errorf("HandleCreateCostType -> h.svc.CreateCostType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteCostType godoc
// @Summary      Delete a cost type
// @Description  Removes a cost type; entries keep the snapshotted name
// @Tags         catalog
// @Produce      json
// @Param        costTypeID  path  int  true  "cost type ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cost-types/{costTypeID} [delete]
func (h *CatalogHandler) HandleDeleteCostType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "costTypeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteCostType(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCostTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("cost type", "costTypeID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteCostType -> h.svc.DeleteCostType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
