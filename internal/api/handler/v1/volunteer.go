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

type VolunteerService interface {
	CreateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]domain.VolunteerSummary, error)
	GetVolunteerDetail(ctx context.Context, id uint) (domain.VolunteerDetail, error)
	DeleteVolunteer(ctx context.Context, id uint) error
}

type VolunteerHandler struct {
	svc VolunteerService
}

func NewVolunteerHandler(svc VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		svc: svc,
	}
}

// HandleCreateVolunteer godoc
// @Summary      Add a volunteer
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateVolunteerRequest  true  "Volunteer details"
// @Success      201    {object}  domain.Volunteer
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /volunteers [post]
func (h *VolunteerHandler) HandleCreateVolunteer(ctx *gin.Context) {
	var input request.CreateVolunteerRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	volunteer := domain.Volunteer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Notes:   input.Notes,
	}

	created, err := h.svc.CreateVolunteer(ctx.Request.Context(), volunteer)
	if err != nil {
		err = fmt.Errorf("HandleCreateVolunteer -> h.svc.CreateVolunteer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListVolunteers godoc
// @Summary      List volunteers
// @Description  Lists volunteers with hours, donation and event totals
// @Tags         volunteers
// @Produce      json
// @Success      200  {array}   domain.VolunteerSummary
// @Failure      500  {object}  response.Err
// @Router       /volunteers [get]
func (h *VolunteerHandler) HandleListVolunteers(ctx *gin.Context) {
	summaries, err := h.svc.ListVolunteers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListVolunteers -> h.svc.ListVolunteers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summaries)
}

// HandleGetVolunteer godoc
// @Summary      Get volunteer detail
// @Description  Returns a volunteer with their entry history and lifetime totals
// @Tags         volunteers
// @Produce      json
// @Param        volunteerID  path      int  true  "volunteer ID"
// @Success      200          {object}  domain.VolunteerDetail
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /volunteers/{volunteerID} [get]
func (h *VolunteerHandler) HandleGetVolunteer(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "volunteerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	detail, err := h.svc.GetVolunteerDetail(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVolunteerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("volunteer", "volunteerID", id))
			return
		}

		err = fmt.Errorf("HandleGetVolunteer -> h.svc.GetVolunteerDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleDeleteVolunteer godoc
// @Summary      Delete a volunteer
// @Description  Removes a volunteer; their entries keep the snapshotted name and contact
// @Tags         volunteers
// @Produce      json
// @Param        volunteerID  path  int  true  "volunteer ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /volunteers/{volunteerID} [delete]
func (h *VolunteerHandler) HandleDeleteVolunteer(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "volunteerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteVolunteer(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVolunteerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("volunteer", "volunteerID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteVolunteer -> h.svc.DeleteVolunteer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
