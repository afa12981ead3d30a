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

type OrganizationService interface {
	CreateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	DeleteOrganization(ctx context.Context, id uint) error
}

type OrganizationHandler struct {
	svc OrganizationService
}

func NewOrganizationHandler(svc OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		svc: svc,
	}
}

// HandleCreateOrganization godoc
// @Summary      Add an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateOrganizationRequest  true  "Organization details"
// @Success      201    {object}  domain.Organization
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /organizations [post]
func (h *OrganizationHandler) HandleCreateOrganization(ctx *gin.Context) {
	var input request.CreateOrganizationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	org := domain.Organization{
		Name:         input.Name,
		Type:         input.Type,
		Size:         input.Size,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
	}

	created, err := h.svc.CreateOrganization(ctx.Request.Context(), org)
	if err != nil {
		err = fmt.Errorf("HandleCreateOrganization -> h.svc.CreateOrganization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListOrganizations godoc
// @Summary      List organizations
// @Tags         organizations
// @Produce      json
// @Success      200  {array}   domain.Organization
// @Failure      500  {object}  response.Err
// @Router       /organizations [get]
func (h *OrganizationHandler) HandleListOrganizations(ctx *gin.Context) {
	orgs, err := h.svc.ListOrganizations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListOrganizations -> h.svc.ListOrganizations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, orgs)
}

// HandleDeleteOrganization godoc
// @Summary      Delete an organization
// @Description  Removes an organization; events keep their organization ids
// @Tags         organizations
// @Produce      json
// @Param        organizationID  path  int  true  "organization ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /organizations/{organizationID} [delete]
func (h *OrganizationHandler) HandleDeleteOrganization(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "organizationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteOrganization(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "organizationID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteOrganization -> h.svc.DeleteOrganization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
