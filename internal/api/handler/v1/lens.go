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

type LensService interface {
	ListCategories(ctx context.Context) ([]domain.LensCategory, error)
	CreateCategory(ctx context.Context, category domain.LensCategory) (domain.LensCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	CreateSubcategory(ctx context.Context, sub domain.LensSubcategory) (domain.LensSubcategory, error)
	DeleteSubcategory(ctx context.Context, id uint) error
}

// LensHandler serves the classification taxonomy.
type LensHandler struct {
	svc LensService
}

func NewLensHandler(svc LensService) *LensHandler {
	return &LensHandler{
		svc: svc,
	}
}

// HandleListCategories godoc
// @Summary      List lens categories
// @Description  Lists the taxonomy, subcategories nested under each category
// @Tags         lens
// @Produce      json
// @Success      200  {array}   domain.LensCategory
// @Failure      500  {object}  response.Err
// @Router       /lens-categories [get]
func (h *LensHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleCreateCategory godoc
// @Summary      Add a lens category
// @Tags         lens
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateLensCategoryRequest  true  "Category details"
// @Success      201    {object}  domain.LensCategory
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /lens-categories [post]
func (h *LensHandler) HandleCreateCategory(ctx *gin.Context) {
	var input request.CreateLensCategoryRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCategory(ctx.Request.Context(), domain.LensCategory{
		Name:        input.Name,
		Description: input.Description,
		SortOrder:   input.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrNameExists) {
			response.RenderErr(ctx, response.ErrDuplicateName("lens category", input.Name))
			return
		}

		err = fmt.Errorf("HandleCreateCategory -> h.svc.CreateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteCategory godoc
// @Summary      Delete a lens category
// @Description  Removes a category and its subcategories
// @Tags         lens
// @Produce      json
// @Param        categoryID  path  int  true  "category ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /lens-categories/{categoryID} [delete]
func (h *LensHandler) HandleDeleteCategory(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteCategory(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLensCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("lens category", "categoryID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteCategory -> h.svc.DeleteCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateSubcategory godoc
// @Summary      Add a lens subcategory
// @Tags         lens
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateLensSubcategoryRequest  true  "Subcategory details"
// @Success      201    {object}  domain.LensSubcategory
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /lens-subcategories [post]
func (h *LensHandler) HandleCreateSubcategory(ctx *gin.Context) {
	var input request.CreateLensSubcategoryRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateSubcategory(ctx.Request.Context(), domain.LensSubcategory{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		SortOrder:   input.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrLensCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("lens category", "categoryID", input.CategoryID))
			return
		}

		err = fmt.Errorf("HandleCreateSubcategory -> h.svc.CreateSubcategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteSubcategory godoc
// @Summary      Delete a lens subcategory
// @Tags         lens
// @Produce      json
// @Param        subcategoryID  path  int  true  "subcategory ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /lens-subcategories/{subcategoryID} [delete]
func (h *LensHandler) HandleDeleteSubcategory(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "subcategoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteSubcategory(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLensSubcategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("lens subcategory", "subcategoryID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteSubcategory -> h.svc.DeleteSubcategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
