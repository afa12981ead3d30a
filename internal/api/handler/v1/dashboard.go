package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/communitylens/ledger/internal/api/handler/v1/response"
	"github.com/communitylens/ledger/internal/domain"
)

type DashboardService interface {
	Overview(ctx context.Context, period string, year, quarter int, orgID *uint) (domain.Dashboard, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleGetDashboard godoc
// @Summary      Dashboard overview
// @Description  Aggregates for a reporting period plus recent events and filter lists
// @Tags         dashboard
// @Produce      json
// @Param        period           query     string  false  "quarterly, annual or to_date"
// @Param        year             query     int     false  "year for quarterly/annual"
// @Param        quarter          query     int     false  "quarter number 1-4"
// @Param        organization_id  query     int     false  "restrict to one organization"
// @Success      200              {object}  domain.Dashboard
// @Failure      400              {object}  response.Err
// @Failure      500              {object}  response.Err
// @Router       /dashboard [get]
func (h *DashboardHandler) HandleGetDashboard(ctx *gin.Context) {
	period := ctx.Query("period")

	year, err := queryInt(ctx, "year")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	quarter, err := queryInt(ctx, "quarter")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var orgID *uint
	if raw := ctx.Query("organization_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid organization_id %q", raw)))
			return
		}
		id := uint(parsed)
		orgID = &id
	}

	dashboard, err := h.svc.Overview(ctx.Request.Context(), period, year, quarter, orgID)
	if err != nil {
		err = fmt.Errorf("HandleGetDashboard -> h.svc.Overview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}

// queryInt reads an optional integer query parameter; absent means zero.
func queryInt(ctx *gin.Context, name string) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return v, nil
}
