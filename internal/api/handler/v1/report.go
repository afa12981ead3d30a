package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communitylens/ledger/internal/api/handler/v1/request"
	"github.com/communitylens/ledger/internal/api/handler/v1/response"
	"github.com/communitylens/ledger/internal/domain"
)

type ReportService interface {
	Meta(ctx context.Context) (domain.ReportMeta, error)
	Generate(ctx context.Context, reportType, quarter string, year int) (domain.Report, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleGetReportMeta godoc
// @Summary      Report periods
// @Description  Lists the quarters and years that hold events
// @Tags         reports
// @Produce      json
// @Success      200  {object}  domain.ReportMeta
// @Failure      500  {object}  response.Err
// @Router       /reports [get]
func (h *ReportHandler) HandleGetReportMeta(ctx *gin.Context) {
	meta, err := h.svc.Meta(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetReportMeta -> h.svc.Meta -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, meta)
}

// HandleGenerateReport godoc
// @Summary      Generate a period report
// @Description  Builds a quarterly, annual or all-time report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        input  body      request.GenerateReportRequest  true  "Report scope"
// @Success      200    {object}  domain.Report
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /reports/generate [post]
func (h *ReportHandler) HandleGenerateReport(ctx *gin.Context) {
	var input request.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.svc.Generate(ctx.Request.Context(), input.ReportType, input.Quarter, input.Year)
	if err != nil {
		err = fmt.Errorf("HandleGenerateReport -> h.svc.Generate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}
