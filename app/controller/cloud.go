package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/factory"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/mapper"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/service"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/types"
)

type CloudController struct {
	catalogService *service.CatalogService
	logger         logrus.FieldLogger
}

func NewCloudController(catalogService *service.CatalogService) *CloudController {
	return &CloudController{
		catalogService: catalogService,
		logger:         factory.NewModuleLogger("cloud-controller"),
	}
}

func (c *CloudController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *CloudController) ListPlans(ctx echo.Context) error {
	req, err := types.NewListPlansRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.catalogService.ListPlans(ctx.Request().Context(), req)
	if err != nil {
		return c.handleServiceError(ctx, err, "List plans failed")
	}

	if result.Region != nil && result.Region.Fallback {
		factory.LoggerWithContext(c.logger, ctx).
			WithField("requested_region", result.Region.RequestedRegion).
			WithField("region", result.Region.Region.Code).
			Debug("Region fell back to default")
	}

	return ctx.JSON(http.StatusOK, mapper.PlansResultToResponse(result))
}

func (c *CloudController) GetBenefits(ctx echo.Context) error {
	result, err := c.catalogService.GetBenefits(ctx.Request().Context())
	if err != nil {
		return c.handleServiceError(ctx, err, "Get benefits failed")
	}

	return ctx.JSON(http.StatusOK, mapper.BenefitsResultToResponse(result))
}

func (c *CloudController) handleServiceError(ctx echo.Context, err error, message string) error {
	if errors.Is(err, service.ErrCatalogUnavailable) {
		return c.writeError(ctx, http.StatusServiceUnavailable, service.UnavailableMessage)
	}
	factory.LoggerWithContext(c.logger, ctx).WithError(err).Error(message)
	return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
}

func (c *CloudController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
