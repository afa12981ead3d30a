package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/communitylens/ledger/docs"
	v1 "github.com/communitylens/ledger/internal/api/handler/v1"
	"github.com/communitylens/ledger/internal/api/middleware"
	"github.com/communitylens/ledger/internal/config"
	"github.com/communitylens/ledger/internal/repository"
	"github.com/communitylens/ledger/internal/repository/dao"
	"github.com/communitylens/ledger/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	eventHandler := s.initEventHandler(db)
	dashboardHandler := s.initDashboardHandler(db)
	volunteerHandler := s.initVolunteerHandler(db)
	organizationHandler := s.initOrganizationHandler(db)
	catalogHandler := s.initCatalogHandler(db)
	lensHandler := s.initLensHandler(db)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(eventHandler, dashboardHandler, volunteerHandler, organizationHandler, catalogHandler, lensHandler, reportHandler)

	return s
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	svc := service.NewEventService(repo, catalogRepo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initDashboardHandler(db *gorm.DB) *v1.DashboardHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	orgRepo := repository.NewOrganizationRepository(dao.NewOrganizationDAO(db))
	svc := service.NewDashboardService(eventRepo, orgRepo)
	handler := v1.NewDashboardHandler(svc)

	return handler
}

func (s *Server) initVolunteerHandler(db *gorm.DB) *v1.VolunteerHandler {
	volunteerDAO := dao.NewVolunteerDAO(db)
	repo := repository.NewVolunteerRepository(volunteerDAO)
	svc := service.NewVolunteerService(repo)
	handler := v1.NewVolunteerHandler(svc)

	return handler
}

func (s *Server) initOrganizationHandler(db *gorm.DB) *v1.OrganizationHandler {
	orgDAO := dao.NewOrganizationDAO(db)
	repo := repository.NewOrganizationRepository(orgDAO)
	svc := service.NewOrganizationService(repo)
	handler := v1.NewOrganizationHandler(svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	catalogDAO := dao.NewCatalogDAO(db)
	repo := repository.NewCatalogRepository(catalogDAO)
	svc := service.NewCatalogService(repo)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initLensHandler(db *gorm.DB) *v1.LensHandler {
	lensDAO := dao.NewLensDAO(db)
	repo := repository.NewLensRepository(lensDAO)
	svc := service.NewLensService(repo)
	handler := v1.NewLensHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewReportService(eventRepo)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	eventHandler *v1.EventHandler,
	dashboardHandler *v1.DashboardHandler,
	volunteerHandler *v1.VolunteerHandler,
	organizationHandler *v1.OrganizationHandler,
	catalogHandler *v1.CatalogHandler,
	lensHandler *v1.LensHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath)
	{
		api.GET("/dashboard", dashboardHandler.HandleGetDashboard)

		api.GET("/events", eventHandler.HandleListEvents)
		api.POST("/events", eventHandler.HandleCreateEvent)
		api.GET("/events/:eventID", eventHandler.HandleGetEvent)
		api.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		api.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		api.POST("/events/:eventID/costs", eventHandler.HandleAddCostEntry)
		api.POST("/events/:eventID/recompute", eventHandler.HandleRecomputeTotals)
		api.POST("/events/:eventID/distributions", eventHandler.HandleAddDistribution)
		api.DELETE("/costs/:costID", eventHandler.HandleDeleteCostEntry)
		api.DELETE("/distributions/:distributionID", eventHandler.HandleDeleteDistribution)

		api.GET("/volunteers", volunteerHandler.HandleListVolunteers)
		api.POST("/volunteers", volunteerHandler.HandleCreateVolunteer)
		api.GET("/volunteers/:volunteerID", volunteerHandler.HandleGetVolunteer)
		api.DELETE("/volunteers/:volunteerID", volunteerHandler.HandleDeleteVolunteer)

		api.GET("/organizations", organizationHandler.HandleListOrganizations)
		api.POST("/organizations", organizationHandler.HandleCreateOrganization)
		api.DELETE("/organizations/:organizationID", organizationHandler.HandleDeleteOrganization)

		api.GET("/event-types", catalogHandler.HandleListEventTypes)
		api.POST("/event-types", catalogHandler.HandleCreateEventType)
		api.DELETE("/event-types/:eventTypeID", catalogHandler.HandleDeleteEventType)
		api.GET("/cost-types", catalogHandler.HandleListCostTypes)
		api.POST("/cost-types", catalogHandler.HandleCreateCostType)
		api.DELETE("/cost-types/:costTypeID", catalogHandler.HandleDeleteCostType)

		api.GET("/lens-categories", lensHandler.HandleListCategories)
		api.POST("/lens-categories", lensHandler.HandleCreateCategory)
		api.DELETE("/lens-categories/:categoryID", lensHandler.HandleDeleteCategory)
		api.POST("/lens-subcategories", lensHandler.HandleCreateSubcategory)
		api.DELETE("/lens-subcategories/:subcategoryID", lensHandler.HandleDeleteSubcategory)

		api.GET("/reports", reportHandler.HandleGetReportMeta)
		api.POST("/reports/generate", reportHandler.HandleGenerateReport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Community Ledger API"
	docs.SwaggerInfo.Description = "Record keeping for community events, volunteer hours and finances."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
