package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/controller"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/entity"
	grpcserver "github.com/vibast-solutions/ms-go-cloud-plans/app/grpc"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/metrics"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/repository"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/service"
	"github.com/vibast-solutions/ms-go-cloud-plans/config"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  "Start both HTTP (Echo) and gRPC servers for the cloud plans service.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	catalog := loadCatalog(cfg)

	var collector *metrics.Collector
	var observer service.Observer
	if cfg.Metrics.Enabled {
		collector = metrics.New()
		collector.SetCatalogAvailable(catalog != nil)
		observer = collector
	}

	catalogService := service.NewCatalogService(catalog, observer)
	cloudController := controller.NewCloudController(catalogService)
	grpcCloudServer := grpcserver.NewServer(catalogService)

	e := setupHTTPServer(cfg, cloudController, collector)
	grpcSrv, lis := setupGRPCServer(cfg, grpcCloudServer, catalogService)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	go func() {
		logrus.WithField("addr", lis.Addr().String()).Info("Starting gRPC server")
		if err := grpcSrv.Serve(lis); err != nil {
			logrus.WithError(err).Fatal("gRPC server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}
	grpcSrv.GracefulStop()

	logrus.Info("Server stopped")
}

// loadCatalog returns nil when the catalog cannot be built; the service then
// answers every request as unavailable instead of refusing to start.
func loadCatalog(cfg *config.Config) *entity.Catalog {
	catalog, err := repository.NewCatalogRepository(cfg.Cloud).Load()
	if err != nil {
		logrus.WithError(err).WithField("catalog_file", cfg.Cloud.CatalogFile).Error("Failed to load plan catalog, serving as unavailable")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"regions":           len(catalog.Regions),
		"plans":             len(catalog.Plans),
		"default_region":    catalog.DefaultRegion,
		"free_plan_enabled": catalog.FreePlanEnabled,
		"freemode_enabled":  catalog.FreemodeEnabled,
	}).Info("Plan catalog loaded")
	return catalog
}

func setupHTTPServer(
	cfg *config.Config,
	cloudController *controller.CloudController,
	collector *metrics.Collector,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
				"request_id": v.RequestID,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))

	if collector != nil {
		e.Use(collector.Middleware())
		e.GET("/metrics", echo.WrapHandler(collector.Handler()))
	}

	e.GET("/health", cloudController.Health)

	cloud := e.Group(cfg.Cloud.RoutePrefix)
	cloud.GET("/plans", cloudController.ListPlans)
	cloud.GET("/benefits", cloudController.GetBenefits)

	return e
}

func setupGRPCServer(
	cfg *config.Config,
	cloudServer *grpcserver.Server,
	catalogService *service.CatalogService,
) (*grpc.Server, net.Listener) {
	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to listen on gRPC port")
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoveryInterceptor(),
			grpcserver.RequestIDInterceptor(),
			grpcserver.LoggingInterceptor(),
		),
	)
	grpcserver.RegisterCloudServiceServer(grpcSrv, cloudServer)
	healthpb.RegisterHealthServer(grpcSrv, grpcserver.NewHealthServer(catalogService))

	return grpcSrv, lis
}
