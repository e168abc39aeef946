// Package server carries the HTTP surface: routing, auth middleware,
// request metrics and the handlers for every API resource.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	appliancedomain "github.com/wattwiselabs/wattwise/internal/appliance/domain"
	jwtsvc "github.com/wattwiselabs/wattwise/internal/auth/jwt"
	billdomain "github.com/wattwiselabs/wattwise/internal/bill/domain"
	"github.com/wattwiselabs/wattwise/internal/config"
	dashdomain "github.com/wattwiselabs/wattwise/internal/dashboard/domain"
	forecastdomain "github.com/wattwiselabs/wattwise/internal/forecast/domain"
	monthlydomain "github.com/wattwiselabs/wattwise/internal/monthlydata/domain"
	"github.com/wattwiselabs/wattwise/internal/predictor"
	recdomain "github.com/wattwiselabs/wattwise/internal/recommendation/domain"
	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
	usagedomain "github.com/wattwiselabs/wattwise/internal/usage/domain"
	userdomain "github.com/wattwiselabs/wattwise/internal/user/domain"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("server",
	fx.Provide(New),
	fx.Invoke(registerLifecycle),
)

type Server struct {
	cfg    config.Config
	log    *zap.Logger
	engine *gin.Engine

	jwtsvc       *jwtsvc.Service
	usersvc      userdomain.Service
	tariffsvc    tariffdomain.Service
	appliancesvc appliancedomain.Service
	uasvc        uadomain.Service
	usagesvc     usagedomain.Service
	forecastsvc  forecastdomain.Service
	recsvc       recdomain.Service
	billsvc      billdomain.Service
	monthlysvc   monthlydomain.Service
	dashsvc      dashdomain.Service
	predictor    *predictor.Client
}

type Param struct {
	fx.In

	Cfg          config.Config
	Log          *zap.Logger
	JWT          *jwtsvc.Service
	UserSvc      userdomain.Service
	TariffSvc    tariffdomain.Service
	ApplianceSvc appliancedomain.Service
	UASvc        uadomain.Service
	UsageSvc     usagedomain.Service
	ForecastSvc  forecastdomain.Service
	RecSvc       recdomain.Service
	BillSvc      billdomain.Service
	MonthlySvc   monthlydomain.Service
	DashSvc      dashdomain.Service
	Predictor    *predictor.Client
}

func New(p Param) *Server {
	gin.SetMode(p.Cfg.Server.Mode)

	s := &Server{
		cfg:          p.Cfg,
		log:          p.Log.Named("server"),
		engine:       gin.New(),
		jwtsvc:       p.JWT,
		usersvc:      p.UserSvc,
		tariffsvc:    p.TariffSvc,
		appliancesvc: p.ApplianceSvc,
		uasvc:        p.UASvc,
		usagesvc:     p.UsageSvc,
		forecastsvc:  p.ForecastSvc,
		recsvc:       p.RecSvc,
		billsvc:      p.BillSvc,
		monthlysvc:   p.MonthlySvc,
		dashsvc:      p.DashSvc,
		predictor:    p.Predictor,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.RequestMetrics())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     p.Cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.GetHealth)
	s.engine.GET("/metrics", metricsHandler())

	api := s.engine.Group("/api")

	api.POST("/users/register", s.Register)
	api.POST("/users/login", s.Login)

	authed := api.Group("")
	authed.Use(s.AuthRequired())

	authed.GET("/users/:id", s.GetUser)

	authed.GET("/user-appliances/:userId", s.GetUserAppliances)
	authed.POST("/user-appliances/:userId", s.UpsertUserAppliances)
	authed.DELETE("/user-appliances/:userId", s.DeleteUserAppliances)

	authed.POST("/appliances", s.UploadAppliances)
	authed.GET("/appliances", s.ListAppliances)

	authed.POST("/usage", s.LogUsage)
	authed.GET("/usage/user/:userId", s.ListUsageByUser)

	authed.POST("/surveys", s.SubmitSurvey)
	authed.GET("/surveys/user/:userId", s.ListSurveysByUser)

	authed.POST("/forecasts", s.AddForecast)
	authed.GET("/forecasts/user/:userId", s.ListForecastsByUser)

	authed.POST("/user-recommendations", s.UpsertRecommendation)
	authed.GET("/user-recommendations/:userId", s.GetRecommendation)

	authed.POST("/bills", s.AddBill)
	authed.GET("/bills/user/:userId", s.ListBillsByUser)

	authed.POST("/python/predict-usage", s.ProxyPredictUsage)
	authed.POST("/python/recommend-budget", s.ProxyRecommendBudget)

	admin := authed.Group("")
	admin.Use(s.RequireRole(string(userdomain.RoleAdmin)))

	admin.GET("/users", s.ListUsers)
	admin.GET("/usage", s.ListUsage)
	admin.GET("/forecasts", s.ListForecasts)
	admin.GET("/bills", s.ListBills)

	admin.POST("/datasets/tariffs", s.UploadTariffs)
	admin.GET("/datasets/tariffs", s.ListTariffs)
	admin.POST("/datasets/monthly", s.UploadMonthlyData)
	admin.GET("/datasets/monthly", s.ListMonthlyData)
	admin.POST("/tariffs/compute", s.ComputeTariff)

	admin.GET("/admin/dashboard", s.GetDashboardTotals)
	admin.GET("/admin/regions", s.GetRegionalBreakdown)
}

func (s *Server) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func registerLifecycle(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
