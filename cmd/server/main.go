package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/config"
	"github.com/iliyamo/travel-route-planner/internal/handler"
	"github.com/iliyamo/travel-route-planner/internal/middleware"
	"github.com/iliyamo/travel-route-planner/internal/queue"
	"github.com/iliyamo/travel-route-planner/internal/repository"
	"github.com/iliyamo/travel-route-planner/internal/router"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

func main() {
	// Load .env when present; real environment variables win.
	_ = godotenv.Load()
	cfg := config.Load()

	// All state is in-memory and lost on restart by design.
	users := repository.NewUserRepo()
	tokens := repository.NewTokenRepo()
	routes := repository.NewRouteRepo()
	catalog := repository.NewCatalogRepo()
	repository.SeedDemoCatalog(catalog)

	authSvc := service.NewAuthService(users, tokens, cfg.BcryptCost)
	routeSvc := service.NewRouteService(authSvc, routes)

	authH := handler.NewAuthHandler(authSvc, users)
	routeH := handler.NewRouteHandler(routeSvc, catalog)
	publicH := handler.NewPublicHandler(catalog)
	adminH := handler.NewAdminHandler(users)

	e := echo.New()
	e.Use(middleware.RequestID())

	// Redis is optional: with no client both middlewares pass through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterPublic(e, publicH, cacheMW)
	router.RegisterAuth(e, authH, authSvc)
	router.RegisterRouteAPI(e, routeH, authSvc)
	router.RegisterAdmin(e, adminH, authSvc)

	// Background consumer keeps retrying the broker on its own.
	go func() {
		if err := queue.StartRouteConsumer(); err != nil {
			log.Printf("route consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
