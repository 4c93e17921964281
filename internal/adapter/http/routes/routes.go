package routes

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "towdispatch/docs"
	"towdispatch/internal/adapter/http/handlers"
	"towdispatch/internal/infrastructure/config"
	"towdispatch/internal/infrastructure/container"
	"towdispatch/internal/infrastructure/worker"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Jobs         *handlers.JobHandler
	Charges      *handlers.ChargeHandler
	Bookings     *handlers.BookingHandler
	Lookups      *handlers.LookupHandler
	SupplierJobs *handlers.SupplierJobHandler
	Visitors     *handlers.VisitorHandler
	Admin        *handlers.AdminHandler
}

func NewHandlers(c *container.Container) Handlers {
	return Handlers{
		Jobs:         handlers.NewJobHandler(c.Jobs),
		Charges:      handlers.NewChargeHandler(c.Charges),
		Bookings:     handlers.NewBookingHandler(c.Bookings),
		Lookups:      handlers.NewLookupHandler(c.Lookups),
		SupplierJobs: handlers.NewSupplierJobHandler(c.SupplierJobs),
		Visitors:     handlers.NewVisitorHandler(c.Visitors),
		Admin:        handlers.NewAdminHandler(c.Repair, c.Outbox, c.Payouts),
	}
}

type backgroundRunner interface {
	Run(ctx context.Context) error
}

// superviseRunner blocks until r stops and logs why.
func superviseRunner(ctx context.Context, r backgroundRunner) {
	err := r.Run(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		log.Printf("[outbox][worker] stopped")
		return
	}
	log.Printf("[outbox][worker] stopped err=%v", err)
}

// Run will start the server and, when enabled, the outbox runner. It
// returns when ctx is cancelled or the listener fails.
func Run(ctx context.Context, cfg *config.Config) error {
	c, closeStore, err := container.Build(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}
	defer closeStore()

	if cfg.Outbox.Enabled {
		sched, err := worker.ParseSchedule(cfg.Outbox.Schedule)
		if err != nil {
			return err
		}
		go superviseRunner(ctx, worker.NewRunner(c.Outbox, sched))
	}

	router := NewRouter(cfg.Admin, NewHandlers(c))
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http] listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "failed to startup the application")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Printf("[http] shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func NewRouter(admin config.AdminConfig, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h)
	addAdminRoutes(v1, admin, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
