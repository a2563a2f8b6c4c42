package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	pubnub "github.com/pubnub/go"

	"event-system/config"
	"event-system/internal/cache"
	"event-system/internal/handlers"
	"event-system/internal/interceptors"
	"event-system/internal/notify"
	"event-system/internal/services"
	"event-system/internal/store"
	"event-system/models"
	"event-system/monitoring"
	"event-system/security"
	"event-system/utils"

	_ "event-system/migrations"
)

func Start() error {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	// Initialize PubNub (optional; the notifier is a no-op without keys)
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey

		pn = pubnub.NewPubNub(pnConfig)
	}

	// Initialize services
	documentStore := store.NewPocketBaseStore(app)
	eventCache := cache.NewEventCache(redisClient, cfg.EventCacheTTL)
	notifier := notify.NewNotifier(pn)
	eventService := services.NewEventService(documentStore, eventCache, notifier)
	bookingService := services.NewBookingService(documentStore, eventService, notifier)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	rateLimiter := security.NewRateLimiter(redisClient, cfg.WriteRateLimit, cfg.WriteRateWindow)

	// Enable migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	if cfg.EnableMetrics {
		monitor := monitoring.NewMonitor(redisClient)
		defer monitor.Stop()

		go func() {
			if err := monitoring.Serve(cfg.MetricsPort); err != nil {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
	}

	// Setup graceful shutdown
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleShutdown(cancel)

	setupRecordHooks(app)

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		g := e.Router.Group("/api/v1")
		g.BindFunc(handlers.RequestLogger())
		g.BindFunc(rateLimiter.WriteRateLimit())

		// Event endpoints
		g.POST("/events", eventHandler.CreateEvent)
		g.GET("/events", eventHandler.ListEvents)
		g.GET("/events/{slug}", eventHandler.GetEvent)
		g.GET("/events/{slug}/similar", eventHandler.GetSimilarEvents)
		g.PUT("/events/{id}", eventHandler.UpdateEvent)

		// Booking endpoints
		g.POST("/bookings", bookingHandler.CreateBooking)
		g.PATCH("/bookings/{id}", bookingHandler.UpdateBooking)

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return e.JSON(503, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
			return e.JSON(200, map[string]string{"status": "healthy"})
		})

		log.Println("Server routes registered")

		return e.Next()
	})

	// Start server
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
	return nil
}

// setupRecordHooks binds the write interceptors to PocketBase's own
// record lifecycle, so writes arriving through the admin UI or the
// built-in CRUD API are validated and normalized exactly like writes
// going through the services. The interceptors are idempotent, so the
// extra run on the service path is harmless.
func setupRecordHooks(app core.App) {
	eventInterceptor := interceptors.NewEventInterceptor()

	app.OnRecordCreate("events").BindFunc(func(e *core.RecordEvent) error {
		event := models.EventFromDoc(store.DocFromRecord(e.Record))
		if err := eventInterceptor.InterceptCreate(event); err != nil {
			return err
		}
		applyDoc(e.Record, event.Doc())
		return e.Next()
	})

	app.OnRecordUpdate("events").BindFunc(func(e *core.RecordEvent) error {
		event := models.EventFromDoc(store.DocFromRecord(e.Record))
		titleChanged := event.Title != e.Record.Original().GetString("title")
		if err := eventInterceptor.InterceptUpdate(event, titleChanged); err != nil {
			return err
		}
		applyDoc(e.Record, event.Doc())
		return e.Next()
	})

	app.OnRecordCreate("bookings").BindFunc(func(e *core.RecordEvent) error {
		bookingInterceptor := interceptors.NewBookingInterceptor(appExister{e.App})
		booking := models.BookingFromDoc(store.DocFromRecord(e.Record))
		if err := bookingInterceptor.InterceptCreate(context.Background(), booking); err != nil {
			return err
		}
		applyDoc(e.Record, booking.Doc())
		return e.Next()
	})

	app.OnRecordUpdate("bookings").BindFunc(func(e *core.RecordEvent) error {
		bookingInterceptor := interceptors.NewBookingInterceptor(appExister{e.App})
		booking := models.BookingFromDoc(store.DocFromRecord(e.Record))
		eventChanged := booking.EventID != e.Record.Original().GetString("eventId")
		if err := bookingInterceptor.InterceptUpdate(context.Background(), booking, eventChanged); err != nil {
			return err
		}
		applyDoc(e.Record, booking.Doc())
		return e.Next()
	})
}

func applyDoc(record *core.Record, doc map[string]any) {
	for name, value := range doc {
		record.Set(name, value)
	}
}

// appExister answers the booking interceptor's existence check straight
// from the app the hook event carries.
type appExister struct {
	app core.App
}

func (a appExister) ExistsEvent(ctx context.Context, eventID string) (bool, error) {
	return store.NewPocketBaseStore(a.app).
		Exists(ctx, services.EventsCollection, dbx.HashExp{"id": eventID})
}

// handleShutdown handles graceful shutdown
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
}
