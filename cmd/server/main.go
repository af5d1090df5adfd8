package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nmzz209741/products-inventory/internal/api"
	"github.com/nmzz209741/products-inventory/internal/blob"
	"github.com/nmzz209741/products-inventory/internal/config"
	"github.com/nmzz209741/products-inventory/internal/events"
	"github.com/nmzz209741/products-inventory/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	items, err := newItemStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to set up item store: %v", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to set up blob store: %v", err)
	}

	publisher := newPublisher(cfg)
	defer publisher.Close()

	productHandler := api.NewProductHandler(items, blobs, publisher, cfg.RequestTimeout)
	imageHandler := api.NewImageHandler(blobs, cfg.RequestTimeout)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(api.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		api.Success(map[string]string{"status": "ok"}).Write(w)
	})
	r.Mount("/", api.Routes(productHandler, imageHandler))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "products-inventory"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("products-inventory starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func newItemStore(ctx context.Context, cfg *config.Config) (store.ItemStore, error) {
	if cfg.MongoURI == "" {
		log.Printf("MONGO_URI not set, using in-memory item store")
		return store.NewMemoryStore(), nil
	}

	db, err := store.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}
	log.Printf("connected to MongoDB at %s", cfg.MongoURI)
	return store.NewMongoStore(db, cfg.TableName), nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	if cfg.S3Endpoint == "" {
		log.Printf("S3_ENDPOINT not set, using in-memory blob store")
		return blob.NewMemoryStore(cfg.ImageBucket, cfg.Region), nil
	}

	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	blobs := blob.NewMinioStore(client, cfg.ImageBucket, cfg.Region)
	if err := blobs.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	log.Printf("connected to blob store at %s, bucket %s", cfg.S3Endpoint, cfg.ImageBucket)
	return blobs, nil
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Printf("KAFKA_BROKERS not set, lifecycle events disabled")
		return events.NopPublisher{}
	}
	log.Printf("publishing lifecycle events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	return events.NewKafkaPublisher(cfg.KafkaTopic, cfg.KafkaBrokers...)
}
