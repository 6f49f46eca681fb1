package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/auth"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
	"github.com/DominusMortem/foodgram-project-react/pkg/router"
	"github.com/DominusMortem/foodgram-project-react/pkg/server"
)

const (
	timeout = 5 * time.Second

	// serviceName is what the gRPC health checker reports as serving.
	serviceName = "foodgram.v1.FoodgramService"

	compressMinBytes = 1024
)

type ServeCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx != nil && ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	engine := router.New(conf, router.Services{
		Recipes: server.NewRecipeServer(repo, repo, logger, conf),
		Carts:   server.NewCartServer(repo, repo, logger, conf),
		Users:   server.NewUserServer(repo, repo, logger, conf),
		Catalog: server.NewCatalogServer(repo, logger),
		Auth:    auth.NewAuthManager(conf, repo, logger),
	}, logger)

	mux := http.NewServeMux()
	mux.Handle("/", engine)

	compress := connect.WithCompressMinBytes(compressMinBytes)
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	checker := grpchealth.NewStaticChecker(serviceName)
	mux.Handle(grpchealth.NewHandler(checker, compress))
	mux.Handle(grpcreflect.NewHandlerV1(reflector, compress))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector, compress))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux, conf.Server.AllowedOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("listening", zap.String("address", address), zap.String("base_path", conf.Server.BasePath))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"content-disposition",
			"grpc-message",
			"grpc-status",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(mux)
}
