// File: carebrief/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebrief/config"
	"carebrief/handlers"
	"carebrief/middleware"
	"carebrief/routes"
	"carebrief/services/document"
	"carebrief/services/draft"
	"carebrief/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	composer := document.NewComposer()
	gateway := draft.NewGatewayClient(
		config.AppConfig.AIGatewayURL,
		config.AppConfig.AIGatewayKey,
		config.AppConfig.AIModel,
		config.AppConfig.AITemperature,
		config.AppConfig.AIMaxTokens,
	)
	draftService := draft.NewService(gateway)

	documentHandler := handlers.NewDocumentHandler(composer)
	draftHandler := handlers.NewDraftHandler(draftService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RenderDocumentHandler: documentHandler.RenderDocumentHandler,
		GenerateDraftHandler:  draftHandler.GenerateDraftHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
