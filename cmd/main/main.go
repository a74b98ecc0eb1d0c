package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/RichardKnop/answerengine"
	"github.com/RichardKnop/answerengine/adapter/duckduckgo"
	googlegenai "github.com/RichardKnop/answerengine/adapter/google-genai"
	"github.com/RichardKnop/answerengine/adapter/rest"
)

func initConfig() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("ai.models.generative", "gemini-2.0-flash")
	viper.SetDefault("search.base_url", "https://api.duckduckgo.com/")
	viper.SetDefault("verdict.excellent", answerengine.DefaultThresholds.Excellent)
	viper.SetDefault("verdict.good", answerengine.DefaultThresholds.Good)
	viper.SetDefault("verdict.acceptable", answerengine.DefaultThresholds.Acceptable)

	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("server.port", "SERVERPORT")
	viper.AutomaticEnv()
}

func main() {
	initConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Without an API key the server still starts so the UI and health
	// endpoint keep working, LLM-backed routes return a configuration error.
	var genaiClient *genai.Client
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, answer and score endpoints will return a configuration error")
	} else {
		genaiClient, err = genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil {
			logger.Sugar().Fatalf("genai client: %v", err)
		}
	}

	var (
		gAdapter = googlegenai.New(
			genaiClient,
			googlegenai.WithGenerativeModel(viper.GetString("ai.models.generative")),
			googlegenai.WithLogger(logger),
		)
		searchAdapter = duckduckgo.New(
			duckduckgo.WithBaseURL(viper.GetString("search.base_url")),
			duckduckgo.WithLogger(logger),
		)
		engine = answerengine.New(
			searchAdapter,
			gAdapter,
			answerengine.WithLogger(logger),
			answerengine.WithThresholds(answerengine.Thresholds{
				Excellent:  viper.GetInt("verdict.excellent"),
				Good:       viper.GetInt("verdict.good"),
				Acceptable: viper.GetInt("verdict.acceptable"),
			}),
		)
		restAdapter = rest.New(
			engine,
			rest.WithGeminiConfigured(gAdapter.Configured()),
			rest.WithLogger(logger),
		)
		mux     = http.NewServeMux()
		address = ":" + viper.GetString("server.port")
	)

	restAdapter.RegisterHandlers(mux)

	httpServer := &http.Server{
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		Addr:              address,
		Handler:           mux,
	}

	logger.Sugar().Infow("listening", "address", address)

	go func() {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("HTTP server error: %v", err)
		}
		logger.Info("Stopped serving new connections.")
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("HTTP shutdown error: %v", err)
	}
	logger.Info("Graceful shutdown complete.")
}
