package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/KatyGHub/finhealth-app/internal/config"
	"github.com/KatyGHub/finhealth-app/internal/server"
	"github.com/KatyGHub/finhealth-app/internal/store"
	"github.com/KatyGHub/finhealth-app/pkg/assessment"
	"github.com/KatyGHub/finhealth-app/pkg/constants"
	"github.com/KatyGHub/finhealth-app/pkg/output"
	"github.com/KatyGHub/finhealth-app/pkg/report"
	"github.com/KatyGHub/finhealth-app/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	reportPath := flag.String("report", "", "write a PDF report to the given path")
	checkpoint := flag.Bool("checkpoint", false, "save the computed score as a checkpoint")
	deleteLast := flag.Bool("delete-last", false, "delete the most recent checkpoint and exit")
	history := flag.Bool("history", false, "print checkpoint history and trend")
	serve := flag.Bool("serve", false, "run the HTTP API server instead of a one-shot assessment")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *logLevel)
		return
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the engines.
	result := assessment.New(conf.Profile, conf.Assumptions)

	// Persistence operations are best-effort; a storage failure never blocks
	// the computed output.
	if *checkpoint || *deleteLast || *history {
		st, err := store.Open(conf.Storage.DatabasePath, logger)
		if err != nil {
			logger.Warn("failed to open checkpoint store; continuing without persistence",
				zap.String("op", "main"),
				zap.Error(err),
			)
		} else {
			defer func() {
				_ = st.Close()
			}()
			runStoreOps(logger, st, conf.Storage.UserID, result, *checkpoint, *deleteLast, *history)
		}
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(result); err != nil {
			logger.Fatal("failed to render JSON output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if *reportPath != "" {
		if err := report.WritePDF(result, *reportPath); err != nil {
			logger.Fatal("failed to write PDF report",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("wrote PDF report",
			zap.String("op", "main"),
			zap.String("path", *reportPath),
		)
	}
}

func runStoreOps(logger *zap.Logger, st *store.Store, userID string, result assessment.Assessment, checkpoint, deleteLast, history bool) {
	if deleteLast {
		if err := st.DeleteLastCheckpoint(userID); err != nil {
			logger.Warn("failed to delete last checkpoint",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if checkpoint {
		id, err := st.AppendCheckpoint(userID, float64(result.Health.Score), time.Now().UTC())
		if err != nil {
			logger.Warn("failed to save checkpoint",
				zap.String("op", "main"),
				zap.Error(err),
			)
		} else {
			logger.Info("saved checkpoint",
				zap.String("op", "main"),
				zap.String("id", id),
				zap.Int("score", result.Health.Score),
			)
		}
	}

	if history {
		checkpoints, err := st.ListCheckpoints(userID)
		if err != nil {
			logger.Warn("failed to list checkpoints",
				zap.String("op", "main"),
				zap.Error(err),
			)
			return
		}
		fmt.Printf("--- Checkpoint history ---\n")
		for _, cp := range checkpoints {
			fmt.Printf("%s | %.0f\n", cp.CreatedAt.Format("2006-01-02 15:04"), cp.PFI)
		}
		trend, err := st.CheckpointTrend(userID)
		if err == nil && trend.Count > 0 {
			fmt.Printf("trend: first %.0f, latest %.0f, best %.0f, worst %.0f, delta %+.0f\n",
				trend.First, trend.Latest, trend.Best, trend.Worst, trend.Delta)
		}
	}
}

func runServer(configLocation, logLevelOverride string) {
	cfg, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		return
	}

	logger, err := initializeLogger(cfg.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	st, err := store.Open(cfg.DatabasePath, logger)
	if err != nil {
		logger.Fatal("failed to open store",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		_ = st.Close()
	}()

	handler := server.NewHandler(logger, st, cfg.BodySizeBytes(), version)

	logger.Info("starting HTTP server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
	)
	if err := http.ListenAndServe(cfg.Address, handler); err != nil {
		logger.Fatal("server exited",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
