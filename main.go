package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/budgetbuddy/backend/internal/budget"
	"github.com/budgetbuddy/backend/internal/controllers"
	"github.com/budgetbuddy/backend/internal/notify"
	"github.com/budgetbuddy/backend/internal/router"
	"github.com/budgetbuddy/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	store, err := storage.Connect("data/budgetbuddy.db?_pragma=foreign_keys(1)")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	repo := budget.New(store, notify.LogSink{})

	r, err := router.Router(controllers.NewController(repo))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
