package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/musicianhub/musician-services/db"
	"github.com/musicianhub/musician-services/internal/appconfig"
)

var (
	logLevel   string
	configPath string
	host       string
	port       int

	appCfg     *appconfig.Config
	musicianDB *db.MusicianDB
)

var rootCmd = &cobra.Command{
	Use:   "musician-services",
	Short: "Musician Services",
	Long:  `Musician Services manages artists, genres of music and the relationships between them.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"path to the config file")
}

// commonSetUp configures logging, loads the config file and opens the
// database connection shared by the subcommands.
func commonSetUp() {
	setLogging(logLevel)

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := log.Logger
	musicianDB, err = db.NewMusicianDB(appCfg.Database.Driver, appCfg.Database.Source, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize MusicianDB")
	}
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
