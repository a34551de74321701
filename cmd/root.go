package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/marquee/internal/cache"
	"github.com/lepinkainen/marquee/internal/config"
	"github.com/lepinkainen/marquee/internal/movie"
	"github.com/spf13/viper"
)

const (
	exitError = 1
	// exitFault is used for documents that cannot be decoded at all
	exitFault = 2
)

var exit = os.Exit

// CLI represents the complete command structure for the marquee application
type CLI struct {
	// Global flags
	Overwrite     bool `help:"Overwrite existing markdown and JSON files"`
	UpdatePosters bool `help:"Re-download posters even if they already exist"`
	Verbose       bool `short:"v" help:"Enable debug logging"`

	// Datastore flags
	Datastore   bool   `help:"Store decoded movies in a SQLite database"`
	DatastoreDB string `help:"Path to SQLite database file" default:"./marquee.db"`

	// Cache flags
	CacheDBFile string `help:"Path to cache SQLite database file" default:"./cache.db"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 720h for 30 days)" default:"720h"`

	Fetch  FetchCmd  `cmd:"" help:"Fetch a single movie from OMDB by title or IMDb ID"`
	Search SearchCmd `cmd:"" help:"Search OMDB and fetch the chosen result"`
	Decode DecodeCmd `cmd:"" help:"Decode a saved OMDB JSON document"`
	Cache  CacheCmd  `cmd:"" help:"Manage the OMDB response cache"`
}

// CacheCmd groups the cache subcommands
type CacheCmd struct {
	Invalidate cache.InvalidateCacheCmd `cmd:"" help:"Remove cached OMDB responses"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)
	initConfig()

	var cli CLI

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx := kong.Parse(&cli,
		kong.Name("marquee"),
		kong.Description("Fetch OMDB movie documents and decode them into typed records, notes and datasets."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	if cli.Verbose {
		initLogging(slog.LevelDebug)
	}

	updateGlobalConfig(&cli)

	err := kctx.Run()
	closeCache()
	if err != nil {
		slog.Error("Command failed", "error", err)
		stop()
		exit(exitCode(err))
	}
}

// closeCache closes the cache database opened during the run, if any.
func closeCache() {
	if err := cache.ResetGlobalCache(); err != nil {
		slog.Warn("Failed to close cache database", "error", err)
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if movie.IsFault(err) {
		return exitFault
	}
	return exitError
}

func initConfig() {
	config.SetDefaults()

	// .env is optional and never overrides variables already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("omdb.api_key", "OMDB_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Info("Config file not found, writing default config file")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Warn("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			exit(exitError)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)
	config.SetUpdatePosters(cli.UpdatePosters)

	// datastore.enabled may also come from the config file
	if cli.Datastore {
		viper.Set("datastore.enabled", true)
	}
	viper.Set("datastore.dbfile", cli.DatastoreDB)

	viper.Set("cache.dbfile", cli.CacheDBFile)
	viper.Set("cache.ttl", cli.CacheTTL)
}

func initLogging(level slog.Level) {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
