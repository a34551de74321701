package cache

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// InvalidateCacheCmd represents the cache invalidate subcommand
type InvalidateCacheCmd struct {
	Source string `arg:"" help:"Cache source to invalidate: omdb, omdb_search, all" required:""`
}

// sources maps CLI source names to cache tables.
var sources = map[string]string{
	"omdb":        "omdb_cache",
	"omdb_search": "omdb_search_cache",
}

func (i *InvalidateCacheCmd) Run() error {
	var tables []string
	switch table, ok := sources[i.Source]; {
	case i.Source == "all":
		for _, t := range sources {
			tables = append(tables, t)
		}
		sort.Strings(tables)
	case ok:
		tables = []string{table}
	default:
		return fmt.Errorf("invalid cache source '%s'; valid sources are: %s, all", i.Source, strings.Join(sourceNames(), ", "))
	}

	slog.Info("Invalidating cache", "source", i.Source, "database", viper.GetString("cache.dbfile"))

	cacheInstance, err := GetGlobalCache()
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}

	for _, table := range tables {
		rowsDeleted, err := cacheInstance.InvalidateSource(table)
		if err != nil {
			return fmt.Errorf("failed to invalidate cache: %w", err)
		}
		slog.Info("Cache invalidated", "table", table, "rows_deleted", rowsDeleted)
	}
	return nil
}

func sourceNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
