package datastore

import (
	"fmt"

	"github.com/spf13/viper"
)

// DatabaseName is the database rows are written to on remote Datasette instances.
const DatabaseName = "marquee"

// Store persists decoded movies, locally or remotely.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// BatchInsert upserts records into the specified table
	BatchInsert(database string, table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}

// FromConfig returns a Datasette client when datastore.url is set and a
// local SQLite store at datastore.dbfile otherwise. The store is not yet
// connected.
func FromConfig() (Store, error) {
	if url := viper.GetString("datastore.url"); url != "" {
		return NewDatasetteClient(url, viper.GetString("datastore.token")), nil
	}

	dbPath := viper.GetString("datastore.dbfile")
	if dbPath == "" {
		return nil, fmt.Errorf("datastore.dbfile is not set")
	}
	return NewSQLiteStore(dbPath), nil
}
