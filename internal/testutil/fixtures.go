package testutil

import (
	"bytes"
	_ "embed"
)

//go:embed testdata/shooter.json
var shooterJSON []byte

// ShooterJSON returns a complete OMDB title document for "Shooter" (2007),
// tt0822854. Each call returns a fresh copy.
func ShooterJSON() []byte {
	return bytes.Clone(shooterJSON)
}
