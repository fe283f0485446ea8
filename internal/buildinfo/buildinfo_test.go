package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetters(t *testing.T) {
	Set("1.2.3", "abc123", "2026-01-01")

	assert.Equal(t, "1.2.3", Version())
	assert.Equal(t, "abc123", Commit())
	assert.Equal(t, "2026-01-01", Date())
	assert.Equal(t, "1.2.3 (commit: abc123, built at: 2026-01-01)", String())
}

func TestSetKeepsDefaultsForEmptyValues(t *testing.T) {
	Set("dev", "none", "unknown")
	Set("", "", "")

	assert.Equal(t, "dev", Version())
	assert.Equal(t, "none", Commit())
	assert.Equal(t, "unknown", Date())
}

func TestEnrichPreservesExplicitCommit(t *testing.T) {
	Set("v1.0.0", "deadbeef", "2026-06-01")
	Enrich()

	assert.Equal(t, "deadbeef", Commit())
}
