/*
File   : cloudy/repl/repl_test.go
Package: repl
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nandu-not-bot/cloudy"
	"github.com/nandu-not-bot/cloudy/config"
)

func TestNewDisablesColorWhenEitherSideSaysSo(t *testing.T) {
	cfg := config.Default()
	cfg.Color = true
	assert.True(t, New(cfg, true).UseColor)
	assert.False(t, New(cfg, false).UseColor)

	cfg.Color = false
	assert.False(t, New(cfg, true).UseColor)
}

func TestPrintBannerInfoPlainIncludesVersionAndAuthor(t *testing.T) {
	cfg := config.Default()
	r := New(cfg, false)
	var buf bytes.Buffer
	r.printBannerInfo(&buf)
	out := buf.String()
	assert.Contains(t, out, cfg.Version)
	assert.Contains(t, out, cfg.Author)
	assert.Contains(t, out, "Type '.exit' to quit")
}

func TestExecuteWithRecoveryPrintsResult(t *testing.T) {
	cfg := config.Default()
	r := New(cfg, false)
	ctx := cloudy.NewGlobalContext()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "2 + 2", ctx)
	assert.Contains(t, buf.String(), "4")
}

func TestExecuteWithRecoverySkipsNullResult(t *testing.T) {
	cfg := config.Default()
	r := New(cfg, false)
	ctx := cloudy.NewGlobalContext()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "var x = null", ctx)
	assert.Empty(t, buf.String())
}

func TestExecuteWithRecoveryPrintsErrorAndKeepsGoing(t *testing.T) {
	cfg := config.Default()
	r := New(cfg, false)
	ctx := cloudy.NewGlobalContext()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "missing_name", ctx)
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	r.executeWithRecovery(&buf, "1 + 1", ctx)
	assert.Contains(t, buf.String(), "2")
}

func TestExecuteWithRecoveryPersistsVariablesAcrossCalls(t *testing.T) {
	cfg := config.Default()
	r := New(cfg, false)
	ctx := cloudy.NewGlobalContext()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "var x = 41", ctx)
	buf.Reset()
	r.executeWithRecovery(&buf, "x + 1", ctx)
	assert.Contains(t, buf.String(), "42")
}
