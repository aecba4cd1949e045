package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"SecretInk/internal/config"

	"github.com/fatih/color"
)

func init() { color.NoColor = true }

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// testConfig направляет клиента на serverURL, device id хранится в temp.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:       serverURL,
		FingerprintFile: filepath.Join(t.TempDir(), "device_id"),
	}
}
