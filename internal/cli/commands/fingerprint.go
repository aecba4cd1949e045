package commands

import (
	"context"

	"SecretInk/internal/cli/fingerprint"
	"SecretInk/internal/config"
)

type fingerprintCmd struct{}

func (fingerprintCmd) Name() string        { return "fingerprint" }
func (fingerprintCmd) Description() string { return "Print (or reset) this device's fingerprint" }
func (fingerprintCmd) Group() string       { return groupDevice }
func (fingerprintCmd) Usage() string       { return "fingerprint [reset]" }

func (fingerprintCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	store := fingerprint.Store{Path: cfg.FingerprintFile}
	switch {
	case len(args) == 0:
	case len(args) == 1 && args[0] == "reset":
		if err := store.Reset(); err != nil {
			return err
		}
	default:
		return ErrUsage
	}
	fp, err := fingerprint.Generate(store)
	if err != nil {
		return err
	}
	outln(fp)
	return nil
}

func init() { RegisterCmd(fingerprintCmd{}) }
