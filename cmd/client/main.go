// sicli — консольный клиент SecretInk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"SecretInk/internal/cli/commands"
	"SecretInk/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// -h/--help до имени команды показывают тот же help, что и "sicli help"
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), commands.FormatGlobalUsage())
		fmt.Fprintln(flag.CommandLine.Output(), "\nGlobal flags:")
		flag.PrintDefaults()
	}
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("sicli %s (built %s)\n", version, buildDate)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}
