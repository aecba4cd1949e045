package commands

import (
	"fmt"
	"strings"
	"time"

	"SecretInk/internal/config"

	"github.com/fatih/color"
)

var (
	errColor    = color.New(color.FgRed, color.Bold)
	okColor     = color.New(color.FgGreen)
	accentColor = color.New(color.FgCyan, color.Bold)
	dimColor    = color.New(color.Faint)
)

func printError(name string, err error) {
	errColor.Fprintf(Out, "%s error: %v\n", name, err)
}

// formatMillis печатает epoch ms в локальном времени.
func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// themeColor подсвечивает название доски цветом её темы.
func themeColor(theme string) *color.Color {
	switch theme {
	case "teal":
		return color.New(color.FgCyan, color.Bold)
	case "amber":
		return color.New(color.FgYellow, color.Bold)
	case "red":
		return color.New(color.FgRed, color.Bold)
	case "purple":
		return color.New(color.FgMagenta, color.Bold)
	case "emerald":
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.FgBlue, color.Bold)
	}
}

func printf(c *color.Color, format string, a ...any) {
	c.Fprintf(Out, format, a...)
}

func outln(a ...any) {
	fmt.Fprintln(Out, a...)
}
