package commands

import (
	"SecretInk/internal/cli/api"
	"SecretInk/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Dispatch выполняет команду из args и возвращает код выхода процесса:
// 0 — успех, 1 — ошибка выполнения, 2 — неверный вызов.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])
	switch name {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: sicli %s\n", c.Usage())
		return 2
	default:
		printError(name, err)
		if hint := hintFor(err); hint != "" {
			printf(dimColor, "  %s\n", hint)
		}
		return 1
	}
}

// help: "sicli help" — общий список, "sicli help <command>" — одна команда.
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 0
	}
	c, ok := Get(strings.ToLower(args[0]))
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}
	fmt.Fprintf(Out, "Usage: sicli %s\n\n  %s\n", c.Usage(), c.Description())
	return 0
}

// hintFor подсказывает, что делать с типовыми отказами сервера.
func hintFor(err error) string {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return ""
	}
	switch apiErr.Status {
	case http.StatusTooManyRequests:
		return "this device hit the posting limit (5 per hour); try again later"
	case http.StatusGone:
		return "it has expired and will be swept from the server"
	case http.StatusLocked:
		return "the board is locked; new confessions are not accepted"
	case http.StatusNotFound:
		return "check the id or slug; expired items disappear after cleanup"
	case http.StatusConflict:
		return "another request changed the same reaction; retry"
	}
	return ""
}
