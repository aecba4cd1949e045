package commands

import (
	"SecretInk/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage — аргументы не подходят, диспетчер печатает usage команды.
var ErrUsage = errors.New("usage")

// Command — подкоманда sicli.
type Command interface {
	// Name — имя, которое набирает пользователь, например "post".
	Name() string
	Description() string
	// Usage — строка вида "react <confession-id> <type>".
	Usage() string
	// Run получает аргументы без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// grouped реализуют команды, которые показываются в help под своим разделом.
type grouped interface {
	Group() string
}

// Разделы help в порядке вывода. Команды без раздела попадают в groupOther.
const (
	groupBoards      = "Boards"
	groupConfessions = "Confessions"
	groupReactions   = "Reactions"
	groupDevice      = "Device"
	groupOther       = "Other"
)

var groupOrder = []string{groupBoards, groupConfessions, groupReactions, groupDevice, groupOther}

var registry = map[string]Command{}

// Out — куда пишет CLI. В тестах подменяется буфером.
var Out io.Writer = os.Stdout

// RegisterCmd вызывается из init() каждой команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает команды по алфавиту.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

func groupOf(c Command) string {
	if g, ok := c.(grouped); ok && g.Group() != "" {
		return g.Group()
	}
	return groupOther
}

// FormatGlobalUsage собирает общий help: команды по разделам, затем переменные окружения.
func FormatGlobalUsage() string {
	byGroup := map[string][]Command{}
	width := 0
	for _, c := range List() {
		g := groupOf(c)
		byGroup[g] = append(byGroup[g], c)
		if n := len(c.Usage()); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("SecretInk CLI: anonymous confession boards from the terminal\n\n")
	b.WriteString("Usage:\n  sicli [--base-url <host:port>] [--https] [--fingerprint-file <path>] <command> [args]\n")
	for _, g := range groupOrder {
		cmds := byGroup[g]
		if len(cmds) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", g)
		for _, c := range cmds {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, c.Usage(), c.Description())
		}
	}
	b.WriteString("\nEnvironment:\n")
	b.WriteString("  BASE_URL, ENABLE_HTTPS, FINGERPRINT_FILE override the defaults; flags win over env.\n")
	b.WriteString("\nRun 'sicli help <command>' for the usage of one command.\n")
	return b.String()
}
