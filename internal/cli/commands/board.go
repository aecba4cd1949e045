package commands

import (
	"context"
	"flag"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SecretInk/internal/cli/api"
	"SecretInk/internal/config"
)

type createBoardRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ExpiresAt   *int64  `json:"expires_at,omitempty"`
	Theme       string  `json:"theme,omitempty"`
}

type createBoardResponse struct {
	BoardID string `json:"board_id"`
	Slug    string `json:"slug"`
}

type boardResponse struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   int64   `json:"created_at"`
	ExpiresAt   *int64  `json:"expires_at"`
	IsLocked    bool    `json:"is_locked"`
	Theme       string  `json:"theme"`
}

type createBoardCmd struct{}

func (createBoardCmd) Name() string        { return "create-board" }
func (createBoardCmd) Description() string { return "Create a new board" }
func (createBoardCmd) Group() string       { return groupBoards }
func (createBoardCmd) Usage() string {
	return "create-board [-theme t] [-description d] [-expires-in 24h] <name>"
}

func (createBoardCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("create-board", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	theme := fs.String("theme", "", "indigo|teal|amber|red|purple|emerald")
	desc := fs.String("description", "", "board description")
	expiresIn := fs.Duration("expires-in", 0, "board lifetime, 1h..336h (default 12h)")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	name := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if name == "" {
		return ErrUsage
	}

	req := createBoardRequest{Name: name, Theme: *theme}
	if *desc != "" {
		req.Description = desc
	}
	if *expiresIn > 0 {
		at := time.Now().Add(*expiresIn).UnixMilli()
		req.ExpiresAt = &at
	}

	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/boards"), req, "")
	if err != nil {
		return err
	}
	var out createBoardResponse
	if err := api.DecodeResponse(resp, body, http.StatusCreated, &out); err != nil {
		return err
	}
	printf(okColor, "Board created\n")
	outln("  id:  ", out.BoardID)
	outln("  slug:", out.Slug)
	return nil
}

type boardCmd struct{}

func (boardCmd) Name() string        { return "board" }
func (boardCmd) Description() string { return "Show a board by slug" }
func (boardCmd) Group() string       { return groupBoards }
func (boardCmd) Usage() string       { return "board <slug>" }

func (boardCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "/api/boards/"+url.PathEscape(args[0])))
	if err != nil {
		return err
	}
	var b boardResponse
	if err := api.DecodeResponse(resp, body, http.StatusOK, &b); err != nil {
		return err
	}

	printf(themeColor(b.Theme), "%s\n", b.Name)
	if b.Description != nil {
		outln(*b.Description)
	}
	printf(dimColor, "id %s, slug %s, theme %s\n", b.ID, b.Slug, b.Theme)
	printf(dimColor, "created %s\n", formatMillis(b.CreatedAt))
	if b.ExpiresAt != nil {
		printf(dimColor, "expires %s\n", formatMillis(*b.ExpiresAt))
	}
	if b.IsLocked {
		printf(errColor, "locked\n")
	}
	return nil
}

func init() {
	RegisterCmd(createBoardCmd{})
	RegisterCmd(boardCmd{})
}
