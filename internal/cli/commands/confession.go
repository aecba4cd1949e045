package commands

import (
	"context"
	"flag"
	"io"
	"net/http"
	"net/url"
	"strings"

	"SecretInk/internal/cli/api"
	"SecretInk/internal/cli/fingerprint"
	"SecretInk/internal/config"
)

type createConfessionRequest struct {
	Content     string  `json:"content"`
	Nickname    *string `json:"nickname,omitempty"`
	Fingerprint string  `json:"fingerprint"`
}

type createConfessionResponse struct {
	ConfessionID string `json:"confession_id"`
}

type confessionResponse struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	Nickname  *string `json:"nickname"`
	CreatedAt int64   `json:"created_at"`
	ExpiresAt int64   `json:"expires_at"`
}

func deviceFingerprint(cfg *config.Config) (string, error) {
	return fingerprint.Generate(fingerprint.Store{Path: cfg.FingerprintFile})
}

type postCmd struct{}

func (postCmd) Name() string        { return "post" }
func (postCmd) Description() string { return "Post an anonymous confession to a board" }
func (postCmd) Group() string       { return groupConfessions }
func (postCmd) Usage() string       { return "post [-nickname n] <board-id> <text>" }

func (postCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	nickname := fs.String("nickname", "", "optional nickname")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return ErrUsage
	}

	fp, err := deviceFingerprint(cfg)
	if err != nil {
		return err
	}
	req := createConfessionRequest{Content: strings.Join(rest[1:], " "), Fingerprint: fp}
	if *nickname != "" {
		req.Nickname = nickname
	}

	path := "/api/boards/" + url.PathEscape(rest[0]) + "/confessions"
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, path), req, fp)
	if err != nil {
		return err
	}
	var out createConfessionResponse
	if err := api.DecodeResponse(resp, body, http.StatusCreated, &out); err != nil {
		return err
	}
	printf(okColor, "Posted %s\n", out.ConfessionID)
	return nil
}

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List live confessions of a board, newest first" }
func (listCmd) Group() string       { return groupConfessions }
func (listCmd) Usage() string       { return "list <board-id>" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	path := "/api/boards/" + url.PathEscape(args[0]) + "/confessions"
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, path))
	if err != nil {
		return err
	}
	var items []confessionResponse
	if err := api.DecodeResponse(resp, body, http.StatusOK, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		printf(dimColor, "No confessions yet\n")
		return nil
	}
	for _, c := range items {
		who := "anonymous"
		if c.Nickname != nil {
			who = *c.Nickname
		}
		printf(accentColor, "%s", who)
		printf(dimColor, "  %s  (%s)\n", formatMillis(c.CreatedAt), c.ID)
		outln("  " + c.Content)
	}
	return nil
}

func init() {
	RegisterCmd(postCmd{})
	RegisterCmd(listCmd{})
}
