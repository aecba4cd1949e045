package commands

import (
	"context"
	"net/http"
	"net/url"

	"SecretInk/internal/cli/api"
	"SecretInk/internal/config"
)

type toggleReactionRequest struct {
	Type        string `json:"type"`
	Fingerprint string `json:"fingerprint"`
}

type toggleReactionResponse struct {
	Action string `json:"action"`
}

type countsResponse struct {
	Love  int `json:"love"`
	Laugh int `json:"laugh"`
	Shock int `json:"shock"`
	Sad   int `json:"sad"`
}

type reactCmd struct{}

func (reactCmd) Name() string        { return "react" }
func (reactCmd) Description() string { return "Toggle a reaction (love|laugh|shock|sad)" }
func (reactCmd) Group() string       { return groupReactions }
func (reactCmd) Usage() string       { return "react <confession-id> <type>" }

func (reactCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	fp, err := deviceFingerprint(cfg)
	if err != nil {
		return err
	}
	path := "/api/confessions/" + url.PathEscape(args[0]) + "/reactions"
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, path), toggleReactionRequest{Type: args[1], Fingerprint: fp}, fp)
	if err != nil {
		return err
	}
	var out toggleReactionResponse
	if err := api.DecodeResponse(resp, body, http.StatusOK, &out); err != nil {
		return err
	}
	printf(okColor, "Reaction %s\n", out.Action)
	return nil
}

type countsCmd struct{}

func (countsCmd) Name() string        { return "counts" }
func (countsCmd) Description() string { return "Show reaction counts of a confession" }
func (countsCmd) Group() string       { return groupReactions }
func (countsCmd) Usage() string       { return "counts <confession-id>" }

func (countsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	path := "/api/confessions/" + url.PathEscape(args[0]) + "/reactions"
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, path))
	if err != nil {
		return err
	}
	var c countsResponse
	if err := api.DecodeResponse(resp, body, http.StatusOK, &c); err != nil {
		return err
	}
	printf(accentColor, "love %d  laugh %d  shock %d  sad %d\n", c.Love, c.Laugh, c.Shock, c.Sad)
	return nil
}

func init() {
	RegisterCmd(reactCmd{})
	RegisterCmd(countsCmd{})
}
