package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/buildhook/buildhook/internal/buildctx"
	"github.com/buildhook/buildhook/internal/config"
	"github.com/buildhook/buildhook/internal/logger"
	"github.com/buildhook/buildhook/internal/port/notifier"
	"github.com/buildhook/buildhook/internal/secrets"
	"github.com/buildhook/buildhook/internal/service"
)

// runSend performs a single delivery: flags override the computed defaults,
// the build context comes from the Jenkins environment variables.
func runSend(args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigFile, "path to YAML config")
	url := fs.String("url", "", "webhook URL (overrides the secret lookup)")
	text := fs.String("text", "", "message text (required)")
	title := fs.String("title", "", "embed title (default: job name)")
	link := fs.String("link", "", "embed title link (default: build URL)")
	color := fs.String("color", "", "embed color, decimal or 0x-prefixed hex (default: by build result)")
	username := fs.String("username", "", "sender display name")
	avatar := fs.String("avatar", "", "sender avatar URL")
	footer := fs.String("footer", "", "embed footer text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	slog.SetDefault(logger.New(cfg.Logging))

	sender, _, err := buildSender(cfg)
	if err != nil {
		return err
	}

	req := notifier.Request{
		URL:      *url,
		Text:     *text,
		Title:    *title,
		Link:     *link,
		Username: *username,
		Avatar:   *avatar,
		Footer:   *footer,
	}
	if *color != "" {
		c, err := strconv.ParseInt(*color, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid -color %q: %w", *color, err)
		}
		ci := int(c)
		req.Color = &ci
	}

	svc := service.NewNotificationService(sender, nil)
	d, err := svc.Deliver(context.Background(), req, buildctx.FromEnv())
	if err != nil {
		return err
	}

	fmt.Printf("delivered: status %d\n", d.Status)
	return nil
}

// buildSender constructs the discord sender with secrets sourced from the
// configured file, or the environment when no file is set.
func buildSender(cfg *config.Config) (notifier.Sender, *secrets.Vault, error) {
	loader := secrets.EnvLoader(cfg.Discord.SecretName)
	if cfg.Discord.SecretFile != "" {
		loader = secrets.FileLoader(cfg.Discord.SecretFile)
	}

	vault, err := secrets.NewVault(loader)
	if err != nil {
		return nil, nil, fmt.Errorf("secrets: %w", err)
	}

	sender, err := notifier.New("discord", map[string]string{
		"secret_name": cfg.Discord.SecretName,
		"username":    cfg.Discord.Username,
		"avatar_url":  cfg.Discord.AvatarURL,
		"timeout":     cfg.Delivery.Timeout.String(),
	}, vault.Lookup)
	if err != nil {
		return nil, nil, fmt.Errorf("notifier: %w", err)
	}

	return sender, vault, nil
}
