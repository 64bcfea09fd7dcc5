// Package discord implements a notifier.Sender for Discord incoming webhooks,
// formatting CI build outcomes as a single embed.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/buildhook/buildhook/internal/buildctx"
	"github.com/buildhook/buildhook/internal/port/notifier"
)

const providerName = "discord"

// Presentation defaults when neither the request nor the build context
// provides a value.
const (
	defaultTitle     = "Jenkins Job"
	defaultUsername  = "Jenkins"
	defaultAvatarURL = "https://www.jenkins.io/images/logos/jenkins/jenkins.png"
	footerPrefix     = "Jenkins • "
)

// Embed colors per build result.
const (
	colorSuccess  = 0x2ECC71 // green
	colorUnstable = 0xF1C40F // yellow
	colorAborted  = 0x95A5A6 // grey
	colorFailure  = 0xE74C3C // red, also the fallback for unknown results
)

const maxColor = 0xFFFFFF

// Config holds the sender settings. Zero values fall back to the package
// defaults above.
type Config struct {
	// SecretName is the key looked up when the request carries no explicit
	// webhook URL.
	SecretName string
	Username   string
	AvatarURL  string
	Timeout    time.Duration
	Lookup     notifier.SecretLookup
}

// Notifier sends one build notification per call to a Discord webhook.
// It holds no per-call state; every Send is independent.
type Notifier struct {
	httpClient *http.Client
	lookup     notifier.SecretLookup
	secretName string
	username   string
	avatarURL  string
}

// NewNotifier creates a Discord sender from cfg.
func NewNotifier(cfg Config) *Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	username := cfg.Username
	if username == "" {
		username = defaultUsername
	}
	avatarURL := cfg.AvatarURL
	if avatarURL == "" {
		avatarURL = defaultAvatarURL
	}
	return &Notifier{
		httpClient: &http.Client{Timeout: timeout},
		lookup:     cfg.Lookup,
		secretName: cfg.SecretName,
		username:   username,
		avatarURL:  avatarURL,
	}
}

func init() {
	notifier.Register(providerName, func(options map[string]string, lookup notifier.SecretLookup) (notifier.Sender, error) {
		cfg := Config{
			SecretName: options["secret_name"],
			Username:   options["username"],
			AvatarURL:  options["avatar_url"],
			Lookup:     lookup,
		}
		if v := options["timeout"]; v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("discord: invalid timeout %q: %w", v, err)
			}
			cfg.Timeout = d
		}
		return NewNotifier(cfg), nil
	})
}

func (n *Notifier) Name() string { return providerName }

// webhookPayload is the Discord webhook wire format with a single embed.
type webhookPayload struct {
	Username  string         `json:"username"`
	AvatarURL string         `json:"avatar_url"`
	Embeds    []webhookEmbed `json:"embeds"`
}

type webhookEmbed struct {
	Title       string        `json:"title"`
	URL         string        `json:"url"`
	Description string        `json:"description"`
	Color       int           `json:"color"`
	Footer      webhookFooter `json:"footer"`
}

type webhookFooter struct {
	Text string `json:"text"`
}

// Send validates the request, resolves the destination, fills defaults from
// the build context, and performs one synchronous POST. It returns the
// upstream status code on 2xx; any other outcome is an error and nothing is
// retried.
func (n *Notifier) Send(ctx context.Context, req notifier.Request, build buildctx.Context) (int, error) {
	if req.Text == "" {
		return 0, fmt.Errorf("%w: message text is required", notifier.ErrConfiguration)
	}
	if req.Color != nil && (*req.Color < 0 || *req.Color > maxColor) {
		return 0, fmt.Errorf("%w: color %#x outside 24-bit range", notifier.ErrConfiguration, *req.Color)
	}

	url, err := n.resolveURL(req)
	if err != nil {
		return 0, err
	}

	body, err := json.Marshal(n.buildPayload(req, build))
	if err != nil {
		return 0, fmt.Errorf("discord marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("discord request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(httpReq)
	if err != nil {
		return 0, &notifier.DeliveryError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// Discord returns 204 on success; anything in 2xx counts.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return 0, &notifier.DeliveryError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return resp.StatusCode, nil
}

// resolveURL picks the destination: the explicit request URL always wins, the
// secret lookup is only consulted when it is absent.
func (n *Notifier) resolveURL(req notifier.Request) (string, error) {
	if req.URL != "" {
		return req.URL, nil
	}
	if n.lookup != nil {
		// A present-but-empty secret counts as not configured.
		if v, ok := n.lookup(n.secretName); ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: no webhook URL given and secret %q is not set", notifier.ErrConfiguration, n.secretName)
}

// buildPayload applies the default chain: request field, then build context,
// then the package constant.
func (n *Notifier) buildPayload(req notifier.Request, build buildctx.Context) webhookPayload {
	result := build.ResultLabel()

	title := req.Title
	if title == "" {
		title = build.JobName
	}
	if title == "" {
		title = defaultTitle
	}

	link := req.Link
	if link == "" {
		link = build.BuildURL
	}

	color := resultColor(result)
	if req.Color != nil {
		color = *req.Color
	}

	footer := req.Footer
	if footer == "" {
		footer = footerPrefix + result
	}

	username := n.username
	if req.Username != "" {
		username = req.Username
	}

	avatarURL := n.avatarURL
	if req.Avatar != "" {
		avatarURL = req.Avatar
	}

	return webhookPayload{
		Username:  username,
		AvatarURL: avatarURL,
		Embeds: []webhookEmbed{{
			Title:       title,
			URL:         link,
			Description: req.Text,
			Color:       color,
			Footer:      webhookFooter{Text: footer},
		}},
	}
}

// resultColor maps every build result to exactly one embed color.
// Unrecognized results fall through to red.
func resultColor(result string) int {
	switch result {
	case buildctx.ResultSuccess:
		return colorSuccess
	case buildctx.ResultUnstable:
		return colorUnstable
	case buildctx.ResultAborted:
		return colorAborted
	default:
		return colorFailure
	}
}
