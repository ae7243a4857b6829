package store

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"

	"github.com/iiroan/moderntranslator/internal/exec"
)

// BridgeConfig configures the helper command that talks to the Windows Store.
// The helper is invoked as: <command> <args...> <action> [product id] and must
// print a JSON object on stdout.
//
//	purchase: {"status": "succeeded"}
//	receipt:  {"receipt": "<Receipt ...>"}
type BridgeConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Timeout string   `yaml:"timeout"`
}

// DefaultBridgeConfig runs the bundled PowerShell helper.
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		Command: "powershell",
		Args:    []string{"-NoProfile", "-NonInteractive", "-File", "store-bridge.ps1"},
	}
}

// Bridge is the production gateway.
type Bridge struct {
	cfg    BridgeConfig
	logger *log.Logger
	run    exec.Runner
}

// NewBridge creates a production gateway.
func NewBridge(cfg BridgeConfig, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bridge{cfg: cfg, logger: logger, run: exec.Run}
}

func (b *Bridge) invoke(ctx context.Context, action ...string) (string, error) {
	if strings.TrimSpace(b.cfg.Command) == "" {
		return "", fmt.Errorf("%w: no store bridge command configured", ErrTransport)
	}

	opts := exec.DefaultOptions()
	opts.Logger = b.logger
	if b.cfg.Timeout != "" {
		d, err := time.ParseDuration(b.cfg.Timeout)
		if err != nil {
			return "", fmt.Errorf("store bridge timeout: %w", err)
		}
		opts.Timeout = d
	} else {
		// Purchases wait on the user; the store dialog has no deadline.
		opts.Timeout = 0
	}

	args := append(append([]string{}, b.cfg.Args...), action...)
	res := b.run(ctx, b.cfg.Command, args, opts)
	if err := res.Failure(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	out := strings.TrimSpace(res.Stdout)
	if !gjson.Valid(out) {
		return "", fmt.Errorf("%w: store bridge returned invalid JSON", ErrTransport)
	}
	if msg := gjson.Get(out, "error"); msg.Exists() {
		return "", fmt.Errorf("%w: %s", ErrTransport, msg.String())
	}
	return out, nil
}

// RequestPurchase asks the store to purchase sku.
func (b *Bridge) RequestPurchase(ctx context.Context, sku string) (PurchaseResult, error) {
	out, err := b.invoke(ctx, "purchase", sku)
	if err != nil {
		return PurchaseResult{}, err
	}

	field := gjson.Get(out, "status")
	if !field.Exists() {
		return PurchaseResult{}, fmt.Errorf("%w: store bridge response has no status", ErrTransport)
	}
	status, err := ParseStatus(field.String())
	if err != nil {
		return PurchaseResult{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return PurchaseResult{SKU: sku, Status: status}, nil
}

// FetchReceipt returns the app receipt XML.
func (b *Bridge) FetchReceipt(ctx context.Context) (string, error) {
	out, err := b.invoke(ctx, "receipt")
	if err != nil {
		return "", err
	}

	field := gjson.Get(out, "receipt")
	if !field.Exists() {
		return "", fmt.Errorf("%w: store bridge response has no receipt", ErrTransport)
	}
	return field.String(), nil
}
