// Package store talks to the platform app store for in-app purchases.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Product ids sold by the app.
const (
	SKURemoveAds     = "remove.ads.durable"
	SKURemoveAdsFree = "remove.ads.free"
)

// ErrTransport marks failures reaching the store, as opposed to a completed
// purchase with a non-success status.
var ErrTransport = errors.New("store transport failure")

// PurchaseStatus is the store's verdict on a purchase request.
type PurchaseStatus string

const (
	StatusSucceeded        PurchaseStatus = "succeeded"
	StatusAlreadyPurchased PurchaseStatus = "alreadyPurchased"
	StatusNotFulfilled     PurchaseStatus = "notFulfilled"
	StatusNotPurchased     PurchaseStatus = "notPurchased"
)

// ParseStatus accepts the status names the store reports.
func ParseStatus(s string) (PurchaseStatus, error) {
	switch PurchaseStatus(s) {
	case StatusSucceeded, StatusAlreadyPurchased, StatusNotFulfilled, StatusNotPurchased:
		return PurchaseStatus(s), nil
	}
	return "", fmt.Errorf("unknown purchase status %q", s)
}

// PurchaseResult is returned for a completed purchase request.
type PurchaseResult struct {
	SKU    string
	Status PurchaseStatus
}

// Gateway is the platform store.
type Gateway interface {
	RequestPurchase(ctx context.Context, sku string) (PurchaseResult, error)
	FetchReceipt(ctx context.Context) (string, error)
}

// Mode selects the gateway implementation.
type Mode string

const (
	ModeProduction Mode = "production"
	ModeSimulated  Mode = "simulated"
)

// ParseMode validates a store mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeProduction:
		return ModeProduction, nil
	case ModeSimulated, "":
		return ModeSimulated, nil
	}
	return "", fmt.Errorf("invalid store mode %q (expected production or simulated)", s)
}

// Config selects and configures the gateway.
type Config struct {
	Mode      string       `yaml:"mode"`
	Simulator string       `yaml:"simulator,omitempty"`
	Bridge    BridgeConfig `yaml:"bridge"`
}

// DefaultConfig returns the simulated store with built-in behaviour.
func DefaultConfig() Config {
	return Config{
		Mode:   string(ModeSimulated),
		Bridge: DefaultBridgeConfig(),
	}
}

// New builds the gateway for cfg.Mode.
func New(cfg Config, logger *log.Logger) (Gateway, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeProduction:
		return NewBridge(cfg.Bridge, logger), nil
	default:
		sim := DefaultSimulatorConfig()
		if cfg.Simulator != "" {
			sim, err = LoadSimulatorConfig(cfg.Simulator)
			if err != nil {
				return nil, err
			}
		}
		simulator, err := NewSimulator(sim, logger)
		if err != nil {
			return nil, err
		}
		return simulator, nil
	}
}
