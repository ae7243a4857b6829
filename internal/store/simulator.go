package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/moderntranslator/internal/receipt"
)

// SimulatorConfig describes how the simulated store answers.
type SimulatorConfig struct {
	// Products maps a SKU to the status its purchase resolves to.
	Products map[string]string `yaml:"products"`
	Receipt  SimulatedReceipt  `yaml:"receipt"`

	FailPurchase bool   `yaml:"fail_purchase"`
	FailReceipt  bool   `yaml:"fail_receipt"`
	Latency      string `yaml:"latency"`
}

// SimulatedReceipt is either a raw document or the fields to build one from.
type SimulatedReceipt struct {
	Raw          string `yaml:"raw,omitempty"`
	AppID        string `yaml:"app_id"`
	LicenseType  string `yaml:"license_type"`
	PurchaseDate string `yaml:"purchase_date"`
}

// DefaultSimulatorConfig succeeds every purchase and reports an early buyer.
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		Products: map[string]string{
			SKURemoveAds:     string(StatusSucceeded),
			SKURemoveAdsFree: string(StatusSucceeded),
		},
		Receipt: SimulatedReceipt{
			AppID:        "ModernTranslator.Simulator",
			LicenseType:  "Full",
			PurchaseDate: "2016-11-20T17:36:11Z",
		},
	}
}

// LoadSimulatorConfig reads a simulator file, filling unset fields from defaults.
func LoadSimulatorConfig(path string) (SimulatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SimulatorConfig{}, fmt.Errorf("reading simulator config: %w", err)
	}

	cfg := DefaultSimulatorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SimulatorConfig{}, fmt.Errorf("parsing simulator config: %w", err)
	}
	return cfg, nil
}

// Simulator is an in-process store for development builds.
type Simulator struct {
	cfg     SimulatorConfig
	receipt string
	latency time.Duration
	logger  *log.Logger

	mu       sync.Mutex
	requests []string
}

// NewSimulator validates cfg and builds a simulator. A nil logger discards output.
func NewSimulator(cfg SimulatorConfig, logger *log.Logger) (*Simulator, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	for sku, status := range cfg.Products {
		if _, err := ParseStatus(status); err != nil {
			return nil, fmt.Errorf("simulator product %s: %w", sku, err)
		}
	}

	var latency time.Duration
	if cfg.Latency != "" {
		d, err := time.ParseDuration(cfg.Latency)
		if err != nil {
			return nil, fmt.Errorf("simulator latency: %w", err)
		}
		latency = d
	}

	doc := cfg.Receipt.Raw
	if doc == "" {
		date, err := time.Parse(time.RFC3339Nano, cfg.Receipt.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("simulator receipt purchase_date: %w", err)
		}
		doc = receipt.Build(cfg.Receipt.AppID, cfg.Receipt.LicenseType, date)
	}

	return &Simulator{
		cfg:     cfg,
		receipt: doc,
		latency: latency,
		logger:  logger,
	}, nil
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.latency <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrTransport, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// RequestPurchase resolves to the configured status for sku.
// SKUs without a configured status resolve to notPurchased.
func (s *Simulator) RequestPurchase(ctx context.Context, sku string) (PurchaseResult, error) {
	s.mu.Lock()
	s.requests = append(s.requests, sku)
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		return PurchaseResult{}, err
	}
	if s.cfg.FailPurchase {
		return PurchaseResult{}, fmt.Errorf("%w: simulated purchase failure", ErrTransport)
	}

	status := StatusNotPurchased
	if configured, ok := s.cfg.Products[sku]; ok {
		status = PurchaseStatus(configured)
	}
	s.logger.Debug("simulated purchase", "sku", sku, "status", status)
	return PurchaseResult{SKU: sku, Status: status}, nil
}

// FetchReceipt returns the configured receipt document.
func (s *Simulator) FetchReceipt(ctx context.Context) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	if s.cfg.FailReceipt {
		return "", fmt.Errorf("%w: simulated receipt failure", ErrTransport)
	}
	return s.receipt, nil
}

// Requests returns the SKUs requested so far.
func (s *Simulator) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}
