// Package purchase composes the store gateway and the receipt rule into the
// remove-ads and restore-purchase flows.
package purchase

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/iiroan/moderntranslator/internal/i18n"
	"github.com/iiroan/moderntranslator/internal/receipt"
	"github.com/iiroan/moderntranslator/internal/store"
)

// Sink receives the side effects of a flow.
type Sink interface {
	UpdateShouldShowAd(show bool)
	OpenSnackbar(message string)
}

// Kind classifies how a flow ended.
type Kind int

const (
	// KindActivated means the store reported success and ads were hidden.
	KindActivated Kind = iota
	// KindDeclined means the store answered with a non-success status.
	KindDeclined
	// KindFailed means the store could not be reached.
	KindFailed
	// KindNotQualified means the purchase date is after the free grant cutoff
	// or could not be read.
	KindNotQualified
	// KindAborted means the receipt could not be parsed; nothing was shown.
	KindAborted
)

func (k Kind) String() string {
	switch k {
	case KindActivated:
		return "activated"
	case KindDeclined:
		return "declined"
	case KindFailed:
		return "failed"
	case KindNotQualified:
		return "not-qualified"
	case KindAborted:
		return "aborted"
	}
	return "unknown"
}

// Result describes a finished flow.
type Result struct {
	AttemptID string
	Kind      Kind
	SKU       string
	Status    store.PurchaseStatus
	Outcome   receipt.Outcome
	Err       error
}

// Flow runs purchase interactions. Each call is independent; concurrent calls
// are neither coalesced nor retried.
type Flow struct {
	gateway store.Gateway
	sink    Sink
	logger  *log.Logger
}

// NewFlow creates a flow. A nil logger discards output.
func NewFlow(gateway store.Gateway, sink Sink, logger *log.Logger) *Flow {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Flow{gateway: gateway, sink: sink, logger: logger}
}

// RemoveAds buys the paid ad removal.
func (f *Flow) RemoveAds(ctx context.Context, strings i18n.Strings) Result {
	attempt := uuid.NewString()
	logger := f.logger.With("attempt", attempt)
	logger.Info("requesting ad removal", "sku", store.SKURemoveAds)
	return f.purchase(ctx, logger, attempt, store.SKURemoveAds, strings)
}

// RestorePurchase grants ad removal for free to buyers from before the cutoff.
func (f *Flow) RestorePurchase(ctx context.Context, strings i18n.Strings) Result {
	attempt := uuid.NewString()
	logger := f.logger.With("attempt", attempt)
	logger.Info("restoring purchase")

	doc, err := f.gateway.FetchReceipt(ctx)
	if err != nil {
		logger.Error("fetching receipt", "err", err)
		f.sink.OpenSnackbar(strings.Get("somethingWentWrong"))
		return Result{AttemptID: attempt, Kind: KindFailed, Err: err}
	}

	outcome, r, err := receipt.Classify(doc)
	switch outcome {
	case receipt.OutcomeEligible:
		logger.Info("receipt qualifies for free grant", "purchase_date", r.PurchaseDate, "license", r.LicenseType)
		res := f.purchase(ctx, logger, attempt, store.SKURemoveAdsFree, strings)
		res.Outcome = outcome
		return res
	case receipt.OutcomeNotEligible:
		if r.PurchaseDate.IsZero() {
			logger.Warn("receipt has no readable purchase date")
		} else {
			logger.Info("receipt does not qualify", "purchase_date", r.PurchaseDate, "cutoff", receipt.Cutoff)
		}
		f.sink.OpenSnackbar(strings.Get("notQualified"))
		return Result{AttemptID: attempt, Kind: KindNotQualified, Outcome: outcome}
	default:
		// The user gets no feedback for an unreadable receipt.
		logger.Warn("discarding unreadable receipt", "err", err)
		return Result{AttemptID: attempt, Kind: KindAborted, Outcome: outcome, Err: err}
	}
}

func (f *Flow) purchase(ctx context.Context, logger *log.Logger, attempt string, sku string, strings i18n.Strings) Result {
	res, err := f.gateway.RequestPurchase(ctx, sku)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Debug("purchase cancelled", "sku", sku)
		} else {
			logger.Error("purchase request failed", "sku", sku, "err", err)
		}
		f.sink.OpenSnackbar(strings.Get("somethingWentWrong"))
		return Result{AttemptID: attempt, Kind: KindFailed, SKU: sku, Err: err}
	}

	if res.Status != store.StatusSucceeded {
		logger.Warn("purchase not completed", "sku", sku, "status", res.Status)
		f.sink.OpenSnackbar(strings.Get("somethingWentWrong"))
		return Result{AttemptID: attempt, Kind: KindDeclined, SKU: sku, Status: res.Status}
	}

	logger.Info("purchase succeeded", "sku", sku)
	f.sink.UpdateShouldShowAd(false)
	return Result{AttemptID: attempt, Kind: KindActivated, SKU: sku, Status: res.Status}
}
