package purchase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/moderntranslator/internal/i18n"
	"github.com/iiroan/moderntranslator/internal/receipt"
	"github.com/iiroan/moderntranslator/internal/store"
)

type fakeGateway struct {
	mu          sync.Mutex
	status      store.PurchaseStatus
	purchaseErr error
	doc         string
	receiptErr  error
	requests    []string
}

func (g *fakeGateway) RequestPurchase(ctx context.Context, sku string) (store.PurchaseResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, sku)
	if g.purchaseErr != nil {
		return store.PurchaseResult{}, g.purchaseErr
	}
	return store.PurchaseResult{SKU: sku, Status: g.status}, nil
}

func (g *fakeGateway) FetchReceipt(ctx context.Context) (string, error) {
	return g.doc, g.receiptErr
}

type fakeSink struct {
	mu            sync.Mutex
	shouldShowAd  bool
	notifications []string
}

func (s *fakeSink) UpdateShouldShowAd(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shouldShowAd = show
}

func (s *fakeSink) OpenSnackbar(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, message)
}

var en = i18n.MustLoad("en")

func newFlow(gw *fakeGateway) (*Flow, *fakeSink) {
	sink := &fakeSink{shouldShowAd: true}
	return NewFlow(gw, sink, nil), sink
}

func TestRemoveAdsSucceeded(t *testing.T) {
	gw := &fakeGateway{status: store.StatusSucceeded}
	flow, sink := newFlow(gw)

	res := flow.RemoveAds(context.Background(), en)

	assert.Equal(t, KindActivated, res.Kind)
	assert.NotEmpty(t, res.AttemptID)
	assert.False(t, sink.shouldShowAd)
	assert.Empty(t, sink.notifications)
	assert.Equal(t, []string{store.SKURemoveAds}, gw.requests)
}

func TestRemoveAdsOtherStatusNotifiesOnce(t *testing.T) {
	for _, status := range []store.PurchaseStatus{store.StatusAlreadyPurchased, store.StatusNotFulfilled, store.StatusNotPurchased} {
		t.Run(string(status), func(t *testing.T) {
			flow, sink := newFlow(&fakeGateway{status: status})

			res := flow.RemoveAds(context.Background(), en)

			assert.Equal(t, KindDeclined, res.Kind)
			assert.Equal(t, status, res.Status)
			assert.True(t, sink.shouldShowAd)
			assert.Equal(t, []string{en["somethingWentWrong"]}, sink.notifications)
		})
	}
}

func TestRemoveAdsTransportFailure(t *testing.T) {
	flow, sink := newFlow(&fakeGateway{purchaseErr: fmt.Errorf("%w: offline", store.ErrTransport)})

	res := flow.RemoveAds(context.Background(), en)

	assert.Equal(t, KindFailed, res.Kind)
	assert.ErrorIs(t, res.Err, store.ErrTransport)
	assert.True(t, sink.shouldShowAd)
	assert.Equal(t, []string{en["somethingWentWrong"]}, sink.notifications)
}

func TestRestorePurchaseEligible(t *testing.T) {
	gw := &fakeGateway{status: store.StatusSucceeded, doc: receipt.Build("app", "Full", receipt.Cutoff)}
	flow, sink := newFlow(gw)

	res := flow.RestorePurchase(context.Background(), en)

	assert.Equal(t, KindActivated, res.Kind)
	assert.Equal(t, receipt.OutcomeEligible, res.Outcome)
	assert.Equal(t, []string{store.SKURemoveAdsFree}, gw.requests)
	assert.False(t, sink.shouldShowAd)
	assert.Empty(t, sink.notifications)
}

func TestRestorePurchaseEligibleButDeclined(t *testing.T) {
	gw := &fakeGateway{status: store.StatusNotFulfilled, doc: receipt.Build("app", "Full", receipt.Cutoff.Add(-time.Hour))}
	flow, sink := newFlow(gw)

	res := flow.RestorePurchase(context.Background(), en)

	assert.Equal(t, KindDeclined, res.Kind)
	assert.True(t, sink.shouldShowAd)
	assert.Equal(t, []string{en["somethingWentWrong"]}, sink.notifications)
}

func TestRestorePurchaseNotQualified(t *testing.T) {
	gw := &fakeGateway{status: store.StatusSucceeded, doc: receipt.Build("app", "Full", receipt.Cutoff.Add(time.Microsecond))}
	flow, sink := newFlow(gw)

	res := flow.RestorePurchase(context.Background(), en)

	assert.Equal(t, KindNotQualified, res.Kind)
	assert.Empty(t, gw.requests)
	assert.True(t, sink.shouldShowAd)
	assert.Equal(t, []string{en["notQualified"]}, sink.notifications)
}

func TestRestorePurchaseMalformedReceiptIsSilent(t *testing.T) {
	gw := &fakeGateway{status: store.StatusSucceeded, doc: "<Receipt><AppReceipt"}
	flow, sink := newFlow(gw)

	res := flow.RestorePurchase(context.Background(), en)

	assert.Equal(t, KindAborted, res.Kind)
	assert.ErrorIs(t, res.Err, receipt.ErrMalformedReceipt)
	assert.Empty(t, gw.requests)
	assert.Empty(t, sink.notifications)
	assert.True(t, sink.shouldShowAd)
}

func TestRestorePurchaseUnreadableDateNotQualified(t *testing.T) {
	gw := &fakeGateway{status: store.StatusSucceeded, doc: `<Receipt><AppReceipt PurchaseDate="not-a-date"/></Receipt>`}
	flow, sink := newFlow(gw)

	res := flow.RestorePurchase(context.Background(), en)

	assert.Equal(t, KindNotQualified, res.Kind)
	assert.Equal(t, receipt.OutcomeNotEligible, res.Outcome)
	assert.Empty(t, gw.requests)
	assert.Equal(t, []string{en["notQualified"]}, sink.notifications)
	assert.True(t, sink.shouldShowAd)
}

func TestRestorePurchaseReceiptFailure(t *testing.T) {
	gw := &fakeGateway{receiptErr: fmt.Errorf("%w: offline", store.ErrTransport)}
	flow, sink := newFlow(gw)

	res := flow.RestorePurchase(context.Background(), en)

	assert.Equal(t, KindFailed, res.Kind)
	assert.Empty(t, gw.requests)
	assert.Equal(t, []string{en["somethingWentWrong"]}, sink.notifications)
}

func TestNotificationsUseActiveStrings(t *testing.T) {
	vi := i18n.MustLoad("vi")
	flow, sink := newFlow(&fakeGateway{status: store.StatusNotPurchased})

	flow.RemoveAds(context.Background(), vi)

	require.Len(t, sink.notifications, 1)
	assert.Equal(t, vi["somethingWentWrong"], sink.notifications[0])
}

func TestConcurrentRequestsAreNotCoalesced(t *testing.T) {
	gw := &fakeGateway{status: store.StatusSucceeded}
	flow, _ := newFlow(gw)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flow.RemoveAds(context.Background(), en)
		}()
	}
	wg.Wait()

	assert.Len(t, gw.requests, 2)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "activated", KindActivated.String())
	assert.Equal(t, "aborted", KindAborted.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
