package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/moderntranslator/internal/exec"
)

type recordedCall struct {
	name string
	args []string
}

func fakeBridge(stdout string, runErr error, calls *[]recordedCall) *Bridge {
	b := NewBridge(BridgeConfig{Command: "store-helper", Args: []string{"--json"}}, nil)
	b.run = func(ctx context.Context, name string, args []string, opts exec.Options) *exec.Result {
		if calls != nil {
			*calls = append(*calls, recordedCall{name: name, args: args})
		}
		return &exec.Result{Command: name, Args: args, Stdout: stdout, Stderr: "helper exploded\n", Err: runErr}
	}
	return b
}

func TestBridgeRequestPurchase(t *testing.T) {
	var calls []recordedCall
	b := fakeBridge(`{"status":"succeeded"}`, nil, &calls)

	res, err := b.RequestPurchase(context.Background(), SKURemoveAds)
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, res.Status)

	require.Len(t, calls, 1)
	assert.Equal(t, "store-helper", calls[0].name)
	assert.Equal(t, []string{"--json", "purchase", SKURemoveAds}, calls[0].args)
}

func TestBridgeFetchReceipt(t *testing.T) {
	b := fakeBridge(`{"receipt":"<Receipt><AppReceipt PurchaseDate=\"2016-01-01T00:00:00Z\"/></Receipt>"}`, nil, nil)

	doc, err := b.FetchReceipt(context.Background())
	require.NoError(t, err)
	assert.Contains(t, doc, `PurchaseDate="2016-01-01T00:00:00Z"`)
}

func TestBridgeTransportFailures(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		err    error
	}{
		{name: "helper failed", stdout: "", err: errors.New("exit status 1")},
		{name: "invalid json", stdout: "Purchase complete!"},
		{name: "helper error", stdout: `{"error":"store unavailable"}`},
		{name: "missing fields", stdout: `{}`},
		{name: "unknown status", stdout: `{"status":"refunded"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fakeBridge(tt.stdout, tt.err, nil)

			_, err := b.RequestPurchase(context.Background(), SKURemoveAds)
			assert.ErrorIs(t, err, ErrTransport)
		})
	}

	_, err := fakeBridge(`{}`, nil, nil).FetchReceipt(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestBridgeHelperErrorIncludesStderr(t *testing.T) {
	b := fakeBridge("", errors.New("exit status 1"), nil)
	_, err := b.FetchReceipt(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "helper exploded")
}

func TestBridgeRequiresCommand(t *testing.T) {
	b := NewBridge(BridgeConfig{}, nil)
	_, err := b.FetchReceipt(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestBridgeRejectsBadTimeout(t *testing.T) {
	b := fakeBridge(`{"status":"succeeded"}`, nil, nil)
	b.cfg.Timeout = "forever"
	_, err := b.RequestPurchase(context.Background(), SKURemoveAds)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransport)
}
