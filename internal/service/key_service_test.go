package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdkey-core/internal/event"
	"hdkey-core/internal/model"
	"hdkey-core/pkg/errno"
	"hdkey-core/pkg/handle"
)

type fakeLedger struct {
	mu       sync.Mutex
	created  []*model.KeyRecord
	released []string
	err      error
}

func (l *fakeLedger) RecordCreated(_ context.Context, rec *model.KeyRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.created = append(l.created, rec)
	return l.err
}

func (l *fakeLedger) RecordReleased(_ context.Context, h string, _ time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.released = append(l.released, h)
	return l.err
}

type fakeProducer struct {
	mu     sync.Mutex
	events []event.KeyEvent
	keys   []string
	topics []string
	err    error
}

func (p *fakeProducer) Publish(_ context.Context, topic, key string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ev event.KeyEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return err
	}
	p.events = append(p.events, ev)
	p.keys = append(p.keys, key)
	p.topics = append(p.topics, topic)
	return p.err
}

func (p *fakeProducer) Close() error { return nil }

const abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newTestService(t *testing.T) (*HDKeyService, *handle.Registry, *fakeLedger, *fakeProducer) {
	t.Helper()
	reg := handle.NewRegistry()
	ledger := &fakeLedger{}
	producer := &fakeProducer{}
	svc, err := NewHDKeyService(reg, Options{Ledger: ledger, Producer: producer})
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, reg, ledger, producer
}

func TestNewPrivateKey_Default(t *testing.T) {
	svc, reg, ledger, producer := newTestService(t)
	ctx := context.Background()

	info, err := svc.NewPrivateKey(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, handle.Null, info.ID)
	assert.Equal(t, info.ID.String(), info.Handle)
	assert.Equal(t, SourceDefault, info.Source)
	assert.False(t, info.Valid)
	assert.Empty(t, info.XPub)
	assert.Equal(t, chaincfg.MainNetParams.Name, info.Network)
	assert.Equal(t, 1, reg.Len())

	require.Len(t, ledger.created, 1)
	assert.Equal(t, info.Handle, ledger.created[0].Handle)
	require.Len(t, producer.events, 1)
	assert.Equal(t, event.TypeKeyCreated, producer.events[0].Type)
	assert.Equal(t, event.Topic, producer.topics[0])
	assert.Equal(t, info.Handle, producer.keys[0])
}

func TestNewPrivateKeyFromSeed_Deterministic(t *testing.T) {
	svc, reg, _, _ := newTestService(t)
	ctx := context.Background()
	seed := bytes.Repeat([]byte{0x5a}, 64)

	a, err := svc.NewPrivateKeyFromSeed(ctx, seed)
	require.NoError(t, err)
	b, err := svc.NewPrivateKeyFromSeed(ctx, seed)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "每次调用都是独立的句柄")
	assert.True(t, a.Valid)
	assert.Equal(t, a.XPub, b.XPub)
	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Len(t, a.Fingerprint, 16)
	assert.NotEmpty(t, a.BTCAddress)
	assert.NotEmpty(t, a.ETHAddress)
	assert.Equal(t, 2, reg.Len())

	ka, err := reg.Get(a.ID)
	require.NoError(t, err)
	kb, err := reg.Get(b.ID)
	require.NoError(t, err)
	assert.NotSame(t, ka, kb)
	assert.True(t, ka.Equal(kb))
}

func TestNewPrivateKeyFromSeed_ErrorPassThrough(t *testing.T) {
	svc, reg, ledger, producer := newTestService(t)

	info, err := svc.NewPrivateKeyFromSeed(context.Background(), nil)
	assert.Nil(t, info)
	require.Error(t, err)

	assert.ErrorIs(t, err, hdkeychain.ErrInvalidSeedLen)
	assert.ErrorIs(t, err, errno.ErrKeyConstruction)
	code, msg := errno.Decode(err)
	assert.Equal(t, errno.ErrKeyConstruction.Code, code)
	assert.Equal(t, hdkeychain.ErrInvalidSeedLen.Error(), msg)

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, ledger.created)
	assert.Empty(t, producer.events)
}

func TestNewPrivateKeyFromMnemonic(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	info, err := svc.NewPrivateKeyFromMnemonic(ctx, abandonMnemonic, "")
	require.NoError(t, err)
	assert.Equal(t, SourceMnemonic, info.Source)
	assert.True(t, info.Valid)

	withPass, err := svc.NewPrivateKeyFromMnemonic(ctx, abandonMnemonic, "TREZOR")
	require.NoError(t, err)
	assert.NotEqual(t, info.XPub, withPass.XPub)

	_, err = svc.NewPrivateKeyFromMnemonic(ctx, "not a mnemonic", "")
	assert.ErrorIs(t, err, errno.ErrInvalidMnemonic)
}

func TestDescribeAndRelease(t *testing.T) {
	svc, reg, ledger, producer := newTestService(t)
	ctx := context.Background()

	created, err := svc.NewPrivateKeyFromSeed(ctx, bytes.Repeat([]byte{1}, 32))
	require.NoError(t, err)

	got, err := svc.Describe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, svc.Release(ctx, created.ID))
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, []string{created.Handle}, ledger.released)
	require.Len(t, producer.events, 2)
	assert.Equal(t, event.TypeKeyReleased, producer.events[1].Type)

	_, err = svc.Describe(ctx, created.ID)
	assert.ErrorIs(t, err, errno.ErrHandleNotFound)
	assert.ErrorIs(t, err, handle.ErrUnknownHandle)

	err = svc.Release(ctx, created.ID)
	assert.ErrorIs(t, err, errno.ErrHandleNotFound)
}

func TestSideEffectFailuresDoNotUndoConstruction(t *testing.T) {
	reg := handle.NewRegistry()
	boom := errors.New("down")
	svc, err := NewHDKeyService(reg, Options{
		Ledger:   &fakeLedger{err: boom},
		Producer: &fakeProducer{err: boom},
	})
	require.NoError(t, err)

	info, err := svc.NewPrivateKeyFromSeed(context.Background(), bytes.Repeat([]byte{2}, 16))
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
	assert.NoError(t, svc.Release(context.Background(), info.ID))
}

func TestNewSeed(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	seed, err := svc.NewSeed(0)
	require.NoError(t, err)
	assert.Len(t, seed, 24)

	seed, err = svc.NewSeed(512)
	require.NoError(t, err)
	assert.Len(t, seed, 64)

	_, err = svc.NewSeed(13)
	assert.Error(t, err)
}

func TestNewHDKeyService_Options(t *testing.T) {
	_, err := NewHDKeyService(handle.NewRegistry(), Options{Fingerprint: "md5"})
	assert.Error(t, err)

	svc, err := NewHDKeyService(handle.NewRegistry(), Options{Network: &chaincfg.TestNet3Params})
	require.NoError(t, err)
	info, err := svc.NewPrivateKeyFromSeed(context.Background(), bytes.Repeat([]byte{3}, 16))
	require.NoError(t, err)
	assert.Equal(t, chaincfg.TestNet3Params.Name, info.Network)
	assert.Contains(t, info.XPub, "tpub")
}

func TestDescribe_ConcurrentWithRelease(t *testing.T) {
	svc, reg, _, _ := newTestService(t)
	ctx := context.Background()

	ids := make([]handle.ID, 200)
	for i := range ids {
		seed := bytes.Repeat([]byte{byte(i)}, 32)
		info, err := svc.NewPrivateKeyFromSeed(ctx, seed)
		require.NoError(t, err)
		ids[i] = info.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		go func(id handle.ID) {
			defer wg.Done()
			info, err := svc.Describe(ctx, id)
			if err != nil {
				assert.ErrorIs(t, err, errno.ErrHandleNotFound)
				return
			}
			assert.True(t, info.Valid)
			assert.NotEmpty(t, info.XPub)
			assert.NotEmpty(t, info.BTCAddress)
		}(id)
		go func(id handle.ID) {
			defer wg.Done()
			assert.NoError(t, svc.Release(ctx, id))
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 0, reg.Len())
}
