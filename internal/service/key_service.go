package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"

	"hdkey-core/internal/event"
	"hdkey-core/internal/model"
	"hdkey-core/internal/service/mq"
	"hdkey-core/pkg/address"
	"hdkey-core/pkg/bip39"
	"hdkey-core/pkg/crypto_util"
	"hdkey-core/pkg/entropy"
	"hdkey-core/pkg/errno"
	"hdkey-core/pkg/handle"
	"hdkey-core/pkg/hdkey"
	"hdkey-core/pkg/logger"
	"hdkey-core/pkg/monitor"
)

// Options 配置 HDKeyService，Ledger 与 Producer 可以为空
type Options struct {
	Network     *chaincfg.Params
	SeedBits    int
	Fingerprint string
	Ledger      KeyLedger
	Producer    mq.Producer
	Topic       string
}

type keyMeta struct {
	source    string
	createdAt time.Time
}

// HDKeyService 实现 KeyService: 工厂构造 -> Registry 接管 -> 账本 -> 事件 -> 指标
type HDKeyService struct {
	registry    *handle.Registry
	network     *chaincfg.Params
	seedBits    int
	fingerprint crypto_util.Fingerprinter
	mnemonics   *bip39.MnemonicService
	ledger      KeyLedger
	producer    mq.Producer
	topic       string
	now         func() time.Time

	mu   sync.Mutex
	meta map[handle.ID]keyMeta
}

func NewHDKeyService(registry *handle.Registry, opts Options) (*HDKeyService, error) {
	fp, err := crypto_util.NewFingerprinter(opts.Fingerprint)
	if err != nil {
		return nil, err
	}
	if opts.Network == nil {
		opts.Network = &chaincfg.MainNetParams
	}
	if opts.SeedBits == 0 {
		opts.SeedBits = entropy.DefaultSeedBits
	}
	if opts.Topic == "" {
		opts.Topic = event.Topic
	}

	return &HDKeyService{
		registry:    registry,
		network:     opts.Network,
		seedBits:    opts.SeedBits,
		fingerprint: fp,
		mnemonics:   bip39.NewMnemonicService(),
		ledger:      opts.Ledger,
		producer:    opts.Producer,
		topic:       opts.Topic,
		now:         time.Now,
		meta:        make(map[handle.ID]keyMeta),
	}, nil
}

func (s *HDKeyService) NewPrivateKey(ctx context.Context) (*KeyInfo, error) {
	key := hdkey.NewPrivateKey(hdkey.WithNetwork(s.network))
	return s.adopt(ctx, key, SourceDefault)
}

func (s *HDKeyService) NewPrivateKeyFromSeed(ctx context.Context, seed []byte) (*KeyInfo, error) {
	return s.fromSeed(ctx, seed, SourceSeed)
}

func (s *HDKeyService) NewPrivateKeyFromMnemonic(ctx context.Context, mnemonic, passphrase string) (*KeyInfo, error) {
	seed, err := s.mnemonics.MnemonicToSeed(mnemonic, passphrase)
	if err != nil {
		return nil, errno.Wrap(errno.ErrInvalidMnemonic, err)
	}
	return s.fromSeed(ctx, seed, SourceMnemonic)
}

func (s *HDKeyService) fromSeed(ctx context.Context, seed []byte, source string) (*KeyInfo, error) {
	key, err := hdkey.NewPrivateKeyFromSeed(seed, hdkey.WithNetwork(s.network))
	if err != nil {
		monitor.KeyConstructionFailures.WithLabelValues(source).Inc()
		logger.Warn("密钥构造失败", logger.Source(source), zap.Int("seed_len", len(seed)), zap.Error(err))
		// 保留底层错误文本与哨兵值，调用方可以 errors.Is(err, hdkeychain.ErrInvalidSeedLen)
		return nil, errno.Wrap(errno.ErrKeyConstruction, err)
	}
	return s.adopt(ctx, key, source)
}

// adopt 把新句柄交给 Registry，账本和事件失败只记录日志，不回滚构造
func (s *HDKeyService) adopt(ctx context.Context, key *hdkey.PrivateKey, source string) (*KeyInfo, error) {
	id, err := s.registry.Adopt(key)
	if err != nil {
		key.Zero()
		return nil, err
	}

	createdAt := s.now().UTC()
	s.mu.Lock()
	s.meta[id] = keyMeta{source: source, createdAt: createdAt}
	s.mu.Unlock()

	monitor.KeysConstructed.WithLabelValues(source).Inc()
	monitor.LiveHandles.Inc()

	info, err := s.describe(id, key)
	if err != nil {
		_ = s.Release(ctx, id)
		return nil, err
	}
	logger.Info("句柄已创建",
		logger.Handle(info.Handle),
		logger.Source(source),
		logger.Fingerprint(info.Fingerprint))

	if s.ledger != nil {
		rec := &model.KeyRecord{
			Handle:      info.Handle,
			Source:      source,
			Network:     info.Network,
			Fingerprint: info.Fingerprint,
			XPub:        info.XPub,
			CreatedAt:   createdAt,
		}
		if err := s.ledger.RecordCreated(ctx, rec); err != nil {
			logger.Error("写入密钥账本失败", logger.Handle(info.Handle), zap.Error(err))
		}
	}

	s.publish(ctx, event.KeyEvent{
		Type:        event.TypeKeyCreated,
		Handle:      info.Handle,
		Source:      source,
		Network:     info.Network,
		Fingerprint: info.Fingerprint,
		At:          createdAt,
	})
	return info, nil
}

func (s *HDKeyService) Describe(ctx context.Context, id handle.ID) (*KeyInfo, error) {
	key, err := s.registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errno.ErrHandleNotFound, err)
	}

	info, err := s.describe(id, key)
	if errors.Is(err, hdkey.ErrEmptyKey) {
		// 读取期间句柄被并发释放
		return nil, fmt.Errorf("%w: %w", errno.ErrHandleNotFound, handle.ErrUnknownHandle)
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.registry.Get(id); err != nil {
		return nil, fmt.Errorf("%w: %w", errno.ErrHandleNotFound, err)
	}
	return info, nil
}

func (s *HDKeyService) describe(id handle.ID, key *hdkey.PrivateKey) (*KeyInfo, error) {
	s.mu.Lock()
	meta := s.meta[id]
	s.mu.Unlock()

	info := &KeyInfo{
		ID:        id,
		Handle:    id.String(),
		Source:    meta.source,
		Valid:     key.IsValid(),
		Network:   key.Network().Name,
		CreatedAt: meta.createdAt,
	}
	if !info.Valid {
		return info, nil
	}

	xpub, err := key.Neuter()
	if err != nil {
		return nil, err
	}
	info.XPub = xpub
	info.Fingerprint = s.fingerprint(xpub)

	if info.BTCAddress, err = address.KeyToAddress(key); err != nil {
		return nil, err
	}
	if info.ETHAddress, err = address.KeyToETHAddress(key); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *HDKeyService) Release(ctx context.Context, id handle.ID) error {
	if err := s.registry.Release(id); err != nil {
		return fmt.Errorf("%w: %w", errno.ErrHandleNotFound, err)
	}

	s.mu.Lock()
	delete(s.meta, id)
	s.mu.Unlock()
	monitor.LiveHandles.Dec()

	at := s.now().UTC()
	logger.Info("句柄已释放", logger.Handle(id.String()))

	if s.ledger != nil {
		if err := s.ledger.RecordReleased(ctx, id.String(), at); err != nil {
			logger.Error("更新密钥账本失败", logger.Handle(id.String()), zap.Error(err))
		}
	}
	s.publish(ctx, event.KeyEvent{Type: event.TypeKeyReleased, Handle: id.String(), At: at})
	return nil
}

func (s *HDKeyService) NewSeed(bits int) ([]byte, error) {
	if bits == 0 {
		bits = s.seedBits
	}
	return entropy.NewSeed(bits)
}

func (s *HDKeyService) publish(ctx context.Context, ev event.KeyEvent) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Error("序列化事件失败", zap.Error(err))
		return
	}
	if err := s.producer.Publish(ctx, s.topic, ev.Handle, payload); err != nil {
		logger.Error("发送事件失败", zap.String("type", ev.Type), logger.Handle(ev.Handle), zap.Error(err))
	}
}
