package hdkey

import (
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// PrivateKey 是 HD 私钥的不透明句柄，封装了 hdkeychain.ExtendedKey。
// key 为 nil 表示默认构造状态 (没有任何密钥材料)。
// 调用方独占该句柄，工厂返回后不再持有任何引用。
// 所有方法可以并发调用，Zero 之后的读取看到的是默认状态。
// hdkeychain 会在读取时缓存公钥，因此读取也需要互斥。
type PrivateKey struct {
	mu      sync.Mutex
	key     *hdkeychain.ExtendedKey
	network *chaincfg.Params
}

// NewPrivateKey 返回一个默认构造的句柄，永不为 nil
func NewPrivateKey(opts ...Option) *PrivateKey {
	o := buildOptions(opts)
	return &PrivateKey{network: o.network}
}

// NewPrivateKeyFromSeed 使用种子生成 BIP-32 主私钥。
// 种子长度与可用性由 hdkeychain 判定，错误原样返回 (ErrInvalidSeedLen / ErrUnusableSeed)。
func NewPrivateKeyFromSeed(seed []byte, opts ...Option) (*PrivateKey, error) {
	o := buildOptions(opts)

	master, err := hdkeychain.NewMaster(seed, o.network)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: master, network: o.network}, nil
}

// view 在锁内执行 fn，默认句柄返回 ErrEmptyKey
func (k *PrivateKey) view(fn func(key *hdkeychain.ExtendedKey) error) error {
	if k == nil {
		return ErrEmptyKey
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key == nil {
		return ErrEmptyKey
	}
	return fn(k.key)
}

// IsValid 报告句柄是否持有密钥材料
func (k *PrivateKey) IsValid() bool {
	return k.view(func(*hdkeychain.ExtendedKey) error { return nil }) == nil
}

func (k *PrivateKey) IsPrivate() bool {
	var private bool
	_ = k.view(func(key *hdkeychain.ExtendedKey) error {
		private = key.IsPrivate()
		return nil
	})
	return private
}

func (k *PrivateKey) Network() *chaincfg.Params {
	return k.network
}

// String 返回 Base58 编码的扩展私钥 (xprv...)，默认句柄返回空串
func (k *PrivateKey) String() string {
	var s string
	_ = k.view(func(key *hdkeychain.ExtendedKey) error {
		s = key.String()
		return nil
	})
	return s
}

// Equal 按底层库的序列化比较两份密钥材料。
// 两个默认句柄在同一网络下相等；nil 只与 nil 相等。
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	// 分别取快照，不同时持有两把锁
	a, b := k.String(), other.String()
	if a == "" && b == "" {
		return sameNetwork(k.network, other.network)
	}
	return a == b
}

func sameNetwork(a, b *chaincfg.Params) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Net == b.Net
}

func (k *PrivateKey) ECPrivKey() (priv *btcec.PrivateKey, err error) {
	err = k.view(func(key *hdkeychain.ExtendedKey) error {
		priv, err = key.ECPrivKey()
		return err
	})
	return priv, err
}

func (k *PrivateKey) ECPubKey() (pub *btcec.PublicKey, err error) {
	err = k.view(func(key *hdkeychain.ExtendedKey) error {
		pub, err = key.ECPubKey()
		return err
	})
	return pub, err
}

// Neuter 返回对应的扩展公钥 (xpub...)
func (k *PrivateKey) Neuter() (xpub string, err error) {
	err = k.view(func(key *hdkeychain.ExtendedKey) error {
		pub, err := key.Neuter()
		if err != nil {
			return err
		}
		xpub = pub.String()
		return nil
	})
	return xpub, err
}

// Zero 擦除密钥材料并回到默认状态，可重复调用
func (k *PrivateKey) Zero() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key == nil {
		return
	}
	k.key.Zero()
	k.key = nil
}
