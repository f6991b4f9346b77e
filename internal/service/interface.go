package service

import (
	"context"
	"time"

	"hdkey-core/pkg/handle"
)

// 句柄来源
const (
	SourceDefault  = "default"
	SourceSeed     = "seed"
	SourceMnemonic = "mnemonic"
)

// KeyInfo 是句柄的公开描述，永远不包含扩展私钥
type KeyInfo struct {
	ID          handle.ID `json:"-"`
	Handle      string    `json:"handle"`
	Source      string    `json:"source"`
	Valid       bool      `json:"valid"`
	Network     string    `json:"network"`
	XPub        string    `json:"xpub,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	BTCAddress  string    `json:"btc_address,omitempty"`
	ETHAddress  string    `json:"eth_address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type KeyService interface {
	// NewPrivateKey 创建默认构造 (无密钥材料) 的句柄
	NewPrivateKey(ctx context.Context) (*KeyInfo, error)
	// NewPrivateKeyFromSeed 由种子创建主私钥句柄，底层错误原样透传
	NewPrivateKeyFromSeed(ctx context.Context, seed []byte) (*KeyInfo, error)
	// NewPrivateKeyFromMnemonic 由 BIP-39 助记词 (及可选密码) 创建主私钥句柄
	NewPrivateKeyFromMnemonic(ctx context.Context, mnemonic, passphrase string) (*KeyInfo, error)
	// Describe 返回句柄的公开信息
	Describe(ctx context.Context, id handle.ID) (*KeyInfo, error)
	// Release 显式销毁句柄
	Release(ctx context.Context, id handle.ID) error
	// NewSeed 生成随机种子，bits 为 0 时使用配置的默认位数
	NewSeed(bits int) ([]byte, error)
}
