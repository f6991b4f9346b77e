// Package hdkey 提供分层确定性 (HD) 私钥句柄的构造工厂。
//
// 工厂只负责 "构造并移交所有权"：所有密钥语义 (种子长度、熵校验、主密钥生成)
// 都委托给 btcutil/hdkeychain。工厂本身没有包级可变状态，可被并发调用；
// 并发安全性取决于 hdkeychain.NewMaster，它是纯函数。
package hdkey

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
)

// ErrEmptyKey 在默认构造 (无密钥材料) 的句柄上读取密钥时返回
var ErrEmptyKey = errors.New("hdkey: handle holds no key material")

// KeyMaterial 是句柄对外暴露的只读视图，地址生成等下游模块只依赖它
type KeyMaterial interface {
	// ECPubKey 返回底层的 secp256k1 公钥
	ECPubKey() (*btcec.PublicKey, error)
	// Network 返回句柄编码所用的网络参数
	Network() *chaincfg.Params
}

// Option 配置工厂的构造参数
type Option func(*options)

type options struct {
	network *chaincfg.Params
}

// WithNetwork 指定扩展密钥的网络版本 (xprv/tprv ...)，默认主网
func WithNetwork(net *chaincfg.Params) Option {
	return func(o *options) {
		if net != nil {
			o.network = net
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{network: &chaincfg.MainNetParams}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NetworkByName 将配置里的网络名映射为 chaincfg 参数
func NetworkByName(name string) (*chaincfg.Params, error) {
	switch name {
	case "", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, errors.New("hdkey: unknown network " + name)
	}
}
