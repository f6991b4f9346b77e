package main

import (
	"math"
	"unsafe"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"

	"hdkey-core/pkg/handle"
	"hdkey-core/pkg/hdkey"
)

// keys 持有所有移交给外部运行时的句柄
var keys = handle.NewRegistry()

func newDefaultKey() (handle.ID, error) {
	return keys.Adopt(hdkey.NewPrivateKey())
}

func newKeyFromSeed(seed []byte) (handle.ID, error) {
	key, err := hdkey.NewPrivateKeyFromSeed(seed)
	if err != nil {
		return handle.Null, err
	}
	id, err := keys.Adopt(key)
	if err != nil {
		key.Zero()
		return handle.Null, err
	}
	return id, nil
}

// seedView 把调用方的内存视为种子而不截断长度。
// 超出 int 范围的长度直接按底层库的长度错误处理。
func seedView(p unsafe.Pointer, n uint64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if n > math.MaxInt {
		return nil, hdkeychain.ErrInvalidSeedLen
	}
	return unsafe.Slice((*byte)(p), int(n)), nil
}

func keyString(id handle.ID) (string, error) {
	key, err := keys.Get(id)
	if err != nil {
		return "", err
	}
	return key.String(), nil
}

// keysEqual 返回 1 表示相等，0 表示不等，-1 表示存在未知句柄
func keysEqual(a, b handle.ID) int {
	ka, err := keys.Get(a)
	if err != nil {
		return -1
	}
	kb, err := keys.Get(b)
	if err != nil {
		return -1
	}
	if ka.Equal(kb) {
		return 1
	}
	return 0
}

func freeKey(id handle.ID) error {
	return keys.Release(id)
}
