// Package handle 为跨运行时的调用方保存 HD 私钥句柄。
//
// 外部运行时 (C、移动端) 不能持有 Go 指针，因此由 Registry 持有 *hdkey.PrivateKey，
// 调用方只拿到一个不透明的 64 位 ID，并负责显式释放。
package handle

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"hdkey-core/pkg/entropy"
	"hdkey-core/pkg/hdkey"
)

// ID 是跨边界传递的不透明句柄，0 永不分配 (对应空句柄)
type ID uint64

// Null 是空句柄
const Null ID = 0

var (
	ErrNilKey        = errors.New("handle: nil key")
	ErrUnknownHandle = errors.New("handle: unknown handle")
)

// Registry 持有已移交到边界另一侧的密钥，可并发使用
type Registry struct {
	mu   sync.Mutex
	keys map[ID]*hdkey.PrivateKey
}

func NewRegistry() *Registry {
	return &Registry{keys: make(map[ID]*hdkey.PrivateKey)}
}

// Adopt 接管 key 的所有权并返回新的句柄。调用后调用方不应再使用 key 指针。
func (r *Registry) Adopt(key *hdkey.PrivateKey) (ID, error) {
	if key == nil {
		return Null, ErrNilKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		v, err := entropy.RandomUint64()
		if err != nil {
			return Null, fmt.Errorf("分配句柄失败: %w", err)
		}
		id := ID(v)
		if id == Null {
			continue
		}
		if _, taken := r.keys[id]; taken {
			continue
		}
		r.keys[id] = key
		return id, nil
	}
}

// Get 借用句柄对应的密钥，所有权仍归 Registry
func (r *Registry) Get(id ID) (*hdkey.PrivateKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.keys[id]
	if !ok {
		return nil, ErrUnknownHandle
	}
	return key, nil
}

// Take 移除句柄并把密钥所有权交还调用方，不擦除
func (r *Registry) Take(id ID) (*hdkey.PrivateKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.keys[id]
	if !ok {
		return nil, ErrUnknownHandle
	}
	delete(r.keys, id)
	return key, nil
}

// Release 显式销毁句柄：移除并擦除密钥材料
func (r *Registry) Release(id ID) error {
	key, err := r.Take(id)
	if err != nil {
		return err
	}
	key.Zero()
	return nil
}

// Len 返回当前存活的句柄数
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}

// String 返回 16 位十六进制表示，用于 HTTP/日志等文本场景
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// ParseID 解析 String 的输出
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil || v == 0 {
		return Null, ErrUnknownHandle
	}
	return ID(v), nil
}
