package handle

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdkey-core/pkg/entropy"
	"hdkey-core/pkg/hdkey"
)

func seededKey(t *testing.T) *hdkey.PrivateKey {
	t.Helper()
	key, err := hdkey.NewPrivateKeyFromSeed(bytes.Repeat([]byte{0x42}, 64))
	require.NoError(t, err)
	return key
}

func TestRegistry_AdoptGetRelease(t *testing.T) {
	r := NewRegistry()
	key := seededKey(t)
	want := key.String()

	id, err := r.Adopt(key)
	require.NoError(t, err)
	assert.NotEqual(t, Null, id)
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, key, got)

	require.NoError(t, r.Release(id))
	assert.Equal(t, 0, r.Len())
	assert.False(t, key.IsValid(), "Release 应擦除密钥材料")
	assert.NotEqual(t, want, key.String())

	assert.ErrorIs(t, r.Release(id), ErrUnknownHandle)
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestRegistry_Take(t *testing.T) {
	r := NewRegistry()
	key := seededKey(t)

	id, err := r.Adopt(key)
	require.NoError(t, err)

	taken, err := r.Take(id)
	require.NoError(t, err)
	assert.Same(t, key, taken)
	assert.True(t, taken.IsValid(), "Take 不应擦除")
	assert.Equal(t, 0, r.Len())

	_, err = r.Take(id)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestRegistry_AdoptNil(t *testing.T) {
	r := NewRegistry()
	id, err := r.Adopt(nil)
	assert.Equal(t, Null, id)
	assert.ErrorIs(t, err, ErrNilKey)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_SkipsNullAndCollisions(t *testing.T) {
	old := entropy.Reader
	defer func() { entropy.Reader = old }()

	// 0, 7, 7, 9: 跳过空句柄和已占用的句柄
	var buf bytes.Buffer
	for _, v := range []byte{0, 7, 7, 9} {
		buf.Write([]byte{0, 0, 0, 0, 0, 0, 0, v})
	}
	entropy.Reader = &buf

	r := NewRegistry()
	first, err := r.Adopt(hdkey.NewPrivateKey())
	require.NoError(t, err)
	second, err := r.Adopt(hdkey.NewPrivateKey())
	require.NoError(t, err)

	assert.Equal(t, ID(7), first)
	assert.Equal(t, ID(9), second)

	// 熵耗尽时返回错误
	_, err = r.Adopt(hdkey.NewPrivateKey())
	assert.Error(t, err)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	ids := make(chan ID, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := r.Adopt(hdkey.NewPrivateKey())
			if err != nil {
				t.Errorf("Adopt 失败: %v", err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[ID]bool)
	for id := range ids {
		assert.False(t, seen[id], "句柄重复")
		seen[id] = true
		assert.NoError(t, r.Release(id))
	}
	assert.Equal(t, 0, r.Len())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusOK, StatusOf(nil))
	assert.Equal(t, StatusNullArgument, StatusOf(ErrNilKey))
	assert.Equal(t, StatusUnknownHandle, StatusOf(ErrUnknownHandle))
	assert.Equal(t, StatusConstruction, StatusOf(hdkeychain.ErrInvalidSeedLen))
	assert.Equal(t, StatusUnknownHandle, StatusOf(errors.Join(errors.New("ctx"), ErrUnknownHandle)))
}

func TestID_StringParse(t *testing.T) {
	id := ID(0xdeadbeef)
	assert.Equal(t, "00000000deadbeef", id.String())

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	for _, bad := range []string{"", "0", "xyz", "1ffffffffffffffff"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrUnknownHandle, bad)
	}
}
