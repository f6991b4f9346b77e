package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// DefaultSeedBits 是未指定长度时生成种子的位数 (24 字节)
const DefaultSeedBits = 192

var ErrSeedBits = errors.New("种子位数必须是 8 的正整数倍")

// Reader 是全局共享的加密安全随机数源，测试中可以替换。
// 默认为 crypto/rand.Reader。
var Reader io.Reader = rand.Reader

// GenerateRandomBytes 从 Reader 读取 n 个安全随机字节。
// 只有读满 n 个字节才返回 nil 错误。
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, fmt.Errorf("生成随机字节失败: %w", err)
	}
	return b, nil
}

// GenerateRandomHexString 生成 n 字节随机数并做 Hex 编码，结果长度为 2n
func GenerateRandomHexString(n int) (string, error) {
	b, err := GenerateRandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RandomUint64 返回一个随机的 64 位整数
func RandomUint64() (uint64, error) {
	b, err := GenerateRandomBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// NewSeed 生成 bitLength/8 字节的随机种子。
// 这里只检查位数是 8 的倍数，种子长度是否可用由 HD 密钥构造函数决定。
func NewSeed(bitLength int) ([]byte, error) {
	if bitLength <= 0 || bitLength%8 != 0 {
		return nil, ErrSeedBits
	}
	return GenerateRandomBytes(bitLength / 8)
}
