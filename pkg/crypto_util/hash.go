package crypto_util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// fingerprintLen 指纹取摘要前 8 字节 (16 个 Hex 字符)
const fingerprintLen = 8

// CalculateSHA256 计算输入的 SHA256 哈希值。
func CalculateSHA256(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// CalculateKeccak256 计算输入的 Keccak256 哈希值。
// 这是以太坊使用的哈希算法。
func CalculateKeccak256(data []byte) string {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	return hex.EncodeToString(hash.Sum(nil))
}

// CalculateBlake3 计算输入的 Blake3 哈希值。
func CalculateBlake3(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Fingerprinter 将扩展公钥映射为可公开记录的短指纹
type Fingerprinter func(xpub string) string

// NewFingerprinter 根据算法名返回指纹函数: blake3 (默认), sha256, keccak256
func NewFingerprinter(algo string) (Fingerprinter, error) {
	var sum func([]byte) string
	switch algo {
	case "", "blake3":
		sum = CalculateBlake3
	case "sha256":
		sum = CalculateSHA256
	case "keccak256":
		sum = CalculateKeccak256
	default:
		return nil, fmt.Errorf("不支持的指纹算法: %s", algo)
	}
	return func(xpub string) string {
		if xpub == "" {
			return ""
		}
		return sum([]byte(xpub))[:fingerprintLen*2]
	}, nil
}
