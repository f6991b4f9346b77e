package crypto_util

import (
	"testing"
)

func TestHashes(t *testing.T) {
	input := []byte("hello world")

	// SHA256
	sha256Hash := CalculateSHA256(input)
	if sha256Hash != "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9" {
		t.Errorf("SHA256 哈希不匹配: %s", sha256Hash)
	}

	// Keccak256
	keccakHash := CalculateKeccak256(input)
	if keccakHash != "47173285a8d7341e5e972fc677286384f802f8ef42a5ec5f03bbfa254cb01fad" {
		t.Errorf("Keccak256 哈希不匹配: %s", keccakHash)
	}

	// Blake3
	blake3Hash := CalculateBlake3(input)
	if len(blake3Hash) != 64 {
		t.Errorf("Blake3 哈希长度不匹配: 得到 %d, 期望 64", len(blake3Hash))
	}
}

func TestNewFingerprinter(t *testing.T) {
	xpub := "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"

	for _, algo := range []string{"", "blake3", "sha256", "keccak256"} {
		fp, err := NewFingerprinter(algo)
		if err != nil {
			t.Fatalf("NewFingerprinter(%q) 失败: %v", algo, err)
		}
		got := fp(xpub)
		if len(got) != 16 {
			t.Errorf("%q 指纹长度 = %d, 期望 16", algo, len(got))
		}
		if got != fp(xpub) {
			t.Errorf("%q 指纹不稳定", algo)
		}
		if fp("") != "" {
			t.Errorf("%q 空输入应返回空指纹", algo)
		}
	}

	sha, _ := NewFingerprinter("sha256")
	if sha(xpub) != CalculateSHA256([]byte(xpub))[:16] {
		t.Errorf("sha256 指纹应为摘要前缀")
	}

	if _, err := NewFingerprinter("md5"); err == nil {
		t.Errorf("不支持的算法应返回错误")
	}
}
