package bip39

import (
	"fmt"

	"hdkey-core/pkg/entropy"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicService 提供助记词相关的功能
type MnemonicService struct{}

// NewMnemonicService 创建一个新的助记词服务实例
func NewMnemonicService() *MnemonicService {
	return &MnemonicService{}
}

// GenerateMnemonic 生成一个新的随机助记词 (BIP-39)。
// bitSize: 熵的位数，128~256 且为 32 的倍数 (12~24 个单词)。
func (s *MnemonicService) GenerateMnemonic(bitSize int) (string, error) {
	if bitSize%8 != 0 {
		return "", bip39.ErrEntropyLengthInvalid
	}

	// 熵来自 entropy.Reader，便于测试替换
	ent, err := entropy.GenerateRandomBytes(bitSize / 8)
	if err != nil {
		return "", fmt.Errorf("生成熵失败: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(ent)
	if err != nil {
		return "", fmt.Errorf("生成助记词失败: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic 验证助记词是否有效 (单词表与校验和)
func (s *MnemonicService) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// MnemonicToSeed 将助记词转换为 64 字节种子。
// password 为可选的 Passphrase ("第25个单词")，不需要时传空字符串。
// 与 go-bip39 的 NewSeed 不同，这里会先校验助记词。
func (s *MnemonicService) MnemonicToSeed(mnemonic string, password string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, err
	}
	return seed, nil
}
