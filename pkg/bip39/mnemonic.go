package bip39

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic 助记词校验失败 (单词不在词表中或校验和错误)
var ErrInvalidMnemonic = errors.New("无效的助记词")

// MnemonicService 提供助记词相关的功能
type MnemonicService struct{}

// NewMnemonicService 创建一个新的助记词服务实例
func NewMnemonicService() *MnemonicService {
	return &MnemonicService{}
}

// GenerateMnemonic 生成一个新的随机助记词 (BIP-39)。
// bitSize: 熵的位数，通常为 128 (12个单词) 或 256 (24个单词)。
func (s *MnemonicService) GenerateMnemonic(bitSize int) (string, error) {
	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", fmt.Errorf("生成熵失败: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("生成助记词失败: %w", err)
	}

	return mnemonic, nil
}

// ValidateMnemonic 验证助记词是否有效。
func (s *MnemonicService) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(Normalize(mnemonic))
}

// MnemonicToSeed 将助记词转换为种子 (BIP-39 Seed)，不做校验。
// password: 可选的密码 (Passphrase)，不需要时传空字符串 ""。
func (s *MnemonicService) MnemonicToSeed(mnemonic string, password string) []byte {
	return bip39.NewSeed(Normalize(mnemonic), password)
}

// SeedFromMnemonic 先校验助记词，再转换为种子
func (s *MnemonicService) SeedFromMnemonic(mnemonic string, password string) ([]byte, error) {
	mnemonic = Normalize(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeed(mnemonic, password), nil
}

// Normalize 去掉多余的空白，单词之间只保留一个空格
func Normalize(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}
