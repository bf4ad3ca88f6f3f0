package service

import (
	"wallet-policy-core/internal/harness"
	"wallet-policy-core/internal/policy"
)

type PolicyService interface {
	// CountInternalKeys 统计策略中属于 seed 的占位符出现次数
	CountInternalKeys(seed []byte, network string, wp policy.WalletPolicy) (uint, error)
	// Inspect 返回策略中每个密钥的判定
	Inspect(seed []byte, network string, wp policy.WalletPolicy) (policy.Report, error)
	// Globals 计算助记词对应的测试常量
	Globals(mnemonic, network string) (*harness.Globals, error)
	// DeriveSlip21 从种子按标签路径派生 SLIP-21 密钥
	DeriveSlip21(seed []byte, labels []string) [32]byte
}
