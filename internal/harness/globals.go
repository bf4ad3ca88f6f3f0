package harness

import (
	"encoding/hex"
	"errors"
	"fmt"

	"wallet-policy-core/internal/policy"
	"wallet-policy-core/pkg/bip32"
	"wallet-policy-core/pkg/bip39"
	"wallet-policy-core/pkg/errno"
	"wallet-policy-core/pkg/slip21"
)

// DefaultMnemonic 模拟器 (Speculos) 默认使用的助记词
const DefaultMnemonic = "glory promote mansion idle axis finger extra february uncover one trip resource lawn turtle enact monster seven myth punch hobby comfort wild raise skin"

// Globals 汇总了一个助记词对应的所有测试常量
type Globals struct {
	Network                string
	Mnemonic               string
	Seed                   []byte
	MasterExtendedPrivkey  string
	MasterExtendedPubkey   string
	MasterKeyFingerprint   [bip32.FingerprintSize]byte
	MasterCompressedPubkey string
	WalletRegistrationKey  [slip21.KeySize]byte
}

// NewGlobals 由助记词和网络 ("main" / "test") 计算测试常量
func NewGlobals(mnemonic, network string) (*Globals, error) {
	params, err := bip32.ParseNetwork(network)
	if err != nil {
		return nil, policy.InvalidNetworkError(network)
	}

	seed, err := bip39.NewMnemonicService().SeedFromMnemonic(mnemonic, "")
	if errors.Is(err, bip39.ErrInvalidMnemonic) {
		return nil, errno.ErrInvalidMnemonic
	} else if err != nil {
		return nil, err
	}

	wallet, err := bip32.NewMasterKeyFromSeed(seed, params)
	if err != nil {
		return nil, err
	}

	masterPub, err := wallet.MasterKey().Neuter()
	if err != nil {
		return nil, err
	}
	pubKey, err := wallet.MasterPubKey()
	if err != nil {
		return nil, err
	}
	fpr, err := wallet.Fingerprint()
	if err != nil {
		return nil, err
	}

	return &Globals{
		Network:                network,
		Mnemonic:               bip39.Normalize(mnemonic),
		Seed:                   seed,
		MasterExtendedPrivkey:  wallet.MasterKey().String(),
		MasterExtendedPubkey:   masterPub.String(),
		MasterKeyFingerprint:   fpr,
		MasterCompressedPubkey: hex.EncodeToString(pubKey),
		WalletRegistrationKey:  slip21.WalletRegistrationKey(seed),
	}, nil
}

// FingerprintHex 返回主指纹的 Hex 字符串，与钱包策略中的写法一致
func (g *Globals) FingerprintHex() string {
	return hex.EncodeToString(g.MasterKeyFingerprint[:])
}

// InternalXPub 返回本种子在 path 上的扩展公钥
func (g *Globals) InternalXPub(path string) (string, error) {
	return InternalXPub(g.Seed, g.Network, path)
}

// KeyInfo 生成本种子在 path 上的 key info: "[fingerprint/path]xpub"
func (g *Globals) KeyInfo(path string) (string, error) {
	xpub, err := g.InternalXPub(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s/%s]%s", g.FingerprintHex(), path, xpub), nil
}

// CountInternalKeys 统计策略中属于本种子的占位符个数
func (g *Globals) CountInternalKeys(wp policy.WalletPolicy) (uint, error) {
	return policy.CountInternalKeys(g.Seed, g.Network, wp)
}

// InternalXPub 由种子派生 path 上的扩展公钥，path 可带或不带 "m/" 前缀
func InternalXPub(seed []byte, network, path string) (string, error) {
	wallet, err := bip32.NewWallet(seed, network)
	if errors.Is(err, bip32.ErrInvalidNetwork) {
		return "", policy.InvalidNetworkError(network)
	} else if err != nil {
		return "", err
	}
	return wallet.XPubFromPath(path)
}
