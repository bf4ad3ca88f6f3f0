package bip32

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
)

// ExtendedKey 包装了 BIP-32 扩展密钥
type ExtendedKey interface {
	// String 返回 Base58 编码的密钥字符串 (xprv/xpub/tprv/tpub)
	String() string

	// ECPubKey 用于获取底层的 EC 公钥
	ECPubKey() (*btcec.PublicKey, error)
	// Derive 根据索引派生子密钥
	Derive(index uint32) (ExtendedKey, error)
	// IsPrivate 返回是否包含私钥
	IsPrivate() bool
	// Neuter 返回对应的扩展公钥 (如果当前是私钥)
	Neuter() (ExtendedKey, error)
}

// HDWallet 定义了分层确定性钱包的基本行为
type HDWallet interface {
	// MasterKey 返回主扩展密钥
	MasterKey() ExtendedKey
	// DerivePath 根据路径 (如 "m/48'/1'/0'/2'") 派生密钥
	DerivePath(path string) (ExtendedKey, error)
	// Fingerprint 返回主公钥指纹 hash160(pubkey)[:4]
	Fingerprint() ([FingerprintSize]byte, error)
	// XPubFromPath 返回路径上的扩展公钥序列化字符串
	XPubFromPath(path string) (string, error)
}

// FingerprintSize 密钥指纹长度
const FingerprintSize = 4

var (
	ErrInvalidSeed    = errors.New("无效的种子")
	ErrInvalidPath    = errors.New("无效的派生路径")
	ErrInvalidNetwork = errors.New("无效的网络")
)
