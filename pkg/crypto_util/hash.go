package crypto_util

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // 比特币仍然使用 RIPEMD-160
)

// SHA256 计算输入的 SHA256 哈希值。
func SHA256(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}

// RIPEMD160 计算输入的 RIPEMD160 哈希值。
func RIPEMD160(data []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}

// Hash160 计算 RIPEMD160(SHA256(data))，用于公钥指纹和地址。
func Hash160(data []byte) []byte {
	return btcutil.Hash160(data)
}

// Hash256 计算 SHA256(SHA256(data))。
func Hash256(data []byte) []byte {
	return chainhash.DoubleHashB(data)
}

// Fingerprint 返回公钥指纹: Hash160 的前 4 字节
func Fingerprint(pubKey []byte) []byte {
	return Hash160(pubKey)[:4]
}

// CalculateSHA256 计算输入的 SHA256 哈希值，返回 Hex 字符串。
func CalculateSHA256(data []byte) string {
	return hex.EncodeToString(SHA256(data))
}
