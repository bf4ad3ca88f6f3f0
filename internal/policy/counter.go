package policy

import (
	"errors"
	"fmt"

	"wallet-policy-core/pkg/bip32"
	"wallet-policy-core/pkg/errno"
	"wallet-policy-core/pkg/keyorigin"
	"wallet-policy-core/pkg/logger"

	"go.uber.org/zap"
)

// KeyStatus 单个密钥的归属判定结果
type KeyStatus string

const (
	// StatusInternal 密钥可由种子派生，且扩展公钥完全一致
	StatusInternal KeyStatus = "internal"
	// StatusNoOrigin 没有 [fingerprint/path] 来源信息，或格式不符合
	StatusNoOrigin KeyStatus = "no_origin"
	// StatusForeignFingerprint 指纹与种子的主指纹不同
	StatusForeignFingerprint KeyStatus = "foreign_fingerprint"
	// StatusXPubMismatch 指纹相同但派生出的扩展公钥不同 (指纹碰撞或伪造)
	StatusXPubMismatch KeyStatus = "xpub_mismatch"
	// StatusDerivationFailed 来源路径无法派生
	StatusDerivationFailed KeyStatus = "derivation_failed"
)

// KeyVerdict 描述策略中某个密钥的判定结果
type KeyVerdict struct {
	Index       int       `json:"index"`
	Status      KeyStatus `json:"status"`
	Occurrences uint      `json:"occurrences"`
}

// Report 是对整个策略的逐个密钥判定
type Report struct {
	Fingerprint [bip32.FingerprintSize]byte `json:"-"`
	Keys        []KeyVerdict                `json:"keys"`
}

// Total 返回所有内部密钥占位符出现次数之和
func (r Report) Total() uint {
	var total uint
	for _, k := range r.Keys {
		if k.Status == StatusInternal {
			total += k.Occurrences
		}
	}
	return total
}

// Skipped 返回未被计入的密钥
func (r Report) Skipped() []KeyVerdict {
	var skipped []KeyVerdict
	for _, k := range r.Keys {
		if k.Status != StatusInternal {
			skipped = append(skipped, k)
		}
	}
	return skipped
}

// CountInternalKeys 统计策略模板中有多少个占位符引用了可由 seed 派生的密钥。
// 同一个密钥可以在模板中出现多次，每次出现都计数。
func CountInternalKeys(seed []byte, network string, wp WalletPolicy) (uint, error) {
	report, err := Inspect(seed, network, wp)
	if err != nil {
		return 0, err
	}
	return report.Total(), nil
}

// Inspect 逐个判定策略中的密钥。只有网络或种子不合法时返回错误，
// 单个密钥的问题只体现在判定结果中。
func Inspect(seed []byte, network string, wp WalletPolicy) (Report, error) {
	wallet, err := bip32.NewWallet(seed, network)
	switch {
	case errors.Is(err, bip32.ErrInvalidNetwork):
		return Report{}, InvalidNetworkError(network)
	case errors.Is(err, bip32.ErrInvalidSeed):
		return Report{}, errno.ErrInvalidSeed.Wrap(fmt.Sprintf("%d bytes", len(seed)))
	case err != nil:
		return Report{}, err
	}

	fpr, err := wallet.Fingerprint()
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Fingerprint: fpr,
		Keys:        make([]KeyVerdict, 0, len(wp.KeysInfo)),
	}
	for index, keyInfo := range wp.KeysInfo {
		status := verify(wallet, fpr[:], keyInfo)

		verdict := KeyVerdict{Index: index, Status: status}
		if status == StatusInternal {
			verdict.Occurrences = wp.Occurrences(index)
		} else {
			logger.Debug("key is not internal",
				zap.Int("index", index),
				zap.String("status", string(status)),
				zap.String("key_info", keyInfo))
		}
		report.Keys = append(report.Keys, verdict)
	}

	return report, nil
}

// InvalidNetworkError 返回网络不合法的错误，可用 errors.Is(err, errno.ErrInvalidNetwork) 判断
func InvalidNetworkError(network string) error {
	return errno.ErrInvalidNetwork.Wrap(fmt.Sprintf("%q (expected %q or %q)",
		network, bip32.NetworkMain, bip32.NetworkTest))
}

func verify(wallet bip32.HDWallet, fpr []byte, keyInfo string) KeyStatus {
	info, ok := keyorigin.Parse(keyInfo)
	if !ok {
		return StatusNoOrigin
	}

	if !info.FingerprintMatches(fpr) {
		return StatusForeignFingerprint
	}

	// 指纹只有 4 字节，可能碰撞或被伪造，必须比较完整的扩展公钥
	xpub, err := wallet.XPubFromPath(info.Path)
	if err != nil {
		logger.Debug("cannot derive key origin path",
			zap.String("path", info.Path), zap.Error(err))
		return StatusDerivationFailed
	}
	if xpub != info.XPub {
		return StatusXPubMismatch
	}

	return StatusInternal
}
