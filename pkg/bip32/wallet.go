package bip32

import (
	"fmt"
	"strconv"
	"strings"

	"wallet-policy-core/pkg/crypto_util"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// 网络标识，与测试工具的参数保持一致
const (
	NetworkMain = "main"
	NetworkTest = "test"
)

// ParseNetwork 将网络标识转换为链参数，只接受 "main" 和 "test"
func ParseNetwork(network string) (*chaincfg.Params, error) {
	switch network {
	case NetworkMain:
		return &chaincfg.MainNetParams, nil
	case NetworkTest:
		return &chaincfg.TestNet3Params, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, network)
	}
}

// BTCKeychain 实现了 ExtendedKey 接口，封装了 hdkeychain.ExtendedKey
type BTCKeychain struct {
	key     *hdkeychain.ExtendedKey
	network *chaincfg.Params
}

func (k *BTCKeychain) String() string {
	return k.key.String()
}

func (k *BTCKeychain) ECPubKey() (*btcec.PublicKey, error) {
	return k.key.ECPubKey()
}

func (k *BTCKeychain) Derive(index uint32) (ExtendedKey, error) {
	childKey, err := k.key.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("派生子密钥失败: %w", err)
	}
	return &BTCKeychain{key: childKey, network: k.network}, nil
}

func (k *BTCKeychain) IsPrivate() bool {
	return k.key.IsPrivate()
}

func (k *BTCKeychain) Neuter() (ExtendedKey, error) {
	neuterKey, err := k.key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("转换公钥失败: %w", err)
	}
	return &BTCKeychain{key: neuterKey, network: k.network}, nil
}

// Zero 清除内存中的密钥数据
func (k *BTCKeychain) Zero() {
	k.key.Zero()
}

// Wallet 实现 HDWallet 接口
type Wallet struct {
	masterKey *BTCKeychain
	network   *chaincfg.Params
}

// NewMasterKeyFromSeed 使用 BIP-39 种子生成主密钥
// network: 默认为 chaincfg.MainNetParams
func NewMasterKeyFromSeed(seed []byte, network *chaincfg.Params) (*Wallet, error) {
	if len(seed) < hdkeychain.MinSeedBytes || len(seed) > hdkeychain.MaxSeedBytes {
		return nil, ErrInvalidSeed
	}

	if network == nil {
		network = &chaincfg.MainNetParams
	}

	masterKey, err := hdkeychain.NewMaster(seed, network)
	if err != nil {
		return nil, fmt.Errorf("生成主密钥失败: %w", err)
	}

	return &Wallet{
		masterKey: &BTCKeychain{key: masterKey, network: network},
		network:   network,
	}, nil
}

// NewWallet 与 NewMasterKeyFromSeed 相同，但网络以 "main"/"test" 字符串给出
func NewWallet(seed []byte, network string) (*Wallet, error) {
	params, err := ParseNetwork(network)
	if err != nil {
		return nil, err
	}
	return NewMasterKeyFromSeed(seed, params)
}

func (w *Wallet) MasterKey() ExtendedKey {
	return w.masterKey
}

// Network 返回钱包使用的链参数
func (w *Wallet) Network() *chaincfg.Params {
	return w.network
}

// MasterPubKey 返回主公钥 (压缩格式)
func (w *Wallet) MasterPubKey() ([]byte, error) {
	pub, err := w.masterKey.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("获取主公钥失败: %w", err)
	}
	return pub.SerializeCompressed(), nil
}

// Fingerprint 计算主公钥指纹: hash160(压缩公钥) 的前 4 字节
func (w *Wallet) Fingerprint() ([FingerprintSize]byte, error) {
	var fpr [FingerprintSize]byte

	pub, err := w.MasterPubKey()
	if err != nil {
		return fpr, err
	}
	copy(fpr[:], crypto_util.Fingerprint(pub))
	return fpr, nil
}

// XPubFromPath 派生路径上的密钥并返回其扩展公钥
func (w *Wallet) XPubFromPath(path string) (string, error) {
	key, err := w.DerivePath(path)
	if err != nil {
		return "", err
	}
	pub, err := key.Neuter()
	if err != nil {
		return "", err
	}
	return pub.String(), nil
}

// DerivePath 解析路径并派生密钥
// 支持格式: m/44'/0'/0'/0/0 或 m/44h/0h/0h/0/0，"m" 前缀可省略
func (w *Wallet) DerivePath(path string) (ExtendedKey, error) {
	indexes, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	var currentKey ExtendedKey = w.masterKey
	for _, index := range indexes {
		currentKey, err = currentKey.Derive(index)
		if err != nil {
			return nil, err
		}
	}

	return currentKey, nil
}

// ParsePath 将路径字符串转换为子密钥索引列表
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "m")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil, nil
	}

	segments := strings.Split(path, "/")
	indexes := make([]uint32, 0, len(segments))

	for _, segment := range segments {
		isHardened := false
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
			isHardened = true
			segment = segment[:len(segment)-1]
		}

		val, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: 无效的路径段 '%s': %v", ErrInvalidPath, segment, err)
		}
		index := uint32(val)

		if isHardened {
			if index >= hdkeychain.HardenedKeyStart {
				return nil, fmt.Errorf("%w: 路径段 '%s' 超出范围", ErrInvalidPath, segment)
			}
			index += hdkeychain.HardenedKeyStart
		}

		indexes = append(indexes, index)
	}

	return indexes, nil
}
