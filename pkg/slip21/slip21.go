package slip21

import (
	"crypto/hmac"
	"crypto/sha512"
)

// SLIP-0021: 基于标签 (label) 的对称密钥派生。
// 节点是 64 字节的 HMAC-SHA512 输出: 前 32 字节只用于派生子节点，后 32 字节才是对外暴露的密钥。

const (
	// NodeSize 节点内部秘密的长度
	NodeSize = 64
	// KeySize 对外暴露的节点密钥长度
	KeySize = 32
)

var (
	// domain 是根节点派生使用的 HMAC key
	domain = []byte("Symmetric key seed")
	// childPrefix 子节点派生时 label 前面固定的一个字节
	childPrefix = byte(0)
)

// WalletPolicyLabel 用于派生钱包策略 (wallet policy) 注册密钥的标签
var WalletPolicyLabel = []byte("LEDGER-Wallet policy")

// Node 是派生树中的一个节点，创建后不可变，也不持有父节点的引用
type Node struct {
	data [NodeSize]byte
}

// FromSeed 由 BIP-39 种子计算根节点
func FromSeed(seed []byte) *Node {
	mac := hmac.New(sha512.New, domain)
	mac.Write(seed)
	return newNode(mac.Sum(nil))
}

// DeriveChild 使用标签派生子节点: HMAC-SHA512(key = 父节点前半部分, msg = 0x00 || label)
func (n *Node) DeriveChild(label []byte) *Node {
	mac := hmac.New(sha512.New, n.data[:KeySize])
	mac.Write([]byte{childPrefix})
	mac.Write(label)
	return newNode(mac.Sum(nil))
}

// DerivePath 依次使用多个标签派生，例如 m/"SLIP-0021"/"Master encryption key"
func (n *Node) DerivePath(labels ...[]byte) *Node {
	current := n
	for _, label := range labels {
		current = current.DeriveChild(label)
	}
	return current
}

// Key 返回节点密钥 (后 32 字节)
func (n *Node) Key() [KeySize]byte {
	var key [KeySize]byte
	copy(key[:], n.data[KeySize:])
	return key
}

// Zero 清除节点中的秘密数据，清除后节点不可再使用
func (n *Node) Zero() {
	for i := range n.data {
		n.data[i] = 0
	}
}

// WalletRegistrationKey 计算钱包策略注册密钥 m/"LEDGER-Wallet policy"
func WalletRegistrationKey(seed []byte) [KeySize]byte {
	root := FromSeed(seed)
	defer root.Zero()

	child := root.DeriveChild(WalletPolicyLabel)
	defer child.Zero()

	return child.Key()
}

func newNode(sum []byte) *Node {
	n := &Node{}
	copy(n.data[:], sum)
	for i := range sum {
		sum[i] = 0
	}
	return n
}
