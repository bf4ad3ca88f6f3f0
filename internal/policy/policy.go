package policy

import (
	"fmt"
	"strconv"
	"strings"
)

// WalletPolicy 钱包策略: 策略模板 (policy map) 以 "@<index>/" 占位符引用 KeysInfo 中的密钥
type WalletPolicy struct {
	Name      string   `json:"name" mapstructure:"name"`
	PolicyMap string   `json:"policy_map" mapstructure:"policy_map"`
	KeysInfo  []string `json:"keys_info" mapstructure:"keys_info"`
}

// NewWalletPolicy 创建钱包策略
func NewWalletPolicy(name, policyMap string, keysInfo []string) WalletPolicy {
	return WalletPolicy{
		Name:      name,
		PolicyMap: policyMap,
		KeysInfo:  keysInfo,
	}
}

// Placeholder 返回第 index 个密钥在策略模板中的占位符前缀 "@<index>/"
func Placeholder(index int) string {
	return "@" + strconv.Itoa(index) + "/"
}

// Occurrences 统计第 index 个密钥的占位符在策略模板中出现的次数 (不重叠)
func (w WalletPolicy) Occurrences(index int) uint {
	return uint(strings.Count(w.PolicyMap, Placeholder(index)))
}

// Validate 做最基本的结构检查，不解析描述符语法
func (w WalletPolicy) Validate() error {
	if strings.TrimSpace(w.PolicyMap) == "" {
		return fmt.Errorf("policy map is empty")
	}
	if len(w.KeysInfo) == 0 {
		return fmt.Errorf("policy has no keys")
	}
	return nil
}
