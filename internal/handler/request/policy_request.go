package request

// WalletPolicy 请求中的钱包策略
type WalletPolicy struct {
	Name      string   `json:"name"`
	PolicyMap string   `json:"policy_map" binding:"required"`
	KeysInfo  []string `json:"keys_info" binding:"required,min=1"`
}

// CountRequest 统计内部密钥 / 逐个判定
type CountRequest struct {
	Seed    string       `json:"seed" binding:"required,hexadecimal"` // BIP-39 种子 (Hex)
	Network string       `json:"network" binding:"network"`
	Policy  WalletPolicy `json:"policy"`
}

// GlobalsRequest 计算测试常量，Mnemonic 为空时使用模拟器默认助记词
type GlobalsRequest struct {
	Mnemonic string `json:"mnemonic"`
	Network  string `json:"network" binding:"network"`
}

// Slip21Request 按标签路径派生 SLIP-21 密钥
type Slip21Request struct {
	Seed   string   `json:"seed" binding:"required,hexadecimal"`
	Labels []string `json:"labels"`
}
