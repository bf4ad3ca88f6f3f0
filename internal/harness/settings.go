package harness

// Settings 是单个测试的配置。每次 NewSettings 都返回新的值，
// 测试之间不共享任何可变的默认配置。
type Settings struct {
	// Mnemonic 运行模拟器时使用的助记词
	Mnemonic string
	// AutomationFile 模拟器自动化脚本路径，空表示不使用
	AutomationFile string
}

// SettingsOption 修改 Settings 的选项
type SettingsOption func(*Settings)

// WithMnemonic 使用指定的助记词
func WithMnemonic(mnemonic string) SettingsOption {
	return func(s *Settings) {
		s.Mnemonic = mnemonic
	}
}

// WithAutomation 使用 filename 作为模拟器的自动化脚本
func WithAutomation(filename string) SettingsOption {
	return func(s *Settings) {
		s.AutomationFile = filename
	}
}

// DefaultSettings 返回默认配置
func DefaultSettings() Settings {
	return Settings{Mnemonic: DefaultMnemonic}
}

// NewSettings 在默认配置上依次应用 opts，后面的选项覆盖前面的
func NewSettings(opts ...SettingsOption) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// HasAutomation 是否配置了自动化脚本
func (s Settings) HasAutomation() bool {
	return s.AutomationFile != ""
}

// Globals 计算该测试配置对应的测试常量
func (s Settings) Globals(network string) (*Globals, error) {
	return NewGlobals(s.Mnemonic, network)
}
