package cmd

import (
	"fmt"
	"os"

	"wallet-policy-core/pkg/config"
	"wallet-policy-core/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	network  string
	mnemonic string
	prompt   bool
	verbose  bool
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "policy-cli",
	Short: "钱包策略 (wallet policy) 测试辅助工具",
	Long: `为硬件钱包测试提供确定性的测试常量:
计算助记词对应的主密钥、指纹、钱包策略注册密钥 (SLIP-21)，
以及统计钱包策略中有多少占位符引用了该种子派生的密钥。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		config.Global = cfg

		level := ""
		if verbose {
			level = "debug"
		}
		logger.Init(cfg.App.Env, level)

		if !cmd.Flags().Changed("network") {
			network = cfg.Harness.Network
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件 (默认 ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", "test", "网络: main 或 test")
	rootCmd.PersistentFlags().StringVarP(&mnemonic, "mnemonic", "m", "", "助记词 (默认使用配置中的助记词)")
	rootCmd.PersistentFlags().BoolVar(&prompt, "prompt", false, "从终端读取助记词 (不回显)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
}

func loadConfig() (config.Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	return config.Load(v)
}
