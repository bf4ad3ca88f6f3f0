package cmd

import (
	"fmt"

	"wallet-policy-core/internal/policy"
	"wallet-policy-core/pkg/errno"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "统计钱包策略中属于该种子的占位符个数",
	Long: `读取 YAML/JSON 格式的钱包策略文件 (name, policy_map, keys_info)，
统计 policy_map 中有多少个占位符引用了可由该种子派生的密钥。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("policy")
		wp, err := loadPolicyFile(file)
		if err != nil {
			return err
		}

		seed, err := resolveSeed()
		if err != nil {
			return err
		}

		report, err := policy.Inspect(seed, network, wp)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if details, _ := cmd.Flags().GetBool("details"); details {
			for _, k := range report.Keys {
				fmt.Fprintf(out, "@%d\t%-20s\t%d\n", k.Index, k.Status, k.Occurrences)
			}
		}
		fmt.Fprintln(out, report.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().StringP("policy", "p", "", "钱包策略文件 (yaml/json)")
	countCmd.Flags().Bool("details", false, "逐个输出密钥的判定结果")
	_ = countCmd.MarkFlagRequired("policy")
}

// loadPolicyFile 使用独立的 viper 实例读取钱包策略文件
func loadPolicyFile(path string) (policy.WalletPolicy, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return policy.WalletPolicy{}, errno.ErrInvalidPolicy.Wrap(err.Error())
	}

	var wp policy.WalletPolicy
	if err := v.Unmarshal(&wp); err != nil {
		return policy.WalletPolicy{}, errno.ErrInvalidPolicy.Wrap(err.Error())
	}
	if err := wp.Validate(); err != nil {
		return policy.WalletPolicy{}, errno.ErrInvalidPolicy.Wrap(err.Error())
	}
	return wp, nil
}
