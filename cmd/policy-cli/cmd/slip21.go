package cmd

import (
	"encoding/hex"
	"fmt"

	"wallet-policy-core/pkg/slip21"

	"github.com/spf13/cobra"
)

var slip21Cmd = &cobra.Command{
	Use:   "slip21 [label]...",
	Short: "按标签路径派生 SLIP-21 密钥",
	Long:  `不带参数时输出钱包策略注册密钥 m/"LEDGER-Wallet policy"。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := resolveSeed()
		if err != nil {
			return err
		}

		labels := [][]byte{slip21.WalletPolicyLabel}
		if len(args) > 0 {
			labels = labels[:0]
			for _, a := range args {
				labels = append(labels, []byte(a))
			}
		}

		root := slip21.FromSeed(seed)
		defer root.Zero()
		node := root.DerivePath(labels...)
		defer node.Zero()

		key := node.Key()
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key[:]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slip21Cmd)
}
