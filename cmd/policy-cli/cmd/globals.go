package cmd

import (
	"encoding/hex"
	"fmt"

	"wallet-policy-core/internal/harness"

	"github.com/spf13/cobra"
)

var globalsCmd = &cobra.Command{
	Use:   "globals",
	Short: "显示助记词对应的测试常量",
	Long:  `显示种子、主扩展私钥/公钥、主指纹、主公钥以及钱包策略注册密钥。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := resolveMnemonic()
		if err != nil {
			return err
		}

		g, err := harness.NewGlobals(m, network)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "network:                  %s\n", g.Network)
		fmt.Fprintf(out, "seed:                     %s\n", hex.EncodeToString(g.Seed))
		fmt.Fprintf(out, "master_extended_privkey:  %s\n", g.MasterExtendedPrivkey)
		fmt.Fprintf(out, "master_extended_pubkey:   %s\n", g.MasterExtendedPubkey)
		fmt.Fprintf(out, "master_key_fingerprint:   %s\n", g.FingerprintHex())
		fmt.Fprintf(out, "master_compressed_pubkey: %s\n", g.MasterCompressedPubkey)
		fmt.Fprintf(out, "wallet_registration_key:  %s\n", hex.EncodeToString(g.WalletRegistrationKey[:]))

		paths, _ := cmd.Flags().GetStringSlice("key")
		for _, p := range paths {
			info, err := g.KeyInfo(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "key_info:                 %s\n", info)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(globalsCmd)
	globalsCmd.Flags().StringSlice("key", nil, "同时输出这些路径上的 key info，例如 48'/1'/0'/2'")
}
