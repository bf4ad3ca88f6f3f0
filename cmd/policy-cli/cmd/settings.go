package cmd

import (
	"fmt"

	"wallet-policy-core/internal/harness"
	"wallet-policy-core/pkg/config"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "显示当前测试配置 (助记词与自动化脚本)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := currentSettings()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mnemonic:        %s\n", s.Mnemonic)
		if s.HasAutomation() {
			fmt.Fprintf(out, "automation_file: %s\n", s.AutomationFile)
		} else {
			fmt.Fprintln(out, "automation_file: (none)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

// currentSettings 由配置和命令行参数构造本次运行的测试配置
func currentSettings() harness.Settings {
	opts := []harness.SettingsOption{
		harness.WithMnemonic(config.Global.Harness.Mnemonic),
	}
	if f := config.Global.Harness.AutomationFile; f != "" {
		opts = append(opts, harness.WithAutomation(f))
	}
	if mnemonic != "" {
		opts = append(opts, harness.WithMnemonic(mnemonic))
	}
	return harness.NewSettings(opts...)
}
