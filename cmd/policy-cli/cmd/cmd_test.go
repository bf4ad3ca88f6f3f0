package cmd

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallet-policy-core/internal/harness"
	"wallet-policy-core/pkg/errno"
	"wallet-policy-core/pkg/slip21"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run 执行一次命令，执行前把所有标志恢复为默认值
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestGlobalsCommand(t *testing.T) {
	out, err := run(t, "globals", "--network", "test", "--mnemonic", harness.DefaultMnemonic, "--key", "84'/1'/0'")
	require.NoError(t, err)

	assert.Contains(t, out, "master_key_fingerprint:   f5acc2fd")
	assert.Contains(t, out, "master_extended_pubkey:   tpub")
	assert.Contains(t, out, "key_info:                 [f5acc2fd/84'/1'/0']tpub")
}

func TestGlobalsCommandInvalidNetwork(t *testing.T) {
	_, err := run(t, "globals", "--network", "regtest")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrInvalidNetwork))
}

func TestCountCommand(t *testing.T) {
	g, err := harness.NewGlobals(harness.DefaultMnemonic, "test")
	require.NoError(t, err)
	key, err := g.KeyInfo("48'/1'/0'/2'")
	require.NoError(t, err)

	other, err := harness.NewGlobals("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", "test")
	require.NoError(t, err)
	foreign, err := other.KeyInfo("48'/1'/0'/2'")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "policy.yaml")
	content := "name: Cold storage\n" +
		"policy_map: wsh(multi(2,@0/**,@0/**,@1/**))\n" +
		"keys_info:\n" +
		"  - \"" + key + "\"\n" +
		"  - \"" + foreign + "\"\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	out, err := run(t, "count", "--network", "test", "--mnemonic", harness.DefaultMnemonic, "--policy", file)
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(out))

	out, err = run(t, "count", "--network", "test", "--mnemonic", harness.DefaultMnemonic, "--policy", file, "--details")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "internal")
	assert.Contains(t, lines[1], "foreign_fingerprint")
	assert.Equal(t, "2", lines[2])
}

func TestCountCommandJSONPolicy(t *testing.T) {
	file := filepath.Join(t.TempDir(), "policy.json")
	content := `{"name": "bare", "policy_map": "wpkh(@0/**)", "keys_info": ["tpubD6NzVbkrYhZ4WLczPJWReQycCJdd6YVWXubbVUFnJ5KgU5MDQrD998ZJLSmaB7GVcCnJSDWprxmrGkJ6SvgQC6QAffVpqSvonXmeizXcrkN"]}`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	out, err := run(t, "count", "--network", "test", "--mnemonic", harness.DefaultMnemonic, "-p", file)
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))
}

func TestCountCommandInvalidPolicy(t *testing.T) {
	file := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: empty\n"), 0o600))

	_, err := run(t, "count", "--network", "test", "--policy", file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrInvalidPolicy))

	_, err = run(t, "count", "--network", "test", "--policy", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, errno.ErrInvalidPolicy))
}

func TestSlip21Command(t *testing.T) {
	g, err := harness.NewGlobals(harness.DefaultMnemonic, "test")
	require.NoError(t, err)

	out, err := run(t, "slip21", "--mnemonic", harness.DefaultMnemonic, "--network", "test")
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(g.WalletRegistrationKey[:]), strings.TrimSpace(out))

	out, err = run(t, "slip21", "--mnemonic", harness.DefaultMnemonic, "--network", "test", "SLIP-0021")
	require.NoError(t, err)
	expected := slip21.FromSeed(g.Seed).DeriveChild([]byte("SLIP-0021")).Key()
	assert.Equal(t, hex.EncodeToString(expected[:]), strings.TrimSpace(out))
}

func TestSlip21CommandInvalidMnemonic(t *testing.T) {
	_, err := run(t, "slip21", "--mnemonic", "not a mnemonic", "--network", "test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrInvalidMnemonic))
}

func TestSettingsCommand(t *testing.T) {
	out, err := run(t, "settings", "--network", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "mnemonic:        "+harness.DefaultMnemonic)
	assert.Contains(t, out, "automation_file: (none)")
}

func TestReadMnemonicFromPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString("  abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon   about\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	defer r.Close()

	var prompt bytes.Buffer
	m, err := readMnemonic(r, &prompt)
	require.NoError(t, err)
	assert.Equal(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", m)
	assert.NotEmpty(t, prompt.String())
}
