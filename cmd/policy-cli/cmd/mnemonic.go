package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"wallet-policy-core/pkg/bip39"
	"wallet-policy-core/pkg/config"
	"wallet-policy-core/pkg/errno"

	"golang.org/x/term"
)

// resolveMnemonic 优先级: --mnemonic > --prompt > 配置文件 / 环境变量
func resolveMnemonic() (string, error) {
	if mnemonic != "" {
		return mnemonic, nil
	}
	if prompt {
		return readMnemonic(os.Stdin, os.Stderr)
	}
	return config.Global.Harness.Mnemonic, nil
}

// readMnemonic 从终端读取助记词，终端时不回显
func readMnemonic(in *os.File, out io.Writer) (string, error) {
	fmt.Fprint(out, "输入助记词: ")

	var line string
	if term.IsTerminal(int(in.Fd())) {
		b, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("读取助记词失败: %w", err)
		}
		line = string(b)
	} else {
		s, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("读取助记词失败: %w", err)
		}
		line = s
	}

	line = bip39.Normalize(strings.TrimSpace(line))
	if line == "" {
		return "", errno.ErrInvalidMnemonic.Wrap("empty input")
	}
	return line, nil
}

// resolveSeed 由助记词得到种子
func resolveSeed() ([]byte, error) {
	m, err := resolveMnemonic()
	if err != nil {
		return nil, err
	}
	seed, err := bip39.NewMnemonicService().SeedFromMnemonic(m, "")
	if err != nil {
		return nil, errno.ErrInvalidMnemonic.Wrap(err.Error())
	}
	return seed, nil
}
