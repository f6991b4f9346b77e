package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd 构造根命令，每次调用返回一组新的命令与标志
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hdkey-cli",
		Short: "HD 私钥句柄命令行工具",
		Long: `创建 BIP-32 分层确定性主私钥 (默认构造 / 种子 / BIP-39 助记词)，
并生成随机种子与助记词。`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("network", "mainnet", "网络: mainnet, testnet3, regtest, simnet, signet")

	root.AddCommand(newNewCmd(), newSeedCmd(), newMnemonicCmd())
	return root
}

// Execute 执行根命令
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
