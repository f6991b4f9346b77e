package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"hdkey-core/pkg/bip39"
	"hdkey-core/pkg/entropy"
)

func newSeedCmd() *cobra.Command {
	var bits int

	c := &cobra.Command{
		Use:   "seed",
		Short: "生成随机种子",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := entropy.NewSeed(bits)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(seed))
			return nil
		},
	}
	c.Flags().IntVar(&bits, "bits", entropy.DefaultSeedBits, "种子位数 (8 的倍数)")
	return c
}

func newMnemonicCmd() *cobra.Command {
	var bits int

	c := &cobra.Command{
		Use:   "mnemonic",
		Short: "生成 BIP-39 助记词",
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := bip39.NewMnemonicService().GenerateMnemonic(bits)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, mnemonic)
			fmt.Fprintln(out, "请妥善保管您的助记词！任何拥有助记词的人都可以控制该钱包的所有资产。")
			return nil
		},
	}
	c.Flags().IntVar(&bits, "bits", 256, "熵位数: 128~256, 32 的倍数")
	return c
}
