package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hdkey-core/pkg/address"
	"hdkey-core/pkg/bip39"
	"hdkey-core/pkg/hdkey"
)

func newNewCmd() *cobra.Command {
	var seedHex, mnemonic, passphrase string

	c := &cobra.Command{
		Use:   "new",
		Short: "创建一个 HD 私钥",
		Long: `不带参数时创建默认构造的句柄 (无密钥材料)；
--seed 使用十六进制种子，--mnemonic 使用 BIP-39 助记词创建主私钥。`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seedHex != "" && mnemonic != "" {
				return errors.New("--seed 与 --mnemonic 只能指定一个")
			}

			netName, _ := cmd.Flags().GetString("network")
			net, err := hdkey.NetworkByName(netName)
			if err != nil {
				return err
			}

			var seed []byte
			switch {
			case seedHex != "":
				if seed, err = hex.DecodeString(seedHex); err != nil {
					return fmt.Errorf("种子不是合法的十六进制: %w", err)
				}
			case mnemonic != "":
				if seed, err = bip39.NewMnemonicService().MnemonicToSeed(mnemonic, passphrase); err != nil {
					return fmt.Errorf("助记词无效: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if seed == nil {
				key := hdkey.NewPrivateKey(hdkey.WithNetwork(net))
				fmt.Fprintf(out, "默认句柄 (无密钥材料), 网络: %s, valid=%v\n", key.Network().Name, key.IsValid())
				return nil
			}

			// 底层库的错误原样返回
			key, err := hdkey.NewPrivateKeyFromSeed(seed, hdkey.WithNetwork(net))
			if err != nil {
				return err
			}
			defer key.Zero()

			xpub, err := key.Neuter()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "---------------------------------------------------")
			fmt.Fprintf(out, "主私钥 (xprv): %s\n", key.String())
			fmt.Fprintf(out, "主公钥 (xpub): %s\n", xpub)

			if btcAddr, err := address.KeyToAddress(key); err == nil {
				fmt.Fprintf(out, "Bitcoin Address [m]: %s\n", btcAddr)
			}
			if ethAddr, err := address.KeyToETHAddress(key); err == nil {
				fmt.Fprintf(out, "Ethereum Address [m]: %s\n", ethAddr)
			}
			fmt.Fprintln(out, "---------------------------------------------------")
			return nil
		},
	}

	c.Flags().StringVar(&seedHex, "seed", "", "十六进制种子 (16~64 字节)")
	c.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP-39 助记词")
	c.Flags().StringVar(&passphrase, "passphrase", "", "BIP-39 密码 (可选)")
	return c
}
