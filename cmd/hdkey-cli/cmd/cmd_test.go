package cmd

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewCmd_Seed(t *testing.T) {
	out, err := run(t, "new", "--seed", "000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	assert.Contains(t, out, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi")
	assert.Contains(t, out, "15mKKb2eos1hWa6tisdPwwDC1a5J1y9nma")
}

func TestNewCmd_Default(t *testing.T) {
	out, err := run(t, "new", "--network", "testnet3")
	require.NoError(t, err)
	assert.Contains(t, out, "valid=false")
	assert.Contains(t, out, "testnet3")
}

func TestNewCmd_Mnemonic(t *testing.T) {
	out, err := run(t, "new", "--mnemonic",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	require.NoError(t, err)
	assert.Contains(t, out, "xprv")
}

func TestNewCmd_Errors(t *testing.T) {
	_, err := run(t, "new", "--seed", "00")
	assert.Equal(t, hdkeychain.ErrInvalidSeedLen, err)

	_, err = run(t, "new", "--seed", "zz")
	assert.Error(t, err)

	_, err = run(t, "new", "--seed", "00", "--mnemonic", "abandon")
	assert.Error(t, err)

	_, err = run(t, "new", "--mnemonic", "not valid words")
	assert.Error(t, err)

	_, err = run(t, "new", "--network", "dogecoin")
	assert.Error(t, err)
}

func TestSeedCmd(t *testing.T) {
	out, err := run(t, "seed")
	require.NoError(t, err)
	seed, err := hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Len(t, seed, 24)

	_, err = run(t, "seed", "--bits", "7")
	assert.Error(t, err)
}

func TestMnemonicCmd(t *testing.T) {
	out, err := run(t, "mnemonic", "--bits", "128")
	require.NoError(t, err)
	first := strings.SplitN(out, "\n", 2)[0]
	assert.Len(t, strings.Fields(first), 12)
}
