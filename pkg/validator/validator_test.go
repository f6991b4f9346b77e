package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type seedRequest struct {
	Bits    int    `binding:"required,seed_bits"`
	SeedHex string `binding:"omitempty,hexadecimal"`
}

func TestGetErrorMsg(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&seedRequest{Bits: 12, SeedHex: "zz"})
	msg := GetErrorMsg(err)
	assert.Contains(t, msg, "Bits 必须是 8 的正整数倍")
	assert.Contains(t, msg, "SeedHex 必须是十六进制字符串")

	assert.NoError(t, binding.Validator.ValidateStruct(&seedRequest{Bits: 192, SeedHex: "00ff"}))

	err = binding.Validator.ValidateStruct(&seedRequest{})
	assert.Contains(t, GetErrorMsg(err), "Bits 不能为空")

	assert.Equal(t, "请求参数错误", GetErrorMsg(errors.New("x")))
}
