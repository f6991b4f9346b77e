package handle

import (
	"errors"
)

// Status 是 C ABI 返回的状态码
type Status int

const (
	StatusOK Status = iota
	StatusNullArgument
	StatusUnknownHandle
	StatusConstruction
)

// StatusOf 将错误映射为状态码。
// 未识别的错误都视为底层密钥构造失败，错误文本由调用方原样带出。
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNilKey):
		return StatusNullArgument
	case errors.Is(err, ErrUnknownHandle):
		return StatusUnknownHandle
	default:
		return StatusConstruction
	}
}
