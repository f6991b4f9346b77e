//go:build cgo

// Command libhdkey 以 C 共享库的形式导出 HD 私钥句柄工厂:
//
//	go build -buildmode=c-shared -o libhdkey.so ./cmd/libhdkey
//
// 所有句柄都是不透明的 uint64，必须由调用方通过 hdkey_free 显式释放；
// 返回给调用方的字符串必须通过 hdkey_string_free 释放。
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"hdkey-core/pkg/handle"
)

//export hdkey_new_private_key
func hdkey_new_private_key(out *C.uint64_t) C.int {
	if out == nil {
		return C.int(handle.StatusNullArgument)
	}
	id, err := newDefaultKey()
	if err != nil {
		return C.int(handle.StatusOf(err))
	}
	*out = C.uint64_t(id)
	return C.int(handle.StatusOK)
}

//export hdkey_new_private_key_from_seed
func hdkey_new_private_key_from_seed(seed *C.uint8_t, n C.size_t, out *C.uint64_t, errmsg **C.char) C.int {
	if out == nil || (seed == nil && n > 0) {
		return C.int(handle.StatusNullArgument)
	}
	id, err := func() (handle.ID, error) {
		buf, err := seedView(unsafe.Pointer(seed), uint64(n))
		if err != nil {
			return handle.Null, err
		}
		return newKeyFromSeed(buf)
	}()
	if err != nil {
		if errmsg != nil {
			*errmsg = C.CString(err.Error())
		}
		return C.int(handle.StatusOf(err))
	}
	*out = C.uint64_t(id)
	return C.int(handle.StatusOK)
}

//export hdkey_private_key_string
func hdkey_private_key_string(h C.uint64_t, out **C.char) C.int {
	if out == nil {
		return C.int(handle.StatusNullArgument)
	}
	s, err := keyString(handle.ID(h))
	if err != nil {
		return C.int(handle.StatusOf(err))
	}
	*out = C.CString(s)
	return C.int(handle.StatusOK)
}

//export hdkey_private_key_equal
func hdkey_private_key_equal(a, b C.uint64_t) C.int {
	return C.int(keysEqual(handle.ID(a), handle.ID(b)))
}

//export hdkey_free
func hdkey_free(h C.uint64_t) C.int {
	return C.int(handle.StatusOf(freeKey(handle.ID(h))))
}

//export hdkey_string_free
func hdkey_string_free(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}
