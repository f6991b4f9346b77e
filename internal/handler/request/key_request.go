package request

// CreateKeyRequest 创建句柄请求。三个字段都缺省时创建默认句柄。
// SeedHex 为 nil 表示未提供种子；"" 是零长度种子，交给底层库判定。
type CreateKeyRequest struct {
	SeedHex    *string `json:"seed_hex" binding:"omitempty,excluded_with=Mnemonic"`
	Mnemonic   string  `json:"mnemonic" binding:"omitempty,max=1024"`
	Passphrase string  `json:"passphrase" binding:"omitempty,max=256"`
}

// NewSeedRequest 生成随机种子请求，Bits 为 0 时使用默认位数
type NewSeedRequest struct {
	Bits int `json:"bits" binding:"omitempty,seed_bits,max=512"`
}
