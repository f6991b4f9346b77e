package model

import "time"

// KeyRecord 记录一个句柄的生命周期，只保存公开信息 (xpub 与指纹)，不保存私钥
type KeyRecord struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Handle      string     `gorm:"type:varchar(16);uniqueIndex;not null" json:"handle"`
	Source      string     `gorm:"type:varchar(16);not null" json:"source"` // default, seed, mnemonic
	Network     string     `gorm:"type:varchar(16);not null" json:"network"`
	Fingerprint string     `gorm:"type:varchar(64);index" json:"fingerprint"`
	XPub        string     `gorm:"type:varchar(128)" json:"xpub"`
	CreatedAt   time.Time  `json:"created_at"`
	ReleasedAt  *time.Time `json:"released_at"`
}

func (KeyRecord) TableName() string {
	return "key_records"
}
