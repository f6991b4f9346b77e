package event

import "time"

// Topic 默认的密钥事件主题
const Topic = "hdkey_events"

const (
	TypeKeyCreated  = "key.created"
	TypeKeyReleased = "key.released"
)

// KeyEvent 句柄创建/释放事件，只携带公开信息
type KeyEvent struct {
	Type        string    `json:"type"`
	Handle      string    `json:"handle"`
	Source      string    `json:"source,omitempty"`
	Network     string    `json:"network,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	At          time.Time `json:"at"`
}
