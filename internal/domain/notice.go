package domain

import "time"

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeSent    NoticeLevel = "sent"
	NoticeError   NoticeLevel = "error"
	// NoticeSystem marks persistent notices that belong in the message view.
	NoticeSystem NoticeLevel = "system"
)

type Notice struct {
	Level NoticeLevel
	Text  string
	At    time.Time
}
