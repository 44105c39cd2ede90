package kiosk_config

import (
	"time"

	"github.com/nbkstem/booth/helpers"
)

const (
	DefaultIdleTimeout = 30 * time.Second
	DefaultUnlockDelay = 2500 * time.Millisecond
	DefaultGrantDelay  = 5 * time.Second
)

type Config struct { //nolint:maligned
	IdleTimeoutMs int `hcl:"idle_timeout_ms"`
	UnlockMs      int `hcl:"unlock_ms"`
	GrantedMs     int `hcl:"granted_ms"`

	SchoolName  string `hcl:"school_name"`
	BoothNumber string `hcl:"booth_number"`

	MsgIdle1      string `hcl:"msg_idle1"`
	MsgIdle2      string `hcl:"msg_idle2"`
	MsgUnlocking1 string `hcl:"msg_unlocking1"`
	MsgUnlocking2 string `hcl:"msg_unlocking2"`
	MsgGranted1   string `hcl:"msg_granted1"`
	MsgGranted2   string `hcl:"msg_granted2"`
	MsgActive1    string `hcl:"msg_active1"`
	MsgActive2    string `hcl:"msg_active2"`
	MsgWelcome    string `hcl:"msg_welcome"` // spoken when welcome audio fails
}

func (c *Config) IdleTimeout() time.Duration {
	return helpers.IntMillisecondDefault(c.IdleTimeoutMs, DefaultIdleTimeout)
}
func (c *Config) UnlockDelay() time.Duration {
	return helpers.IntMillisecondDefault(c.UnlockMs, DefaultUnlockDelay)
}
func (c *Config) GrantDelay() time.Duration {
	return helpers.IntMillisecondDefault(c.GrantedMs, DefaultGrantDelay)
}

// ApplyDefaults fills empty messages.
func (c *Config) ApplyDefaults() {
	if c.SchoolName == "" {
		c.SchoolName = "TRƯỜNG TRUNG HỌC CƠ SỞ NGUYỄN BỈNH KHIÊM"
	}
	if c.BoothNumber == "" {
		c.BoothNumber = "40"
	}
	if c.MsgIdle1 == "" {
		c.MsgIdle1 = "Gian hàng số " + c.BoothNumber
	}
	if c.MsgIdle2 == "" {
		c.MsgIdle2 = "Chạm để bắt đầu"
	}
	if c.MsgUnlocking1 == "" {
		c.MsgUnlocking1 = "Đang quét..."
	}
	if c.MsgUnlocking2 == "" {
		c.MsgUnlocking2 = "Đang xác thực"
	}
	if c.MsgGranted1 == "" {
		c.MsgGranted1 = "Truy cập thành công"
	}
	if c.MsgGranted2 == "" {
		c.MsgGranted2 = "Chào mừng bạn!"
	}
	if c.MsgActive1 == "" {
		c.MsgActive1 = c.SchoolName
	}
	if c.MsgActive2 == "" {
		c.MsgActive2 = "Gian hàng số " + c.BoothNumber
	}
	if c.MsgWelcome == "" {
		c.MsgWelcome = "Chào mừng bạn đến với gian hàng số " + c.BoothNumber + " của " + c.SchoolName
	}
}
