package model

import "time"

// Advice 一条留言。target_profile_id 在提交时钉死，后续改名不影响历史记录；
// target_username 只是冗余的展示用副本。
type Advice struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	TargetUsername  string    `json:"target_username" gorm:"type:varchar(30);not null"`
	TargetProfileID string    `json:"target_profile_id" gorm:"type:varchar(36);index:idx_advice_target;not null"`
	Content         string    `json:"content" gorm:"type:text;not null"`
	FromName        *string   `json:"from_name" gorm:"type:varchar(100)"`
	IsAnonymous     bool      `json:"is_anonymous" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at" gorm:"index:idx_advice_target"`
}

func (Advice) TableName() string { return "advice" }
