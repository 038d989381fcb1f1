package entity

import "time"

// ContactEdge 有向联系人关系 owner -> contact，只插入或删除，不原地修改
type ContactEdge struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Uuid      string    `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	OwnerId   string    `gorm:"column:owner_id;type:varchar(64);not null;uniqueIndex:uk_owner_contact,priority:1"`
	ContactId string    `gorm:"column:contact_id;type:varchar(64);not null;uniqueIndex:uk_owner_contact,priority:2;index"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (ContactEdge) TableName() string {
	return "contact_edge"
}
