package models

import (
	"time"
)

type Airplane struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	Model        string    `json:"model" gorm:"type:text"`
	Weight       string    `json:"weight" gorm:"type:text"`
	Manufacturer string    `json:"manufacturer" gorm:"type:text"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate        time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type User struct {
	ID       string    `json:"id" gorm:"primaryKey;type:text"`
	Name     string    `json:"name" gorm:"type:text"`
	Email    string    `json:"email" gorm:"type:text;uniqueIndex"`
	Password string    `json:"password" gorm:"type:text"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
