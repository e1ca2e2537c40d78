// Package model holds the GORM mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PrincipalModel mirrors the 'principals' table. IDs are UUIDv7 generated by the application.
type PrincipalModel struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Variant           string        `gorm:"type:varchar(16);not null;uniqueIndex:idx_principals_variant_email,priority:1"`
	Email             string        `gorm:"type:varchar(255);not null;uniqueIndex:idx_principals_variant_email,priority:2"`
	PasswordHash      string        `gorm:"type:varchar(255);not null"`
	PasswordUpdated   bool          `gorm:"not null"`
	CredentialVersion int           `gorm:"not null"`
	FirstName         string        `gorm:"type:varchar(255)"`
	LastName          string        `gorm:"type:varchar(255)"`
	CompanyName       string        `gorm:"type:varchar(255)"`
	Phone             string        `gorm:"type:varchar(64)"`
	Validated         bool          `gorm:"not null"`
	CreatedAt         time.Time     `gorm:"not null"`
	UpdatedAt         time.Time     `gorm:"not null"`
	Answers           []AnswerModel `gorm:"foreignKey:PrincipalID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (PrincipalModel) TableName() string {
	return "principals"
}

// AnswerModel mirrors the 'principal_answers' table. Position keeps the submitted order.
type AnswerModel struct {
	PrincipalID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey;autoIncrement:false"`
	QuestionID  string    `gorm:"type:varchar(255);not null"`
	Value       string    `gorm:"type:text;not null"`
}

// TableName specifies the table name for GORM.
func (AnswerModel) TableName() string {
	return "principal_answers"
}
