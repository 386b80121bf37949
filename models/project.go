package models

import (
	"time"
)

// ProjectStatus represents the review status of a project
type ProjectStatus string

const (
	StatusPending  ProjectStatus = "pending"
	StatusApproved ProjectStatus = "approved"
	StatusRejected ProjectStatus = "rejected"
)

// Project represents a submitted environmental project
type Project struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Name            string        `json:"name" gorm:"type:varchar(200);not null"`
	Location        string        `json:"location" gorm:"type:varchar(200);not null"`
	Description     string        `json:"description" gorm:"type:text;not null"`
	Status          ProjectStatus `json:"status" gorm:"type:varchar(50);default:'pending'"`
	CreatedAt       time.Time     `json:"createdAt"`
	CertifiedAt     *time.Time    `json:"certifiedAt"`
	BackgroundImage string        `json:"backgroundImage,omitempty" gorm:"type:varchar(500);default:null"`
}

// IsCertified reports whether the project carries a certification timestamp
func (p Project) IsCertified() bool {
	return p.CertifiedAt != nil
}
