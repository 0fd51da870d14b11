package models

import (
	"github.com/coffeehouse/backend/internal/domain/feedback"
)

// FeedbackModel is the persistence model for a customer feedback entry.
type FeedbackModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	Rating  int    `gorm:"not null"`
	Comment string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (FeedbackModel) TableName() string {
	return "feedback"
}

// ToDomain converts the persistence model to a domain Feedback
func (m *FeedbackModel) ToDomain() *feedback.Feedback {
	return &feedback.Feedback{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Rating:     m.Rating,
		Comment:    m.Comment,
	}
}

// FeedbackModelFromDomain converts a domain Feedback to its persistence model
func FeedbackModelFromDomain(f *feedback.Feedback) *FeedbackModel {
	m := &FeedbackModel{
		Name:    f.Name,
		Rating:  f.Rating,
		Comment: f.Comment,
	}
	m.FromDomainBaseEntity(f.BaseEntity)
	return m
}
