// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Course is a unit of educational content owned by exactly one user.
// UserID is fixed at creation time.
type Course struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	// Title is unique across all courses.
	Title       string `json:"title"`
	Description string `json:"description"`

	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// Summary returns the listing view of the course (no timestamps).
func (c Course) Summary() CourseSummary {
	return CourseSummary{
		ID:              c.ID,
		UserID:          c.UserID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
	}
}

// CourseSummary is the element shape returned by GET /api/courses.
type CourseSummary struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}
