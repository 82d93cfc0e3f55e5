package store

import (
	"context"
	"fmt"
)

// Seed loads the starter question bank and a demo course. It is idempotent:
// running it against a seeded database inserts nothing.
func (s *Store) Seed(ctx context.Context) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Question{}).Count(&n).Error; err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, q := range seedQuestions {
		q := q
		if err := s.Questions().Create(ctx, &q); err != nil {
			return err
		}
	}

	course := demoCourse()
	if err := s.Courses().CreateTree(ctx, course); err != nil {
		return err
	}
	return nil
}

// seedQuestions is the starter bank: three difficulty tiers across the two
// launch domains.
var seedQuestions = []Question{
	{Domain: "TECHNOLOGY", Difficulty: "BEGINNER", Topic: "Data Structures",
		Content: "What is the difference between an array and a linked list?"},
	{Domain: "TECHNOLOGY", Difficulty: "BEGINNER", Topic: "Web Basics",
		Content: "Explain what happens when you type a URL into a browser and press enter."},
	{Domain: "TECHNOLOGY", Difficulty: "BEGINNER", Topic: "Databases",
		Content: "What is a primary key, and why does a table need one?"},
	{Domain: "TECHNOLOGY", Difficulty: "INTERMEDIATE", Topic: "Concurrency",
		Content: "How would you design a worker pool that processes jobs from a queue?"},
	{Domain: "TECHNOLOGY", Difficulty: "INTERMEDIATE", Topic: "APIs",
		Content: "Compare REST and RPC-style APIs. When would you choose one over the other?"},
	{Domain: "TECHNOLOGY", Difficulty: "INTERMEDIATE", Topic: "Databases",
		Content: "Walk me through how you would diagnose a slow SQL query in production."},
	{Domain: "TECHNOLOGY", Difficulty: "ADVANCED", Topic: "System Design",
		Content: "Design a URL shortener that serves 100k redirects per second."},
	{Domain: "TECHNOLOGY", Difficulty: "ADVANCED", Topic: "Distributed Systems",
		Content: "Explain how you would achieve exactly-once processing on top of an at-least-once message broker."},
	{Domain: "TECHNOLOGY", Difficulty: "ADVANCED", Topic: "Consistency",
		Content: "Your service reads stale data after writes in a replicated database. What are your options, and what do they cost?"},
	{Domain: "BEHAVIORAL", Difficulty: "BEGINNER", Topic: "Teamwork",
		Content: "Tell me about a time you helped a teammate who was stuck."},
	{Domain: "BEHAVIORAL", Difficulty: "INTERMEDIATE", Topic: "Conflict",
		Content: "Describe a disagreement with a colleague about a technical decision and how it was resolved."},
	{Domain: "BEHAVIORAL", Difficulty: "ADVANCED", Topic: "Leadership",
		Content: "Tell me about a project you led that failed. What did you change afterwards?"},
}

// demoCourse builds a small published course whose lesson layout mirrors the
// shapes the unlock logic cares about: a preview lesson mid-sequence and an
// unpublished lesson that must stay invisible.
func demoCourse() *Course {
	return &Course{
		Title:       "Backend Engineering Fundamentals",
		Description: "Core skills for backend interviews: APIs, storage, and system design.",
		IsPublished: true,
		Modules: []Module{
			{
				Title:       "Getting Started",
				OrderIndex:  1,
				IsPublished: true,
				Lessons: []Lesson{
					{Title: "Course Orientation", Order: 1, Type: "VIDEO", DurationSec: 300, IsPublished: true},
					{Title: "How Interviews Are Scored", Order: 2, Type: "TEXT", DurationSec: 420, IsPublished: true, IsPreview: true},
				},
			},
			{
				Title:       "APIs and Storage",
				OrderIndex:  2,
				IsPublished: true,
				Lessons: []Lesson{
					{Title: "Designing REST Resources", Order: 1, Type: "VIDEO", DurationSec: 900, IsPublished: true},
					{Title: "Indexes and Query Plans", Order: 2, Type: "VIDEO", DurationSec: 1080, IsPublished: true},
					{Title: "Bonus: GraphQL Draft", Order: 3, Type: "TEXT", DurationSec: 600, IsPublished: false},
				},
			},
			{
				Title:       "System Design",
				OrderIndex:  3,
				IsPublished: true,
				Lessons: []Lesson{
					{Title: "Capacity Estimation", Order: 1, Type: "VIDEO", DurationSec: 840, IsPublished: true},
					{Title: "Mock Design Session", Order: 2, Type: "INTERACTIVE", DurationSec: 1800, IsPublished: true},
				},
			},
		},
	}
}
