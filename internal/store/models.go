package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is an immutable question bank entry. Content authors create
// these; the engine only reads them.
type Question struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Domain     string `gorm:"index:idx_domain_difficulty;not null"`
	Difficulty string `gorm:"index:idx_domain_difficulty;not null"`
	Topic      string `gorm:"not null"`
	Content    string `gorm:"not null"`
	CreatedAt  time.Time
}

func (q *Question) BeforeCreate(_ *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// Course is an ordered collection of modules.
type Course struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	IsPublished bool     `gorm:"default:true"`
	Modules     []Module `gorm:"foreignKey:CourseID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Course) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Module groups lessons inside a course, ordered by OrderIndex.
type Module struct {
	ID          string   `gorm:"type:uuid;primaryKey"`
	CourseID    string   `gorm:"type:uuid;index;not null"`
	Title       string   `gorm:"not null"`
	OrderIndex  int      `gorm:"not null"`
	IsPublished bool     `gorm:"default:true"`
	Lessons     []Lesson `gorm:"foreignKey:ModuleID"`
}

func (m *Module) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Lesson is the unit of course content. Only IsPublished, IsPreview and
// ordering matter to the unlock logic; Type and Duration are carried for
// display.
type Lesson struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	ModuleID    string `gorm:"type:uuid;index;not null"`
	Title       string `gorm:"not null"`
	Order       int    `gorm:"column:lesson_order;not null"`
	Type        string `gorm:"default:'VIDEO'"`
	DurationSec int
	IsPublished bool `gorm:"default:true"`
	IsPreview   bool `gorm:"default:false"`
}

func (l *Lesson) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// LessonProgress is the per-(user, lesson) completion record. Rows are
// created lazily on first interaction and upserted afterwards; the pair
// is unique.
type LessonProgress struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	UserID         string `gorm:"type:uuid;uniqueIndex:idx_user_lesson;not null"`
	LessonID       string `gorm:"type:uuid;uniqueIndex:idx_user_lesson;not null"`
	Completed      bool   `gorm:"not null;default:false"`
	Score          *float64
	TimeSpentSec   int `gorm:"not null;default:0"`
	LastAccessedAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (LessonProgress) TableName() string { return "lesson_progress" }

func (lp *LessonProgress) BeforeCreate(_ *gorm.DB) error {
	if lp.ID == "" {
		lp.ID = uuid.NewString()
	}
	return nil
}

// Enrollment statuses. The transition is monotonic: ACTIVE -> COMPLETED,
// exactly once, never back.
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
)

// Enrollment links a learner to a course and tracks aggregate progress.
type Enrollment struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	UserID      string `gorm:"type:uuid;uniqueIndex:idx_user_course;not null"`
	CourseID    string `gorm:"type:uuid;uniqueIndex:idx_user_course;not null"`
	Status      string `gorm:"not null;default:'ACTIVE'"`
	Progress    int    `gorm:"not null;default:0"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e *Enrollment) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// InterviewSession records one mock interview run for a user.
type InterviewSession struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	UserID    string `gorm:"type:uuid;index;not null"`
	Domain    string `gorm:"not null"`
	StartedAt time.Time
	EndedAt   *time.Time
}

func (s *InterviewSession) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// InterviewTurn is one question/answer exchange within a session.
// Turns are append-only, ordered by Seq.
type InterviewTurn struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	SessionID  string `gorm:"type:uuid;index;not null"`
	Seq        int    `gorm:"not null"`
	QuestionID string `gorm:"type:uuid"` // empty for the generic fallback question
	Question   string `gorm:"not null"`
	Answer     string
	Score      int
	Feedback   string
	Sentiment  string
	CreatedAt  time.Time
}

func (t *InterviewTurn) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// LLMRequestLog captures telemetry for a single LLM API call.
type LLMRequestLog struct {
	ID           uint `gorm:"primaryKey"`
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}
