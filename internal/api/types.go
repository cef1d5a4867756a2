package api

import "time"

// Identity is the authenticated user's public profile as returned by the
// backend. It is immutable once loaded; the session store replaces it
// wholesale on login/logout.
type Identity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Role    string `json:"role,omitempty"`
}

// Competence is a static curriculum catalog entry. Read-only reference data,
// fetched once per view.
type Competence struct {
	ID                    string   `json:"id"`
	Number                int      `json:"number"`
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	DurationHours         int      `json:"duration_hours"`
	Units                 int      `json:"units"`
	LearningObjectives    []string `json:"learning_objectives"`
	EvaluationMethod      string   `json:"evaluation_method"`
	EvaluationDescription string   `json:"evaluation_description"`
	EvaluationCriteria    []string `json:"evaluation_criteria"`
	SuccessThreshold      float64  `json:"success_threshold"`
}

// Progress status values.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ProgressRecord is a per-(user, competence) progress row. At most one exists
// per competence per user; it is created when the user starts a competence and
// mutated only by the backend as the user advances.
type ProgressRecord struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	CompetenceID        string     `json:"competence_id"`
	Status              string     `json:"status"`
	CurrentScore        float64    `json:"current_score"`
	QuizAttempts        int        `json:"quiz_attempts"`
	AssignmentSubmitted bool       `json:"assignment_submitted"`
	AssignmentScore     *float64   `json:"assignment_score,omitempty"`
	ExamTaken           bool       `json:"exam_taken"`
	ExamScore           *float64   `json:"exam_score,omitempty"`
	Certified           bool       `json:"certified"`
	StartedAt           *time.Time `json:"started_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

// DashboardData is the pre-aggregated summary the backend serves on
// GET /dashboard. The client recomputes the same numbers locally through the
// progress aggregator; this type keeps the server-side boundary swappable.
type DashboardData struct {
	User                  Identity         `json:"user"`
	OverallProgress       float64          `json:"overall_progress"`
	TotalCompetences      int              `json:"total_competences"`
	CompletedCompetences  int              `json:"completed_competences"`
	InProgressCompetences int              `json:"in_progress_competences"`
	CertificatesEarned    int              `json:"certificates_earned"`
	ProgressList          []ProgressRecord `json:"progress_list"`
}

// QuizQuestion is a single quiz question. The backend strips correct answers
// before serving, so only the prompt and options are present.
type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizResult is the server-graded outcome of a quiz submission.
type QuizResult struct {
	Score          float64 `json:"score"`
	Passed         bool    `json:"passed"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
}

// WorkshopSession identifies a started AI workshop conversation.
type WorkshopSession struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// WorkshopReply is one assistant turn in a workshop conversation.
type WorkshopReply struct {
	Response string `json:"response"`
}
