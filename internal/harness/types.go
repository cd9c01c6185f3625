package harness

import (
	"github.com/google/uuid"

	"github.com/roach88/jsreview/internal/canonical"
)

// Body is the executable part of a lesson.
//
// A body writes its demonstration output to out and returns nil, or returns
// an error (typically via Fail) when the lesson could not complete.
type Body func(out *Sink) error

// Lesson is a named, self-contained demonstration.
// Lessons are created by Registry.Register and never change afterwards.
type Lesson struct {
	Name  string
	Title string
	ID    uuid.UUID
	Body  Body
}

// Status is the outcome kind of one lesson invocation.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Outcome records what happened when one lesson ran.
type Outcome struct {
	Lesson   string   `json:"lesson" yaml:"lesson"`
	LessonID string   `json:"lesson_id" yaml:"lesson_id"`
	Status   Status   `json:"status" yaml:"status"`
	Output   []string `json:"output,omitempty" yaml:"output,omitempty"`
	Reason   string   `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Completed builds a completed outcome.
func Completed(lesson Lesson, output []string) Outcome {
	return Outcome{
		Lesson:   lesson.Name,
		LessonID: lesson.ID.String(),
		Status:   StatusCompleted,
		Output:   output,
	}
}

// Failed builds a failed outcome.
func Failed(lesson Lesson, reason string) Outcome {
	return Outcome{
		Lesson:   lesson.Name,
		LessonID: lesson.ID.String(),
		Status:   StatusFailed,
		Reason:   reason,
	}
}

// OK reports whether the lesson completed.
func (o Outcome) OK() bool {
	return o.Status == StatusCompleted
}

// Report is the ordered result of one Runner invocation.
// Outcomes appear in requested order, one per requested name.
type Report struct {
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Outcomes: []Outcome{}}
}

// Add appends an outcome.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// OK reports whether every lesson completed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns the failed outcomes in report order.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Transcript concatenates the output of every completed lesson in order.
func (r *Report) Transcript() []string {
	lines := []string{}
	for _, o := range r.Outcomes {
		lines = append(lines, o.Output...)
	}
	return lines
}

// Snapshot serializes the report to canonical JSON.
// Identical reports always produce identical bytes.
func (r *Report) Snapshot() ([]byte, error) {
	outcomes := make([]any, len(r.Outcomes))
	for i, o := range r.Outcomes {
		m := map[string]any{
			"lesson":    o.Lesson,
			"lesson_id": o.LessonID,
			"status":    string(o.Status),
		}
		if o.OK() {
			output := make([]any, len(o.Output))
			for j, line := range o.Output {
				output[j] = line
			}
			m["output"] = output
		} else {
			m["reason"] = o.Reason
		}
		outcomes[i] = m
	}
	return canonical.Marshal(map[string]any{"outcomes": outcomes})
}
