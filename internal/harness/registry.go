package harness

import (
	"fmt"

	"github.com/google/uuid"
)

// lessonNamespace scopes name-based lesson IDs to this program.
var lessonNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/jsreview/lessons"))

// LessonID returns the stable identifier for a lesson name.
// The same name always maps to the same UUIDv5, across processes and runs.
func LessonID(name string) uuid.UUID {
	return uuid.NewSHA1(lessonNamespace, []byte(name))
}

// LessonOption customizes a lesson at registration time.
type LessonOption func(*Lesson)

// WithTitle sets the human-readable title shown by --list.
func WithTitle(title string) LessonOption {
	return func(l *Lesson) {
		l.Title = title
	}
}

// Registry is an ordered, uniquely keyed store of lessons.
//
// Iteration order is registration order. The registry is populated once at
// process start and read afterwards; it is not safe for concurrent Register
// calls.
type Registry struct {
	order   []string
	lessons map[string]Lesson
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		order:   []string{},
		lessons: make(map[string]Lesson),
	}
}

// Register adds a lesson at the end of iteration order.
//
// Returns *DuplicateNameError if name is already registered; the registry is
// left unchanged in that case.
func (r *Registry) Register(name string, body Body, opts ...LessonOption) error {
	if name == "" {
		return fmt.Errorf("%w: name must be non-empty", ErrInvalidLesson)
	}
	if body == nil {
		return fmt.Errorf("%w: lesson %q has no body", ErrInvalidLesson, name)
	}
	if _, exists := r.lessons[name]; exists {
		return &DuplicateNameError{Name: name}
	}

	lesson := Lesson{
		Name:  name,
		Title: name,
		ID:    LessonID(name),
		Body:  body,
	}
	for _, opt := range opts {
		opt(&lesson)
	}

	r.lessons[name] = lesson
	r.order = append(r.order, name)
	return nil
}

// List returns registered names in registration order.
// The returned slice is a copy.
func (r *Registry) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Get returns the lesson registered under name.
func (r *Registry) Get(name string) (Lesson, error) {
	lesson, ok := r.lessons[name]
	if !ok {
		return Lesson{}, &NotFoundError{Name: name}
	}
	return lesson, nil
}

// Lessons returns all lessons in registration order.
func (r *Registry) Lessons() []Lesson {
	out := make([]Lesson, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.lessons[name])
	}
	return out
}

// Len returns the number of registered lessons.
func (r *Registry) Len() int {
	return len(r.order)
}
