package service_test

import (
	"context"
	"testing"

	"github.com/lshigami/examprep/internal/service"
)

func TestGetPracticeTest(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	seedQuestions(t, s.questions, faculty, "Algorithms", 30)
	seedQuestions(t, s.questions, faculty, "Networks", 5)
	svc := service.NewUserTestService(s.questions)

	test, err := svc.GetPracticeTest(ctx, "Algorithms", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(test.Questions) != service.DefaultPracticeCount || test.DurationSeconds != 540 {
		t.Errorf("expected 10 questions in 540s, got %d in %ds", len(test.Questions), test.DurationSeconds)
	}
	seen := map[string]bool{}
	for _, q := range test.Questions {
		if q.Subject != "Algorithms" {
			t.Errorf("unexpected subject %s", q.Subject)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}

	small, _ := svc.GetPracticeTest(ctx, "Networks", 20)
	if len(small.Questions) != 5 {
		t.Errorf("expected the whole pool of 5, got %d", len(small.Questions))
	}

	all, _ := svc.GetPracticeTest(ctx, "", 25)
	if len(all.Questions) != 25 || all.DurationSeconds != 1080 {
		t.Errorf("expected 25 questions in 1080s, got %d in %ds", len(all.Questions), all.DurationSeconds)
	}

	none, err := svc.GetPracticeTest(ctx, "Unknown", 10)
	if err != nil || len(none.Questions) != 0 {
		t.Errorf("expected empty practice test, got %v, %v", none, err)
	}
}

func TestGetSubjects(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	svc := service.NewUserTestService(s.questions)

	empty, err := svc.GetSubjects(ctx)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil list, got %v, %v", empty, err)
	}

	seedQuestions(t, s.questions, faculty, "Networks", 1)
	seedQuestions(t, s.questions, faculty, "Algorithms", 2)
	subjects, _ := svc.GetSubjects(ctx)
	if len(subjects) != 2 || subjects[0] != "Algorithms" {
		t.Errorf("unexpected subjects %v", subjects)
	}
}
