package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/service"
)

func TestQuestionService_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	svc := service.NewQuestionService(s.questions)

	req := dto.QuestionCreateDTO{
		Question:      "What is 2+2?",
		Options:       []string{"3", "4"},
		CorrectAnswer: "4",
		Subject:       "Math",
		Faculty:       "Science",
	}
	created, err := svc.CreateQuestion(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || len(created.Options) != 2 {
		t.Fatalf("unexpected created question %+v", created)
	}

	req.CorrectAnswer = "5"
	if _, err := svc.CreateQuestion(ctx, req); !errors.Is(err, service.ErrInvalidQuestion) {
		t.Errorf("expected ErrInvalidQuestion, got %v", err)
	}

	req.Options = []string{"3", "4", "5"}
	updated, err := svc.UpdateQuestion(ctx, created.ID, req)
	if err != nil {
		t.Fatal(err)
	}
	if updated.CorrectAnswer != "5" || len(updated.Options) != 3 {
		t.Errorf("unexpected update result %+v", updated)
	}
	got, _ := svc.GetQuestion(ctx, created.ID)
	if got.CorrectAnswer != "5" {
		t.Errorf("expected stored update, got %+v", got)
	}

	list, _ := svc.ListQuestions(ctx, "Math")
	if len(list) != 1 {
		t.Errorf("expected 1 Math question, got %d", len(list))
	}

	if err := svc.DeleteQuestion(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetQuestion(ctx, created.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteQuestion(ctx, created.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestParseImport_Formats(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		format string
		count  int
	}{
		{
			name: "grouped",
			body: `{"subject":"Math","faculty":"Science","questions":[
				{"question":"1+1?","options":["1","2"],"correct_answer":"2"},
				{"question":"2+2?","options":["4","5"],"correct_answer":"4","subject":"Arithmetic"}]}`,
			format: service.ImportFormatGrouped,
			count:  2,
		},
		{
			name:   "flat",
			body:   `[{"question":"Capital of France?","options":["Paris","Rome"],"correct_answer":"Paris","subject":"Geo","faculty":"Arts"}]`,
			format: service.ImportFormatFlat,
			count:  1,
		},
		{
			name:   "quiz",
			body:   `{"title":"Biology","desc":"","questions":[{"q":"Cell unit?","options":["atom","cell"],"answer":"cell"}]}`,
			format: service.ImportFormatQuiz,
			count:  1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qs, format, err := service.ParseImport([]byte(tc.body))
			if err != nil {
				t.Fatal(err)
			}
			if format != tc.format || len(qs) != tc.count {
				t.Errorf("expected %s/%d, got %s/%d", tc.format, tc.count, format, len(qs))
			}
		})
	}

	qs, _, _ := service.ParseImport([]byte(cases[0].body))
	if qs[0].Subject != "Math" || qs[1].Subject != "Arithmetic" || qs[1].Faculty != "Science" {
		t.Errorf("unexpected grouped subjects %+v", qs)
	}
	qs, _, _ = service.ParseImport([]byte(cases[2].body))
	if qs[0].Subject != "Biology" || qs[0].Faculty != "General" {
		t.Errorf("expected quiz title as subject and General faculty, got %+v", qs[0])
	}
}

func TestParseImport_Invalid(t *testing.T) {
	bodies := []string{
		``,
		`not json`,
		`[]`,
		`[{"question":"Q?","options":["a","b"],"correct_answer":"c","subject":"S","faculty":"F"}]`,
		`{"subject":"S","faculty":"F","questions":[{"question":"Q?","options":["a"],"correct_answer":"a"}]}`,
	}
	for _, body := range bodies {
		if _, _, err := service.ParseImport([]byte(body)); !errors.Is(err, service.ErrInvalidImport) {
			t.Errorf("body %q: expected ErrInvalidImport, got %v", body, err)
		}
	}
}

func TestImportQuestions_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	svc := service.NewQuestionService(s.questions)

	bad := `[{"question":"Q1?","options":["a","b"],"correct_answer":"a","subject":"S","faculty":"F"},
		{"question":"Q2?","options":["a","b"],"correct_answer":"z","subject":"S","faculty":"F"}]`
	if _, err := svc.ImportQuestions(ctx, []byte(bad)); err == nil {
		t.Fatal("expected import to fail")
	}
	if list, _ := svc.ListQuestions(ctx, ""); len(list) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(list))
	}

	good := `{"subject":"S","faculty":"F","questions":[
		{"question":"Q1?","options":["a","b"],"correct_answer":"a"},
		{"question":"Q2?","options":["a","b"],"correct_answer":"b"}]}`
	res, err := svc.ImportQuestions(ctx, []byte(good))
	if err != nil {
		t.Fatal(err)
	}
	if res.Inserted != 2 || res.Format != "grouped" {
		t.Errorf("unexpected import result %+v", res)
	}
	if n, _ := s.questions.CountByFaculty(ctx, "F"); n != 2 {
		t.Errorf("expected 2 stored questions, got %d", n)
	}
}
