package service

import (
	"testing"

	"github.com/pypath/pypath/internal/model"
)

func question(id uint, topic, qType, correct string) model.Question {
	return model.Question{ID: id, Topic: topic, Type: qType, CorrectAnswer: correct}
}

func TestEvaluateAnswers(t *testing.T) {
	questions := []model.Question{
		question(1, "Variables", model.QuestionTypeMultipleChoice, "x = 5"),
		question(2, "Loops", model.QuestionTypeMultipleChoice, "for"),
		question(3, "Loops", model.QuestionTypeMultipleChoice, "while"),
	}

	t.Run("all correct", func(t *testing.T) {
		graded, score, topicXP := EvaluateAnswers(questions, map[uint]string{
			1: "x = 5", 2: "for", 3: "while",
		})
		if score != 3 {
			t.Errorf("score = %d, want 3", score)
		}
		if len(graded) != 3 {
			t.Fatalf("len(graded) = %d, want 3", len(graded))
		}
		for _, g := range graded {
			if !g.IsCorrect {
				t.Errorf("question %d graded incorrect, want correct", g.QuestionID)
			}
		}
		if topicXP["Variables"] != XPPerCorrectAnswer {
			t.Errorf("Variables XP = %d, want %d", topicXP["Variables"], XPPerCorrectAnswer)
		}
		if topicXP["Loops"] != 2*XPPerCorrectAnswer {
			t.Errorf("Loops XP = %d, want %d", topicXP["Loops"], 2*XPPerCorrectAnswer)
		}
	})

	t.Run("all wrong", func(t *testing.T) {
		graded, score, topicXP := EvaluateAnswers(questions, map[uint]string{
			1: "x = 6", 2: "if", 3: "until",
		})
		if score != 0 {
			t.Errorf("score = %d, want 0", score)
		}
		if len(topicXP) != 0 {
			t.Errorf("topicXP = %v, want empty", topicXP)
		}
		for _, g := range graded {
			if g.IsCorrect {
				t.Errorf("question %d graded correct, want incorrect", g.QuestionID)
			}
		}
	})

	t.Run("missing submissions count as incorrect", func(t *testing.T) {
		graded, score, _ := EvaluateAnswers(questions, map[uint]string{2: "for"})
		if score != 1 {
			t.Errorf("score = %d, want 1", score)
		}
		if len(graded) != 3 {
			t.Fatalf("len(graded) = %d, want 3: every question gets an answer record", len(graded))
		}
		for _, g := range graded {
			if g.QuestionID != 2 && g.Submitted != "" {
				t.Errorf("question %d submitted = %q, want empty", g.QuestionID, g.Submitted)
			}
		}
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		_, score, _ := EvaluateAnswers(questions, map[uint]string{2: "For"})
		if score != 0 {
			t.Errorf("score = %d, want 0 for case-mismatched answer", score)
		}
	})

	t.Run("free text questions never score", func(t *testing.T) {
		qs := []model.Question{question(9, "Functions", "free_text", "def")}
		graded, score, topicXP := EvaluateAnswers(qs, map[uint]string{9: "def"})
		if score != 0 {
			t.Errorf("score = %d, want 0", score)
		}
		if graded[0].IsCorrect {
			t.Error("free text answer graded correct even on exact match")
		}
		if len(topicXP) != 0 {
			t.Errorf("topicXP = %v, want empty", topicXP)
		}
	})

	t.Run("empty question set", func(t *testing.T) {
		graded, score, topicXP := EvaluateAnswers(nil, map[uint]string{1: "x = 5"})
		if len(graded) != 0 || score != 0 || len(topicXP) != 0 {
			t.Errorf("got (%v, %d, %v), want all empty", graded, score, topicXP)
		}
	})

	t.Run("unknown question ids in submission are ignored", func(t *testing.T) {
		graded, score, _ := EvaluateAnswers(questions, map[uint]string{
			1: "x = 5", 99: "anything",
		})
		if score != 1 {
			t.Errorf("score = %d, want 1", score)
		}
		if len(graded) != 3 {
			t.Errorf("len(graded) = %d, want 3", len(graded))
		}
	})
}
