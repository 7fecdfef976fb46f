package mapper

import (
	"testing"

	"github.com/quivia/quivia-be/internal/delivery/http/entity"
	internalEntity "github.com/quivia/quivia-be/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestConvertToQuestion(t *testing.T) {
	row := internalEntity.QuizQuestion{
		QuestionID: "e-func-1",
		Question:   "Which function adds up a range of numbers?",
		OptionA:    "SUM",
		OptionB:    "COUNT",
		OptionC:    "MAX",
		OptionD:    "ADD",
		Answer:     "SUM",
		Difficulty: "easy",
		Topic:      "Functions",
	}

	q := ConvertToQuestion(&row)

	assert.Equal(t, "e-func-1", q.ID)
	assert.Equal(t, "A", q.CorrectOption)
	assert.Equal(t, "SUM", q.Options["A"])
	assert.Equal(t, "ADD", q.Options["D"])
	assert.Equal(t, entity.DifficultyEasy, q.Difficulty)
	assert.Equal(t, "Functions", q.Topic)
}

func TestAnswerToLetterMatchesAnyPosition(t *testing.T) {
	row := internalEntity.QuizQuestion{
		QuestionID: "q",
		OptionA:    "one", OptionB: "two", OptionC: "three", OptionD: "four",
		Answer: "three",
	}
	assert.Equal(t, "C", ConvertToQuestion(&row).CorrectOption)
}

func TestAnswerToLetterFallsBackToA(t *testing.T) {
	row := internalEntity.QuizQuestion{
		QuestionID: "q",
		OptionA:    "one", OptionB: "two", OptionC: "three", OptionD: "four",
		Answer: "does not match",
	}
	assert.Equal(t, "A", ConvertToQuestion(&row).CorrectOption)
}
