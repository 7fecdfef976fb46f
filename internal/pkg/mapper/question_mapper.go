package mapper

import (
	oldEntity "github.com/quivia/quivia-be/internal/delivery/http/entity"
	dbEntity "github.com/quivia/quivia-be/internal/entity"
)

// ConvertToQuestion - Convert DB row to domain question. The bank stores the
// correct answer as full option text; the engine works with letters.
func ConvertToQuestion(row *dbEntity.QuizQuestion) oldEntity.Question {
	options := map[string]string{
		"A": row.OptionA,
		"B": row.OptionB,
		"C": row.OptionC,
		"D": row.OptionD,
	}

	return oldEntity.Question{
		ID:            row.QuestionID,
		Text:          row.Question,
		Options:       options,
		CorrectOption: answerToLetter(row.Answer, options),
		Topic:         row.Topic,
		Difficulty:    oldEntity.Difficulty(row.Difficulty),
	}
}

func ConvertToQuestions(rows []dbEntity.QuizQuestion) []oldEntity.Question {
	questions := make([]oldEntity.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, ConvertToQuestion(&rows[i]))
	}
	return questions
}

// answerToLetter finds the option whose text matches the stored answer,
// falling back to "A" when nothing matches.
func answerToLetter(answer string, options map[string]string) string {
	for _, letter := range oldEntity.OptionLetters {
		if options[letter] == answer {
			return letter
		}
	}
	return "A"
}
