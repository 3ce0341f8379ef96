package services

import (
	"time"

	"quizbox/models"

	"gorm.io/gorm"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

type AnswerSubmission struct {
	QuestionID  uint `json:"questionId"`
	ChoiceIndex int  `json:"choiceIndex"`
}

type SubmitRequest struct {
	Answers []AnswerSubmission `json:"answers"`
}

type ScoreSummary struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

type ResultView struct {
	ID        uint      `json:"id"`
	QuizID    uint      `json:"quizId"`
	QuizTitle string    `json:"quizTitle"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// Submit scores the answers against the quiz's answer key and records the
// outcome. Total counts every question of the quiz, answered or not. Answers
// naming unknown question ids are ignored. Duplicate answers for the same
// question are each checked on their own.
func (s *ResultService) Submit(userID, quizID uint, answers []AnswerSubmission) (*ScoreSummary, error) {
	var questions []models.Question
	if err := s.db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return nil, err
	}

	key := make(map[uint]int, len(questions))
	for _, q := range questions {
		key[q.ID] = q.CorrectIndex
	}

	score := 0
	for _, a := range answers {
		if correct, ok := key[a.QuestionID]; ok && correct == a.ChoiceIndex {
			score++
		}
	}

	result := models.Result{
		UserID: userID,
		QuizID: quizID,
		Score:  score,
		Total:  len(questions),
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}

	return &ScoreSummary{Score: result.Score, Total: result.Total}, nil
}

// ListUserResults returns the caller's past submissions, newest first.
func (s *ResultService) ListUserResults(userID uint) ([]ResultView, error) {
	results := make([]ResultView, 0)
	err := s.db.Table("results").
		Select("results.id, results.quiz_id, quizzes.title AS quiz_title, results.score, results.total, results.created_at").
		Joins("JOIN quizzes ON quizzes.id = results.quiz_id").
		Where("results.user_id = ?", userID).
		Order("results.created_at DESC").
		Scan(&results).Error
	return results, err
}
