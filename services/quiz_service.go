package services

import (
	"errors"

	"quizbox/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type AddQuestionRequest struct {
	Text         string   `json:"text" binding:"required"`
	Choices      []string `json:"choices" binding:"required,min=2"`
	CorrectIndex *int     `json:"correctIndex" binding:"required"`
}

type QuizSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type QuestionView struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Choices []string `json:"choices"`
}

type QuizDetail struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuestionView `json:"questions"`
}

// ListQuizzes returns all quizzes, newest first.
func (s *QuizService) ListQuizzes() ([]QuizSummary, error) {
	quizzes := make([]QuizSummary, 0)
	err := s.db.Model(&models.Quiz{}).Order("id DESC").Find(&quizzes).Error
	return quizzes, err
}

// GetQuiz returns one quiz with its questions. The answer key never leaves
// this package: question views carry id, text and choices only.
func (s *QuizService) GetQuiz(quizID uint) (*QuizDetail, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	var questions []models.Question
	if err := s.db.Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}

	detail := &QuizDetail{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   make([]QuestionView, 0, len(questions)),
	}
	for _, q := range questions {
		detail.Questions = append(detail.Questions, QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Choices: q.Choices,
		})
	}
	return detail, nil
}

func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	quiz := models.Quiz{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// AddQuestion stores a question as submitted. The correct index is not
// checked against the number of choices.
func (s *QuizService) AddQuestion(quizID uint, req *AddQuestionRequest) (*models.Question, error) {
	question := models.Question{
		QuizID:       quizID,
		Text:         req.Text,
		Choices:      models.StringList(req.Choices),
		CorrectIndex: *req.CorrectIndex,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}
