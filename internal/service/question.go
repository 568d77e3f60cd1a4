package service

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/JoshD94/triviargh/internal/models"
)

// QuestionService validates and persists questions, standalone or
// attached to a room.
type QuestionService struct {
	db    *gorm.DB
	rooms *RoomService
}

func NewQuestionService(db *gorm.DB, rooms *RoomService) *QuestionService {
	return &QuestionService{db: db, rooms: rooms}
}

// CreateInput carries an authored or generated question. RoomID is the
// raw optional foreign key; attach-by-code goes through CreateForRoom.
type CreateInput struct {
	Question string
	Options  []string
	Answer   int
	RoomID   *uint
}

// Create validates and persists a question. Validation runs presence
// before shape before range, and always before any write: a request
// missing options reports missing fields, not a bad option count.
func (s *QuestionService) Create(in CreateInput) (*models.Question, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	return s.insert(in)
}

// CreateForRoom attaches the question to the room with the given code,
// provisioning the room first if it does not exist.
func (s *QuestionService) CreateForRoom(code string, in CreateInput) (*models.Question, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	room, err := s.rooms.ResolveOrCreate(code)
	if err != nil {
		return nil, err
	}
	in.RoomID = &room.ID
	return s.insert(in)
}

// ListAll returns every question irrespective of room.
func (s *QuestionService) ListAll() ([]models.Question, error) {
	questions := make([]models.Question, 0)
	if err := s.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListForRoom returns a room's questions in creation order. Visiting an
// unseen code provisions an empty room and returns an empty list.
func (s *QuestionService) ListForRoom(code string) ([]models.Question, error) {
	room, err := s.rooms.ResolveOrCreate(code)
	if err != nil {
		return nil, err
	}
	questions := make([]models.Question, 0)
	if err := s.db.Where("room_id = ?", room.ID).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// DeleteByID removes one question and returns the removed record.
func (s *QuestionService) DeleteByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if err := s.db.Delete(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) insert(in CreateInput) (*models.Question, error) {
	raw, err := json.Marshal(in.Options)
	if err != nil {
		return nil, err
	}
	question := models.Question{
		Question: in.Question,
		Options:  datatypes.JSON(raw),
		Answer:   in.Answer,
		RoomID:   in.RoomID,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func validate(in CreateInput) error {
	if in.Question == "" || in.Options == nil {
		return &ValidationError{Message: "Missing required fields"}
	}
	if len(in.Options) != 4 || in.Answer < 0 || in.Answer > 3 {
		return &ValidationError{Message: "A question must have 4 possible options and answer must be between 0 and 3."}
	}
	return nil
}
