package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/JoshD94/triviargh/internal/models"
)

// RoomService owns the room lifecycle. Rooms are provisioned on first
// reference to an unseen code and deleted together with their questions.
type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

// ResolveOrCreate returns the room with the given code, creating it if
// no such room exists yet. Two requests racing on the same unseen code
// both succeed: the loser of the insert re-reads the winner's row, so
// at most one room per code ever exists.
func (s *RoomService) ResolveOrCreate(code string) (*models.Room, error) {
	var room models.Room
	err := s.db.Where("code = ?", code).First(&room).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room = models.Room{Code: code}
	if err := s.db.Create(&room).Error; err != nil {
		if !isUniqueViolation(err) {
			return nil, err
		}
		// lost the creation race; the row exists now
		if err := s.db.Where("code = ?", code).First(&room).Error; err != nil {
			return nil, err
		}
	}
	return &room, nil
}

// Get looks up a room by code without provisioning it.
func (s *RoomService) Get(code string) (*models.Room, error) {
	var room models.Room
	if err := s.db.Where("code = ?", code).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// Delete removes a room and every question attached to it. The cascade
// runs in one transaction: if the question sweep fails the room stays.
func (s *RoomService) Delete(code string) error {
	room, err := s.Get(code)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, room.ID).Error
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
