package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/JoshD94/triviargh/internal/models"
)

func TestResolveOrCreateProvisionsOnce(t *testing.T) {
	db := openTestDB(t)
	rooms := NewRoomService(db)

	first, err := rooms.ResolveOrCreate("ABC123")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := rooms.ResolveOrCreate("ABC123")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same room, got ids %d and %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&models.Room{}).Where("code = ?", "ABC123").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one room, got %d", count)
	}
}

func TestResolveOrCreateConcurrentCallsCreateOneRoom(t *testing.T) {
	db := openTestDB(t)
	rooms := NewRoomService(db)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := rooms.ResolveOrCreate("RACE01"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("resolve under contention: %v", err)
	}

	var count int64
	if err := db.Model(&models.Room{}).Where("code = ?", "RACE01").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one room, got %d", count)
	}
}

func TestGetDoesNotProvision(t *testing.T) {
	db := openTestDB(t)
	rooms := NewRoomService(db)

	if _, err := rooms.Get("GHOST1"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("lookup must not create rooms, found %d", count)
	}
}

func TestDeleteCascadesToQuestions(t *testing.T) {
	db := openTestDB(t)
	rooms := NewRoomService(db)
	questions := NewQuestionService(db, rooms)

	if _, err := questions.CreateForRoom("ABC123", CreateInput{
		Question: "2+2?",
		Options:  []string{"3", "4", "5", "6"},
		Answer:   1,
	}); err != nil {
		t.Fatalf("create room question: %v", err)
	}
	if _, err := questions.CreateForRoom("ABC123", CreateInput{
		Question: "3+3?",
		Options:  []string{"4", "5", "6", "7"},
		Answer:   2,
	}); err != nil {
		t.Fatalf("create room question: %v", err)
	}
	global, err := questions.Create(CreateInput{
		Question: "Unattached?",
		Options:  []string{"a", "b", "c", "d"},
		Answer:   0,
	})
	if err != nil {
		t.Fatalf("create global question: %v", err)
	}

	old, err := rooms.Get("ABC123")
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if err := rooms.Delete("ABC123"); err != nil {
		t.Fatalf("delete room: %v", err)
	}

	var orphans int64
	if err := db.Model(&models.Question{}).Where("room_id = ?", old.ID).Count(&orphans).Error; err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("expected no orphaned questions, got %d", orphans)
	}

	// The global pool is untouched by room deletion.
	var remaining models.Question
	if err := db.First(&remaining, global.ID).Error; err != nil {
		t.Fatalf("global question should survive: %v", err)
	}

	// Revisiting the code provisions a fresh, empty room.
	fresh, err := questions.ListForRoom("ABC123")
	if err != nil {
		t.Fatalf("revisit room: %v", err)
	}
	if len(fresh) != 0 {
		t.Fatalf("expected empty fresh room, got %d questions", len(fresh))
	}
	renewed, err := rooms.Get("ABC123")
	if err != nil {
		t.Fatalf("get renewed room: %v", err)
	}
	if renewed.ID == old.ID {
		t.Fatalf("expected a new room row, got the old id %d", old.ID)
	}
}

func TestDeleteUnknownRoom(t *testing.T) {
	db := openTestDB(t)
	rooms := NewRoomService(db)

	if err := rooms.Delete("ZZZ999"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505"}
	cases := []struct {
		err  error
		want bool
	}{
		{pgDup, true},
		{fmt.Errorf("create room: %w", pgDup), true},
		{gorm.ErrDuplicatedKey, true},
		{gorm.ErrRecordNotFound, false},
		{&pgconn.PgError{Code: "23503"}, false},
		{errors.New("plain"), false},
	}
	for _, tc := range cases {
		if got := isUniqueViolation(tc.err); got != tc.want {
			t.Errorf("isUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
