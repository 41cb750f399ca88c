package entity

import "errors"

// Domain errors for the progression record and related aggregates.
var (
	ErrInvalidBackup     = errors.New("backup payload is not a valid progress record")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidDailyGoal  = errors.New("daily XP goal must be positive")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrAudioNotFound     = errors.New("pronunciation audio not found")
)
