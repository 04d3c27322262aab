package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrainingDaysCountsStartDayAsOne(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := &Training{StartDate: start}

	assert.Equal(t, 1, tr.TrainingDays(start))
	assert.Equal(t, 1, tr.TrainingDays(start.Add(3*time.Hour)))
	assert.Equal(t, 8, tr.TrainingDays(start.AddDate(0, 0, 7)))
}

func TestTrainingDaysFrozenAfterStop(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	stopped := start.AddDate(0, 0, 9)
	tr := &Training{StartDate: start, StoppedAt: &stopped}

	// now sau thời điểm dừng không còn ảnh hưởng
	assert.Equal(t, 10, tr.TrainingDays(stopped.AddDate(0, 1, 0)))
}

func TestTrainingDaysBeforeStart(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	tr := &Training{StartDate: start}

	assert.Equal(t, 0, tr.TrainingDays(start.AddDate(0, 0, -1)))
}
