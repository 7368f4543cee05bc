package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := Open("file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })
	return gdb
}

func TestNextIDStartsAtOneAndIncrements(t *testing.T) {
	gdb := openTestDB(t)

	var ids []uint
	for i := 0; i < 3; i++ {
		err := gdb.Transaction(func(tx *gorm.DB) error {
			id, err := NextID(tx)
			ids = append(ids, id)
			return err
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []uint{1, 2, 3}, ids)
}

func TestNextIDRolledBackWithTransaction(t *testing.T) {
	gdb := openTestDB(t)

	require.NoError(t, gdb.Transaction(func(tx *gorm.DB) error {
		_, err := NextID(tx)
		return err
	}))

	_ = gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := NextID(tx); err != nil {
			return err
		}
		return assert.AnError
	})

	var id uint
	require.NoError(t, gdb.Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = NextID(tx)
		return err
	}))
	assert.Equal(t, uint(2), id)
}

func TestResetSequenceUsesMaxAcrossTables(t *testing.T) {
	gdb := openTestDB(t)

	require.NoError(t, gdb.Create(&Workout{ID: 4, Name: "Push"}).Error)
	require.NoError(t, gdb.Create(&Exercise{ID: 9, WorkoutID: 4, Name: "Bench", Sets: 3, Reps: 5}).Error)
	require.NoError(t, gdb.Create(&WorkoutHistory{ID: 7, WorkoutID: 4, ExerciseID: 9, Weight: 100, Unit: UnitKilogram}).Error)

	next, err := ResetSequence(gdb)
	require.NoError(t, err)
	assert.Equal(t, uint(10), next)

	var id uint
	require.NoError(t, gdb.Transaction(func(tx *gorm.DB) error {
		id, err = NextID(tx)
		return err
	}))
	assert.Equal(t, uint(10), id)
}

func TestResetSequenceOnEmptyTables(t *testing.T) {
	gdb := openTestDB(t)

	next, err := ResetSequence(gdb)
	require.NoError(t, err)
	assert.Equal(t, uint(1), next)

	// 再次重置走 upsert 分支
	next, err = ResetSequence(gdb)
	require.NoError(t, err)
	assert.Equal(t, uint(1), next)
}
