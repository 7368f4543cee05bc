package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/liftlog/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// fakeClock 每次调用前进一秒，保证历史记录的时间严格递增
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func setupStore(t *testing.T, opts ...Option) (*Store, *fakeClock) {
	t.Helper()

	gdb, err := db.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared", logger.Default.LogMode(logger.Silent))
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close(gdb) })

	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return NewStore(gdb, opts...), clock
}
