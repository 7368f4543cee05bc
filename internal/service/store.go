package service

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store 汇总训练、动作、历史与导入导出服务，共享同一个数据库句柄。
// 由调用方显式构造并注入到 handler，测试可以每次新建实例。
type Store struct {
	Workouts  *WorkoutService
	Exercises *ExerciseService
	History   *HistoryService
	Transfer  *TransferService

	db       *gorm.DB
	logger   *zap.Logger
	snapshot *SnapshotWriter
}

// Option 调整 Store 的可选依赖
type Option func(*Store, *settings)

type settings struct {
	clock func() time.Time
}

// WithClock 替换历史记录使用的时钟，便于测试
func WithClock(clock func() time.Time) Option {
	return func(_ *Store, s *settings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger 设置日志输出
func WithLogger(logger *zap.Logger) Option {
	return func(st *Store, _ *settings) {
		if logger != nil {
			st.logger = logger
		}
	}
}

// WithSnapshotWriter 在每次写入提交后把完整导出文档落盘
func WithSnapshotWriter(w *SnapshotWriter) Option {
	return func(st *Store, _ *settings) {
		st.snapshot = w
	}
}

// NewStore 构造 Store
func NewStore(gdb *gorm.DB, opts ...Option) *Store {
	st := &Store{db: gdb, logger: zap.NewNop()}
	cfg := settings{clock: time.Now}
	for _, opt := range opts {
		opt(st, &cfg)
	}

	w := writer{db: gdb, onCommit: st.afterCommit}
	st.Workouts = &WorkoutService{w: w}
	st.Exercises = &ExerciseService{w: w}
	st.History = &HistoryService{w: w, clock: cfg.clock}
	st.Transfer = &TransferService{w: w}
	return st
}

// DB exposes the underlying gorm instance for health checks.
func (st *Store) DB() *gorm.DB {
	return st.db
}

func (st *Store) afterCommit() {
	if st.snapshot == nil {
		return
	}

	data, err := st.Transfer.Export()
	if err != nil {
		st.logger.Warn("snapshot export failed", zap.Error(err))
		return
	}
	if err := st.snapshot.Write(data); err != nil {
		st.logger.Warn("snapshot write failed", zap.String("path", st.snapshot.Path()), zap.Error(err))
		return
	}
	st.logger.Debug("snapshot written", zap.String("path", st.snapshot.Path()), zap.Int("bytes", len(data)))
}

// writer 把一次写操作包在事务里，提交成功后触发回调
type writer struct {
	db       *gorm.DB
	onCommit func()
}

func (w writer) transact(fn func(tx *gorm.DB) error) error {
	if err := w.db.Transaction(fn); err != nil {
		return err
	}
	if w.onCommit != nil {
		w.onCommit()
	}
	return nil
}
