package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SnapshotWriter 把导出文档整体写入文件，先写临时文件再 rename，
// 读者不会看到写了一半的内容。
type SnapshotWriter struct {
	path string
	mu   sync.Mutex
}

// NewSnapshotWriter 构造写入器；path 为空时返回 nil，表示不启用
func NewSnapshotWriter(path string) *SnapshotWriter {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return &SnapshotWriter{path: path}
}

// Path 返回目标文件路径
func (w *SnapshotWriter) Path() string {
	return w.path
}

// Write 原子替换目标文件
func (w *SnapshotWriter) Write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".liftlog-snapshot-*")
	if err != nil {
		return fmt.Errorf("create snapshot temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
