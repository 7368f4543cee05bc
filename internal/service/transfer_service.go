package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/liftlog/internal/db"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Document 是导入导出使用的完整快照格式
type Document struct {
	Workouts  []db.Workout        `json:"workouts" yaml:"workouts"`
	Exercises []db.Exercise       `json:"exercises" yaml:"exercises"`
	History   []db.WorkoutHistory `json:"history" yaml:"history"`
}

// ImportSummary 汇总一次导入写入的记录数
type ImportSummary struct {
	Workouts  int  `json:"workouts"`
	Exercises int  `json:"exercises"`
	History   int  `json:"history"`
	NextID    uint `json:"nextId"`
}

var documentKeys = []string{"workouts", "exercises", "history"}

// TransferService 负责整库导出与破坏性导入
type TransferService struct {
	w writer
}

// Snapshot 读取三张表的全部记录，按 ID 排序
func (s *TransferService) Snapshot() (*Document, error) {
	doc := &Document{
		Workouts:  make([]db.Workout, 0),
		Exercises: make([]db.Exercise, 0),
		History:   make([]db.WorkoutHistory, 0),
	}

	if err := s.w.db.Order("id ASC").Find(&doc.Workouts).Error; err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	if err := s.w.db.Order("id ASC").Find(&doc.Exercises).Error; err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}
	if err := s.w.db.Order("id ASC").Find(&doc.History).Error; err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}
	for i := range doc.History {
		doc.History[i].CompletedAt = doc.History[i].CompletedAt.UTC()
	}

	return doc, nil
}

// Export 以缩进 JSON 输出快照；相同数据输出的字节完全一致
func (s *TransferService) Export() ([]byte, error) {
	doc, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportYAML 以 YAML 输出同一份快照，便于人工阅读
func (s *TransferService) ExportYAML() ([]byte, error) {
	doc, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Import 用文档整体替换三张表并重算 ID 计数器。
// 解析失败时返回 ErrInvalidFormat，数据库不做任何修改。
func (s *TransferService) Import(document []byte) (*ImportSummary, error) {
	doc, err := ParseDocument(document)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		Workouts:  len(doc.Workouts),
		Exercises: len(doc.Exercises),
		History:   len(doc.History),
	}

	err = s.w.transact(func(tx *gorm.DB) error {
		for _, model := range []any{&db.Workout{}, &db.Exercise{}, &db.WorkoutHistory{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(doc.Workouts) > 0 {
			if err := tx.CreateInBatches(doc.Workouts, 100).Error; err != nil {
				return err
			}
		}
		if len(doc.Exercises) > 0 {
			if err := tx.CreateInBatches(doc.Exercises, 100).Error; err != nil {
				return err
			}
		}
		if len(doc.History) > 0 {
			for i := range doc.History {
				doc.History[i].CompletedAt = doc.History[i].CompletedAt.UTC()
			}
			if err := tx.CreateInBatches(doc.History, 100).Error; err != nil {
				return err
			}
		}

		next, err := db.ResetSequence(tx)
		if err != nil {
			return err
		}
		summary.NextID = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import data: %w", err)
	}

	return summary, nil
}

// ParseDocument 校验文档结构：必须是 JSON 对象，且包含三个顶层集合。
// 集合内 ID 必须非零且不重复。
func ParseDocument(document []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(document, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	for _, key := range documentKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidFormat, key)
		}
	}

	var doc Document
	if err := json.Unmarshal(raw["workouts"], &doc.Workouts); err != nil {
		return nil, fmt.Errorf("%w: workouts: %v", ErrInvalidFormat, err)
	}
	if err := json.Unmarshal(raw["exercises"], &doc.Exercises); err != nil {
		return nil, fmt.Errorf("%w: exercises: %v", ErrInvalidFormat, err)
	}
	if err := json.Unmarshal(raw["history"], &doc.History); err != nil {
		return nil, fmt.Errorf("%w: history: %v", ErrInvalidFormat, err)
	}

	workoutIDs := make([]uint, 0, len(doc.Workouts))
	for _, w := range doc.Workouts {
		workoutIDs = append(workoutIDs, w.ID)
	}
	exerciseIDs := make([]uint, 0, len(doc.Exercises))
	for _, e := range doc.Exercises {
		exerciseIDs = append(exerciseIDs, e.ID)
	}
	historyIDs := make([]uint, 0, len(doc.History))
	for _, h := range doc.History {
		historyIDs = append(historyIDs, h.ID)
	}

	for key, ids := range map[string][]uint{"workouts": workoutIDs, "exercises": exerciseIDs, "history": historyIDs} {
		if err := checkIDs(ids); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, key, err)
		}
	}

	return &doc, nil
}

func checkIDs(ids []uint) error {
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return fmt.Errorf("id is required")
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
