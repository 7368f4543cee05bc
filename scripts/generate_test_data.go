package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/liftlog/internal/config"
	"github.com/liftlog/internal/db"
	"github.com/liftlog/internal/service"
)

type seedWorkout struct {
	name      string
	exercises []service.ExerciseDraft
	// 每个动作的起始重量，单位 kg
	startWeights []float64
}

var seedWorkouts = []seedWorkout{
	{
		name: "Push Day",
		exercises: []service.ExerciseDraft{
			{Name: "Bench Press", Sets: 5, Reps: 5},
			{Name: "Overhead Press", Sets: 3, Reps: 8},
			{Name: "Dips", Sets: 3, Reps: 10},
		},
		startWeights: []float64{80, 45, 20},
	},
	{
		name: "Pull Day",
		exercises: []service.ExerciseDraft{
			{Name: "Deadlift", Sets: 1, Reps: 5},
			{Name: "Barbell Row", Sets: 4, Reps: 8},
		},
		startWeights: []float64{120, 60},
	},
	{
		name: "Leg Day",
		exercises: []service.ExerciseDraft{
			{Name: "Squat", Sets: 5, Reps: 5},
			{Name: "Romanian Deadlift", Sets: 3, Reps: 10},
			{Name: "Calf Raise", Sets: 4, Reps: 15},
		},
		startWeights: []float64{100, 70, 40},
	},
}

// 测试数据生成器
func main() {
	weeks := flag.Int("weeks", 6, "number of weeks of history to generate")
	dbPath := flag.String("db", "", "database path (defaults to DATABASE_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}

	gdb, err := db.Open(cfg.DatabasePath, nil)
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}
	defer db.Close(gdb)

	fmt.Println("开始生成测试数据...")

	created, err := seed(gdb, *weeks, time.Now().UTC())
	if err != nil {
		log.Fatal("生成失败:", err)
	}
	if !created {
		fmt.Println("训练计划已存在，跳过创建")
		return
	}

	fmt.Println("测试数据生成完成！")
	fmt.Printf("训练计划: %d 个\n", len(seedWorkouts))
	fmt.Printf("训练记录: %d 周\n", *weeks)
}
