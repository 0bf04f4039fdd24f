package main

import (
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hetbench/bench"
	"github.com/sarchlab/hetbench/model"
	"github.com/tebeka/atexit"
)

func main() {
	f, err := os.Create("hetbench.json.log")
	if err != nil {
		panic(err)
	}
	atexit.Register(func() { f.Close() })

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: model.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	cfg := bench.DefaultConfig()
	if path := os.Getenv("HETBENCH_CONFIG"); path != "" {
		cfg, err = bench.LoadConfig(path)
		if err != nil {
			panic(err)
		}
	}

	engine := sim.NewSerialEngine()

	platform := model.NewPlatformBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Platform")

	suite := bench.NewSuite(platform, cfg, os.Stdout)
	atexit.Exit(suite.Run())
}
