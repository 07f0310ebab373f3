package main

import (
	"flag"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/session"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Built-in defaults are used when empty.")
	seed := flag.Uint64("seed", 0, "Piece bag seed. Overrides the config value when non-zero.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui stats panel.")
	flag.Parse()

	cfg := session.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = session.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	s, err := session.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	scheduler := session.NewDefaultScheduler(s)
	game := &Game{
		session:   s,
		scheduler: scheduler,
		input:     newKeyboard(cfg),
	}

	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("Blockfall", debugWidth, debugHeight)
		imgui.CurrentIO().SetIniFilename("")

		panel := debugui.NewStatsPanel(scheduler, 120)
		ui := &debugui.ImguiSystem{}
		ui.Add(func(frame *session.UpdateFrame) {
			imgui.SetNextWindowPosV(imgui.NewVec2(screenWidth+10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(debugWidth-screenWidth-20, 400), imgui.CondOnce)
			panel.Render(frame)
		})
		scheduler.Register(ui)

		game.imgui = backend
		game.ui = ui
	} else {
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}

	log.Printf("Starting blockfall (seed %d, level %d)", s.Seed(), cfg.StartLevel)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	stats := s.Stats()
	log.Printf("Final score %d, %d lines over %d games", s.Score(), stats.Lines(), stats.Games())
}
