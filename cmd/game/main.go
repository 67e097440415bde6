package main

import (
	"cmp"
	"flag"
	"os"
	"slices"

	"scene-engine/internal/anim"
	"scene-engine/internal/commands"
	"scene-engine/internal/debug"
	"scene-engine/internal/engineconfig"
	"scene-engine/internal/fonts"
	"scene-engine/internal/frame"
	"scene-engine/internal/graphics"
	"scene-engine/internal/logger"
	"scene-engine/internal/scene"
	"scene-engine/internal/sceneconfig"
	"scene-engine/internal/selection"
	"scene-engine/internal/terminal"
	"scene-engine/internal/ui"
	"scene-engine/internal/world"
)

func main() {
	configPath := flag.String("config", sceneconfig.DefaultPath, "scene config (YAML)")
	themePath := flag.String("theme", "", "stylesheet replacing the built-in theme")
	fontName := flag.String("font", "", "font file or family name under assets/fonts")
	fullscreen := flag.Bool("fullscreen", false, "open fullscreen")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	log := logger.New()

	cfg, err := sceneconfig.LoadOrDefault(*configPath)
	if cfg == nil {
		log.Logf("scene config: %v", err)
		os.Exit(1)
	}
	if err != nil {
		log.Logf("scene config: %v; using built-in scene", err)
	}
	prefs, err := engineconfig.Open()
	if err != nil {
		log.Logf("prefs: %v", err)
	}
	if !prefs.Persistent() {
		log.Log("prefs: memory only, changes will not be saved")
	}

	uiEngine := ui.New()
	var modal *ui.Modal
	toModal := selection.ConsumerFunc(func(ev selection.Event) {
		if modal != nil {
			modal.Select(ev)
		}
	})
	w, err := world.New(cfg, world.Options{Log: log, Consumer: toModal})
	if err != nil {
		log.Logf("scene: %v", err)
		os.Exit(1)
	}
	modal = ui.NewModal(uiEngine, w.Gate, w.Section)

	renderer := scene.New(w.Entities, w.Scene.Visuals, cfg.Camera.Fov)
	w.Frames.AfterTick(func(f frame.Frame) { renderer.Sync(f.Elapsed, *w.Camera) })

	reg := commands.NewRegistry()
	term := terminal.New(log, reg)
	dbg := debug.New()
	apply := func(p engineconfig.Prefs) {
		renderer.SetGridVisible(p.GridVisible)
		dbg.SetShowFPS(p.ShowFPS)
		dbg.SetShowMode(p.ShowMode)
	}
	apply(prefs.Prefs())
	w.RegisterCommands(reg, prefs, apply)

	device := scene.NewDevice(w.Keys.Keys(), renderer, w.Orbit)
	device.KeyboardBlocked = term.IsOpen
	device.PointerBlocked = func() bool { return w.Gate.IsOpen() || term.IsOpen() }
	w.Router.Attach(device)

	labels := ui.NewLabels(uiEngine, labelItems(w.Scene.Visuals, w.Selection))
	help := ui.NewHelp(uiEngine, ui.HelpLines)

	setup := func() {
		if *themePath != "" {
			if err := uiEngine.LoadCSS(*themePath); err != nil {
				log.Logf("theme: %v", err)
			}
		}
		if *fontName != "" {
			if err := loadFont(uiEngine, *fontName); err != nil {
				log.Logf("font: %v", err)
			} else {
				term.SetFont(uiEngine.Font())
				dbg.SetFont(uiEngine.Font())
			}
		}
		// First tick pins the clock origin so animation starts at zero.
		w.Tick()
	}
	update := func() {
		term.Update()
		device.Poll()
		w.Tick()
		modal.Update()
	}
	draw := func() {
		renderer.Draw()
		hovered, _ := w.Selection.Hovered()
		if w.Gate.LabelsVisible() {
			labels.Draw(renderer.Anchor, w.Entities.Elapsed(), hovered)
		}
		help.Draw()
		modal.Draw()
		dbg.Draw(debug.Status{Mode: w.Rig.Mode().String(), Hovered: string(hovered), Overlay: w.Gate.IsOpen()})
		term.Draw()
	}
	teardown := func() {
		renderer.Unload()
		uiEngine.Unload()
		w.Close()
	}

	graphics.Run(graphics.Options{
		Title:      "Scene Engine",
		Width:      int32(*width),
		Height:     int32(*height),
		Fullscreen: *fullscreen,
		TargetFPS:  60,
	}, graphics.Hooks{Setup: setup, Update: update, Draw: draw, Teardown: teardown})
}

// labelItems returns a floating label for every selectable entity that has label text.
func labelItems(visuals map[anim.ID]sceneconfig.Visual, sel *selection.Registry) []ui.Label {
	var items []ui.Label
	for id, v := range visuals {
		if v.Label == "" || !sel.Known(id) {
			continue
		}
		items = append(items, ui.Label{ID: id, Text: v.Label})
	}
	slices.SortFunc(items, func(a, b ui.Label) int { return cmp.Compare(a.ID, b.ID) })
	return items
}

func loadFont(e *ui.Engine, name string) error {
	path, err := fonts.Resolve(name)
	if err != nil {
		return err
	}
	return e.LoadFont(path)
}
