package world

import (
	"errors"
	"fmt"

	"scene-engine/internal/anim"
	"scene-engine/internal/commands"
	"scene-engine/internal/engineconfig"
)

// RegisterCommands adds the console commands to reg. Preference commands update prefs,
// save them and pass the result to apply.
func (w *World) RegisterCommands(reg *commands.Registry, prefs *engineconfig.Store, apply func(engineconfig.Prefs)) {
	setPref := func(fn func(*engineconfig.Prefs)) error {
		err := prefs.Update(fn)
		if apply != nil {
			apply(prefs.Prefs())
		}
		if err != nil {
			return fmt.Errorf("prefs not saved: %w", err)
		}
		return nil
	}

	gridFS := commands.NewFlagSet("grid")
	gridVisible := gridFS.Bool("visible", true, "draw the floor grid")
	reg.Register("grid", "show or hide the floor grid", gridFS, func() error {
		return setPref(func(p *engineconfig.Prefs) { p.GridVisible = *gridVisible })
	})

	fpsFS := commands.NewFlagSet("fps")
	fpsShow := fpsFS.Bool("show", true, "draw the FPS counter")
	reg.Register("fps", "show or hide the FPS counter", fpsFS, func() error {
		return setPref(func(p *engineconfig.Prefs) { p.ShowFPS = *fpsShow })
	})

	modeFS := commands.NewFlagSet("mode")
	modeShow := modeFS.Bool("show", true, "draw the camera mode indicator")
	reg.Register("mode", "show or hide the camera mode indicator", modeFS, func() error {
		return setPref(func(p *engineconfig.Prefs) { p.ShowMode = *modeShow })
	})

	selectFS := commands.NewFlagSet("select")
	selectID := selectFS.String("id", "", "entity id")
	reg.Register("select", "open the panel of a selectable entity", selectFS, func() error {
		id := anim.ID(*selectID)
		if id == "" {
			return errors.New("select: -id is required")
		}
		if !w.Selection.Known(id) {
			return fmt.Errorf("select: %q is not selectable", id)
		}
		w.Router.HandlePointerClick(id)
		return nil
	})

	reg.Register("close", "close the open panel", nil, func() error {
		w.Gate.Close()
		return nil
	})

	cameraFS := commands.NewFlagSet("camera")
	cameraReset := cameraFS.Bool("reset", false, "restore the configured camera pose")
	reg.Register("camera", "print or reset the camera", cameraFS, func() error {
		if *cameraReset {
			if err := w.ResetCamera(); err != nil {
				return fmt.Errorf("camera: %w", err)
			}
		}
		p, t := w.Camera.Position, w.Camera.Target
		w.log.Logf("camera %s position (%.2f, %.2f, %.2f) target (%.2f, %.2f, %.2f)",
			w.Rig.Mode(), p.X(), p.Y(), p.Z(), t.X(), t.Y(), t.Z())
		return nil
	})

	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Help() {
			w.log.Log(line)
		}
		return nil
	})
}
