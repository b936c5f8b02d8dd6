// Command headless runs the bounce simulation without a window and logs
// per-frame statistics.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/milk9111/bouncers/config"
	"github.com/milk9111/bouncers/ecs"
	"github.com/milk9111/bouncers/system"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults are embedded)")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per frame")
	every := flag.Int("every", 60, "log statistics every n frames (0 = only at the end)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	bounds := ecs.Bounds{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	world, err := system.NewWorld(cfg.Simulation, bounds, "")
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("headless: %d bodies in %.0fx%.0f, seed %d, broadphase %s",
		cfg.Simulation.Count, bounds.Width, bounds.Height, world.Seed(), cfg.Simulation.Broadphase)

	frame := ecs.Frame{DT: *dt, Bounds: bounds}
	start := time.Now()
	contacts, redirects := 0, 0
	for i := 1; i <= *frames; i++ {
		world.Update(frame)
		s := world.Stats()
		contacts += s.Contacts
		redirects += s.Redirects
		if *every > 0 && i%*every == 0 {
			log.Printf("frame %d: contacts=%d redirects=%d", i, s.Contacts, s.Redirects)
		}
	}
	elapsed := time.Since(start)

	perFrame := time.Duration(0)
	if *frames > 0 {
		perFrame = elapsed / time.Duration(*frames)
	}
	log.Printf("headless: %d frames in %s (%s/frame), %d contacts, %d boundary redirects",
		*frames, elapsed, perFrame, contacts, redirects)
}
