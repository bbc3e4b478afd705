// Command microgui-demo renders an animated dial with the microgui
// rendering core, either into the terminal (tcell backend) or into a
// PNG file (image backend).
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/microgui"
	"github.com/gogpu/microgui/framebuf"
	"github.com/gogpu/microgui/tcellfb"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fg, err := parseHex(cfg.Colors.Foreground)
	if err != nil {
		log.Fatalf("Bad foreground color: %v", err)
	}
	bg, err := parseHex(cfg.Colors.Background)
	if err != nil {
		log.Fatalf("Bad background color: %v", err)
	}
	accent, err := parseHex(cfg.Colors.Accent)
	if err != nil {
		log.Fatalf("Bad accent color: %v", err)
	}

	switch cfg.Display.Backend {
	case "image":
		if err := runImage(cfg, fg, bg, accent); err != nil {
			log.Fatalf("Image backend failed: %v", err)
		}
	case "tcell":
		if err := runTerminal(cfg, fg, bg, accent); err != nil {
			log.Fatalf("Terminal backend failed: %v", err)
		}
	default:
		log.Fatalf("Unknown backend %q (want \"tcell\" or \"image\")", cfg.Display.Backend)
	}
}

// drawDial renders one frame: the dial face, tick marks and the hand
// arrow at angle theta.
func drawDial(dev microgui.Surface, cfg Config, fg, bg, accent color.Color, theta float64) {
	cx := dev.Width() / 2
	cy := dev.Height() / 2
	r := cfg.Dial.Radius

	microgui.DrawFillCircle(dev, cx, cy, r, bg)
	microgui.DrawCircle(dev, cx, cy, r, fg, 2)

	tickLen := float64(r) * 0.15
	for i := 0; i < cfg.Dial.Ticks; i++ {
		ang := 2 * math.Pi * float64(i) / float64(cfg.Dial.Ticks)
		inner := microgui.Polar(float64(r)-tickLen-1, ang)
		origin := microgui.V(float64(cx)+inner.X, float64(cy)-inner.Y)
		microgui.DrawPolarLine(dev, origin, microgui.Polar(tickLen, ang), fg)
	}

	hand := microgui.Polar(float64(r)*0.72, theta)
	microgui.DrawArrow(dev, microgui.V(float64(cx), float64(cy)), hand, cfg.Dial.ChevronLength, accent)
	microgui.DrawFillCircle(dev, cx, cy, 1, fg)
}

func runImage(cfg Config, fg, bg, accent color.RGBA) error {
	dev := framebuf.New(cfg.Display.Width, cfg.Display.Height, framebuf.RGB565, nil)
	reg := microgui.NewRegistry()
	reg.SetClearColor(bg)
	if err := reg.Refresh(dev, false); err != nil {
		return err
	}

	wr := microgui.NewWriter(dev, nil, fg, bg)
	microgui.NewLabel(wr, reg, 1, 1, "microgui", fg, bg, microgui.NoBorder())

	drawDial(dev, cfg, fg, bg, accent, math.Pi/3)
	if err := reg.Refresh(dev, false); err != nil {
		return err
	}

	f, err := os.Create(cfg.Display.Output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, dev.Snapshot()); err != nil {
		return err
	}
	log.Printf("Dial saved to %s (%dx%d)", cfg.Display.Output, cfg.Display.Width, cfg.Display.Height)
	return nil
}

func runTerminal(cfg Config, fg, bg, accent color.RGBA) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	dev := tcellfb.New(screen, cfg.Display.Width, cfg.Display.Height)
	reg := microgui.NewRegistry()
	reg.SetClearColor(bg)
	if err := reg.Refresh(dev, false); err != nil {
		return err
	}

	wr := microgui.NewWriter(dev, nil, fg, bg)
	microgui.NewLabel(wr, reg, 1, 1, "microgui", fg, bg, microgui.NoBorder())

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	theta := 0.0
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			drawDial(dev, cfg, fg, bg, accent, theta)
			if err := reg.Refresh(dev, false); err != nil {
				return err
			}
			theta -= 2 * math.Pi / 60 // clockwise sweep
		}
	}
}
