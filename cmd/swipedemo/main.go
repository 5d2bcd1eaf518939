// Command swipedemo shows a list of swipeable rows. Drag a row to the left
// to reveal its actions, or use left/h and right/l on the focused row.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/ayn2op/swipeview"
	"github.com/ayn2op/swipeview/help"
	"github.com/ayn2op/swipeview/internal/config"
	"github.com/ayn2op/swipeview/internal/log"
	"github.com/ayn2op/swipeview/keybind"
	"github.com/ayn2op/swipeview/swipemenu"
	"github.com/gdamore/tcell/v3"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var (
	configPath string
	debug      bool
	logFile    string
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&logFile, "log", "", "Write logs to this file")
}

func main() {
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("swipedemo needs a terminal")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Errorln("Failed to load config, using defaults:", err)
	}
	if debug {
		cfg.Log.Debug = true
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	closeLog, err := setupLog(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	swipeview.FrameInterval = cfg.Menu.FrameInterval.Duration

	app := swipeview.NewApplication().EnableMouse(true)
	app.SetRoot(newList(cfg))

	log.Infof("Starting with %d rows", len(cfg.Rows))
	if err := app.Run(); err != nil {
		closeLog()
		log.Fatalf("Application failed: %v", err)
	}
}

func setupLog(cfg config.LogConfig) (func(), error) {
	log.EnableDebug = cfg.Debug
	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", cfg.File)
	}
	log.EnableColors = false
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// list is the root of the demo: the rows, a help bar on the last line and a
// quit key.
type list struct {
	*swipeview.Rows
	bar  *help.Bar
	quit keybind.Keybind

	// Rows by config.RowConfig.ID.
	menus map[string]*swipemenu.SwipeMenu
}

func newList(cfg config.Config) *list {
	l := &list{
		Rows:  swipeview.NewRows(),
		bar:   help.New(),
		quit:  keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
		menus: make(map[string]*swipemenu.SwipeMenu),
	}
	l.bar.SetKeyMap(l)
	l.SetBorders(swipeview.BordersAll).
		SetBorderSet(swipeview.BorderSetRound()).
		SetTitle(" swipedemo ")
	l.SetGap(1)
	l.SetChangedFunc(func(index int) {
		log.Debugf("current row %d", index)
	})
	for _, row := range cfg.Rows {
		menu := newRow(l, cfg.Menu, row)
		l.menus[row.ID()] = menu
		l.AddItem(menu)
	}
	return l
}

// remove deletes the row with the given id.
func (l *list) remove(id string) swipeview.Command {
	menu, ok := l.menus[id]
	if !ok {
		return nil
	}
	delete(l.menus, id)
	menu.Clear()
	l.RemoveItem(menu)
	return swipeview.RedrawCommand{}
}

func (l *list) ShortHelp() []keybind.Keybind {
	rows := swipeview.DefaultRowsKeyMap()
	menu := swipemenu.DefaultKeyMap()
	return []keybind.Keybind{rows.Up, rows.Down, menu.Open, menu.Close, l.quit}
}

func (l *list) SetRect(x, y, width, height int) {
	if height < 2 {
		l.Rows.SetRect(x, y, width, height)
		l.bar.SetRect(x, y+height, width, 0)
		return
	}
	l.Rows.SetRect(x, y, width, height-1)
	l.bar.SetRect(x, y+height-1, width, 1)
}

func (l *list) Draw(screen tcell.Screen) {
	l.Rows.Draw(screen)
	l.bar.Draw(screen)
}

func (l *list) InputHandler(event *tcell.EventKey) swipeview.Command {
	if keybind.Matches(event, l.quit) {
		return swipeview.QuitCommand{}
	}
	return l.Rows.InputHandler(event)
}
