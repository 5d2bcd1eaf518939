package main

import (
	"strings"

	"github.com/ayn2op/swipeview"
	"github.com/ayn2op/swipeview/internal/config"
	"github.com/ayn2op/swipeview/internal/log"
	"github.com/ayn2op/swipeview/swipemenu"
	"github.com/gdamore/tcell/v3"
)

const pinMark = "* "

// newRow builds one swipe row: the title followed by one button per action.
func newRow(l *list, menuCfg config.MenuConfig, row config.RowConfig) *swipemenu.SwipeMenu {
	id := row.ID()
	menu := swipemenu.New(
		swipemenu.WithTouchSlop(menuCfg.TouchSlop),
		swipemenu.WithSettleDuration(menuCfg.SettleDuration.Duration),
	)

	title := swipeview.NewLabel(row.Title)
	title.SetSelectedFunc(func() swipeview.Command {
		if menu.IsOpen() {
			return menu.Close()
		}
		return menu.Open()
	})
	menu.AddItem(title)

	for _, action := range row.Actions {
		button := swipeview.NewButton(action)
		switch strings.ToLower(action) {
		case "delete":
			button.SetStyle(tcell.StyleDefault.
				Background(swipeview.Styles.DestructiveBackgroundColor).
				Foreground(swipeview.Styles.PrimaryTextColor))
			button.SetSelectedFunc(func() swipeview.Command {
				log.Infof("Deleting %q (%s)", row.Title, id)
				return l.remove(id)
			})
		case "pin":
			button.SetSelectedFunc(func() swipeview.Command {
				text, pinned := strings.CutPrefix(title.GetText(), pinMark)
				if !pinned {
					text = pinMark + text
				}
				title.SetText(text)
				log.Infof("Pinned %q (%s): %v", row.Title, id, !pinned)
				return menu.Close()
			})
		default:
			button.SetSelectedFunc(func() swipeview.Command {
				log.Infof("%s %q (%s)", action, row.Title, id)
				return menu.Close()
			})
		}
		menu.AddItem(button)
	}

	menu.SetChangedFunc(func(open bool) {
		log.Debugf("Row %q open: %v", row.Title, open)
	})
	return menu
}
