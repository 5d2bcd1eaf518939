package main

import (
	"testing"

	"github.com/ayn2op/swipeview"
	"github.com/ayn2op/swipeview/internal/config"
)

func TestRemoveByID(t *testing.T) {
	cfg := config.Default()
	l := newList(cfg)
	if l.GetItemCount() != len(cfg.Rows) {
		t.Fatalf("rows = %d, want %d", l.GetItemCount(), len(cfg.Rows))
	}

	id := cfg.Rows[1].ID()
	menu := l.menus[id]
	if _, ok := l.remove(id).(swipeview.RedrawCommand); !ok {
		t.Fatal("remove did not request a redraw")
	}
	if l.GetItemCount() != len(cfg.Rows)-1 {
		t.Fatalf("rows after remove = %d", l.GetItemCount())
	}
	for i := 0; i < l.GetItemCount(); i++ {
		if l.GetItem(i) == menu {
			t.Fatal("removed row still listed")
		}
	}

	if l.remove(id) != nil {
		t.Fatal("second remove of the same id did something")
	}
}

func TestHelpFooterLayout(t *testing.T) {
	l := newList(config.Default())
	l.SetRect(0, 0, 60, 20)

	if _, y, _, h := l.bar.GetRect(); y != 19 || h != 1 {
		t.Fatalf("help bar at y=%d h=%d, want 19, 1", y, h)
	}
	if _, _, _, h := l.Rows.GetRect(); h != 19 {
		t.Fatalf("rows height = %d, want 19", h)
	}
}
