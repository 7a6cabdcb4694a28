package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridkit/internal/config"
	"github.com/dshills/gridkit/internal/grid"
	"github.com/dshills/gridkit/internal/grid/column"
	"github.com/dshills/gridkit/internal/grid/selection"
	"github.com/dshills/gridkit/internal/grid/view"
	"github.com/dshills/gridkit/internal/script"
	"github.com/dshills/gridkit/internal/store"
)

// inputMode says what keystrokes currently feed.
type inputMode uint8

const (
	modeBrowse inputMode = iota
	modeFilter
	modeEdit
)

// demoUI is the demo's renderer and input loop. All engine access
// happens on this loop; the engine itself is single-threaded.
type demoUI struct {
	screen     tcell.Screen
	engine     *grid.Engine
	store      *store.MemStore
	formatters *script.Formatters
	layoutPath string

	cursorRow int
	cursorCol int
	mode      inputMode
	entry     string
	status    string
}

func (u *demoUI) loop() {
	for {
		u.clampCursor()
		u.draw()
		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventInterrupt:
			if layout, ok := ev.Data().(config.Layout); ok {
				u.engine.ApplyLayout(layout)
				u.status = "layout reloaded"
			}
		case *tcell.EventKey:
			if !u.handleKey(ev) {
				return
			}
		}
	}
}

func (u *demoUI) handleKey(ev *tcell.EventKey) bool {
	switch u.mode {
	case modeFilter:
		u.handleEntryKey(ev, func(text string) {
			u.engine.SetFilter(u.currentField(), text)
			u.status = fmt.Sprintf("%d match this filter", u.engine.MatchCount(u.currentField()))
		})
	case modeEdit:
		u.handleEntryKey(ev, func(text string) {
			u.engine.CommitEdit(text)
			u.status = "committed"
		})
	default:
		return u.handleBrowseKey(ev)
	}
	return true
}

// handleEntryKey edits the text entry shared by filter and edit modes.
func (u *demoUI) handleEntryKey(ev *tcell.EventKey, apply func(string)) {
	switch ev.Key() {
	case tcell.KeyEnter:
		apply(u.entry)
		u.mode = modeBrowse
		u.entry = ""
	case tcell.KeyEscape:
		if u.mode == modeEdit {
			u.engine.CancelEdit()
			u.status = "cancelled"
		}
		u.mode = modeBrowse
		u.entry = ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(u.entry) > 0 {
			u.entry = u.entry[:len(u.entry)-1]
		}
	case tcell.KeyRune:
		u.entry += string(ev.Rune())
	}
}

func (u *demoUI) handleBrowseKey(ev *tcell.EventKey) bool {
	cols := u.engine.VisibleOrderedColumns()
	rows := u.engine.CurrentRows()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		u.cursorRow--
	case tcell.KeyDown:
		u.cursorRow++
	case tcell.KeyLeft:
		u.cursorCol--
	case tcell.KeyRight:
		u.cursorCol++
	case tcell.KeyEnter:
		mod := selection.ModifierNone
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			mod = selection.ModifierToggle
		}
		if ev.Modifiers()&tcell.ModShift != 0 {
			mod = selection.ModifierRange
		}
		u.engine.Select(u.cursorRow, mod)
	case tcell.KeyRune:
		return u.handleRune(ev.Rune(), cols, rows)
	}
	return true
}

func (u *demoUI) handleRune(r rune, cols []column.Column, rows []store.Record) bool {
	switch r {
	case 'q':
		return false
	case 's':
		u.engine.ToggleSort(u.currentField())
	case '/':
		if f := u.currentField(); f != "" {
			u.mode = modeFilter
			u.entry = u.engine.FilterText(f)
		}
	case 'F':
		u.engine.ClearFilters()
		u.status = "filters cleared"
	case 'e':
		if f := u.currentField(); f != "" && u.cursorRow < len(rows) {
			u.engine.StartEdit(u.cursorRow, f)
			u.mode = modeEdit
			u.entry = ""
		}
	case ' ':
		u.engine.Select(u.cursorRow, selection.ModifierToggle)
	case 'r':
		u.engine.Select(u.cursorRow, selection.ModifierRange)
	case 'a':
		u.engine.SelectAll()
	case 'c':
		u.engine.ClearSelection()
	case 'h':
		u.engine.SetColumnVisible(u.currentField(), false)
	case 'H':
		for _, f := range u.engine.ColumnOrder() {
			u.engine.SetColumnVisible(f, true)
		}
	case '<':
		u.moveColumn(cols, column.SideBefore)
	case '>':
		u.moveColumn(cols, column.SideAfter)
	case 'x':
		if u.cursorRow < len(rows) {
			u.store.Remove(rows[u.cursorRow])
		}
	case 'w':
		if u.layoutPath != "" {
			if err := config.SaveFile(u.layoutPath, u.engine.Layout()); err != nil {
				u.status = err.Error()
			} else {
				u.status = "layout saved"
			}
		}
	}
	return true
}

// moveColumn swaps the cursor column with its visible neighbor through
// the drag controller.
func (u *demoUI) moveColumn(cols []column.Column, side column.Side) {
	target := u.cursorCol - 1
	if side == column.SideAfter {
		target = u.cursorCol + 1
	}
	if target < 0 || target >= len(cols) {
		return
	}
	u.engine.BeginColumnDrag(cols[u.cursorCol].Field)
	u.engine.DropColumn(cols[target].Field, side)
	u.cursorCol = target
}

func (u *demoUI) currentField() string {
	cols := u.engine.VisibleOrderedColumns()
	if u.cursorCol < 0 || u.cursorCol >= len(cols) {
		return ""
	}
	return cols[u.cursorCol].Field
}

func (u *demoUI) clampCursor() {
	if u.cursorRow < 0 {
		u.cursorRow = 0
	}
	if n := len(u.engine.CurrentRows()); u.cursorRow >= n && n > 0 {
		u.cursorRow = n - 1
	}
	if u.cursorCol < 0 {
		u.cursorCol = 0
	}
	if n := len(u.engine.VisibleOrderedColumns()); u.cursorCol >= n && n > 0 {
		u.cursorCol = n - 1
	}
}

func (u *demoUI) draw() {
	u.screen.Clear()
	cols := u.engine.VisibleOrderedColumns()
	rows := u.engine.CurrentRows()

	headerStyle := tcell.StyleDefault.Bold(true).Underline(true)
	selectedStyle := tcell.StyleDefault.Reverse(true)
	cursorStyle := tcell.StyleDefault.Bold(true)

	x := 0
	for ci, c := range cols {
		label := c.Label
		if desc, ok := u.engine.ActiveSort(); ok && desc.Field == c.Field {
			label += " " + sortMark(desc)
		}
		if filter := u.engine.FilterText(c.Field); filter != "" {
			label += " [" + filter + "]"
		}
		style := headerStyle
		if ci == u.cursorCol {
			style = style.Reverse(true)
		}
		u.drawText(x, 0, u.colWidth(c), label, style)
		x += u.colWidth(c) + 1
	}

	for ri, rec := range rows {
		style := tcell.StyleDefault
		if u.engine.SelectionMode() != selection.ModeNone && contains(u.engine.SelectedIndices(), ri) {
			style = selectedStyle
		}
		x = 0
		for ci, c := range cols {
			cell := u.formatters.Format(c.Field, rec[c.Field])
			s := style
			if ri == u.cursorRow && ci == u.cursorCol {
				s = cursorStyle.Reverse(true)
			}
			u.drawText(x, ri+1, u.colWidth(c), cell, s)
			x += u.colWidth(c) + 1
		}
	}

	u.drawStatus(len(rows))
	u.screen.Show()
}

func (u *demoUI) drawStatus(rowCount int) {
	_, h := u.screen.Size()
	line := u.status
	switch u.mode {
	case modeFilter:
		line = fmt.Sprintf("filter %s: %s_", u.currentField(), u.entry)
	case modeEdit:
		line = fmt.Sprintf("edit %s: %s_", u.currentField(), u.entry)
	default:
		if line == "" {
			line = fmt.Sprintf("%d rows | gen %d | s sort  / filter  e edit  space select  a all  c clear  h hide  </> move  w save  q quit",
				rowCount, u.engine.Generation())
		}
	}
	u.drawText(0, h-1, len(line), line, tcell.StyleDefault.Dim(true))
	u.status = ""
}

func (u *demoUI) drawText(x, y, width int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		if i >= width {
			break
		}
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

// colWidth resolves a column's width to cells; flex columns get a
// fixed share in this demo since the engine leaves geometry to the
// renderer.
func (u *demoUI) colWidth(c column.Column) int {
	if c.Width.IsFlex() {
		return 16
	}
	// The engine's pixel widths map to roughly 8px-wide cells.
	w := c.Width.Pixels() / 8
	if w < 4 {
		w = 4
	}
	return w
}

func sortMark(d view.Descriptor) string {
	if d.Direction == view.Descending {
		return "v"
	}
	return "^"
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
