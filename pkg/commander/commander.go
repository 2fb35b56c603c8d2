//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"fmt"
	"io"

	"github.com/timburks/tedit/pkg/control"
	"github.com/timburks/tedit/pkg/editor"
	"github.com/timburks/tedit/pkg/layout"
	tedit "github.com/timburks/tedit/pkg/types"
)

// The Commander converts user input into commands to the editor and control.
type Commander struct {
	editor     *editor.Editor
	control    *control.Control
	layout     layout.Layout
	focus      int       // part of the window receiving keys
	notice     string    // notice being displayed, blocks other input
	lastNotice string    // most recent notice, kept for scripts
	message    string    // status message
	batch      io.Writer // if non-nil, notices are written here instead of displayed
	running    bool
}

// NewCommander creates a control strip for e and registers e to handle
// its save and load requests.
func NewCommander(e *editor.Editor) *Commander {
	c := &Commander{editor: e, focus: tedit.FocusFilename, running: true}
	c.control = control.NewControl(c)
	c.control.AddListener(e)
	return c
}

// SetBatch sends notices to w; used when running scripts without a screen.
func (c *Commander) SetBatch(w io.Writer) {
	c.batch = w
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) GetControl() *control.Control {
	return c.control
}

func (c *Commander) GetLayout() layout.Layout {
	return c.layout
}

func (c *Commander) GetFocus() int {
	return c.focus
}

func (c *Commander) GetNotice() string {
	return c.notice
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) Quit() {
	c.running = false
}

// ShowNotice displays a message that must be dismissed before anything else happens.
func (c *Commander) ShowNotice(message string) {
	c.lastNotice = message
	if c.batch != nil {
		fmt.Fprintln(c.batch, message)
		return
	}
	c.notice = message
}

// SetSize lays out the window for a screen of the given size.
func (c *Commander) SetSize(size tedit.Size) {
	if size == c.layout.Screen {
		return
	}
	c.layout = layout.New(size)
	c.editor.SetSize(c.layout.Text.Size)
}

// Save fires the save trigger.
func (c *Commander) Save() error {
	return c.trigger("save", c.control.Save)
}

// Load fires the load trigger.
func (c *Commander) Load() error {
	return c.trigger("load", c.control.Load)
}

func (c *Commander) trigger(name string, fire func() error) error {
	filename := c.control.Filename()
	if err := fire(); err != nil {
		return err
	}
	if filename != "" {
		c.message = name + " " + filename
	}
	return nil
}

// ProcessEvent handles one input event. Errors from save and load
// listeners are returned unchanged.
func (c *Commander) ProcessEvent(event *tedit.Event) error {
	switch event.Type {
	case tedit.EventKey:
		return c.processKey(event)
	case tedit.EventMouse:
		return c.processMouse(event)
	case tedit.EventResize:
		c.SetSize(tedit.Size{Rows: event.Height, Cols: event.Width})
		return nil
	default:
		return nil
	}
}

func isSpace(event *tedit.Event) bool {
	return event.Key == tedit.KeySpace || (event.Key == tedit.KeyUnsupported && event.Ch == ' ')
}

func (c *Commander) processKey(event *tedit.Event) error {
	if event.Key == tedit.KeyCtrlQ {
		c.Quit()
		return nil
	}
	if c.notice != "" {
		if event.Key == tedit.KeyEnter || event.Key == tedit.KeyEsc || isSpace(event) {
			c.notice = ""
		}
		return nil
	}
	switch event.Key {
	case tedit.KeyCtrlS:
		return c.Save()
	case tedit.KeyCtrlO:
		return c.Load()
	case tedit.KeyTab:
		c.focus = (c.focus + 1) % tedit.FocusCount
		return nil
	}
	switch c.focus {
	case tedit.FocusText:
		c.processTextKey(event)
	case tedit.FocusFilename:
		return c.processFieldKey(event)
	case tedit.FocusSave:
		if event.Key == tedit.KeyEnter || isSpace(event) {
			return c.Save()
		}
	case tedit.FocusLoad:
		if event.Key == tedit.KeyEnter || isSpace(event) {
			return c.Load()
		}
	}
	return nil
}

func (c *Commander) processTextKey(event *tedit.Event) {
	e := c.editor
	switch event.Key {
	case tedit.KeyArrowUp:
		e.MoveCursor(tedit.MoveUp)
	case tedit.KeyArrowDown:
		e.MoveCursor(tedit.MoveDown)
	case tedit.KeyArrowLeft:
		e.MoveCursor(tedit.MoveLeft)
	case tedit.KeyArrowRight:
		e.MoveCursor(tedit.MoveRight)
	case tedit.KeyHome:
		e.MoveToBeginningOfLine()
	case tedit.KeyEnd:
		e.MoveToEndOfLine()
	case tedit.KeyPgup:
		e.PageUp()
	case tedit.KeyPgdn:
		e.PageDown()
	case tedit.KeyBackspace:
		e.BackspaceChar()
	case tedit.KeyDelete:
		e.DeleteChar()
	case tedit.KeyEnter:
		e.InsertChar('\n')
	case tedit.KeySpace:
		e.InsertChar(' ')
	default:
		if event.Ch != 0 {
			e.InsertChar(event.Ch)
		}
	}
}

func (c *Commander) processFieldKey(event *tedit.Event) error {
	f := c.control.Field
	switch event.Key {
	case tedit.KeyArrowLeft:
		f.MoveLeft()
	case tedit.KeyArrowRight:
		f.MoveRight()
	case tedit.KeyHome:
		f.MoveHome()
	case tedit.KeyEnd:
		f.MoveEnd()
	case tedit.KeyBackspace:
		f.BackspaceChar()
	case tedit.KeyDelete:
		f.DeleteChar()
	case tedit.KeyEnter:
		return c.Load()
	case tedit.KeySpace:
		f.InsertChar(' ')
	default:
		if event.Ch != 0 {
			f.InsertChar(event.Ch)
		}
	}
	return nil
}

func (c *Commander) processMouse(event *tedit.Event) error {
	if event.Key != tedit.KeyMouseLeft {
		return nil
	}
	p := tedit.Point{Row: event.MouseY, Col: event.MouseX}
	if c.notice != "" {
		if _, ok := c.layout.Notice(c.notice); ok.Contains(p) {
			c.notice = ""
		}
		return nil
	}
	switch c.layout.Hit(p) {
	case layout.ElementField:
		c.focus = tedit.FocusFilename
		f := c.control.Field
		start := layout.FieldScroll(f.Cursor(), c.layout.Field.Size.Cols)
		f.SetCursor(layout.FieldIndexAt(f.Text(), start, p.Col-c.layout.Field.Origin.Col))
	case layout.ElementSave:
		c.focus = tedit.FocusSave
		return c.Save()
	case layout.ElementLoad:
		c.focus = tedit.FocusLoad
		return c.Load()
	case layout.ElementText:
		c.focus = tedit.FocusText
		offset := c.editor.GetOffset()
		row := p.Row - c.layout.Text.Origin.Row + offset.Rows
		col := c.editor.ColumnAt(row, p.Col-c.layout.Text.Origin.Col+offset.Cols)
		c.editor.SetCursor(tedit.Point{Row: row, Col: col})
	}
	return nil
}
