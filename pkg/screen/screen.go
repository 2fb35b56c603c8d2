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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/tedit/pkg/commander"
	"github.com/timburks/tedit/pkg/layout"
	tedit "github.com/timburks/tedit/pkg/types"
)

// The Screen draws the state of a Commander and its editor.
type Screen struct {
	title string
}

func NewScreen(title string) (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{title: title}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(c *commander.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	var screenSize tedit.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	c.SetSize(screenSize)
	l := c.GetLayout()

	e := c.GetEditor()
	e.Scroll()
	cursor := e.Render(l.Text.Origin, s)

	fieldCursor := s.renderControlStrip(c, l)
	for x := 0; x < l.Screen.Cols; x++ {
		termbox.SetCell(x, 1, '─', termbox.ColorDefault, termbox.ColorDefault)
	}
	s.renderMessageBar(c, l)

	switch {
	case c.GetNotice() != "":
		s.renderNotice(c.GetNotice(), l)
		termbox.HideCursor()
	case c.GetFocus() == tedit.FocusText:
		termbox.SetCursor(cursor.Col, cursor.Row)
	case c.GetFocus() == tedit.FocusFilename:
		termbox.SetCursor(fieldCursor.Col, fieldCursor.Row)
	default:
		termbox.HideCursor()
	}
	termbox.Flush()
}

// SetCell draws into the terminal; the editor renders through it.
func (s *Screen) SetCell(col int, row int, c rune, fg tedit.Color, bg tedit.Color) {
	termbox.SetCell(col, row, c, attribute(fg), attribute(bg))
}

func attribute(c tedit.Color) termbox.Attribute {
	a := termbox.Attribute(c & 0xffff)
	if c&tedit.AttrBold != 0 {
		a |= termbox.AttrBold
	}
	if c&tedit.AttrReverse != 0 {
		a |= termbox.AttrReverse
	}
	return a
}

// draw a string and return the column after it
func (s *Screen) print(col, row, limit int, text string, fg, bg tedit.Color) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			w = 1
		}
		if col+w > limit {
			break
		}
		s.SetCell(col, row, ch, fg, bg)
		col += w
	}
	return col
}

func focused(c *commander.Commander, focus int) tedit.Color {
	if c.GetFocus() == focus && c.GetNotice() == "" {
		return tedit.AttrReverse
	}
	return tedit.ColorDefault
}

// draw the filename field and buttons and return the field cursor position
func (s *Screen) renderControlStrip(c *commander.Commander, l layout.Layout) tedit.Point {
	cols := l.Screen.Cols
	s.print(0, 0, cols, layout.Label, tedit.AttrBold, tedit.ColorDefault)
	s.print(l.Field.Origin.Col-1, 0, cols, "[", tedit.ColorDefault, tedit.ColorDefault)

	field := c.GetControl().Field
	text := []rune(field.Text())
	start := layout.FieldScroll(field.Cursor(), l.Field.Size.Cols)
	limit := l.Field.Origin.Col + l.Field.Size.Cols
	if limit > cols {
		limit = cols
	}
	cursor := tedit.Point{Row: 0, Col: l.Field.Origin.Col}
	x := l.Field.Origin.Col
	for i := start; i <= len(text) && x < limit; i++ {
		if i == field.Cursor() {
			cursor.Col = x
		}
		if i == len(text) {
			break
		}
		x = s.print(x, 0, limit, string(text[i]), tedit.ColorDefault, tedit.ColorDefault)
	}
	for ; x < limit; x++ {
		s.SetCell(x, 0, '_', tedit.ColorDefault, tedit.ColorDefault)
	}

	s.print(limit, 0, cols, "]", tedit.ColorDefault, tedit.ColorDefault)
	s.print(l.Save.Origin.Col, 0, cols, layout.SaveButton, focused(c, tedit.FocusSave), tedit.ColorDefault)
	s.print(l.Load.Origin.Col, 0, cols, layout.LoadButton, focused(c, tedit.FocusLoad), tedit.ColorDefault)
	return cursor
}

func (s *Screen) renderMessageBar(c *commander.Commander, l layout.Layout) {
	row := l.Status.Origin.Row
	cursor := c.GetEditor().GetCursor()
	finalText := fmt.Sprintf(" %d:%d ", cursor.Row+1, cursor.Col+1)
	text := " " + s.title
	if message := c.GetMessage(); message != "" {
		text += " - " + message
	}
	for runewidth.StringWidth(text) < l.Screen.Cols-runewidth.StringWidth(finalText) {
		text += " "
	}
	text += finalText
	s.print(0, row, l.Screen.Cols, text, tedit.AttrReverse, tedit.ColorDefault)
}

func (s *Screen) renderNotice(message string, l layout.Layout) {
	box, ok := l.Notice(message)
	for i := 0; i < box.Size.Rows; i++ {
		for j := 0; j < box.Size.Cols; j++ {
			var ch rune = ' '
			switch {
			case (i == 0 || i == box.Size.Rows-1) && (j == 0 || j == box.Size.Cols-1):
				ch = '+'
			case i == 0 || i == box.Size.Rows-1:
				ch = '-'
			case j == 0 || j == box.Size.Cols-1:
				ch = '|'
			}
			s.SetCell(box.Origin.Col+j, box.Origin.Row+i, ch, tedit.ColorDefault, tedit.ColorDefault)
		}
	}
	right := box.Origin.Col + box.Size.Cols - 1
	s.print(box.Origin.Col+2, box.Origin.Row+1, right, message, tedit.AttrBold, tedit.ColorDefault)
	s.print(ok.Origin.Col, ok.Origin.Row, right, layout.OKButton, tedit.AttrReverse, tedit.ColorDefault)
}

// GetNextEvent waits for the next terminal event.
func (s *Screen) GetNextEvent() *tedit.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &tedit.Event{Type: tedit.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventMouse:
		return &tedit.Event{Type: tedit.EventMouse, Key: key(event.Key), MouseX: event.MouseX, MouseY: event.MouseY}
	case termbox.EventResize:
		termbox.Flush()
		return &tedit.Event{Type: tedit.EventResize, Width: event.Width, Height: event.Height}
	default:
		return &tedit.Event{Type: tedit.EventError}
	}
}

func key(k termbox.Key) tedit.Key {
	switch k {
	case termbox.KeyArrowDown:
		return tedit.KeyArrowDown
	case termbox.KeyArrowLeft:
		return tedit.KeyArrowLeft
	case termbox.KeyArrowRight:
		return tedit.KeyArrowRight
	case termbox.KeyArrowUp:
		return tedit.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return tedit.KeyBackspace
	case termbox.KeyDelete:
		return tedit.KeyDelete
	case termbox.KeyEnd:
		return tedit.KeyEnd
	case termbox.KeyEnter:
		return tedit.KeyEnter
	case termbox.KeyEsc:
		return tedit.KeyEsc
	case termbox.KeyHome:
		return tedit.KeyHome
	case termbox.KeyPgdn:
		return tedit.KeyPgdn
	case termbox.KeyPgup:
		return tedit.KeyPgup
	case termbox.KeySpace:
		return tedit.KeySpace
	case termbox.KeyTab:
		return tedit.KeyTab
	case termbox.KeyCtrlO:
		return tedit.KeyCtrlO
	case termbox.KeyCtrlQ:
		return tedit.KeyCtrlQ
	case termbox.KeyCtrlS:
		return tedit.KeyCtrlS
	case termbox.MouseLeft:
		return tedit.KeyMouseLeft
	default:
		return tedit.KeyUnsupported
	}
}
