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
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/tedit/pkg/fsys"
	tedit "github.com/timburks/tedit/pkg/types"
)

const tabWidth = 8

// The Editor owns the text being edited and the state of the text area
// that displays it. It listens for save and load requests.
type Editor struct {
	Cursor tedit.Point // cursor position
	Offset tedit.Size  // display offset
	buffer *Buffer
	size   tedit.Size // size of editing area
	fs     fsys.FS
}

func NewEditor(fs fsys.FS) *Editor {
	return &Editor{buffer: NewBuffer(), fs: fs}
}

// OnClick performs a save or load of filename.
// Save errors are logged and dropped; load errors other than a missing
// file are returned and leave the buffer untouched.
func (e *Editor) OnClick(filename string, action tedit.Action) error {
	switch action {
	case tedit.ActionLoad:
		return e.LoadFile(filename)
	case tedit.ActionSave:
		e.SaveFile(filename)
		return nil
	default:
		return fmt.Errorf("unexpected action %d", int(action))
	}
}

// LoadFile replaces the buffer with the contents of path.
// A missing file clears the buffer.
func (e *Editor) LoadFile(path string) error {
	b, err := e.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		e.SetText("")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	e.SetText(string(b))
	return nil
}

// SaveFile writes the buffer to path, replacing any existing contents.
func (e *Editor) SaveFile(path string) {
	err := e.fs.WriteFile(path, e.buffer.Bytes(), 0o644)
	if err != nil {
		log.Printf("saving %s: %+v", path, err)
	}
}

func (e *Editor) Text() string {
	return string(e.buffer.Bytes())
}

// SetText replaces the buffer and resets the view to the top.
func (e *Editor) SetText(text string) {
	e.buffer.LoadBytes([]byte(text))
	e.Cursor = tedit.Point{}
	e.Offset = tedit.Size{}
}

func (e *Editor) GetBuffer() *Buffer {
	return e.buffer
}

func (e *Editor) GetCursor() tedit.Point {
	return e.Cursor
}

// SetCursor moves the cursor, keeping it inside the text.
func (e *Editor) SetCursor(cursor tedit.Point) {
	e.Cursor = cursor
	e.keepCursorInText()
}

func (e *Editor) GetOffset() tedit.Size {
	return e.Offset
}

func (e *Editor) SetSize(size tedit.Size) {
	e.size = size
}

func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	col := e.DisplayColumn(e.Cursor.Row, e.Cursor.Col)
	if col < e.Offset.Cols {
		e.Offset.Cols = col
	}
	if col-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = col - e.size.Cols + 1
	}
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case tedit.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = e.buffer.GetRowLength(e.Cursor.Row)
		}
	case tedit.MoveRight:
		if e.Cursor.Col < e.buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		} else if e.Cursor.Row < e.buffer.GetRowCount()-1 {
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	case tedit.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case tedit.MoveDown:
		if e.Cursor.Row < e.buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	e.keepCursorInText()
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.buffer.GetRowLength(e.Cursor.Row)
}

func (e *Editor) PageUp() {
	e.Cursor.Row -= e.pageSize()
	e.keepCursorInText()
}

func (e *Editor) PageDown() {
	e.Cursor.Row += e.pageSize()
	e.keepCursorInText()
}

func (e *Editor) pageSize() int {
	if e.size.Rows > 1 {
		return e.size.Rows - 1
	}
	return 1
}

// don't go outside the buffer or past the end of the current line
func (e *Editor) keepCursorInText() {
	if e.Cursor.Row >= e.buffer.GetRowCount() {
		e.Cursor.Row = e.buffer.GetRowCount() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	if rowLength := e.buffer.GetRowLength(e.Cursor.Row); e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

// InsertChar inserts c at the cursor. A newline splits the current row.
func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.buffer.SplitRow(e.Cursor.Row, e.Cursor.Col)
		e.Cursor.Row++
		e.Cursor.Col = 0
		return
	}
	e.buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// BackspaceChar deletes the character before the cursor.
// At the start of a row it joins the row to the one above.
func (e *Editor) BackspaceChar() {
	if e.Cursor.Col > 0 {
		e.Cursor.Col--
		e.buffer.DeleteCharacter(e.Cursor.Row, e.Cursor.Col)
		return
	}
	if e.Cursor.Row > 0 {
		e.Cursor.Row--
		e.Cursor.Col = e.buffer.GetRowLength(e.Cursor.Row)
		e.buffer.JoinRow(e.Cursor.Row)
	}
}

// DeleteChar deletes the character under the cursor.
func (e *Editor) DeleteChar() {
	e.buffer.DeleteCharacter(e.Cursor.Row, e.Cursor.Col)
}

// cellWidth returns the number of screen cells taken by c drawn at cell x.
func cellWidth(c rune, x int) int {
	switch {
	case c == '\t':
		return tabWidth - x%tabWidth
	case c < ' ' || c == 0x7f:
		return 1
	}
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	return 1
}

// DisplayColumn returns the screen cell where the character at row, col starts.
func (e *Editor) DisplayColumn(row, col int) int {
	r := e.buffer.GetRow(row)
	if r == nil {
		return 0
	}
	x := 0
	for j := 0; j < col && j < r.Length(); j++ {
		x += cellWidth(r.Text[j], x)
	}
	return x
}

// ColumnAt returns the index of the character in row covering screen cell x.
// Cells past the end of the row map to the end of the row.
func (e *Editor) ColumnAt(row, x int) int {
	r := e.buffer.GetRow(row)
	if r == nil {
		return 0
	}
	cell := 0
	for j := 0; j < r.Length(); j++ {
		w := cellWidth(r.Text[j], cell)
		if cell+w > x {
			return j
		}
		cell += w
	}
	return r.Length()
}

// draw the text area at origin with the current offset and
// return the screen position of the cursor.
// Offset.Cols counts screen cells, not characters.
func (e *Editor) Render(origin tedit.Point, display tedit.Display) tedit.Point {
	cursor := origin
	left := e.Offset.Cols
	right := e.Offset.Cols + e.size.Cols
	for i := 0; i < e.size.Rows; i++ {
		row := e.buffer.GetRow(i + e.Offset.Rows)
		if row == nil {
			display.SetCell(origin.Col, origin.Row+i, '~', tedit.ColorBlue, tedit.ColorDefault)
			continue
		}
		x := 0
		for j := 0; j <= row.Length(); j++ {
			if i+e.Offset.Rows == e.Cursor.Row && j == e.Cursor.Col && x >= left && x < right {
				cursor = tedit.Point{Row: origin.Row + i, Col: origin.Col + x - left}
			}
			if j == row.Length() || x >= right {
				break
			}
			c := row.Text[j]
			w := cellWidth(c, x)
			switch {
			case c == '\t':
				for k := x; k < x+w; k++ {
					if k >= left && k < right {
						display.SetCell(origin.Col+k-left, origin.Row+i, ' ', tedit.ColorDefault, tedit.ColorDefault)
					}
				}
			case c < ' ' || c == 0x7f:
				if x >= left {
					display.SetCell(origin.Col+x-left, origin.Row+i, '?', tedit.ColorDefault, tedit.ColorDefault)
				}
			default:
				// wide characters cut by either edge are left blank
				if x >= left && x+w <= right {
					display.SetCell(origin.Col+x-left, origin.Row+i, c, tedit.ColorDefault, tedit.ColorDefault)
				}
			}
			x += w
		}
	}
	return cursor
}
