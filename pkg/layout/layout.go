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

// Package layout computes where each part of the editor window is drawn.
// The control strip is on the top line, followed by a separator, the text
// area and a message bar on the last line. A notice is drawn as a box in
// the middle of the window.
package layout

import (
	"github.com/mattn/go-runewidth"

	tedit "github.com/timburks/tedit/pkg/types"
)

const (
	Label      = "File: "
	SaveButton = "[ Save ]"
	LoadButton = "[ Load ]"
	OKButton   = "[ OK ]"

	maxFieldWidth = 40
)

// Elements that can be hit by a mouse click
const (
	ElementNone = iota
	ElementField
	ElementSave
	ElementLoad
	ElementText
)

type Layout struct {
	Screen tedit.Size
	Field  tedit.Rect // editable part of the filename field, inside its brackets
	Save   tedit.Rect
	Load   tedit.Rect
	Text   tedit.Rect
	Status tedit.Rect
}

func New(screen tedit.Size) Layout {
	labelWidth := runewidth.StringWidth(Label)
	saveWidth := runewidth.StringWidth(SaveButton)
	loadWidth := runewidth.StringWidth(LoadButton)

	// label [field] save load
	fieldWidth := screen.Cols - labelWidth - 2 - 1 - saveWidth - 1 - loadWidth
	if fieldWidth > maxFieldWidth {
		fieldWidth = maxFieldWidth
	}
	if fieldWidth < 1 {
		fieldWidth = 1
	}

	var l Layout
	l.Screen = screen
	l.Field = tedit.Rect{
		Origin: tedit.Point{Row: 0, Col: labelWidth + 1},
		Size:   tedit.Size{Rows: 1, Cols: fieldWidth},
	}
	l.Save = tedit.Rect{
		Origin: tedit.Point{Row: 0, Col: l.Field.Origin.Col + fieldWidth + 2},
		Size:   tedit.Size{Rows: 1, Cols: saveWidth},
	}
	l.Load = tedit.Rect{
		Origin: tedit.Point{Row: 0, Col: l.Save.Origin.Col + saveWidth + 1},
		Size:   tedit.Size{Rows: 1, Cols: loadWidth},
	}
	textRows := screen.Rows - 3
	if textRows < 0 {
		textRows = 0
	}
	l.Text = tedit.Rect{
		Origin: tedit.Point{Row: 2, Col: 0},
		Size:   tedit.Size{Rows: textRows, Cols: screen.Cols},
	}
	l.Status = tedit.Rect{
		Origin: tedit.Point{Row: screen.Rows - 1, Col: 0},
		Size:   tedit.Size{Rows: 1, Cols: screen.Cols},
	}
	return l
}

// Hit returns the element under p.
func (l Layout) Hit(p tedit.Point) int {
	switch {
	case l.Field.Contains(p):
		return ElementField
	case l.Save.Contains(p):
		return ElementSave
	case l.Load.Contains(p):
		return ElementLoad
	case l.Text.Contains(p):
		return ElementText
	default:
		return ElementNone
	}
}

// Notice returns the box for a notice showing message and its OK button.
func (l Layout) Notice(message string) (box tedit.Rect, ok tedit.Rect) {
	width := runewidth.StringWidth(message) + 4
	okWidth := runewidth.StringWidth(OKButton)
	if width < okWidth+4 {
		width = okWidth + 4
	}
	if width > l.Screen.Cols {
		width = l.Screen.Cols
	}
	height := 5
	if height > l.Screen.Rows {
		height = l.Screen.Rows
	}
	box = tedit.Rect{
		Origin: tedit.Point{Row: (l.Screen.Rows - height) / 2, Col: (l.Screen.Cols - width) / 2},
		Size:   tedit.Size{Rows: height, Cols: width},
	}
	ok = tedit.Rect{
		Origin: tedit.Point{Row: box.Origin.Row + height - 2, Col: box.Origin.Col + (width-okWidth)/2},
		Size:   tedit.Size{Rows: 1, Cols: okWidth},
	}
	return box, ok
}

// FieldScroll returns the index of the first character shown in a field
// of the given width so that the cursor stays visible.
func FieldScroll(cursor, width int) int {
	if cursor >= width {
		return cursor - width + 1
	}
	return 0
}

// FieldIndexAt returns the index of the character in text under cell x of
// a field showing text from index start. Cells past the end map to the end.
func FieldIndexAt(text string, start, x int) int {
	runes := []rune(text)
	if start > len(runes) {
		start = len(runes)
	}
	cell := 0
	for i := start; i < len(runes); i++ {
		w := runewidth.RuneWidth(runes[i])
		if w == 0 {
			w = 1
		}
		if cell+w > x {
			return i
		}
		cell += w
	}
	return len(runes)
}
