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
package control

// A Field is a single line of editable text with a cursor.
type Field struct {
	text   []rune
	cursor int
}

func NewField() *Field {
	return &Field{}
}

func (f *Field) Text() string {
	return string(f.text)
}

// SetText replaces the text and puts the cursor at its end.
func (f *Field) SetText(text string) {
	f.text = []rune(text)
	f.cursor = len(f.text)
}

func (f *Field) Cursor() int {
	return f.cursor
}

func (f *Field) SetCursor(col int) {
	if col < 0 {
		col = 0
	}
	if col > len(f.text) {
		col = len(f.text)
	}
	f.cursor = col
}

func (f *Field) InsertChar(c rune) {
	line := make([]rune, 0, len(f.text)+1)
	line = append(line, f.text[0:f.cursor]...)
	line = append(line, c)
	line = append(line, f.text[f.cursor:]...)
	f.text = line
	f.cursor++
}

func (f *Field) BackspaceChar() {
	if f.cursor == 0 {
		return
	}
	f.cursor--
	f.DeleteChar()
}

func (f *Field) DeleteChar() {
	if f.cursor < len(f.text) {
		f.text = append(f.text[0:f.cursor], f.text[f.cursor+1:]...)
	}
}

func (f *Field) MoveLeft() {
	f.SetCursor(f.cursor - 1)
}

func (f *Field) MoveRight() {
	f.SetCursor(f.cursor + 1)
}

func (f *Field) MoveHome() {
	f.cursor = 0
}

func (f *Field) MoveEnd() {
	f.cursor = len(f.text)
}
