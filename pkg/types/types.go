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
package types

// Actions requested by the save/load control
type Action int

const (
	ActionSave Action = iota
	ActionLoad
)

func (a Action) String() string {
	switch a {
	case ActionSave:
		return "save"
	case ActionLoad:
		return "load"
	default:
		return "unknown"
	}
}

// A Listener is notified when the save or load trigger fires.
type Listener interface {
	OnClick(filename string, action Action) error
}

// A Notifier presents a blocking notice to the user.
type Notifier interface {
	ShowNotice(message string)
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Focus targets, in tab order
const (
	FocusText     = 0
	FocusFilename = 1
	FocusSave     = 2
	FocusLoad     = 3
	FocusCount    = 4
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Contains returns true if p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.Origin.Row && p.Row < r.Origin.Row+r.Size.Rows &&
		p.Col >= r.Origin.Col && p.Col < r.Origin.Col+r.Size.Cols
}

type Color int

const (
	ColorDefault Color = 0
	ColorBlack   Color = 1
	ColorBlue    Color = 5
	ColorWhite   Color = 8
)

// Attributes combined with a Color
const (
	AttrBold    Color = 1 << 16
	AttrReverse Color = 1 << 17
)

// A Display receives the cells drawn by a component.
type Display interface {
	SetCell(col int, row int, c rune, fg Color, bg Color)
}
