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

// Package control implements the save/load control strip: a filename
// field and two triggers. When a trigger fires with a non-empty filename,
// every registered listener is notified in the order it was added.
package control

import (
	tedit "github.com/timburks/tedit/pkg/types"
)

// EmptyFilenameNotice is shown when a trigger fires with no filename.
const EmptyFilenameNotice = "File name is empty!"

// The Control owns the filename field and the listeners for its triggers.
type Control struct {
	Field     *Field
	listeners []tedit.Listener
	notifier  tedit.Notifier
}

func NewControl(n tedit.Notifier) *Control {
	return &Control{Field: NewField(), notifier: n}
}

// AddListener registers l to be notified of save and load requests.
func (c *Control) AddListener(l tedit.Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Control) Filename() string {
	return c.Field.Text()
}

func (c *Control) SetFilename(name string) {
	c.Field.SetText(name)
}

// Save notifies listeners that the buffer should be written to the named file.
func (c *Control) Save() error {
	return c.trigger(tedit.ActionSave)
}

// Load notifies listeners that the named file should be read.
func (c *Control) Load() error {
	return c.trigger(tedit.ActionLoad)
}

// The first listener error stops the notification and is returned.
func (c *Control) trigger(action tedit.Action) error {
	filename := c.Filename()
	if filename == "" {
		if c.notifier != nil {
			c.notifier.ShowNotice(EmptyFilenameNotice)
		}
		return nil
	}
	for _, l := range c.listeners {
		if err := l.OnClick(filename, action); err != nil {
			return err
		}
	}
	return nil
}
