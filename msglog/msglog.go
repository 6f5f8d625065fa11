// Package msglog is the in-game message log shown below the map and in the history viewer
package msglog

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"codeberg.org/anaseto/gruid"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lixenwraith/vi-rogue/console"
)

// Category classifies a message for rendering
type Category uint8

const (
	Normal     Category = iota
	Impossible          // action could not be carried out, no turn spent
	Invalid             // malformed menu input
	Welcome
	PlayerAttack
	EnemyAttack
	PlayerDie
	EnemyDie
	HealthRecovered
)

// Color returns the foreground colour for a category
func (c Category) Color() gruid.Color {
	switch c {
	case Impossible:
		return console.Impossible
	case Invalid:
		return console.Invalid
	case Welcome:
		return console.WelcomeText
	case PlayerAttack:
		return console.PlayerAttack
	case EnemyAttack:
		return console.EnemyAttack
	case PlayerDie:
		return console.PlayerDie
	case EnemyDie:
		return console.EnemyDie
	case HealthRecovered:
		return console.HealthRecovered
	default:
		return console.White
	}
}

// Entry is one logged message
type Entry struct {
	Text     string
	Category Category
	Count    int       // consecutive duplicates folded into this entry
	Time     time.Time // when the entry was first added
}

// FullText is the display text including the duplicate counter
func (e Entry) FullText() string {
	if e.Count > 1 {
		return fmt.Sprintf("%s (x%d)", e.Text, e.Count)
	}
	return e.Text
}

// Log is an append-only ordered message list
// Accessed only from the input loop goroutine
type Log struct {
	entries []Entry
	now     func() time.Time
}

// New creates an empty log
func New() *Log {
	return &Log{now: time.Now}
}

// Add appends a message, folding it into the last entry when identical
func (l *Log) Add(text string, cat Category) {
	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.Text == text && last.Category == cat {
			last.Count++
			return
		}
	}
	l.entries = append(l.entries, Entry{Text: text, Category: cat, Count: 1, Time: l.now()})
}

// Len is the number of entries
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns every entry, oldest first
// The slice must not be modified
func (l *Log) Entries() []Entry {
	return l.entries
}

// Slice returns entries [lo, hi), clamped to the log bounds
func (l *Log) Slice(lo, hi int) []Entry {
	lo = max(lo, 0)
	hi = min(hi, len(l.entries))
	if lo >= hi {
		return nil
	}
	return l.entries[lo:hi]
}

// Render draws the whole log into the given region, newest message on the bottom line
func (l *Log) Render(con *console.Console, x, y, width, height int) {
	RenderEntries(con, x, y, width, height, l.entries)
}

// RenderEntries draws entries into the region, newest on the bottom line
// Messages are word wrapped; older lines scroll off the top
func RenderEntries(con *console.Console, x, y, width, height int, entries []Entry) {
	if width <= 0 || height <= 0 {
		return
	}
	yOffset := height - 1
	for i := len(entries) - 1; i >= 0; i-- {
		lines := wrap(entries[i].FullText(), width)
		for j := len(lines) - 1; j >= 0; j-- {
			con.Print(x, y+yOffset, lines[j], entries[i].Category.Color(), gruid.ColorDefault)
			yOffset--
			if yOffset < 0 {
				return
			}
		}
	}
}

// wrap splits text into lines no wider than width
// Words longer than width are hard-cut
func wrap(text string, width int) []string {
	var out []string
	for _, line := range strings.Split(wordwrap.String(text, width), "\n") {
		cut := false
		for runewidth.StringWidth(line) > width {
			head := runewidth.Truncate(line, width, "")
			if head == "" {
				// a rune wider than the line still takes a line of its own
				_, size := utf8.DecodeRuneInString(line)
				head = line[:size]
			}
			out = append(out, head)
			line = line[len(head):]
			cut = true
		}
		if line != "" || !cut {
			out = append(out, line)
		}
	}
	return out
}
