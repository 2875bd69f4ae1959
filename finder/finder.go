// Package finder is an interactive fuzzy finder built on the similarity
// algorithms. Lines are ranked against the typed query as it changes.
package finder

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/bottlerocketlabs/similarity/algo"
	"github.com/bottlerocketlabs/similarity/algo/jarowinkler"
	"github.com/bottlerocketlabs/similarity/result"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// InputItem is an item of Stringer with a Score
type InputItem struct {
	item  fmt.Stringer
	Score float64
}

// NewInputItem wraps item with no score yet
func NewInputItem(item fmt.Stringer) InputItem {
	return InputItem{item: item}
}

// String is the text of the wrapped item
func (i InputItem) String() string { return i.item.String() }

// InputItems in display order
type InputItems []InputItem

// Content holds the data for the fuzzy finder
type Content struct {
	algorithm algo.Algorithm
	order     result.Order
	tview.TableContentReadOnly
	data      InputItems
	live      InputItems
	ranked    bool
	limit     int
	cutoff    float64
	hasCutoff bool
	smartCase bool
	verbose   bool
}

// SupplyNewContent creates a new Content from a slice of Stringer types
func SupplyNewContent(input []fmt.Stringer) *Content {
	data := InputItems{}
	for _, item := range input {
		data = append(data, NewInputItem(item))
	}
	return newContent(data)
}

// ReadNewContent creates a new Content from new line separated input
func ReadNewContent(input io.Reader) (*Content, error) {
	data := InputItems{}
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		data = append(data, NewInputItem(NewStr(scanner.Text())))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return newContent(data), nil
}

func newContent(data InputItems) *Content {
	return &Content{
		algorithm: jarowinkler.New(),
		data:      data,
		live:      data,
	}
}

// SetAlgorithm sets the algorithm for scoring the query against each line
func (c *Content) SetAlgorithm(a algo.Algorithm) {
	c.algorithm = a
}

// SetOrder overrides the ranking direction of the algorithm
func (c *Content) SetOrder(order result.Order) {
	c.order = order
}

// SetLimit shows at most limit lines. Zero shows all of them.
func (c *Content) SetLimit(limit int) {
	c.limit = limit
}

// SetCutoff hides lines scoring worse than cutoff
func (c *Content) SetCutoff(cutoff float64) {
	c.cutoff = cutoff
	c.hasCutoff = true
}

// SetSmartCase compares case-insensitively unless the query has an upper case letter
func (c *Content) SetSmartCase() {
	c.smartCase = true
}

// SetVerbose outputs the scores along with the line. useful for debugging
func (c *Content) SetVerbose() {
	c.verbose = true
}

// GetCell shows the line at row, with its score when verbose and ranked
func (c *Content) GetCell(row, column int) *tview.TableCell {
	if row < 0 || row >= c.GetRowCount() {
		return nil
	}
	r := c.live[row]
	if c.verbose && c.ranked {
		return tview.NewTableCell(fmt.Sprintf("%s [%f]", r.item.String(), r.Score))
	}
	return tview.NewTableCell(r.item.String())
}

// GetColumnCount is always 1
func (c *Content) GetColumnCount() int {
	return 1
}

// GetRowCount is the number of lines shown
func (c *Content) GetRowCount() int {
	return len(c.live)
}

// Live returns the lines currently shown, best first
func (c *Content) Live() InputItems {
	out := make(InputItems, len(c.live))
	copy(out, c.live)
	return out
}

// Ranked reports whether the shown lines carry scores from the last Filter
func (c *Content) Ranked() bool {
	return c.ranked
}

// Filter scores every line against query and keeps them ranked best first.
// Lines worse than the cutoff are not shown. An empty query shows the lines
// in input order, unscored.
func (c *Content) Filter(query string) {
	if query == "" {
		c.live = c.data
		if c.limit > 0 && c.limit < len(c.data) {
			c.live = c.data[:c.limit]
		}
		c.ranked = false
		return
	}
	c.ranked = true

	fold := c.smartCase && !HasUpper(query)
	candidates := make([]string, len(c.data))
	// lines with equal text are interchangeable, hand them out in input order
	byText := make(map[string]InputItems, len(c.data))
	for i, item := range c.data {
		text := item.item.String()
		if fold {
			text = strings.ToLower(text)
		}
		candidates[i] = text
		byText[text] = append(byText[text], item)
	}

	set := c.algorithm.CompareOneToMany(query, candidates, c.order)
	matches, err := set.BestMatchesFor(query, c.limit)
	if err != nil {
		c.live = nil
		return
	}

	live := make(InputItems, 0, len(matches))
	for _, m := range matches {
		if c.hasCutoff && set.Order().Better(c.cutoff, m.Score) {
			continue
		}
		queue := byText[m.Candidate]
		item := queue[0]
		byText[m.Candidate] = queue[1:]
		item.Score = m.Score
		live = append(live, item)
	}
	c.live = live
}

// HasUpper reports whether str contains an upper case letter
func HasUpper(str string) bool {
	for _, r := range str {
		if unicode.IsUpper(r) && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Str is a plain string line
type Str struct {
	content string
}

// NewStr returns a Stringer type from a string
func NewStr(content string) Str {
	return Str{content: content}
}

// String returns the line
func (s Str) String() string { return s.content }

// Find ranks each line from provided content against the query
// and provides a user-interface to select an option
func Find(query string, content *Content) (string, error) {
	return FindWithScreen(nil, query, content)
}

// FindWithScreen is the same as Find, but you provide the Screen.
// The screen must already be initialised.
func FindWithScreen(screen tcell.Screen, query string, content *Content) (string, error) {
	app := tview.NewApplication()
	if screen != nil {
		app.SetScreen(screen)
	}
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetContent(content)

	inputField := tview.NewInputField().SetLabel("> ").SetChangedFunc(func(text string) {
		content.Filter(text)
		table.ScrollToBeginning().Select(0, 0)
	})
	tableInputSend := table.InputHandler()
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyEnter, tcell.KeyEscape:
			tableInputSend(event, nil)
			return nil
		}
		return event
	})
	inputField.SetText(query)
	grid := tview.NewGrid().
		SetRows(0, 1).
		SetColumns(0).
		SetBorders(false).
		AddItem(table, 0, 0, 1, 1, 0, 0, false).
		AddItem(inputField, 1, 0, 1, 1, 0, 0, true)
	var output string
	table.Select(0, 0).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			app.Stop()
		}
	}).SetSelectedFunc(func(row int, column int) {
		if row < content.GetRowCount() {
			output = content.live[row].item.String()
		}
		app.Stop()
	})
	if err := app.SetRoot(grid, true).EnableMouse(true).Run(); err != nil {
		return "", err
	}
	return output, nil
}
