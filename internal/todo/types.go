// Package todo loads, mutates, and persists the todo record file.
package todo

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	// AppDirName is the per-user subdirectory holding the record file.
	AppDirName = "todo-app"
	// DataFileName is the record file name inside AppDirName.
	DataFileName = "todo.dat"
)

// recordSchema mirrors the strict decoding of the record format: both
// fields must be present with the right types. Plain json.Unmarshal would
// silently default a missing field, turning a corrupt line into a blank
// item instead of an error.
const recordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["label", "complete"],
  "properties": {
    "label": {"type": "string"},
    "complete": {"type": "boolean"}
  }
}`

var compiledRecordSchema = jsonschema.MustCompileString("record.json", recordSchema)

// Item is a single todo entry. Identity is positional: an item is
// addressed by its 1-based index in the current list order.
type Item struct {
	Label    string `json:"label"`
	Complete bool   `json:"complete"`
}

// List is the ordered todo list. On-disk order equals list order after
// every successful save.
type List []Item

// Load resolves the record file under dataDir, creating the application
// directory if needed, and parses the file into a List. A missing record
// file yields an empty list; an unparseable line is an error.
func Load(dataDir string) (string, List, error) {
	if dataDir == "" {
		return "", nil, errors.New("Cannot open data directory.")
	}

	dir := filepath.Join(dataDir, AppDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, fmt.Errorf("Could not create the data directory at %s: %v", dir, err)
	}

	path := filepath.Join(dir, DataFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, List{}, nil
		}
		return "", nil, fmt.Errorf("Could not read the data file: %v", err)
	}

	list, err := parseRecords(data)
	if err != nil {
		return "", nil, err
	}
	return path, list, nil
}

// parseRecords parses line-delimited JSON records. Empty lines are
// skipped.
func parseRecords(data []byte) (List, error) {
	list := List{}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("Could not parse line %q in data file: %v", line, err)
		}
		list = append(list, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Could not read the data file: %v", err)
	}
	return list, nil
}

// parseRecord decodes one record line and validates it against the
// record schema.
func parseRecord(line string) (Item, error) {
	var raw any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Item{}, err
	}
	if err := compiledRecordSchema.Validate(raw); err != nil {
		return Item{}, err
	}
	var item Item
	if err := json.Unmarshal([]byte(line), &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Save reserializes the whole list, one compact JSON record per line
// with a trailing newline each, and replaces the file at path. The write
// goes through a temp file in the same directory plus a rename so a
// crash mid-write cannot leave a half-written record file.
func Save(list List, path string) error {
	var buf strings.Builder
	for _, item := range list {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("Could not serialize the todo item into JSON format: %v", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), DataFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("Could not write to the data file: %v", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(buf.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("Could not write to the data file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("Could not write to the data file: %v", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("Could not write to the data file: %v", err)
	}
	return nil
}

// ParsePositions converts selectors into 1-based positions. A selector
// that is not a positive integer is an error; range checking happens at
// application time so out-of-range positions stay silent no-ops.
func ParsePositions(selectors []string) ([]int, error) {
	positions := make([]int, 0, len(selectors))
	for _, s := range selectors {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("Cannot convert position string %q into a valid position value: %v", s, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("Cannot convert position string %q into a valid position value: positions start at 1", s)
		}
		positions = append(positions, n)
	}
	return positions, nil
}

// Add appends each label as a new incomplete item, in the order given.
func (l *List) Add(labels []string) {
	for _, label := range labels {
		*l = append(*l, Item{Label: label, Complete: false})
	}
}

// Remove deletes items by selector. "all" clears the list;
// "checked"/"completed" drops the complete items; otherwise every
// selector is a 1-based position. Positions are applied in descending
// order so earlier removals cannot shift later ones, and a position
// repeated or out of range is ignored.
func (l *List) Remove(selectors []string) error {
	switch selectors[0] {
	case "all":
		*l = List{}
		return nil
	case "checked", "completed":
		kept := List{}
		for _, item := range *l {
			if !item.Complete {
				kept = append(kept, item)
			}
		}
		*l = kept
		return nil
	}

	positions, err := ParsePositions(selectors)
	if err != nil {
		return err
	}
	sort.Sort(sort.Reverse(sort.IntSlice(positions)))

	prev := 0
	for _, pos := range positions {
		// After the descending sort duplicates are adjacent; applying a
		// position twice would remove whichever item shifted into it.
		if pos == prev {
			continue
		}
		prev = pos
		if pos <= len(*l) {
			*l = append((*l)[:pos-1], (*l)[pos:]...)
		}
	}
	return nil
}

// Check marks items complete. The selector "all" marks every item;
// otherwise selectors are 1-based positions, out-of-range ignored.
func (l List) Check(selectors []string) error {
	return l.setComplete(selectors, true)
}

// Uncheck marks items incomplete, with the same selector rules as Check.
func (l List) Uncheck(selectors []string) error {
	return l.setComplete(selectors, false)
}

func (l List) setComplete(selectors []string, complete bool) error {
	if selectors[0] == "all" {
		for i := range l {
			l[i].Complete = complete
		}
		return nil
	}

	positions, err := ParsePositions(selectors)
	if err != nil {
		return err
	}
	for _, pos := range positions {
		if pos <= len(l) {
			l[pos-1].Complete = complete
		}
	}
	return nil
}

// Sort reorders the list so incomplete items come first. The sort is
// stable: ties keep their prior relative order. No other sort key is
// defined yet; callers may pass parameters but they are unused.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return !l[i].Complete && l[j].Complete
	})
}

// Edit replaces labels interactively. For each position (out-of-range
// ignored, in the order given) it prints the current label on out,
// prompts, and reads one replacement line from in. Only the trailing
// line terminator is stripped from the input.
func (l List) Edit(selectors []string, in *bufio.Reader, out io.Writer) error {
	positions, err := ParsePositions(selectors)
	if err != nil {
		return err
	}

	for _, pos := range positions {
		if pos > len(l) {
			continue
		}
		fmt.Fprintf(out, "Original: %s\n", l[pos-1].Label)
		fmt.Fprint(out, "New: ")

		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return fmt.Errorf("Could not read user input: %v", err)
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		l[pos-1].Label = line
	}
	return nil
}
