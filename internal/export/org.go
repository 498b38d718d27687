package export

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/chee/do2org/internal/dayone"
	"github.com/chee/do2org/internal/output"
	"github.com/chee/do2org/internal/pandoc"
	"github.com/chee/do2org/internal/timetree"
)

// emptyTitle is the heading used for entries with no text to take one from.
const emptyTitle = "Empty"

// Render walks the time tree in calendar order and writes the outline
// document: years, then months, then days, then each day's entries with
// their properties block and converted body. conv handles body markup and
// is invoked once per entry that has text.
//
// On failure the document may be partially written; callers treat the
// output as invalid unless Render returns nil.
func Render(ctx context.Context, w io.Writer, root *timetree.Root, conv pandoc.Converter) error {
	ow := &outlineWriter{w: w}

	for _, y := range root.SortedYears() {
		year := root.Years[y]
		ow.printf("* %d\n", y)

		for _, m := range year.SortedMonths() {
			month := year.Months[m]
			name, err := monthName(m)
			if err != nil {
				return err
			}
			ow.printf("** %d-%d %s\n", y, m, name)

			for _, d := range month.SortedDays() {
				day := month.Days[d]
				weekday, err := dayName(y, m, d)
				if err != nil {
					return err
				}
				ow.printf("*** %d-%d-%d %s\n", y, m, d, weekday)

				for _, entry := range day.Entries {
					if err := renderEntry(ctx, ow, entry, conv); err != nil {
						return err
					}
				}
			}
		}
	}

	return ow.err
}

// renderEntry emits one entry: title heading, properties block, body.
func renderEntry(ctx context.Context, ow *outlineWriter, entry *dayone.Entry, conv pandoc.Converter) error {
	if ow.err != nil {
		return ow.err
	}

	firstPhotoLink, _ := dayone.FirstPhotoLink(entry.Photos)
	title, ok := entry.Title(firstPhotoLink)
	if !ok {
		title = emptyTitle
	}
	ow.printf("**** %s\n", title)

	props, err := entry.Properties()
	if err != nil {
		return err
	}
	ow.printf(":PROPERTIES:\n")
	for _, key := range sortedKeys(props) {
		ow.printf(":%s: %s\n", key, props[key])
	}
	ow.printf(":END:\n")

	body, err := entry.Body(ctx, conv, entry.Photos)
	if err != nil {
		return err
	}
	ow.printf("%s\n", body)

	return ow.err
}

// sortedKeys returns the property names in ascending order so the emitted
// block never depends on map iteration order.
func sortedKeys(props map[string]string) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// monthName returns the English month name for headings. Decoding already
// guarantees the 1-12 range; a value outside it means calendar handling
// broke upstream, which must halt the run rather than mislabel a heading.
func monthName(m time.Month) (string, error) {
	if m < time.January || m > time.December {
		return "", output.NewInvariantError(fmt.Sprintf("month %d outside 1-12", int(m)))
	}
	return m.String(), nil
}

// dayName returns the English weekday name for a bucket's own calendar
// date, so a day heading can never disagree with its grouping.
func dayName(year int, month time.Month, day int) (string, error) {
	if day < 1 || day > 31 {
		return "", output.NewInvariantError(fmt.Sprintf("day %d outside 1-31", day))
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday().String(), nil
}

// outlineWriter accumulates the first write failure so the render loops can
// stay free of per-line error checks. Derivation and conversion errors are
// still surfaced where they happen.
type outlineWriter struct {
	w   io.Writer
	err error
}

// printf writes one formatted chunk, dropping it if a write already failed.
func (ow *outlineWriter) printf(format string, args ...any) {
	if ow.err != nil {
		return
	}
	if _, err := fmt.Fprintf(ow.w, format, args...); err != nil {
		ow.err = fmt.Errorf("writing outline: %w", err)
	}
}
