package dayone

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/chee/do2org/internal/pandoc"
)

// Inline photo-moment markers. Day One leaves these in entry text where an
// attached photo belongs: the markdown form appears in the raw text and the
// org form in the converter's output.
var (
	markdownPhotoMoment = regexp.MustCompile(`!\[\]\(dayone-moment://[^)]+\)`)
	orgPhotoMoment      = regexp.MustCompile(`\[\[dayone-moment://[^\]]+\]\]`)
	markdownHeading     = regexp.MustCompile(`^#+\s`)
)

// bodyOptions is how entry text goes through the converter: Day One writes
// markdown, the outline wants org, and headings inside a body must nest
// below the four outline levels above them.
var bodyOptions = pandoc.Options{From: "markdown", To: "org", ShiftHeadingLevelBy: 4}

// converterPreambleLines is the fixed number of boilerplate lines pandoc
// puts at the top of org output before the content proper.
const converterPreambleLines = 4

// Properties builds the display property map for an entry: one key per
// captured attribute, absent attributes simply missing. Emission order is
// the renderer's concern; the map is the contract.
func (e *Entry) Properties() (map[string]string, error) {
	props := make(map[string]string)

	if e.Weather != nil {
		if e.Weather.MoonPhaseCode != nil {
			glyph, err := MoonGlyph(*e.Weather.MoonPhaseCode)
			if err != nil {
				return nil, err
			}
			props["Moon"] = glyph
		}
		if e.Weather.ConditionsDescription != nil {
			props["Weather"] = *e.Weather.ConditionsDescription
		}
	}

	if e.Music != nil {
		props["Music"] = e.Music.Artist + " — " + e.Music.Track
	}

	if e.Location != nil {
		props["Latitude"] = formatCoordinate(e.Location.Latitude)
		props["Longitude"] = formatCoordinate(e.Location.Longitude)
		props["Location"] = e.Location.PlaceName
	}

	return props, nil
}

// formatCoordinate renders a latitude or longitude with the shortest
// decimal form that round-trips the value.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Title derives the entry's heading: the first line of its text with a
// single leading markdown heading marker removed. When firstPhotoLink is
// non-empty it stands in for a photo placeholder on that line. ok is false
// when the entry has no text to take a line from.
func (e *Entry) Title(firstPhotoLink string) (title string, ok bool) {
	if e.Text == nil || *e.Text == "" {
		return "", false
	}

	line := firstLine(*e.Text)
	line = replaceFirst(markdownHeading, line, "")
	if firstPhotoLink != "" {
		line = replaceFirst(markdownPhotoMoment, line, firstPhotoLink)
	}
	return line, true
}

// Body converts the entry's text to org markup through conv, drops the
// converter preamble, and swaps photo placeholders for photo links. Photos
// pair with placeholders in OrderInEntry order against left-to-right
// appearance order; surplus placeholders stay verbatim and surplus photos
// go unused. Entries without text yield "" and never invoke the converter.
func (e *Entry) Body(ctx context.Context, conv pandoc.Converter, photos []Photo) (string, error) {
	if e.Text == nil || *e.Text == "" {
		return "", nil
	}

	converted, err := conv.Convert(ctx, *e.Text, bodyOptions)
	if err != nil {
		return "", err
	}

	lines := splitLines(converted)
	if len(lines) <= converterPreambleLines {
		lines = nil
	} else {
		lines = lines[converterPreambleLines:]
	}
	body := strings.Join(lines, "\n")

	for _, photo := range SortPhotos(photos) {
		body = replaceFirst(orgPhotoMoment, body, photo.Link())
	}
	return body, nil
}

// firstLine returns s up to the first line break, tolerating CRLF.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r")
}

// splitLines splits on newlines the way line-oriented tools do: CRLF is
// tolerated and a trailing newline does not produce a final empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// replaceFirst replaces the first match of re in s with repl, taken
// literally. Replacing one match at a time is what lets each photo claim
// its own placeholder.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
