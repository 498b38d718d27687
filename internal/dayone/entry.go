package dayone

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// CreationDateLayout is the exact timestamp format Day One writes for
// creationDate values: UTC with a literal Z and no fractional seconds.
// Anything looser is rejected rather than best-effort parsed.
const CreationDateLayout = "2006-01-02T15:04:05Z"

// Entry is one diary record. CreationDate is always present and places the
// entry in the outline; every other field is optional and only shapes how
// the entry is rendered.
type Entry struct {
	CreationDate time.Time
	Text         *string
	Location     *Location
	Weather      *Weather
	Music        *Music
	Photos       []Photo
}

// entryJSON mirrors Entry for decoding, with creationDate kept as a string
// so it can be validated against CreationDateLayout.
type entryJSON struct {
	CreationDate *string   `json:"creationDate"`
	Text         *string   `json:"text"`
	Location     *Location `json:"location"`
	Weather      *Weather  `json:"weather"`
	Music        *Music    `json:"music"`
	Photos       []Photo   `json:"photos"`
}

// UnmarshalJSON decodes an entry, requiring creationDate in the fixed UTC layout.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.CreationDate == nil {
		return fmt.Errorf("missing required fields: creationDate")
	}

	when, err := time.Parse(CreationDateLayout, *raw.CreationDate)
	if err != nil {
		return fmt.Errorf("creationDate %q: %w", *raw.CreationDate, err)
	}
	// time.Parse consumes fractional seconds even when the layout has none,
	// so only values that round-trip back to the exact layout are accepted.
	if when.Format(CreationDateLayout) != *raw.CreationDate {
		return fmt.Errorf("creationDate %q: not in format %s", *raw.CreationDate, CreationDateLayout)
	}

	e.CreationDate = when
	e.Text = raw.Text
	e.Location = raw.Location
	e.Weather = raw.Weather
	e.Music = raw.Music
	e.Photos = raw.Photos
	return nil
}

// Year returns the calendar year of the entry's creation date.
func (e *Entry) Year() int {
	return e.CreationDate.Year()
}

// Month returns the calendar month of the entry's creation date.
func (e *Entry) Month() time.Month {
	return e.CreationDate.Month()
}

// Day returns the day of month of the entry's creation date.
func (e *Entry) Day() int {
	return e.CreationDate.Day()
}

// Location is the place an entry was written. All three fields are required
// when a location record is present at all.
type Location struct {
	Longitude float64
	Latitude  float64
	PlaceName string
}

// UnmarshalJSON decodes a location, requiring all of its fields.
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw struct {
		Longitude *float64 `json:"longitude"`
		Latitude  *float64 `json:"latitude"`
		PlaceName *string  `json:"placeName"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.Longitude == nil {
		missing = append(missing, "longitude")
	}
	if raw.Latitude == nil {
		missing = append(missing, "latitude")
	}
	if raw.PlaceName == nil {
		missing = append(missing, "placeName")
	}
	if len(missing) > 0 {
		return fmt.Errorf("location missing required fields: %s", strings.Join(missing, ", "))
	}

	l.Longitude = *raw.Longitude
	l.Latitude = *raw.Latitude
	l.PlaceName = *raw.PlaceName
	return nil
}

// Weather is the weather snapshot attached to an entry. Both fields are
// independently optional; Day One omits whichever it did not capture.
type Weather struct {
	ConditionsDescription *string `json:"conditionsDescription"`
	MoonPhaseCode         *string `json:"moonPhaseCode"`
}

// Music is the track an entry records as playing while it was written.
type Music struct {
	Artist string
	Track  string
}

// UnmarshalJSON decodes a music record, requiring both artist and track.
func (m *Music) UnmarshalJSON(data []byte) error {
	var raw struct {
		Artist *string `json:"artist"`
		Track  *string `json:"track"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.Artist == nil {
		missing = append(missing, "artist")
	}
	if raw.Track == nil {
		missing = append(missing, "track")
	}
	if len(missing) > 0 {
		return fmt.Errorf("music missing required fields: %s", strings.Join(missing, ", "))
	}

	m.Artist = *raw.Artist
	m.Track = *raw.Track
	return nil
}

// Photo references an image asset attached to an entry, identified by the
// content hash Day One assigns on export. OrderInEntry totally orders the
// photos of one entry and pairs them with inline photo placeholders.
type Photo struct {
	MD5          string
	Type         string
	OrderInEntry int
}

// UnmarshalJSON decodes a photo reference, requiring all of its fields.
func (p *Photo) UnmarshalJSON(data []byte) error {
	var raw struct {
		MD5          *string `json:"md5"`
		Type         *string `json:"type"`
		OrderInEntry *int    `json:"orderInEntry"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.MD5 == nil {
		missing = append(missing, "md5")
	}
	if raw.Type == nil {
		missing = append(missing, "type")
	}
	if raw.OrderInEntry == nil {
		missing = append(missing, "orderInEntry")
	}
	if len(missing) > 0 {
		return fmt.Errorf("photo missing required fields: %s", strings.Join(missing, ", "))
	}

	p.MD5 = *raw.MD5
	p.Type = *raw.Type
	p.OrderInEntry = *raw.OrderInEntry
	return nil
}

// Link renders the org-mode link for the photo's exported image file,
// relative to wherever the outline document lives.
func (p Photo) Link() string {
	return "[[./images/" + p.MD5 + "." + p.Type + "]]"
}

// SortPhotos returns a copy of photos ordered by OrderInEntry ascending.
// Entries are shared between the journal and the time tree, so the input
// slice is never mutated. Ties keep their original order.
func SortPhotos(photos []Photo) []Photo {
	sorted := make([]Photo, len(photos))
	copy(sorted, photos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderInEntry < sorted[j].OrderInEntry
	})
	return sorted
}

// FirstPhotoLink returns the link for the photo placeholder pairing treats
// as first, the one with the lowest OrderInEntry. ok is false when the
// entry has no photos.
func FirstPhotoLink(photos []Photo) (link string, ok bool) {
	if len(photos) == 0 {
		return "", false
	}
	first := photos[0]
	for _, p := range photos[1:] {
		if p.OrderInEntry < first.OrderInEntry {
			first = p
		}
	}
	return first.Link(), true
}
