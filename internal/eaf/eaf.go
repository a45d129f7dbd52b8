// Package eaf reads ELAN Annotation Format (EAF) files. EAF is an XML
// format: a TIME_ORDER block maps time-slot identifiers to millisecond
// offsets, and TIER elements hold annotations that reference those slots.
package eaf

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Annotation is a labeled interval within a tier, with start/end already
// resolved to millisecond offsets.
type Annotation struct {
	ID    string
	Start int
	End   int
	Value string
}

// Tier is a named track of annotations, in document order.
type Tier struct {
	ID          string
	Annotations []Annotation
}

// Duration returns the sum of annotation lengths in the tier.
func (t *Tier) Duration() int {
	total := 0
	for _, a := range t.Annotations {
		total += a.End - a.Start
	}
	return total
}

// Document is a parsed EAF file. All fields are read-only after Parse.
type Document struct {
	Path      string
	TimeSlots map[string]int
	Tiers     []Tier
}

// Tier looks up a tier by its TIER_ID.
func (d *Document) Tier(id string) (*Tier, bool) {
	for i := range d.Tiers {
		if d.Tiers[i].ID == id {
			return &d.Tiers[i], true
		}
	}
	return nil, false
}

// TierIDs returns the tier names in document order.
func (d *Document) TierIDs() []string {
	ids := make([]string, len(d.Tiers))
	for i, t := range d.Tiers {
		ids[i] = t.ID
	}
	return ids
}

// Name returns the file's base name without the .eaf extension. Other
// extensions are kept as-is.
func (d *Document) Name() string {
	return strings.TrimSuffix(filepath.Base(d.Path), ".eaf")
}

// XML shapes for decoding. Only the elements and attributes the tool needs
// are declared; everything else in the document is ignored.

type xmlDocument struct {
	XMLName   xml.Name     `xml:"ANNOTATION_DOCUMENT"`
	TimeOrder xmlTimeOrder `xml:"TIME_ORDER"`
	Tiers     []xmlTier    `xml:"TIER"`
}

type xmlTimeOrder struct {
	Slots []xmlTimeSlot `xml:"TIME_SLOT"`
}

type xmlTimeSlot struct {
	ID string `xml:"TIME_SLOT_ID,attr"`
	// Pointer: EAF permits unaligned slots with no TIME_VALUE.
	Value *int `xml:"TIME_VALUE,attr"`
}

type xmlTier struct {
	ID          string          `xml:"TIER_ID,attr"`
	Annotations []xmlAnnotation `xml:"ANNOTATION"`
}

// An ANNOTATION wraps exactly one of ALIGNABLE_ANNOTATION or REF_ANNOTATION.
type xmlAnnotation struct {
	Alignable *xmlAlignable `xml:"ALIGNABLE_ANNOTATION"`
	Ref       *xmlRef       `xml:"REF_ANNOTATION"`
}

type xmlAlignable struct {
	ID    string `xml:"ANNOTATION_ID,attr"`
	Ref1  string `xml:"TIME_SLOT_REF1,attr"`
	Ref2  string `xml:"TIME_SLOT_REF2,attr"`
	Value string `xml:"ANNOTATION_VALUE"`
}

type xmlRef struct {
	ID        string `xml:"ANNOTATION_ID,attr"`
	ParentRef string `xml:"ANNOTATION_REF,attr"`
	Value     string `xml:"ANNOTATION_VALUE"`
}

// Parse reads and resolves a single EAF file. Any failure is returned as a
// *ParseError wrapping the cause; the caller decides whether to continue
// with other files.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var raw xmlDocument
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: %v", ErrMalformedXML, err)}
	}

	doc := &Document{
		Path:      path,
		TimeSlots: make(map[string]int, len(raw.TimeOrder.Slots)),
	}
	for _, slot := range raw.TimeOrder.Slots {
		if slot.Value == nil {
			// Unaligned slot; annotations referencing it cannot resolve.
			continue
		}
		doc.TimeSlots[slot.ID] = *slot.Value
	}

	if err := resolveTiers(doc, raw.Tiers); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

type interval struct {
	start, end int
}

// resolveTiers fills doc.Tiers from the raw tier elements. Alignable
// annotations resolve directly through the time-slot table. Reference
// annotations inherit their parent annotation's interval; chains of
// references are resolved by repeated passes until nothing new settles.
func resolveTiers(doc *Document, tiers []xmlTier) error {
	intervals := make(map[string]interval)
	for _, tier := range tiers {
		for _, ann := range tier.Annotations {
			a := ann.Alignable
			if a == nil {
				continue
			}
			start, ok := doc.TimeSlots[a.Ref1]
			if !ok {
				return fmt.Errorf("%w: annotation %q in tier %q references %q",
					ErrMissingTimeSlot, a.ID, tier.ID, a.Ref1)
			}
			end, ok := doc.TimeSlots[a.Ref2]
			if !ok {
				return fmt.Errorf("%w: annotation %q in tier %q references %q",
					ErrMissingTimeSlot, a.ID, tier.ID, a.Ref2)
			}
			intervals[a.ID] = interval{start: start, end: end}
		}
	}

	// Settle reference annotations. Each pass resolves refs whose parent is
	// already known; every pass either settles something, finds nothing left
	// to settle, or reports the first dangling reference, so the loop always
	// terminates even when annotation IDs collide.
	for {
		resolved, pending := 0, 0
		var dangling error
		for _, tier := range tiers {
			for _, ann := range tier.Annotations {
				r := ann.Ref
				if r == nil {
					continue
				}
				if _, done := intervals[r.ID]; done {
					continue
				}
				if parent, ok := intervals[r.ParentRef]; ok {
					intervals[r.ID] = parent
					resolved++
				} else {
					pending++
					if dangling == nil {
						dangling = fmt.Errorf("%w: annotation %q in tier %q references %q",
							ErrUnresolvedRef, r.ID, tier.ID, r.ParentRef)
					}
				}
			}
		}
		if pending == 0 {
			break
		}
		if resolved == 0 {
			return dangling
		}
	}

	doc.Tiers = make([]Tier, 0, len(tiers))
	for _, tier := range tiers {
		out := Tier{ID: tier.ID}
		for _, ann := range tier.Annotations {
			switch {
			case ann.Alignable != nil:
				iv := intervals[ann.Alignable.ID]
				out.Annotations = append(out.Annotations, Annotation{
					ID:    ann.Alignable.ID,
					Start: iv.start,
					End:   iv.end,
					Value: ann.Alignable.Value,
				})
			case ann.Ref != nil:
				iv := intervals[ann.Ref.ID]
				out.Annotations = append(out.Annotations, Annotation{
					ID:    ann.Ref.ID,
					Start: iv.start,
					End:   iv.end,
					Value: ann.Ref.Value,
				})
			}
		}
		doc.Tiers = append(doc.Tiers, out)
	}
	return nil
}
