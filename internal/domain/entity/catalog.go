package entity

import (
	"fmt"
	"sort"
)

// ViewKey identifies one camera's recording of one subject performing one action.
type ViewKey struct {
	Subject string
	Action  string
	Camera  string
}

// Catalog holds the fixed reference tables of the Human3.6M release: subject and
// action names with their integer codes, camera identifiers with their indices,
// the subjects evaluated at a fixed frame stride, and the per-view overrides for
// known-bad recordings. Construct it once with NewCatalog and pass it explicitly;
// it is never mutated after construction.
type Catalog struct {
	subjects     map[string]int64
	actions      map[string]int64
	cameras      map[string]int
	subjectOrder []string
	actionOrder  []string
	denseEval    map[string]bool
	overrides    map[ViewKey]string
}

func NewCatalog() *Catalog {
	c := &Catalog{
		subjects: map[string]int64{
			"S1":  1,
			"S5":  5,
			"S6":  6,
			"S7":  7,
			"S8":  8,
			"S9":  9,
			"S11": 11,
		},
		actions: map[string]int64{
			"Directions":   1,
			"Discussion":   2,
			"Eating":       3,
			"Greeting":     4,
			"Phoning":      5,
			"Posing":       6,
			"Purchases":    7,
			"Sitting":      8,
			"SittingDown":  9,
			"Smoking":      10,
			"TakingPhoto":  11,
			"Waiting":      12,
			"Walking":      13,
			"WalkingDog":   14,
			"WalkTogether": 15,
		},
		cameras: map[string]int{
			"54138969": 0,
			"55011271": 1,
			"58860488": 2,
			"60457274": 3,
		},
		subjectOrder: []string{"S1", "S5", "S6", "S7", "S8", "S9", "S11"},
		actionOrder: []string{
			"Directions", "Discussion", "Eating", "Greeting", "Phoning",
			"Posing", "Purchases", "Sitting", "SittingDown", "Smoking",
			"TakingPhoto", "Waiting", "Walking", "WalkingDog", "WalkTogether",
		},
		// Protocol #2 test subjects are sampled at a fixed stride instead of
		// by motion (see the "Compositional Human Pose Regression" paper).
		denseEval: map[string]bool{
			"S9":  true,
			"S11": true,
		},
		// Known-bad recordings whose resolved take name is forced instead of
		// probed. The S11 Directions video for camera 54138969 is corrupt.
		overrides: map[ViewKey]string{
			{Subject: "S11", Action: "Directions", Camera: "54138969"}: "Directions 1.54138969",
		},
	}
	return c
}

// Subjects returns the subject names in release order.
func (c *Catalog) Subjects() []string {
	out := make([]string, len(c.subjectOrder))
	copy(out, c.subjectOrder)
	return out
}

// Actions returns the action names in release order.
func (c *Catalog) Actions() []string {
	out := make([]string, len(c.actionOrder))
	copy(out, c.actionOrder)
	return out
}

// SortedCameras returns the camera identifiers in sorted order, giving
// deterministic per-sequence iteration.
func (c *Catalog) SortedCameras() []string {
	out := make([]string, 0, len(c.cameras))
	for id := range c.cameras {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SubjectCode returns the integer code of a subject. Looking up a name that is
// not in the catalog is a programming error and panics.
func (c *Catalog) SubjectCode(name string) int64 {
	code, ok := c.subjects[name]
	if !ok {
		panic(fmt.Sprintf("entity: unknown subject %q", name))
	}
	return code
}

// ActionCode returns the integer code of an action, panicking on unknown names.
func (c *Catalog) ActionCode(name string) int64 {
	code, ok := c.actions[name]
	if !ok {
		panic(fmt.Sprintf("entity: unknown action %q", name))
	}
	return code
}

// CameraIndex returns the small index of a camera identifier, panicking on
// unknown identifiers.
func (c *Catalog) CameraIndex(id string) int {
	idx, ok := c.cameras[id]
	if !ok {
		panic(fmt.Sprintf("entity: unknown camera %q", id))
	}
	return idx
}

// DenseEval reports whether the subject uses fixed-stride frame selection.
func (c *Catalog) DenseEval(subject string) bool {
	return c.denseEval[subject]
}

// ResolvedNameOverride returns the forced resolved name for a view, if one is
// registered for it.
func (c *Catalog) ResolvedNameOverride(key ViewKey) (string, bool) {
	name, ok := c.overrides[key]
	return name, ok
}
