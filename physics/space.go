package physics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
)

// Collision layers. A shape's category is its layer bit.
const (
	LayerTerrain component.LayerMask = 1 << iota
	LayerEnemy
)

var layerNames = map[string]component.LayerMask{
	"terrain": LayerTerrain,
	"enemy":   LayerEnemy,
}

// ParseLayers converts layer names to a mask.
func ParseLayers(names []string) (component.LayerMask, error) {
	var mask component.LayerMask
	for _, n := range names {
		bit, ok := layerNames[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("physics: unknown layer %q", n)
		}
		mask |= bit
	}
	return mask, nil
}

// shapeRef is stored as cp shape user data.
type shapeRef struct {
	seq     int
	name    string
	target  component.Damageable
	terrain bool
}

// Space is a chipmunk space used only for queries: ground checks and
// projectile overlap tests. Nothing is stepped.
type Space struct {
	space  *cp.Space
	shapes []*cp.Shape
	seq    int
}

func NewSpace() *Space {
	return &Space{space: cp.NewSpace()}
}

// AddTerrain adds a static solid box on the terrain layer.
func (s *Space) AddTerrain(r common.Rect) {
	s.add(r, LayerTerrain, &shapeRef{name: "terrain", terrain: true})
}

// AddDamageable adds a static box on the enemy layer that reports target
// in contacts.
func (s *Space) AddDamageable(target component.Damageable, name string, r common.Rect) {
	if target == nil {
		return
	}
	s.add(r, LayerEnemy, &shapeRef{name: name, target: target})
}

// RemoveDamageable drops every shape registered for target.
func (s *Space) RemoveDamageable(target component.Damageable) bool {
	removed := false
	kept := s.shapes[:0]
	for _, shape := range s.shapes {
		ref := shape.UserData.(*shapeRef)
		if ref.target != nil && ref.target == target {
			s.space.RemoveShape(shape)
			removed = true
			continue
		}
		kept = append(kept, shape)
	}
	s.shapes = kept
	return removed
}

func (s *Space) Len() int { return len(s.shapes) }

// DebugDraw renders every shape in the space through d.
func (s *Space) DebugDraw(d cp.Drawer) {
	cp.DrawSpace(s.space, d)
}

func (s *Space) add(r common.Rect, layer component.LayerMask, ref *shapeRef) {
	s.seq++
	ref.seq = s.seq
	bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
	shape.UserData = ref
	s.space.AddShape(shape)
	s.shapes = append(s.shapes, shape)
}

// IsGrounded reports whether any shape on mask lies within radius of pos.
func (s *Space) IsGrounded(pos common.Vec2, radius float64, mask component.LayerMask) bool {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	info := s.space.PointQueryNearest(cp.Vector{X: pos.X, Y: pos.Y}, radius, filter)
	return info != nil && info.Shape != nil
}

// Contacts returns everything overlapping bounds in registration order.
// Dead damageables are skipped.
func (s *Space) Contacts(bounds common.Rect) []component.Contact {
	bb := cp.BB{L: bounds.X, B: bounds.Y, R: bounds.X + bounds.Width, T: bounds.Y + bounds.Height}
	var hits []*shapeRef
	s.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		ref, ok := shape.UserData.(*shapeRef)
		if !ok {
			return
		}
		if ref.target != nil && ref.target.IsDead() {
			return
		}
		hits = append(hits, ref)
	}, nil)
	if len(hits) == 0 {
		return nil
	}
	slices.SortFunc(hits, func(a, b *shapeRef) int { return a.seq - b.seq })

	contacts := make([]component.Contact, 0, len(hits))
	for _, ref := range hits {
		contacts = append(contacts, component.Contact{Target: ref.target, Name: ref.name})
	}
	return contacts
}
