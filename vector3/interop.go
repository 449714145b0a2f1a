package vector3

import (
	gv "github.com/deeean/go-vector/vector3"
)

// ToGoVector converts v to a go-vector Vector3
func ToGoVector(v V) *gv.Vector3 {
	return &gv.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// FromGoVector converts a go-vector Vector3. A nil pointer gives Zero.
func FromGoVector(p *gv.Vector3) V {
	if p == nil {
		return Zero
	}
	return V{X: p.X, Y: p.Y, Z: p.Z}
}
