package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrNoBoundingBox is returned when a BVH leaf has no bounding box or an inverted one
	ErrNoBoundingBox = errors.New("object has no bounding box")
	// ErrEmptyBVH is returned when building a BVH over no objects
	ErrEmptyBVH = errors.New("cannot build BVH over zero objects")
)

// BVHNode is a binary node of a Bounding Volume Hierarchy.
// Left and Right are either nodes or leaf objects; they alias the same
// object when the node covers a single one.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// NewBVH builds a hierarchy over objects by recursive median splits on a random axis.
// The input slice is not modified.
func NewBVH(objects []Hittable, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	// Copy so callers may keep using their slice concurrently
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, sampler)
}

// buildBVH builds the node covering objects, reordering the slice in place
func buildBVH(objects []Hittable, sampler core.Sampler) (*BVHNode, error) {
	boxes := make([]core.AABB, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox()
		if !ok || !box.IsValid() {
			return nil, fmt.Errorf("%w: %T", ErrNoBoundingBox, object)
		}
		boxes[i] = box
	}

	axis := sampler.IntRange(0, 3)
	less := func(a, b core.AABB) bool {
		return a.Min().Axis(axis) < b.Min().Axis(axis)
	}

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
		node.Box = boxes[0]
		return node, nil
	case 2:
		// Ties keep the original order
		if less(boxes[1], boxes[0]) {
			node.Left, node.Right = objects[1], objects[0]
		} else {
			node.Left, node.Right = objects[0], objects[1]
		}
		node.Box = boxes[0].Union(boxes[1])
		return node, nil
	}

	sort.Stable(byAxis{objects: objects, boxes: boxes, less: less})
	mid := len(objects) / 2

	left, err := buildBVH(objects[:mid], sampler)
	if err != nil {
		return nil, err
	}
	right, err := buildBVH(objects[mid:], sampler)
	if err != nil {
		return nil, err
	}

	node.Left, node.Right = left, right
	node.Box = left.Box.Union(right.Box)
	return node, nil
}

// byAxis sorts objects together with their precomputed boxes
type byAxis struct {
	objects []Hittable
	boxes   []core.AABB
	less    func(a, b core.AABB) bool
}

func (s byAxis) Len() int           { return len(s.objects) }
func (s byAxis) Less(i, j int) bool { return s.less(s.boxes[i], s.boxes[j]) }
func (s byAxis) Swap(i, j int) {
	s.objects[i], s.objects[j] = s.objects[j], s.objects[i]
	s.boxes[i], s.boxes[j] = s.boxes[j], s.boxes[i]
}

// Hit tests the left child, then the right child with tMax tightened to the left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}
	if n.Right == n.Left {
		return leftHit, hitLeft
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.Box, true
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
	AvgDepth float64 // mean leaf depth
}

// Stats walks the hierarchy and collects node counts and depths
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	if stats.Leaves > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.Leaves)
	}
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
			stats.AvgDepth += float64(depth + 1)
		}
	}
}
