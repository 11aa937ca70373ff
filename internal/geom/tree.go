package geom

import (
	"fmt"
	"math"

	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

const (
	maxTreeDepth = 12
	leafObjects  = 4
)

// Tree partitions the object list into a binary tree of bounding boxes so
// per-cell classification does not scan every object. The tree owns its
// copy of the list; callers may drop or mutate theirs afterwards.
type Tree struct {
	objects []Object
	root    *treeNode
}

type treeNode struct {
	low, high   grid.Coord
	axis        grid.Axis
	split       float64
	left, right *treeNode
	objs        []int
}

// NewTree builds the classifier over the objects in registration order.
// Later objects shadow earlier ones at points they both cover.
func NewTree(objects []Object) *Tree {
	t := &Tree{objects: append([]Object(nil), objects...)}

	low := grid.Coord{math.Inf(1), math.Inf(1), math.Inf(1)}
	high := grid.Coord{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	all := make([]int, len(t.objects))
	for n, obj := range t.objects {
		all[n] = n
		olow, ohigh := obj.Bounds()
		for d := 0; d < 3; d++ {
			low[d] = math.Min(low[d], math.Max(olow[d], -1e30))
			high[d] = math.Max(high[d], math.Min(ohigh[d], 1e30))
		}
	}
	t.root = buildNode(t.objects, all, low, high, 0)
	return t
}

func buildNode(objects []Object, objs []int, low, high grid.Coord, depth int) *treeNode {
	n := &treeNode{low: low, high: high, objs: objs}
	if len(objs) <= leafObjects || depth >= maxTreeDepth {
		return n
	}

	// Bisect the longest axis.
	axis := grid.X
	for d := grid.Y; d <= grid.Z; d++ {
		if high[d]-low[d] > high[axis]-low[axis] {
			axis = d
		}
	}
	split := (low[axis] + high[axis]) / 2
	if math.IsNaN(split) || math.IsInf(split, 0) {
		return n
	}

	var leftObjs, rightObjs []int
	for _, i := range objs {
		olow, ohigh := objects[i].Bounds()
		if olow[axis] <= split {
			leftObjs = append(leftObjs, i)
		}
		if ohigh[axis] >= split {
			rightObjs = append(rightObjs, i)
		}
	}
	// A split that separates nothing would recurse forever.
	if len(leftObjs) == len(objs) && len(rightObjs) == len(objs) {
		return n
	}

	leftHigh, rightLow := high, low
	leftHigh[axis] = split
	rightLow[axis] = split

	n.axis = axis
	n.split = split
	n.objs = nil
	n.left = buildNode(objects, leftObjs, low, leftHigh, depth+1)
	n.right = buildNode(objects, rightObjs, rightLow, high, depth+1)
	return n
}

// ObjectOfPoint returns the last registered object covering the
// coordinate. It implements [fdtd.Classifier].
func (t *Tree) ObjectOfPoint(co grid.Coord) (fdtd.Object, error) {
	node := t.root
	for node != nil && node.left != nil {
		if co[node.axis] <= node.split {
			node = node.left
		} else {
			node = node.right
		}
	}
	if node != nil {
		for n := len(node.objs) - 1; n >= 0; n-- {
			obj := t.objects[node.objs[n]]
			if obj.Contains(co) {
				return obj, nil
			}
		}
	}
	return nil, fmt.Errorf("%w (%g, %g, %g)", fdtd.ErrNoMaterial, co[0], co[1], co[2])
}

// Len returns the number of registered objects.
func (t *Tree) Len() int { return len(t.objects) }
