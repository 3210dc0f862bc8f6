package shape

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/csg"
	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/geom"
)

// Post is two dots, one above the other.
type Post struct {
	Top, Bot dots.Dot
}

// PostSpec describes a post to build: the alignment point is placed at
// Pos, and Len is the outer length including both dots.
type PostSpec struct {
	Pos    v3.Vec
	Align  PostAlign
	Len    float64
	Size   float64
	Rot    geom.Rot
	Shapes PostShapes
}

// NewPost builds a post from a spec.
func NewPost(spec PostSpec) (Post, error) {
	if spec.Len < 2*spec.Size {
		return Post{}, fmt.Errorf("shape: post length %g too short for dot size %g: %w",
			spec.Len, spec.Size, geom.ErrArgument)
	}
	origin := spec.Pos.Sub(spec.Align.offset(spec.Size, spec.Len-spec.Size, spec.Rot))

	toDot := func(level geom.Corner1) dots.Dot {
		return dots.New(dots.Spec{
			Pos:   origin.Add(level.Offset(spec.Len-spec.Size, spec.Rot)),
			Align: dots.AlignOrigin(),
			Size:  spec.Size,
			Rot:   spec.Rot,
			Shape: spec.Shapes.get(level),
		})
	}
	return Post{Bot: toDot(geom.C1P0), Top: toDot(geom.C1P1)}, nil
}

// Dot returns the dot at the given end of the post.
func (p Post) Dot(level geom.Corner1) dots.Dot {
	if level.IsHigh() {
		return p.Top
	}
	return p.Bot
}

// Pos returns the world position of the given alignment point.
func (p Post) Pos(align PostAlign) v3.Vec {
	if align.midpoint {
		return geom.Midpoint(
			p.Dot(align.postA).Corner(align.dotA),
			p.Dot(align.postB).Corner(align.dotB),
		)
	}
	return p.Dot(align.postA).Corner(align.dotA)
}

// DimVec returns the direction and length of one edge of the post. The
// axis is relative to the post's default orientation, not its rotated one.
func (p Post) DimVec(axis geom.Axis) v3.Vec {
	origin := p.Pos(PostOrigin())
	var far geom.Corner3
	switch axis {
	case geom.AxisX:
		far = geom.C3P100
	case geom.AxisY:
		far = geom.C3P010
	default:
		far = geom.C3P001
	}
	return p.Pos(PostOutside(far)).Sub(origin)
}

// DimUnitVec returns the direction of one edge of the post.
func (p Post) DimUnitVec(axis geom.Axis) v3.Vec {
	return p.DimVec(axis).Normalize()
}

// DimLen returns the length of one edge of the post.
func (p Post) DimLen(axis geom.Axis) float64 {
	return p.DimVec(axis).Length()
}

// Size returns the dot size.
func (p Post) Size() float64 {
	return p.Top.Size
}

// CopyRaiseBot returns a copy with the bottom dot slid up by the given
// distance along the post.
func (p Post) CopyRaiseBot(distance float64) (Post, error) {
	if distance > p.DimLen(geom.AxisZ)-p.Top.Size {
		return Post{}, fmt.Errorf("shape: raising the post bottom by %g leaves it too short: %w",
			distance, geom.ErrArgument)
	}
	return Post{
		Top: p.Top,
		Bot: p.Bot.Translate(p.DimUnitVec(geom.AxisZ).MulScalar(distance)),
	}, nil
}

// Snake returns four posts tracing a taxicab path from this post to the
// other, with the path's top and bottom following the respective dots.
func (p Post) Snake(other Post, order [3]geom.Axis) (PostSnake, error) {
	tops, err := dots.NewSnake(p.Top, other.Top, order)
	if err != nil {
		return PostSnake{}, err
	}
	bots, err := dots.NewSnake(p.Bot, other.Bot, order)
	if err != nil {
		return PostSnake{}, err
	}
	var snake PostSnake
	for i := range snake.posts {
		snake.posts[i] = Post{Top: tops.Dots[i], Bot: bots.Dots[i]}
	}
	return snake, nil
}

// Link joins the post's dots into a solid in the given style.
func (p Post) Link(style PostLink) csg.Tree {
	if style == PostDots {
		return csg.Union(csg.FromDot(p.Bot), csg.FromDot(p.Top))
	}
	return csg.Hull(csg.FromDot(p.Bot), csg.FromDot(p.Top))
}

// ChainPosts links each post solid and chains them into one continuous
// solid.
func ChainPosts(posts []Post) (csg.Tree, error) {
	trees := make([]csg.Tree, len(posts))
	for i, p := range posts {
		trees[i] = p.Link(PostSolid)
	}
	return csg.Chain(trees...)
}

// ChainLoopPosts is ChainPosts with an extra segment closing the loop.
func ChainLoopPosts(posts []Post) (csg.Tree, error) {
	trees := make([]csg.Tree, len(posts))
	for i, p := range posts {
		trees[i] = p.Link(PostSolid)
	}
	return csg.ChainLoop(trees...)
}

// ---------------------------------------------------------------------------
// Alignment
// ---------------------------------------------------------------------------

// PostAlign names a reference point on a post: a dot corner of either end
// dot, or the midpoint of two such points.
type PostAlign struct {
	postA geom.Corner1
	dotA  geom.Corner3
	postB geom.Corner1
	dotB  geom.Corner3

	midpoint bool
}

func postCorner(post geom.Corner1, dot geom.Corner3) PostAlign {
	return PostAlign{postA: post, dotA: dot}
}

// PostOrigin aligns to the post's outside P000 corner.
func PostOrigin() PostAlign {
	return PostOutside(geom.C3P000)
}

// PostOutside aligns to the given outer corner of the post.
func PostOutside(corner geom.Corner3) PostAlign {
	level := geom.C1P0
	if corner.IsHigh(geom.AxisZ) {
		level = geom.C1P1
	}
	return postCorner(level, corner)
}

// PostAlignMidpoint aligns to the midpoint of two corner alignments.
func PostAlignMidpoint(a, b PostAlign) (PostAlign, error) {
	if a.midpoint || b.midpoint {
		return PostAlign{}, fmt.Errorf("shape: midpoint of midpoint alignments: %w", geom.ErrArgument)
	}
	return PostAlign{
		postA: a.postA, dotA: a.dotA,
		postB: b.postA, dotB: b.dotA,
		midpoint: true,
	}, nil
}

// PostOutsideMidpoint aligns to the midpoint of two outer corners.
func PostOutsideMidpoint(a, b geom.Corner3) PostAlign {
	al, _ := PostAlignMidpoint(PostOutside(a), PostOutside(b))
	return al
}

// PostCentroid aligns to the post's center of mass.
func PostCentroid() PostAlign {
	return PostOutsideMidpoint(geom.C3P000, geom.C3P111)
}

func (al PostAlign) offset(dotSize, postLength float64, rot geom.Rot) v3.Vec {
	point := func(post geom.Corner1, dot geom.Corner3) v3.Vec {
		return dot.Offset(dotDims(dotSize), rot).Add(post.Offset(postLength, rot))
	}
	if al.midpoint {
		return point(al.postA, al.dotA).Add(point(al.postB, al.dotB)).MulScalar(0.5)
	}
	return point(al.postA, al.dotA)
}

// ---------------------------------------------------------------------------
// Shapes and link styles
// ---------------------------------------------------------------------------

// PostShapes selects the solid drawn for each end dot. The zero value
// draws cubes on both ends.
type PostShapes struct {
	custom bool
	round  bool
	common dots.Shape
	top    dots.Shape
	bot    dots.Shape
}

// PostShapesUniform draws the same solid on both ends.
func PostShapesUniform(s dots.Shape) PostShapes {
	return PostShapes{common: s}
}

// PostShapesRound draws a sphere on top of a cylinder.
func PostShapesRound() PostShapes {
	return PostShapes{round: true}
}

// PostShapesCustom picks a solid per end.
func PostShapesCustom(top, bot dots.Shape) PostShapes {
	return PostShapes{custom: true, top: top, bot: bot}
}

func (ps PostShapes) get(level geom.Corner1) dots.Shape {
	switch {
	case ps.round:
		if level.IsHigh() {
			return dots.Sphere
		}
		return dots.Cylinder
	case ps.custom:
		if level.IsHigh() {
			return ps.top
		}
		return ps.bot
	default:
		return ps.common
	}
}

// PostLink selects how a post's dots are joined.
type PostLink int

const (
	// PostSolid hulls the two dots.
	PostSolid PostLink = iota
	// PostDots draws the dots unconnected.
	PostDots
)

// PostSnake is four posts tracing a taxicab path.
type PostSnake struct {
	posts [4]Post
}

// All returns the four posts in path order.
func (s PostSnake) All() [4]Post {
	return s.posts
}

// Get returns the post at the given path index.
func (s PostSnake) Get(i int) Post {
	return s.posts[i]
}

// Bottoms returns the bottom dot of each post in path order.
func (s PostSnake) Bottoms() [4]dots.Dot {
	var out [4]dots.Dot
	for i, p := range s.posts {
		out[i] = p.Bot
	}
	return out
}

// PostSnakeLink selects how a snake's posts are joined.
type PostSnakeLink int

const (
	// PostSnakeChain chains the posts into one continuous solid.
	PostSnakeChain PostSnakeLink = iota
	// PostSnakePosts draws each post solid separately.
	PostSnakePosts
)

// Link joins the snake's posts in the given style.
func (s PostSnake) Link(style PostSnakeLink) (csg.Tree, error) {
	if style == PostSnakeChain {
		return ChainPosts(s.posts[:])
	}
	trees := make([]csg.Tree, len(s.posts))
	for i, p := range s.posts {
		trees[i] = p.Link(PostSolid)
	}
	return csg.Union(trees...), nil
}
