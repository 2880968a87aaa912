package render

import (
	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/outline"
)

// pen receives a path as absolute quadratic segments.
type pen interface {
	MoveTo(p smear.Vector)
	QuadTo(c, p smear.Vector)
	ClosePath()
}

// walk feeds a path to a pen. The control point of a smooth quadratic is the
// reflection of the previous control point about the current point, or the
// current point itself if the previous command was not quadratic.
func walk(path outline.Path, p pen) {
	var cur, ctrl, start smear.Vector
	quad := false
	for _, c := range path.Cmds {
		switch c.Op {
		case outline.MoveTo:
			if len(c.Pts) == 0 {
				continue
			}
			cur, start = c.Pts[0], c.Pts[0]
			p.MoveTo(cur)
			quad = false
		case outline.QuadTo:
			for i := 0; i+1 < len(c.Pts); i += 2 {
				ctrl, cur = c.Pts[i], c.Pts[i+1]
				p.QuadTo(ctrl, cur)
			}
			quad = true
		case outline.SmoothQuad:
			for _, pt := range c.Pts {
				if quad {
					ctrl = cur.Scale(2).Subtract(ctrl)
				} else {
					ctrl = cur
				}
				cur = pt
				p.QuadTo(ctrl, cur)
				quad = true
			}
		case outline.ClosePath:
			p.ClosePath()
			cur = start
			quad = false
		default:
			tracer().Errorf("render: unknown path command %q", c.Op)
		}
	}
}
