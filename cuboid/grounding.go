package cuboid

// rayLength is the full height of the current world bounds: long when the
// cuboid stands, short when it lies flat.
func (c *Controller) rayLength() float64 {
	_, ext := c.state.Pose.Bounds(c.cfg.HalfExtents)
	return ext.Y() * 2
}

// sampleGrounded casts down from both balance points and combines the hits
// according to the grounding policy.
func (c *Controller) sampleGrounded() GroundSample {
	a, b := c.balanceA(), c.balanceB()
	dist := c.rayLength()

	g := GroundSample{
		A: c.ground.CastDown(a, dist),
		B: c.ground.CastDown(b, dist),
	}

	switch c.cfg.Grounding {
	case GroundingEdgeTolerant:
		if IsStanding(a, b) {
			// only the foot carries weight
			if a.Y() < b.Y() {
				g.Grounded = g.A
			} else {
				g.Grounded = g.B
			}
		} else {
			g.Grounded = g.A || g.B
		}
		g.PartiallyOffEdge = g.A != g.B && c.state.Phase == PhaseIdle
	default:
		g.Grounded = g.A && g.B
	}

	c.lastGround = g
	return g
}
