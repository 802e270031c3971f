package physics3d

// SolveContacts relaxes contacts against bodies for iterations passes of
// sequential-impulse Gauss-Seidel, normal-only (no friction, no
// restitution). ContactEquation carries no penetration depth, so the
// Baumgarte positional bias term is omitted (b = 0) rather than invented.
// The solver only removes approaching velocity along each normal: any
// penetration present when a contact is first detected is not pushed out
// on later steps, so a resting body stays sunk by that amount.
func SolveContacts(bodies []Body, contacts []ContactEquation, dt float64, iterations int) {
	if len(contacts) == 0 {
		return
	}

	for iter := 0; iter < iterations; iter++ {
		for i := range contacts {
			c := &contacts[i]
			b1 := &bodies[c.BodyID1]
			b2 := &bodies[c.BodyID2]

			relVel := b2.Velocity.Add(b2.AngularVelocity.Cross(c.Rj)).Sub(
				b1.Velocity.Add(b1.AngularVelocity.Cross(c.Ri)))
			vRel := relVel.Dot(c.Ni)

			invI1 := b1.InvInertiaWorld
			invI2 := b2.InvInertiaWorld

			rCrossN1 := c.Ri.Cross(c.Ni)
			rCrossN2 := c.Rj.Cross(c.Ni)
			angTerm1 := invI1.Mul3x1(rCrossN1).Cross(c.Ri).Dot(c.Ni)
			angTerm2 := invI2.Mul3x1(rCrossN2).Cross(c.Rj).Dot(c.Ni)

			mEff := b1.InvMass + b2.InvMass + angTerm1 + angTerm2
			if mEff <= 0 {
				continue
			}

			lambda := -vRel / mEff
			if lambda < 0 {
				lambda = 0
			}

			impulse := c.Ni.Mul(lambda)

			b1.Velocity = b1.Velocity.Sub(impulse.Mul(b1.InvMass))
			b1.AngularVelocity = b1.AngularVelocity.Sub(invI1.Mul3x1(c.Ri.Cross(impulse)))

			b2.Velocity = b2.Velocity.Add(impulse.Mul(b2.InvMass))
			b2.AngularVelocity = b2.AngularVelocity.Add(invI2.Mul3x1(c.Rj.Cross(impulse)))
		}
	}
}
