package game

// pointsPerSizeTier is the score awarded per asteroid destroyed, multiplied
// by the asteroid's size tier.
const pointsPerSizeTier = 10

// resolveCollisions applies one frame of collision resolution in two
// phases: detect against the current positions first, then apply removals,
// fragment insertions, and scoring. A projectile is consumed by its first
// hit, and an asteroid takes at most one fragmenting hit per frame, so scan
// order cannot double-count. The ship check runs last, against the field as
// it stands after fragments landed.
func (s *Session) resolveCollisions() {
	// Detection phase
	var (
		consumed  map[*Projectile]bool
		destroyed map[*Asteroid]bool
		fragments []*Asteroid
	)
	for _, p := range s.projectiles {
		for _, a := range s.asteroids {
			if destroyed[a] {
				continue
			}
			if !p.Overlaps(&a.Entity) {
				continue
			}
			if consumed == nil {
				consumed = make(map[*Projectile]bool)
				destroyed = make(map[*Asteroid]bool)
			}
			consumed[p] = true
			destroyed[a] = true
			fragments = append(fragments, a.BreakApart(s.rng, s.cfg.Asteroids)...)
			s.score += pointsPerSizeTier * a.Size
			break
		}
	}

	// Application phase
	if len(destroyed) > 0 {
		aliveP := s.projectiles[:0]
		for _, p := range s.projectiles {
			if !consumed[p] {
				aliveP = append(aliveP, p)
			}
		}
		s.projectiles = aliveP

		aliveA := s.asteroids[:0]
		for _, a := range s.asteroids {
			if !destroyed[a] {
				aliveA = append(aliveA, a)
			}
		}
		s.asteroids = append(aliveA, fragments...)
	}

	// Ship overlap ends the run immediately
	for _, a := range s.asteroids {
		if s.ship.Overlaps(&a.Entity) {
			s.transition(StateGameOver)
			return
		}
	}
}
