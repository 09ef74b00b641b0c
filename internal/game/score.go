package game

import "fmt"

// Score holds both sides' points for one session
type Score struct {
	Player int
	AI     int
}

func (sc Score) String() string {
	return fmt.Sprintf("Player: %d | AI: %d", sc.Player, sc.AI)
}

// Of returns the points of one side
func (sc Score) Of(side Side) int {
	if side == SidePlayer {
		return sc.Player
	}
	return sc.AI
}

func (sc *Score) award(side Side) {
	if side == SidePlayer {
		sc.Player++
	} else {
		sc.AI++
	}
}

// IsGameOver returns true if either side has reached pointsToWin
func (sc Score) IsGameOver(pointsToWin int) bool {
	return sc.Player >= pointsToWin || sc.AI >= pointsToWin
}

// Winner returns the side that reached pointsToWin
func (sc Score) Winner(pointsToWin int) Side {
	if sc.Player >= pointsToWin {
		return SidePlayer
	}
	return SideAI
}

// checkScore awards a point when the ball crosses an exit threshold and
// re-serves it from the centre in the same tick. Only the crossing counts:
// the detector is disarmed by a point and re-armed once the ball is seen
// back inside the thresholds.
func (s *Session) checkScore() {
	pos := s.engine.Position(s.Ball.ID)
	conceded, out := s.Ball.Exited(pos.X)
	if !out {
		s.exitArmed = true
		return
	}

	if s.exitArmed {
		s.exitArmed = false
		scorer := conceded.Other()
		s.score.award(scorer)
		s.log.Info("point scored", "scorer", scorer, "score", s.score.String(), "tick", s.tick)
		s.hooks.scored(s.score, scorer)
	}

	// serve away from the side that conceded
	s.serve(conceded == SidePlayer)
}

// serve teleports the ball to the centre with a fresh velocity
func (s *Session) serve(launchRight bool) {
	s.engine.SetPosition(s.Ball.ID, s.center())
	s.engine.SetVelocity(s.Ball.ID, ServeVelocity(s.rng, launchRight, s.tuning.ServeSpeed, s.tuning.ServeSpread))
	s.contacts.clear()
}
