package game

// AIController is a three-way bang-bang controller. It looks only at the
// ball's current y, never its trajectory.
type AIController struct {
	Speed    float64
	Deadzone float64
}

// Velocity returns the paddle velocity that closes the vertical gap
func (c AIController) Velocity(ballY, paddleY float64) Vec {
	switch {
	case ballY < paddleY-c.Deadzone:
		return Vec{Y: -c.Speed}
	case ballY > paddleY+c.Deadzone:
		return Vec{Y: c.Speed}
	}
	return Vec{}
}
