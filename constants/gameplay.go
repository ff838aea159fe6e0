package constants

// Runner Kinematics
const (
	// GroundY is the ground plane height
	GroundY = 0.0

	// PlayerLaneX is the player's fixed position along the run axis
	PlayerLaneX = -2.2

	// RunSpeedStart is the world scroll speed at the start of a run
	RunSpeedStart = 6.0

	// RunSpeedMax caps the scroll speed ramp
	RunSpeedMax = 14.0

	// RunSpeedRamp is the scroll speed increase per second
	RunSpeedRamp = 0.12

	// JumpImpulse is the upward velocity applied on jump
	JumpImpulse = 8.6

	// Gravity is the downward acceleration while airborne
	Gravity = 24.0

	// DuckDuration is how long a duck press keeps the player crouched
	DuckDuration = 0.4
)

// Obstacle Field
const (
	// ObstacleSpawnX is where new obstacles enter the lane
	ObstacleSpawnX = 16.0

	// ObstacleDespawnX is where obstacles leave the lane and are recycled
	ObstacleDespawnX = -10.0

	// ObstacleGapMin is the minimum spacing between consecutive obstacles
	ObstacleGapMin = 6.0

	// ObstacleGapMax is the maximum spacing between consecutive obstacles
	ObstacleGapMax = 12.0

	// PteroAltitude is the flight height of airborne obstacles
	PteroAltitude = 1.35
)
