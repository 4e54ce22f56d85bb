package config

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Play field - logical units, origin at the center, y grows upward.
const (
	FieldWidth  = 640.0
	FieldHeight = 480.0
)

// Player
const (
	PlayerSpeed  = 400.0 // Units per second
	PlayerSpawnX = 0.0
	PlayerSpawnY = -180.0
	PlayerScale  = 5.0
)

// Bullets
const (
	BulletSpeed        = 400.0 // Initial upward speed
	BulletAcceleration = 10.0  // Speed gained per second alive
	BulletLifetime     = 2 * time.Second
	BulletRadius       = 20.0
	BulletDamage       = 10.0
)

// Enemies
const (
	EnemyBaseHealth    = 50.0  // Multiplied by size squared
	EnemyBaseSpeed     = 200.0 // Multiplied by the speed factor
	EnemyBaseRadius    = 70.0  // Multiplied by size
	EnemyScale         = 2.5   // Sprite scale per unit of size
	EnemySizeSteps     = 5     // Size is roll/EnemySizeSteps + 1, roll in [1, EnemySizeSteps]
	EnemyMaxSize       = 2.0
	EnemySpawnX        = 0.0
	EnemySpawnY        = 180.0
	EnemySpawnInterval = 2 * time.Second
	EnemyBounceX       = 320.0 // Enemies turn around past ±EnemyBounceX
	EnemyStepDown      = 50.0  // Drop applied on each turn
)

// Scoring and round end
const (
	ScoreEnemyKill = 100
	RoundEndY      = -150.0 // An enemy below this line ends the round
)

// Client rendering
const (
	DefaultFPS = 60
	MaxFPS     = 240
)

// CollisionCellSize covers the largest bullet/enemy interaction distance:
// bullet radius plus the radius of the largest enemy.
const CollisionCellSize = BulletRadius + EnemyBaseRadius*EnemyMaxSize
