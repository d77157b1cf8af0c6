package component

// RespawnRequest is a marker added to a cuboid that fell out of the level.
// The respawn system puts it back on its SafeRespawn pose.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
