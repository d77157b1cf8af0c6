package component

// CollisionLayer declares the ground layer category of a tile. Only tiles
// whose category includes the ground bit can support the cuboid.
type CollisionLayer struct {
	Category uint `yaml:"category,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
