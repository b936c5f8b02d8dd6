package component

// Sprite references a registered image by key. The image is drawn with its
// size scaled to Width x Height, centered on the transform.
type Sprite struct {
	Key    string
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
