package lights

// LightType names the kind of light source
type LightType string

const (
	LightTypePoint LightType = "point"
)
