package models

// Extent is an axis-aligned bounding box in map units.
type Extent struct {
	XMin float64 `yaml:"xmin"`
	YMin float64 `yaml:"ymin"`
	XMax float64 `yaml:"xmax"`
	YMax float64 `yaml:"ymax"`
}

func (e Extent) Width() float64 {
	return e.XMax - e.XMin
}

func (e Extent) Height() float64 {
	return e.YMax - e.YMin
}

// Center returns the midpoint of the extent.
func (e Extent) Center() (x, y float64) {
	return (e.XMin + e.XMax) / 2, (e.YMin + e.YMax) / 2
}

// IsEmpty reports whether the extent has no area.
func (e Extent) IsEmpty() bool {
	return e.Width() <= 0 || e.Height() <= 0
}

// Union returns the smallest extent covering both e and other.
func (e Extent) Union(other Extent) Extent {
	u := e
	if other.XMin < u.XMin {
		u.XMin = other.XMin
	}
	if other.YMin < u.YMin {
		u.YMin = other.YMin
	}
	if other.XMax > u.XMax {
		u.XMax = other.XMax
	}
	if other.YMax > u.YMax {
		u.YMax = other.YMax
	}
	return u
}
