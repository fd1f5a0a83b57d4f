package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in machine centimeters
// Y axis points up
type Vec2F struct {
	X, Y float64
}

// V2F constructs a Vec2F
func V2F(x, y float64) Vec2F {
	return Vec2F{x, y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FNormalize returns the unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FPerp returns v rotated 90° counter-clockwise
func V2FPerp(v Vec2F) Vec2F {
	return Vec2F{-v.Y, v.X}
}

// V2FRotate rotates v by angle radians counter-clockwise
func V2FRotate(v Vec2F, angle float64) Vec2F {
	s, c := math.Sincos(angle)
	return Vec2F{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// V2FPolar returns the point at radius r and angle radians from the origin
func V2FPolar(r, angle float64) Vec2F {
	s, c := math.Sincos(angle)
	return Vec2F{r * c, r * s}
}
