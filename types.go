package main

// vec2 represents a 2D vector
type vec2 struct {
	x float64
	y float64
}

// star is a single background star
type star struct {
	pos    vec2
	radius float64
}
