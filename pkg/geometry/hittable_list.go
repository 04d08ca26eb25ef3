package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// HittableList is an ordered collection of shapes searched exhaustively for the nearest hit
type HittableList struct {
	Objects    []Shape
	Background material.Material // Material carried by the record returned on a miss
}

// NewHittableList creates a new list with a null background material
func NewHittableList(objects ...Shape) *HittableList {
	return &HittableList{
		Objects:    objects,
		Background: material.NewNullMaterial(),
	}
}

// Add appends shapes to the list
func (l *HittableList) Add(objects ...Shape) {
	l.Objects = append(l.Objects, objects...)
}

// Hit returns the nearest hit across all objects. On a miss the returned
// record is empty apart from the background material.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	closest := &material.HitRecord{Material: l.Background}
	closestSoFar := tMax
	hitAnything := false

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
