package frosty

import "fmt"

type FigureType int

const (
	// FigureKoch - open curve grown from a single segment
	FigureKoch FigureType = iota
	// FigureFlake - closed snowflake grown from a triangle
	FigureFlake
)

func (t FigureType) String() string {
	switch t {
	case FigureKoch:
		return "koch"
	case FigureFlake:
		return "flake"
	}

	return fmt.Sprintf("FigureType(%d)", int(t))
}

var FigureTypeEnum = func() map[string]FigureType {
	m := make(map[string]FigureType)
	for i := FigureKoch; i <= FigureFlake; i++ {
		m[i.String()] = i
	}
	return m
}()
