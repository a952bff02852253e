package duct

import (
	"fmt"
	"math"
	"sort"
)

// DefaultFaceFPM is the default maximum face velocity for return grilles.
const DefaultFaceFPM = 500

type grilleSize struct {
	w, h float64
}

// Stock filter-grille sizes carried on most trucks, largest first.
var returnGrilles = []grilleSize{
	{30, 20}, {25, 20}, {20, 20}, {25, 16}, {20, 16},
	{24, 14}, {20, 14}, {18, 18}, {16, 16}, {14, 14},
	{12, 12}, {30, 10},
}

// Ceiling supply registers, a smaller catalog.
var supplyRegisters = []grilleSize{
	{14, 14}, {12, 12}, {12, 6}, {10, 10}, {10, 6}, {10, 4}, {8, 4},
}

type GrilleOption struct {
	WidthIn     float64 `json:"width_in"`
	HeightIn    float64 `json:"height_in"`
	AreaFt2     float64 `json:"area_ft2"`
	VelocityFPM int     `json:"velocity_fpm"`
}

type GrilleResult struct {
	TargetFaceFPM float64        `json:"target_face_fpm"`
	TargetAreaFt2 float64        `json:"target_area_ft2"`
	Options       []GrilleOption `json:"options"`
}

// ReturnSizing ranks stock return-grille sizes for the given airflow. Options
// are ordered by how close their face velocity lands to the target, closest
// first; ties keep catalog order.
func ReturnSizing(totalCFM, maxFaceFPM float64) (GrilleResult, error) {
	return rankGrilles(totalCFM, maxFaceFPM, returnGrilles)
}

// SupplyRegisterSizing ranks ceiling supply registers the same way.
func SupplyRegisterSizing(totalCFM, maxFaceFPM float64) (GrilleResult, error) {
	return rankGrilles(totalCFM, maxFaceFPM, supplyRegisters)
}

func rankGrilles(totalCFM, maxFaceFPM float64, catalog []grilleSize) (GrilleResult, error) {
	if !isFinite(totalCFM) || totalCFM <= 0 {
		return GrilleResult{}, fmt.Errorf("invalid input")
	}
	if maxFaceFPM <= 0 {
		maxFaceFPM = DefaultFaceFPM
	}

	options := make([]GrilleOption, 0, len(catalog))
	for _, g := range catalog {
		area := AreaRect(g.w, g.h)
		v, err := Velocity(totalCFM, area)
		if err != nil {
			continue
		}
		options = append(options, GrilleOption{
			WidthIn:     g.w,
			HeightIn:    g.h,
			AreaFt2:     area,
			VelocityFPM: v,
		})
	}
	sort.SliceStable(options, func(i, j int) bool {
		di := math.Abs(float64(options[i].VelocityFPM) - maxFaceFPM)
		dj := math.Abs(float64(options[j].VelocityFPM) - maxFaceFPM)
		return di < dj
	})

	return GrilleResult{
		TargetFaceFPM: maxFaceFPM,
		TargetAreaFt2: totalCFM / maxFaceFPM,
		Options:       options,
	}, nil
}
