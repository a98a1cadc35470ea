package level

import (
	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
	"github.com/milk9111/devilrun/hazard"
)

// GroundY is the top of the bottom tile row; blueprint y-coordinates count
// tiles up from here.
const GroundY = config.ScreenHeight - config.TileSize

// MinLength is the floor on a level's world width. Levels whose goal sits
// past it stretch to fit.
const MinLength = config.ScreenWidth * config.LevelScrollScreens

// r converts grid coordinates to a world rect: x tiles from the left, y tiles
// up from the ground.
func r(x, y, w, h float64) common.Rect {
	return common.Rect{
		X:      config.TileSize * x,
		Y:      GroundY - config.TileSize*y,
		Width:  config.TileSize * w,
		Height: config.TileSize * h,
	}
}

// pt is the top-left corner of a grid cell, used for pivots and spawns.
func pt(x, y float64) common.Vec2 {
	return common.Vec2{X: config.TileSize * x, Y: GroundY - config.TileSize*y}
}

// Oscillator places a sine-sweeping block.
type Oscillator struct {
	Rect      common.Rect
	Axis      hazard.Axis
	Amplitude float64
	Speed     float64
}

// Trigger places a hidden spike and the zone that arms it.
type Trigger struct {
	Trigger common.Rect
	Spike   common.Rect
}

// Axe places a pendulum blade under a pivot.
type Axe struct {
	Pivot        common.Vec2
	Length       float64
	SwingDegrees float64
	Speed        float64
}

// ChaserSpec places a tracking drone.
type ChaserSpec struct {
	Spawn   common.Vec2
	Speed   float64
	MaxTime float64
}

// Disappear pairs a trigger zone with the platform it removes.
type Disappear struct {
	Trigger  common.Rect
	Platform common.Rect
}

// CrusherSpec places a ceiling slammer.
type CrusherSpec struct {
	Rect       common.Rect
	SlamHeight float64
}

// Blueprint is the static description of one level. Everything is world
// pixels by the time it lands here; the r/pt helpers do the grid math.
type Blueprint struct {
	ID          int
	Name        string
	Spawn       common.Vec2
	Goal        common.Rect
	Platforms   []common.Rect
	StaticTraps []common.Rect
	Oscillators []Oscillator
	Triggers    []Trigger
	Axes        []Axe
	Chasers     []ChaserSpec
	Disappear   []Disappear
	Crushers    []CrusherSpec
}

// Blueprints holds the twelve campaign levels plus the boss stage, in play
// order.
var Blueprints = []Blueprint{
	{
		ID: 1, Name: "Level 1: The Descent",
		Spawn: pt(2, 2),
		Goal:  r(75, 2, 2, 3),
		Platforms: []common.Rect{
			r(0, 1, 10, 1),
			r(12, 3, 3, 1), r(18, 5, 3, 1), r(24, 7, 5, 1),
			r(35, 4, 5, 1), r(45, 2, 10, 1), r(60, 1, 15, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 2, 1), r(30, 1, 5, 1), r(55, 1, 5, 1)},
		Oscillators: []Oscillator{
			{Rect: r(40, 6, 2, 1), Axis: hazard.AxisY, Amplitude: 100, Speed: 3.0},
			{Rect: r(15, 5, 2, 1), Axis: hazard.AxisX, Amplitude: 60, Speed: 2.5},
		},
		Triggers: []Trigger{
			{Trigger: r(24, 8, 2, 2), Spike: r(26, 7, 1, 1)},
			{Trigger: r(68, 2, 2, 2), Spike: r(70, 1, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(30, 10), Length: 120, SwingDegrees: 60, Speed: 1.5},
			{Pivot: pt(50, 8), Length: 100, SwingDegrees: 45, Speed: 2.0},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(45, 8), Speed: 100, MaxTime: 3},
			{Spawn: pt(65, 5), Speed: 120, MaxTime: 4},
		},
		Disappear: []Disappear{
			{Trigger: r(35, 5, 2, 2), Platform: r(35, 4, 5, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(50, 12, 2, 2), SlamHeight: 380},
			{Rect: r(10, 10, 2, 2), SlamHeight: 300},
		},
	},
	{
		ID: 2, Name: "Level 2: The Grinder",
		Spawn: pt(2, 2),
		Goal:  r(85, 8, 2, 3),
		Platforms: []common.Rect{
			r(0, 1, 10, 1),
			r(15, 3, 5, 1),
			r(25, 5, 4, 1),
			r(35, 7, 4, 1),
			r(45, 1, 15, 1),
			r(65, 4, 5, 1),
			r(75, 6, 12, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 35, 1), r(60, 1, 15, 1)},
		Oscillators: []Oscillator{
			{Rect: r(20, 4, 2, 1), Axis: hazard.AxisY, Amplitude: 80, Speed: 4.0},
			{Rect: r(40, 6, 2, 1), Axis: hazard.AxisX, Amplitude: 120, Speed: 2.5},
		},
		Triggers: []Trigger{
			{Trigger: r(45, 2, 5, 2), Spike: r(47, 2, 1, 1)},
			{Trigger: r(75, 7, 3, 2), Spike: r(78, 6, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(55, 10), Length: 150, SwingDegrees: 90, Speed: 2.0},
			{Pivot: pt(35, 12), Length: 120, SwingDegrees: 60, Speed: 2.5},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(70, 7), Speed: 180, MaxTime: 3},
			{Spawn: pt(10, 6), Speed: 150, MaxTime: 5},
		},
		Disappear: []Disappear{
			{Trigger: r(25, 6, 2, 2), Platform: r(25, 5, 4, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(30, 12, 3, 2), SlamHeight: 380},
			{Rect: r(50, 12, 2, 2), SlamHeight: 400},
			{Rect: r(80, 10, 2, 2), SlamHeight: 200},
		},
	},
	{
		ID: 3, Name: "Level 3: Trust Issues",
		Spawn: pt(2, 2),
		Goal:  r(100, 1, 3, 3),
		Platforms: []common.Rect{
			r(0, 1, 15, 1),
			r(20, 3, 10, 1),
			r(40, 5, 10, 1),
			r(60, 3, 10, 1),
			r(80, 1, 20, 1),
		},
		StaticTraps: []common.Rect{r(15, 1, 5, 1), r(30, 1, 10, 1), r(50, 1, 10, 1), r(70, 1, 10, 1)},
		Oscillators: []Oscillator{
			{Rect: r(25, 6, 2, 1), Axis: hazard.AxisY, Amplitude: 120, Speed: 3.5},
			{Rect: r(55, 4, 2, 1), Axis: hazard.AxisX, Amplitude: 80, Speed: 2.2},
		},
		Triggers: []Trigger{
			{Trigger: r(40, 6, 3, 2), Spike: r(43, 5, 1, 1)},
			{Trigger: r(85, 2, 3, 2), Spike: r(88, 1, 1, 1)},
			{Trigger: r(10, 3, 2, 2), Spike: r(12, 1, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(50, 10), Length: 140, SwingDegrees: 80, Speed: 2.0},
			{Pivot: pt(75, 12), Length: 120, SwingDegrees: 60, Speed: 2.5},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(20, 10), Speed: 120, MaxTime: 3},
			{Spawn: pt(90, 5), Speed: 150, MaxTime: 4},
		},
		Disappear: []Disappear{
			{Trigger: r(40, 0, 10, 10), Platform: r(40, 5, 10, 1)},
			{Trigger: r(60, 0, 10, 10), Platform: r(60, 3, 10, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(10, 12, 2, 2), SlamHeight: 400},
		},
	},
	{
		ID: 4, Name: "Level 4: The Gauntlet",
		Spawn: pt(2, 2),
		Goal:  r(130, 2, 2, 3),
		Platforms: []common.Rect{
			r(0, 1, 10, 1),
			r(25, 7, 6, 1),
			r(50, 6, 35, 1),
			r(95, 3, 12, 1),
			r(115, 1, 20, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 5, 1), r(41, 1, 9, 1), r(85, 6, 10, 1), r(107, 3, 8, 1)},
		Oscillators: []Oscillator{
			{Rect: r(20, 8, 2, 1), Axis: hazard.AxisY, Amplitude: 60, Speed: 5.0},
			{Rect: r(70, 10, 2, 1), Axis: hazard.AxisY, Amplitude: 80, Speed: 4.0},
			{Rect: r(105, 5, 2, 1), Axis: hazard.AxisX, Amplitude: 100, Speed: 3.0},
		},
		Triggers: []Trigger{
			{Trigger: r(50, 7, 2, 2), Spike: r(52, 6, 1, 1)},
			{Trigger: r(65, 7, 2, 2), Spike: r(67, 6, 1, 1)},
			{Trigger: r(80, 7, 2, 2), Spike: r(82, 6, 1, 1)},
			{Trigger: r(110, 2, 2, 2), Spike: r(112, 1, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(45, 13), Length: 160, SwingDegrees: 80, Speed: 2.5},
			{Pivot: pt(90, 11), Length: 140, SwingDegrees: 60, Speed: 3.0},
			{Pivot: pt(120, 10), Length: 120, SwingDegrees: 90, Speed: 3.5},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(55, 12), Speed: 220, MaxTime: 4},
			{Spawn: pt(100, 6), Speed: 240, MaxTime: 3},
			{Spawn: pt(20, 5), Speed: 200, MaxTime: 4},
			{Spawn: pt(125, 8), Speed: 260, MaxTime: 5},
		},
		Disappear: []Disappear{
			{Trigger: r(12, 4, 3, 2), Platform: r(15, 4, 6, 1)},
			{Trigger: r(32, 9, 3, 2), Platform: r(35, 9, 6, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(60, 16, 2, 2), SlamHeight: 550},
			{Rect: r(75, 16, 2, 2), SlamHeight: 550},
			{Rect: r(95, 14, 2, 2), SlamHeight: 400},
		},
	},
	{
		ID: 5, Name: "Level 5: Crushing Depths",
		Spawn: pt(2, 2),
		Goal:  r(110, 1, 3, 5),
		Platforms: []common.Rect{
			r(0, 1, 10, 1),
			r(15, 3, 8, 1),
			r(28, 6, 8, 1),
			r(42, 9, 8, 1),
			r(55, 6, 8, 1),
			r(70, 3, 8, 1),
			r(85, 1, 30, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 5, 1), r(23, 1, 5, 1), r(36, 1, 6, 1), r(50, 1, 5, 1), r(63, 1, 7, 1), r(78, 1, 7, 1)},
		Oscillators: []Oscillator{
			{Rect: r(28, 8, 2, 1), Axis: hazard.AxisY, Amplitude: 80, Speed: 4.0},
			{Rect: r(65, 10, 3, 1), Axis: hazard.AxisX, Amplitude: 120, Speed: 3.0},
			{Rect: r(42, 11, 2, 1), Axis: hazard.AxisY, Amplitude: 60, Speed: 4.5},
		},
		Triggers: []Trigger{
			{Trigger: r(35, 7, 2, 2), Spike: r(37, 6, 1, 1)},
			{Trigger: r(70, 4, 2, 2), Spike: r(72, 3, 1, 1)},
			{Trigger: r(90, 2, 3, 2), Spike: r(93, 1, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(50, 14), Length: 180, SwingDegrees: 90, Speed: 2.5},
			{Pivot: pt(90, 12), Length: 140, SwingDegrees: 100, Speed: 3.0},
			{Pivot: pt(20, 10), Length: 100, SwingDegrees: 60, Speed: 4.0},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(105, 10), Speed: 240, MaxTime: 4},
			{Spawn: pt(5, 5), Speed: 180, MaxTime: 5},
			{Spawn: pt(60, 8), Speed: 210, MaxTime: 3},
		},
		Disappear: []Disappear{
			{Trigger: r(50, 8, 2, 2), Platform: r(55, 6, 8, 1)},
			{Trigger: r(15, 4, 2, 2), Platform: r(15, 3, 8, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(45, 14, 2, 2), SlamHeight: 450},
			{Rect: r(100, 14, 2, 2), SlamHeight: 500},
			{Rect: r(115, 12, 2, 2), SlamHeight: 300},
		},
	},
	{
		ID: 6, Name: "Level 6: The Climb",
		Spawn: pt(2, 2),
		Goal:  r(65, 14, 2, 4),
		Platforms: []common.Rect{
			r(0, 1, 10, 1),
			r(12, 3, 3, 1), r(18, 6, 3, 1), r(24, 9, 3, 1),
			r(32, 12, 3, 1), r(45, 10, 4, 1), r(55, 14, 15, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 55, 1)},
		Oscillators: []Oscillator{
			{Rect: r(16, 8, 1, 1), Axis: hazard.AxisY, Amplitude: 120, Speed: 4.5},
			{Rect: r(30, 10, 1, 1), Axis: hazard.AxisX, Amplitude: 140, Speed: 3.0},
			{Rect: r(40, 12, 1, 2), Axis: hazard.AxisY, Amplitude: 150, Speed: 5.0},
		},
		Triggers: []Trigger{
			{Trigger: r(32, 13, 2, 2), Spike: r(34, 12, 1, 1)},
			{Trigger: r(55, 15, 3, 2), Spike: r(58, 14, 1, 1)},
			{Trigger: r(5, 2, 5, 2), Spike: r(8, 1, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(42, 16), Length: 180, SwingDegrees: 120, Speed: 2.2},
			{Pivot: pt(20, 18), Length: 150, SwingDegrees: 90, Speed: 3.0},
			{Pivot: pt(58, 18), Length: 130, SwingDegrees: 45, Speed: 4.0},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(60, 10), Speed: 250, MaxTime: 4},
			{Spawn: pt(15, 12), Speed: 200, MaxTime: 6},
		},
		Disappear: []Disappear{
			{Trigger: r(18, 7, 2, 2), Platform: r(18, 6, 3, 1)},
			{Trigger: r(32, 14, 2, 2), Platform: r(32, 12, 3, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(35, 18, 2, 2), SlamHeight: 500},
			{Rect: r(55, 18, 2, 2), SlamHeight: 400},
		},
	},
	{
		ID: 7, Name: "Level 7: Panic",
		Spawn: pt(2, 2),
		Goal:  r(130, 4, 2, 4),
		Platforms: []common.Rect{
			r(0, 1, 10, 1),
			r(15, 3, 4, 1), r(25, 5, 4, 1), r(35, 7, 4, 1),
			r(45, 5, 4, 1), r(55, 3, 4, 1), r(65, 1, 70, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 120, 1)},
		Oscillators: []Oscillator{
			{Rect: r(12, 5, 1, 2), Axis: hazard.AxisX, Amplitude: 120, Speed: 5.0},
			{Rect: r(42, 8, 1, 2), Axis: hazard.AxisX, Amplitude: 150, Speed: 4.5},
			{Rect: r(72, 3, 1, 2), Axis: hazard.AxisX, Amplitude: 180, Speed: 5.5},
			{Rect: r(100, 5, 2, 1), Axis: hazard.AxisY, Amplitude: 100, Speed: 4.0},
		},
		Triggers: []Trigger{
			{Trigger: r(65, 2, 5, 2), Spike: r(68, 1, 1, 1)},
			{Trigger: r(85, 2, 5, 2), Spike: r(88, 1, 1, 1)},
			{Trigger: r(105, 2, 5, 2), Spike: r(108, 1, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(80, 12), Length: 160, SwingDegrees: 90, Speed: 2.5},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(90, 7), Speed: 260, MaxTime: 4.5},
			{Spawn: pt(110, 7), Speed: 280, MaxTime: 4},
			{Spawn: pt(40, 10), Speed: 200, MaxTime: 5},
		},
		Disappear: []Disappear{
			{Trigger: r(25, 6, 2, 2), Platform: r(25, 5, 4, 1)},
			{Trigger: r(45, 6, 2, 2), Platform: r(45, 5, 4, 1)},
			{Trigger: r(80, 2, 2, 2), Platform: r(65, 1, 10, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(50, 14, 2, 2), SlamHeight: 450},
			{Rect: r(100, 14, 2, 2), SlamHeight: 500},
		},
	},
	{
		ID: 8, Name: "Level 8: Precision",
		Spawn: pt(2, 2),
		Goal:  r(85, 6, 2, 4),
		Platforms: []common.Rect{
			r(0, 1, 5, 1), r(12, 3, 2, 1), r(22, 6, 2, 1), r(32, 9, 2, 1),
			r(42, 6, 2, 1), r(52, 3, 2, 1), r(65, 5, 25, 1),
		},
		StaticTraps: []common.Rect{r(5, 1, 80, 1)},
		Oscillators: []Oscillator{
			{Rect: r(15, 8, 1, 1), Axis: hazard.AxisY, Amplitude: 100, Speed: 4.0},
			{Rect: r(35, 12, 1, 1), Axis: hazard.AxisY, Amplitude: 120, Speed: 4.5},
			{Rect: r(22, 10, 1, 1), Axis: hazard.AxisX, Amplitude: 80, Speed: 3.0},
		},
		Triggers: []Trigger{
			{Trigger: r(65, 6, 3, 2), Spike: r(67, 5, 1, 1)},
			{Trigger: r(75, 6, 3, 2), Spike: r(77, 5, 1, 1)},
			{Trigger: r(40, 1, 5, 1), Spike: r(42, 1, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(28, 14), Length: 180, SwingDegrees: 60, Speed: 3.0},
			{Pivot: pt(48, 14), Length: 180, SwingDegrees: 60, Speed: 3.0},
			{Pivot: pt(65, 12), Length: 140, SwingDegrees: 100, Speed: 2.5},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(80, 10), Speed: 220, MaxTime: 4},
			{Spawn: pt(20, 12), Speed: 180, MaxTime: 8},
		},
		Disappear: []Disappear{
			{Trigger: r(32, 10, 2, 2), Platform: r(32, 9, 2, 1)},
			{Trigger: r(12, 5, 2, 2), Platform: r(12, 3, 2, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(28, 14, 2, 2), SlamHeight: 400},
			{Rect: r(52, 14, 2, 2), SlamHeight: 400},
		},
	},
	{
		ID: 9, Name: "Level 9: The Gauntlet",
		Spawn: pt(2, 2),
		Goal:  r(125, 4, 3, 5),
		Platforms: []common.Rect{
			r(0, 1, 10, 1),
			r(15, 3, 8, 1), r(30, 6, 8, 1), r(45, 9, 8, 1),
			r(60, 6, 8, 1), r(75, 3, 8, 1), r(90, 1, 40, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 10, 1), r(23, 1, 15, 1), r(38, 1, 15, 1), r(53, 1, 15, 1), r(68, 1, 15, 1), r(83, 1, 15, 1)},
		Oscillators: []Oscillator{
			{Rect: r(45, 12, 2, 1), Axis: hazard.AxisY, Amplitude: 100, Speed: 4.0},
			{Rect: r(85, 12, 2, 1), Axis: hazard.AxisY, Amplitude: 120, Speed: 3.5},
			{Rect: r(60, 15, 2, 1), Axis: hazard.AxisX, Amplitude: 100, Speed: 2.5},
		},
		Triggers: []Trigger{
			{Trigger: r(30, 7, 3, 2), Spike: r(33, 6, 1, 1)},
			{Trigger: r(100, 2, 5, 2), Spike: r(105, 1, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(25, 15), Length: 180, SwingDegrees: 90, Speed: 2.5},
			{Pivot: pt(65, 15), Length: 180, SwingDegrees: 120, Speed: 2.0},
			{Pivot: pt(105, 15), Length: 180, SwingDegrees: 180, Speed: 2.8},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(110, 14), Speed: 260, MaxTime: 4.5},
			{Spawn: pt(20, 10), Speed: 200, MaxTime: 6},
			{Spawn: pt(70, 12), Speed: 240, MaxTime: 4},
		},
		Disappear: []Disappear{
			{Trigger: r(45, 10, 2, 2), Platform: r(45, 9, 8, 1)},
			{Trigger: r(75, 4, 2, 2), Platform: r(75, 3, 8, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(50, 16, 2, 2), SlamHeight: 550},
			{Rect: r(80, 16, 2, 2), SlamHeight: 500},
			{Rect: r(110, 16, 2, 2), SlamHeight: 600},
		},
	},
	{
		ID: 10, Name: "Level 10: Betrayal",
		Spawn: pt(2, 2),
		Goal:  r(140, 8, 2, 4),
		Platforms: []common.Rect{
			r(0, 1, 12, 1),
			r(18, 3, 4, 1), r(28, 5, 4, 1), r(38, 7, 4, 1),
			r(50, 4, 10, 1), r(70, 6, 10, 1), r(90, 8, 10, 1),
			r(110, 3, 10, 1), r(130, 8, 20, 1),
		},
		StaticTraps: []common.Rect{r(12, 1, 128, 1)},
		Oscillators: []Oscillator{
			{Rect: r(15, 6, 1, 1), Axis: hazard.AxisY, Amplitude: 80, Speed: 4.0},
			{Rect: r(45, 9, 1, 1), Axis: hazard.AxisX, Amplitude: 100, Speed: 3.0},
			{Rect: r(110, 12, 2, 1), Axis: hazard.AxisY, Amplitude: 150, Speed: 5.0},
		},
		Triggers: []Trigger{
			{Trigger: r(50, 5, 3, 2), Spike: r(52, 4, 1, 1)},
			{Trigger: r(90, 9, 3, 2), Spike: r(92, 8, 1, 1)},
			{Trigger: r(130, 9, 3, 2), Spike: r(135, 8, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(60, 15), Length: 140, SwingDegrees: 180, Speed: 1.8},
			{Pivot: pt(100, 15), Length: 140, SwingDegrees: 180, Speed: 2.2},
			{Pivot: pt(30, 12), Length: 120, SwingDegrees: 90, Speed: 3.0},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(120, 10), Speed: 280, MaxTime: 3},
			{Spawn: pt(10, 5), Speed: 220, MaxTime: 5},
		},
		Disappear: []Disappear{
			{Trigger: r(38, 8, 2, 2), Platform: r(38, 7, 4, 1)},
			{Trigger: r(70, 7, 2, 2), Platform: r(70, 6, 10, 1)},
			{Trigger: r(110, 4, 2, 2), Platform: r(110, 3, 10, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(50, 16, 2, 2), SlamHeight: 550},
			{Rect: r(90, 16, 2, 2), SlamHeight: 500},
		},
	},
	{
		ID: 11, Name: "Level 11: Chaos",
		Spawn: pt(2, 2),
		Goal:  r(160, 10, 2, 5),
		Platforms: []common.Rect{
			r(0, 1, 12, 1),
			r(15, 4, 10, 1), r(35, 7, 10, 1), r(55, 10, 10, 1), r(75, 13, 10, 1),
			r(95, 10, 10, 1), r(115, 7, 10, 1), r(135, 4, 10, 1), r(155, 10, 20, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 150, 1)},
		Oscillators: []Oscillator{
			{Rect: r(20, 12, 2, 1), Axis: hazard.AxisY, Amplitude: 120, Speed: 5.0},
			{Rect: r(60, 15, 2, 1), Axis: hazard.AxisX, Amplitude: 150, Speed: 4.0},
			{Rect: r(100, 12, 2, 1), Axis: hazard.AxisY, Amplitude: 120, Speed: 5.0},
			{Rect: r(140, 15, 2, 1), Axis: hazard.AxisX, Amplitude: 120, Speed: 4.5},
		},
		Triggers: []Trigger{
			{Trigger: r(35, 8, 3, 2), Spike: r(37, 7, 1, 1)},
			{Trigger: r(135, 5, 3, 2), Spike: r(137, 4, 1, 1)},
			{Trigger: r(75, 14, 3, 2), Spike: r(78, 13, 1, 1)},
			{Trigger: r(95, 11, 3, 2), Spike: r(98, 10, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(45, 16), Length: 180, SwingDegrees: 180, Speed: 2.0},
			{Pivot: pt(85, 18), Length: 200, SwingDegrees: 360, Speed: 3.0},
			{Pivot: pt(125, 16), Length: 180, SwingDegrees: 180, Speed: 2.0},
			{Pivot: pt(160, 15), Length: 150, SwingDegrees: 90, Speed: 4.0},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(50, 15), Speed: 280, MaxTime: 4},
			{Spawn: pt(140, 15), Speed: 300, MaxTime: 3.5},
			{Spawn: pt(5, 10), Speed: 250, MaxTime: 6},
		},
		Disappear: []Disappear{
			{Trigger: r(75, 14, 2, 2), Platform: r(75, 13, 10, 1)},
			{Trigger: r(55, 11, 2, 2), Platform: r(55, 10, 10, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(35, 18, 2, 2), SlamHeight: 500},
			{Rect: r(115, 18, 2, 2), SlamHeight: 500},
		},
	},
	{
		ID: 12, Name: "Level 12: The Gatekeeper",
		Spawn: pt(2, 2),
		Goal:  r(180, 8, 3, 5),
		Platforms: []common.Rect{
			r(0, 1, 10, 1),
			r(15, 5, 2, 1), r(25, 8, 2, 1), r(35, 11, 2, 1), r(45, 14, 2, 1), r(55, 17, 2, 1),
			r(80, 15, 3, 1), r(105, 12, 3, 1), r(130, 9, 3, 1), r(155, 6, 3, 1),
			r(175, 8, 30, 1),
		},
		StaticTraps: []common.Rect{r(10, 1, 170, 1)},
		Oscillators: []Oscillator{
			{Rect: r(17, 10, 2, 4), Axis: hazard.AxisY, Amplitude: 150, Speed: 4.0},
			{Rect: r(47, 16, 2, 4), Axis: hazard.AxisY, Amplitude: 150, Speed: 4.5},
			{Rect: r(90, 18, 5, 1), Axis: hazard.AxisX, Amplitude: 250, Speed: 3.0},
			{Rect: r(110, 20, 2, 1), Axis: hazard.AxisY, Amplitude: 200, Speed: 3.5},
		},
		Triggers: []Trigger{
			{Trigger: r(175, 9, 5, 2), Spike: r(180, 8, 1, 1)},
			{Trigger: r(80, 16, 3, 2), Spike: r(83, 15, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(140, 18), Length: 250, SwingDegrees: 360, Speed: 5.0},
			{Pivot: pt(160, 15), Length: 200, SwingDegrees: 360, Speed: 4.0},
			{Pivot: pt(60, 20), Length: 180, SwingDegrees: 360, Speed: 3.0},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(5, 6), Speed: 350, MaxTime: 4},
			{Spawn: pt(85, 15), Speed: 380, MaxTime: 3.5},
			{Spawn: pt(150, 10), Speed: 300, MaxTime: 4},
		},
		Disappear: []Disappear{
			{Trigger: r(35, 12, 2, 2), Platform: r(35, 11, 2, 1)},
			{Trigger: r(130, 10, 2, 2), Platform: r(130, 9, 3, 1)},
			{Trigger: r(15, 6, 2, 2), Platform: r(15, 5, 2, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(70, 20, 2, 2), SlamHeight: 650},
			{Rect: r(150, 18, 2, 2), SlamHeight: 600},
			{Rect: r(100, 18, 2, 2), SlamHeight: 550},
		},
	},
	{
		ID: 13, Name: "BOSS: The Devil's Throne",
		Spawn: pt(2, 2),
		Goal:  r(200, 5, 4, 8),
		Platforms: []common.Rect{
			r(0, 1, 15, 1),
			r(20, 4, 6, 1), r(35, 8, 6, 1), r(50, 12, 6, 1), r(70, 15, 20, 1),
			r(100, 12, 10, 1), r(125, 8, 10, 1), r(150, 4, 10, 1), r(175, 1, 40, 1),
		},
		StaticTraps: []common.Rect{r(15, 1, 185, 1)},
		Oscillators: []Oscillator{
			{Rect: r(30, 13, 2, 3), Axis: hazard.AxisY, Amplitude: 200, Speed: 5.0},
			{Rect: r(110, 16, 4, 1), Axis: hazard.AxisX, Amplitude: 300, Speed: 4.0},
			{Rect: r(160, 5, 2, 1), Axis: hazard.AxisY, Amplitude: 150, Speed: 6.0},
			{Rect: r(10, 6, 2, 1), Axis: hazard.AxisY, Amplitude: 40, Speed: 3.0},
		},
		Triggers: []Trigger{
			{Trigger: r(75, 16, 5, 2), Spike: r(78, 15, 1, 1)},
			{Trigger: r(185, 2, 5, 2), Spike: r(190, 1, 1, 1)},
			{Trigger: r(50, 13, 3, 2), Spike: r(53, 12, 1, 1)},
			{Trigger: r(120, 10, 3, 2), Spike: r(125, 8, 1, 1)},
		},
		Axes: []Axe{
			{Pivot: pt(120, 20), Length: 250, SwingDegrees: 360, Speed: 2.5},
			{Pivot: pt(150, 18), Length: 220, SwingDegrees: 360, Speed: 3.0},
			{Pivot: pt(40, 20), Length: 180, SwingDegrees: 180, Speed: 2.0},
			{Pivot: pt(180, 15), Length: 140, SwingDegrees: 90, Speed: 5.0},
		},
		Chasers: []ChaserSpec{
			{Spawn: pt(60, 20), Speed: 320, MaxTime: 6},
			{Spawn: pt(180, 5), Speed: 400, MaxTime: 4},
			{Spawn: pt(10, 10), Speed: 350, MaxTime: 8},
			{Spawn: pt(120, 15), Speed: 380, MaxTime: 5},
		},
		Disappear: []Disappear{
			{Trigger: r(50, 13, 2, 2), Platform: r(50, 12, 6, 1)},
			{Trigger: r(125, 9, 2, 2), Platform: r(125, 8, 10, 1)},
			{Trigger: r(175, 2, 2, 2), Platform: r(175, 1, 10, 1)},
			{Trigger: r(35, 10, 2, 2), Platform: r(35, 8, 6, 1)},
		},
		Crushers: []CrusherSpec{
			{Rect: r(40, 22, 2, 2), SlamHeight: 700},
			{Rect: r(90, 22, 2, 2), SlamHeight: 750},
			{Rect: r(160, 22, 2, 2), SlamHeight: 700},
			{Rect: r(190, 20, 2, 2), SlamHeight: 600},
			{Rect: r(20, 22, 2, 2), SlamHeight: 500},
		},
	},
}
