package terrain

// Candidate is one (background, foreground?) option in the corner
// tilemap. An empty Foreground means no foreground tile.
type Candidate struct {
	Background string
	Foreground string
}

func c(bg string) Candidate            { return Candidate{Background: bg} }
func cf(bg, fg string) Candidate        { return Candidate{Background: bg, Foreground: fg} }

// cornerTilemapSource is the literal corner-code tilemap from §4.5,
// transcribed exhaustively from original_source/demo/python/perlin.py's
// TILEMAP. Key order and grouping (uniform / three-and-one / two-and-two /
// three-way) mirrors the source file's own section comments.
var cornerTilemapSource = map[string][]Candidate{
	// iiii (uniform)
	"gggg": {c("grass_1"), c("grass_2"), c("grass_3"), c("grass_4"), c("grass_5"), c("grass_6"), c("grass_7"), c("grass_8"), c("grass_9")},
	"wwww": {c("water")},
	"rrrr": {c("grass_1")},

	// iiij (three-and-one)
	"gggw": {c("river_corner_north_west")},
	"ggwg": {c("river_corner_north_east")},
	"gwgg": {c("river_corner_south_west")},
	"wggg": {c("river_corner_south_east")},

	"wwwg": {c("river_inv_corner_south_east")},
	"wwgw": {c("river_inv_corner_south_west")},
	"wgww": {c("river_inv_corner_north_east")},
	"gwww": {c("river_inv_corner_north_west")},

	"gggr": {c("rock_north_west")},
	"ggrg": {c("rock_north_east")},
	"grgg": {c("rock_south_west")},
	"rggg": {c("rock_south_east")},

	"wwwr": {cf("water", "rock_north_west_2")},
	"wwrw": {cf("water", "rock_north_east_2")},
	"wrww": {cf("water", "rock_south_west_2")},
	"rwww": {cf("water", "rock_south_east_2")},

	"rrrw": {cf("water", "rock_corner_south_east_2")},
	"rrwr": {cf("water", "rock_corner_south_west_2")},
	"rwrr": {cf("water", "rock_corner_north_east_2")},
	"wrrr": {cf("water", "rock_corner_north_west_2")},

	"rrrg": {c("rock_corner_south_east")},
	"rrgr": {c("rock_corner_south_west")},
	"rgrr": {c("rock_corner_north_east")},
	"grrr": {c("rock_corner_north_west")},

	// iijj (two-and-two)
	"wggw": {c("river_diag_anti")},
	"gwwg": {c("river_diag")},
	"ggww": {c("river_north")},
	"gwgw": {c("river_west")},
	"wgwg": {c("river_east")},
	"wwgg": {c("river_south")},

	"wrrw": {cf("water", "rock_diag_anti_2")},
	"rwwr": {cf("water", "rock_diag_2")},
	"rrww": {cf("water", "rock_south_2")},
	"rwrw": {cf("water", "rock_east_2")},
	"wrwr": {cf("water", "rock_west_2")},
	"wwrr": {cf("water", "rock_north_2")},

	"rggr": {c("rock_diag")},
	"grrg": {c("rock_diag_anti")},
	"ggrr": {c("rock_north")},
	"grgr": {c("rock_west")},
	"rgrg": {c("rock_east")},
	"rrgg": {c("rock_south")},

	// iijk / ijki (three-way)
	"wwgr": {cf("river_south", "rock_north_west_2")},
	"gwrw": {cf("river_west", "rock_north_east_2")},
	"rgww": {cf("river_north", "rock_south_east_2")},
	"wrwg": {cf("river_east", "rock_south_west_2")},

	"wwrg": {cf("river_south", "rock_north_east_2")},
	"rwgw": {cf("river_west", "rock_south_east_2")},
	"grww": {cf("river_north", "rock_south_west_2")},
	"wgwr": {cf("river_east", "rock_north_west_2")},

	"rrwg": {cf("river_east", "rock_south_2")},
	"wrgr": {cf("river_corner_south_east", "rock_west_2")},
	"gwrr": {cf("river_west", "rock_north_2")},
	"rgrw": {cf("river_corner_north_west", "rock_east_2")},

	"rrgw": {cf("river_corner_north_west", "rock_south_2")},
	"grwr": {cf("river_corner_north_east", "rock_west_2")},
	"wgrr": {cf("river_east", "rock_north_2")},
	"rwrg": {cf("river_south", "rock_east_2")},

	"ggwr": {cf("river_corner_north_east", "rock_north_west_2")},
	"wgrg": {cf("river_corner_south_east", "rock_north_east_2")},
	"rwgg": {cf("river_corner_south_west", "rock_south_east_2")},
	"grgw": {cf("river_corner_north_west", "rock_south_west_2")},

	"ggrw": {cf("river_corner_north_west", "rock_north_east_2")},
	"rgwg": {cf("river_corner_north_east", "rock_south_east_2")},
	"wrgg": {cf("river_corner_south_east", "rock_south_west_2")},
	"gwgr": {cf("river_corner_south_west", "rock_north_west_2")},

	"gwrg": {cf("river_corner_south_west", "rock_north_east_2")},
	"rggw": {cf("river_corner_north_west", "rock_south_east_2")},
	"grwg": {cf("river_corner_north_east", "rock_south_west_2")},
	"wggr": {cf("river_corner_south_east", "rock_north_west_2")},

	"wgrw": {cf("river_inv_corner_north_east", "rock_north_east_2")},
	"rwwg": {cf("river_inv_corner_south_east", "rock_south_east_2")},
	"wrgw": {cf("river_inv_corner_south_west", "rock_south_west_2")},
	"gwwr": {cf("river_inv_corner_north_west", "rock_north_west_2")},

	"rwgr": {cf("river_corner_south_west", "rock_diag_2")},
	"grrw": {cf("river_corner_north_west", "rock_diag_anti_2")},
	"rgwr": {cf("river_corner_north_east", "rock_diag_2")},
	"wrrg": {cf("river_corner_south_east", "rock_diag_anti_2")},
}
