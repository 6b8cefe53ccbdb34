package terrain

// forestTilemapSource is the literal forest-mask tilemap from §4.6,
// transcribed exhaustively from
// original_source/demo/python/perlin.py's FOREST_TILEMAP. Every key has a
// '1' center bit (row-major position 4), per §3's invariant.
var forestTilemapSource = map[string][]string{
	// full forest
	"111111111": {"forest"},

	// exactly 4 in the corners
	"000011011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"000110110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"011011000": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"110110000": {"forest_corner_south_east", "forest_corner_in_south_east"},

	"000110111": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"000111110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"001110110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"001110111": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"001111110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"010110110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"010110111": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"010111110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"011110110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"011110111": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"100110110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"100110111": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"100111110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"101110110": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"101110111": {"forest_corner_north_east", "forest_corner_in_north_east"},
	"101111110": {"forest_corner_north_east", "forest_corner_in_north_east"},

	"011011001": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011011010": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011011100": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011011101": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011011110": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011111000": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011111001": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011111010": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011111100": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"011111101": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"111011000": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"111011001": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"111011010": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"111011100": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"111011101": {"forest_corner_south_west", "forest_corner_in_south_west"},
	"111011110": {"forest_corner_south_west", "forest_corner_in_south_west"},

	"110110001": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110110010": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110110011": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110110100": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110110101": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110111000": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110111001": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110111010": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110111100": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"110111101": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"111110000": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"111110001": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"111110010": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"111110011": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"111110100": {"forest_corner_south_east", "forest_corner_in_south_east"},
	"111110101": {"forest_corner_south_east", "forest_corner_in_south_east"},

	"000011111": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"000111011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"001011011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"001011111": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"001111011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"010011011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"010011111": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"010111011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"100011011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"100011111": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"100111011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"101011011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"101011111": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"101111011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"110011011": {"forest_corner_north_west", "forest_corner_in_north_west"},
	"110011111": {"forest_corner_north_west", "forest_corner_in_north_west"},

	// exact cardinal directions
	"000111111": {"forest_north"},
	"111111000": {"forest_south"},
	"110110110": {"forest_east"},
	"011011011": {"forest_west"},

	"001111111": {"forest_north"},
	"010111111": {"forest_north"},
	"101111111": {"forest_north"},
	"100111111": {"forest_north"},

	"111111001": {"forest_south"},
	"111111010": {"forest_south"},
	"111111101": {"forest_south"},
	"111111100": {"forest_south"},

	"110110111": {"forest_east"},
	"110111110": {"forest_east"},
	"111110110": {"forest_east"},
	"111110111": {"forest_east"},

	"011011111": {"forest_west"},
	"011111011": {"forest_west"},
	"111011011": {"forest_west"},
	"111011111": {"forest_west"},

	"011111111": {"forest_corner_inv_north_west"},
	"110111111": {"forest_corner_inv_north_east"},
	"111111110": {"forest_corner_inv_south_east"},
	"111111011": {"forest_corner_inv_south_west"},

	"110111011": {"forest_diag"},
	"011111110": {"forest_diag_anti"},

	// 3 or less
	"000010000": {"tree_1", "tree_2", "tree_3"},
	"000010001": {"tree_1", "tree_2", "tree_3"},
	"000010010": {"tree_1", "tree_2", "tree_3"},
	"000010011": {"tree_1", "tree_2", "tree_3"},
	"000010100": {"tree_1", "tree_2", "tree_3"},
	"000010101": {"tree_1", "tree_2", "tree_3"},
	"000010110": {"tree_1", "tree_2", "tree_3"},
	"000011000": {"tree_1", "tree_2", "tree_3"},
	"000011001": {"tree_1", "tree_2", "tree_3"},
	"000011010": {"tree_1", "tree_2", "tree_3"},
	"000011100": {"tree_1", "tree_2", "tree_3"},
	"000110000": {"tree_1", "tree_2", "tree_3"},
	"000110001": {"tree_1", "tree_2", "tree_3"},
	"000110010": {"tree_1", "tree_2", "tree_3"},
	"000110100": {"tree_1", "tree_2", "tree_3"},
	"000111000": {"tree_1", "tree_2", "tree_3"},
	"001010000": {"tree_1", "tree_2", "tree_3"},
	"001010001": {"tree_1", "tree_2", "tree_3"},
	"001010010": {"tree_1", "tree_2", "tree_3"},
	"001010100": {"tree_1", "tree_2", "tree_3"},
	"001011000": {"tree_1", "tree_2", "tree_3"},
	"001110000": {"tree_1", "tree_2", "tree_3"},
	"010010000": {"tree_1", "tree_2", "tree_3"},
	"010010001": {"tree_1", "tree_2", "tree_3"},
	"010010010": {"tree_1", "tree_2", "tree_3"},
	"010010100": {"tree_1", "tree_2", "tree_3"},
	"010011000": {"tree_1", "tree_2", "tree_3"},
	"010110000": {"tree_1", "tree_2", "tree_3"},
	"011010000": {"tree_1", "tree_2", "tree_3"},
	"100010000": {"tree_1", "tree_2", "tree_3"},
	"100010001": {"tree_1", "tree_2", "tree_3"},
	"100010010": {"tree_1", "tree_2", "tree_3"},
	"100010100": {"tree_1", "tree_2", "tree_3"},
	"100011000": {"tree_1", "tree_2", "tree_3"},
	"100110000": {"tree_1", "tree_2", "tree_3"},
	"101010000": {"tree_1", "tree_2", "tree_3"},
	"110010000": {"tree_1", "tree_2", "tree_3"},

	// exactly 4 without the corners
	"000010111": {"tree_1", "tree_2", "tree_3"},
	"000011101": {"tree_1", "tree_2", "tree_3"},
	"000011110": {"tree_1", "tree_2", "tree_3"},
	"000110011": {"tree_1", "tree_2", "tree_3"},
	"000110101": {"tree_1", "tree_2", "tree_3"},
	"000111001": {"tree_1", "tree_2", "tree_3"},
	"000111010": {"tree_1", "tree_2", "tree_3"},
	"000111100": {"tree_1", "tree_2", "tree_3"},
	"001010011": {"tree_1", "tree_2", "tree_3"},
	"001010101": {"tree_1", "tree_2", "tree_3"},
	"001010110": {"tree_1", "tree_2", "tree_3"},
	"001011001": {"tree_1", "tree_2", "tree_3"},
	"001011010": {"tree_1", "tree_2", "tree_3"},
	"001011100": {"tree_1", "tree_2", "tree_3"},
	"001110001": {"tree_1", "tree_2", "tree_3"},
	"001110010": {"tree_1", "tree_2", "tree_3"},
	"001110100": {"tree_1", "tree_2", "tree_3"},
	"001111000": {"tree_1", "tree_2", "tree_3"},
	"010010011": {"tree_1", "tree_2", "tree_3"},
	"010010101": {"tree_1", "tree_2", "tree_3"},
	"010010110": {"tree_1", "tree_2", "tree_3"},
	"010011001": {"tree_1", "tree_2", "tree_3"},
	"010011010": {"tree_1", "tree_2", "tree_3"},
	"010011100": {"tree_1", "tree_2", "tree_3"},
	"010110001": {"tree_1", "tree_2", "tree_3"},
	"010110010": {"tree_1", "tree_2", "tree_3"},
	"010110100": {"tree_1", "tree_2", "tree_3"},
	"010111000": {"tree_1", "tree_2", "tree_3"},
	"011010001": {"tree_1", "tree_2", "tree_3"},
	"011010010": {"tree_1", "tree_2", "tree_3"},
	"011010100": {"tree_1", "tree_2", "tree_3"},
	"011110000": {"tree_1", "tree_2", "tree_3"},
	"100010011": {"tree_1", "tree_2", "tree_3"},
	"100010101": {"tree_1", "tree_2", "tree_3"},
	"100010110": {"tree_1", "tree_2", "tree_3"},
	"100011001": {"tree_1", "tree_2", "tree_3"},
	"100011010": {"tree_1", "tree_2", "tree_3"},
	"100011100": {"tree_1", "tree_2", "tree_3"},
	"100110001": {"tree_1", "tree_2", "tree_3"},
	"100110010": {"tree_1", "tree_2", "tree_3"},
	"100110100": {"tree_1", "tree_2", "tree_3"},
	"100111000": {"tree_1", "tree_2", "tree_3"},
	"101010001": {"tree_1", "tree_2", "tree_3"},
	"101010010": {"tree_1", "tree_2", "tree_3"},
	"101010100": {"tree_1", "tree_2", "tree_3"},
	"101011000": {"tree_1", "tree_2", "tree_3"},
	"101110000": {"tree_1", "tree_2", "tree_3"},
	"110010001": {"tree_1", "tree_2", "tree_3"},
	"110010010": {"tree_1", "tree_2", "tree_3"},
	"110010100": {"tree_1", "tree_2", "tree_3"},
	"110011000": {"tree_1", "tree_2", "tree_3"},
	"111010000": {"tree_1", "tree_2", "tree_3"},

	// exactly 5 without the ones grouped together
	"000111101": {"tree_1", "tree_2", "tree_3"},
	"001010111": {"tree_1", "tree_2", "tree_3"},
	"001011101": {"tree_1", "tree_2", "tree_3"},
	"001011110": {"tree_1", "tree_2", "tree_3"},
	"001110011": {"tree_1", "tree_2", "tree_3"},
	"001110101": {"tree_1", "tree_2", "tree_3"},
	"001111001": {"tree_1", "tree_2", "tree_3"},
	"001111010": {"tree_1", "tree_2", "tree_3"},
	"001111100": {"tree_1", "tree_2", "tree_3"},
	"010010111": {"tree_1", "tree_2", "tree_3"},
	"010011101": {"tree_1", "tree_2", "tree_3"},
	"010011110": {"tree_1", "tree_2", "tree_3"},
	"010110011": {"tree_1", "tree_2", "tree_3"},
	"010110101": {"tree_1", "tree_2", "tree_3"},
	"010111001": {"tree_1", "tree_2", "tree_3"},
	"010111010": {"tree_1", "tree_2", "tree_3"},
	"010111100": {"tree_1", "tree_2", "tree_3"},
	"011010011": {"tree_1", "tree_2", "tree_3"},
	"011010101": {"tree_1", "tree_2", "tree_3"},
	"011010110": {"tree_1", "tree_2", "tree_3"},
	"011110001": {"tree_1", "tree_2", "tree_3"},
	"011110010": {"tree_1", "tree_2", "tree_3"},
	"011110100": {"tree_1", "tree_2", "tree_3"},
	"100010111": {"tree_1", "tree_2", "tree_3"},
	"100011101": {"tree_1", "tree_2", "tree_3"},
	"100011110": {"tree_1", "tree_2", "tree_3"},
	"100110011": {"tree_1", "tree_2", "tree_3"},
	"100110101": {"tree_1", "tree_2", "tree_3"},
	"100111001": {"tree_1", "tree_2", "tree_3"},
	"100111010": {"tree_1", "tree_2", "tree_3"},
	"100111100": {"tree_1", "tree_2", "tree_3"},
	"101010011": {"tree_1", "tree_2", "tree_3"},
	"101010101": {"tree_1", "tree_2", "tree_3"},
	"101010110": {"tree_1", "tree_2", "tree_3"},
	"101011001": {"tree_1", "tree_2", "tree_3"},
	"101011010": {"tree_1", "tree_2", "tree_3"},
	"101011100": {"tree_1", "tree_2", "tree_3"},
	"101110001": {"tree_1", "tree_2", "tree_3"},
	"101110010": {"tree_1", "tree_2", "tree_3"},
	"101110100": {"tree_1", "tree_2", "tree_3"},
	"101111000": {"tree_1", "tree_2", "tree_3"},
	"110010011": {"tree_1", "tree_2", "tree_3"},
	"110010101": {"tree_1", "tree_2", "tree_3"},
	"110010110": {"tree_1", "tree_2", "tree_3"},
	"110011001": {"tree_1", "tree_2", "tree_3"},
	"110011010": {"tree_1", "tree_2", "tree_3"},
	"110011100": {"tree_1", "tree_2", "tree_3"},
	"111010001": {"tree_1", "tree_2", "tree_3"},
	"111010010": {"tree_1", "tree_2", "tree_3"},
	"111010100": {"tree_1", "tree_2", "tree_3"},

	// 6 or more
	"001111101": {"tree_1", "tree_2", "tree_3"},
	"010111101": {"tree_1", "tree_2", "tree_3"},
	"011010111": {"tree_1", "tree_2", "tree_3"},
	"011110011": {"tree_1", "tree_2", "tree_3"},
	"011110101": {"tree_1", "tree_2", "tree_3"},
	"100111101": {"tree_1", "tree_2", "tree_3"},
	"101010111": {"tree_1", "tree_2", "tree_3"},
	"101011101": {"tree_1", "tree_2", "tree_3"},
	"101011110": {"tree_1", "tree_2", "tree_3"},
	"101110011": {"tree_1", "tree_2", "tree_3"},
	"101110101": {"tree_1", "tree_2", "tree_3"},
	"101111001": {"tree_1", "tree_2", "tree_3"},
	"101111010": {"tree_1", "tree_2", "tree_3"},
	"101111100": {"tree_1", "tree_2", "tree_3"},
	"101111101": {"tree_1", "tree_2", "tree_3"},
	"110010111": {"tree_1", "tree_2", "tree_3"},
	"110011101": {"tree_1", "tree_2", "tree_3"},
	"110011110": {"tree_1", "tree_2", "tree_3"},
	"111010011": {"tree_1", "tree_2", "tree_3"},
	"111010101": {"tree_1", "tree_2", "tree_3"},
	"111010110": {"tree_1", "tree_2", "tree_3"},
	"111010111": {"tree_1", "tree_2", "tree_3"},
}
