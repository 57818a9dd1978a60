package demo

// vertices are x, y pairs.
var vertices = []float64{
	587.833, 271.924, 530.464, 284.878, 508.256, 281.177, 497.153, 255.269,
	624.926, 359.595, 648.903, 394.065, 620.443, 383.995, 669.26, 297.833,
	648.903, 321.891, 650.754, 251.567, 619.293, 510.654, 676.663, 493.998,
	706.272, 501.401, 669.26, 529.16, 602.638, 523.608, 587.833, 179.393,
	573.028, 140.53, 645.202, 159.036, 710.106, 179.216, 630.397, 212.704,
	597.086, 192.348, 471.244, 251.567, 421.277, 270.074, 428.68, 246.015,
	502.704, 97.9661, 517.509, 55.4019, 537.866, 99.8167, 536.016, 175.692,
	495.302, 164.588, 487.899, 85.0117, 310.24, 75.7586, 308.39, 92.4142,
	345.402, 210.854, 360.207, 223.808, 297.286, 258.97, 288.033, 231.211,
	319.493, 190.497, 193.651, 423.675, 245.469, 477.343, 221.41, 488.446,
	147.386, 408.87, 182.548, 382.961, 145.584, 224.311, 175.145, 332.995,
	202.904, 99.8167, 310.24, 62.8043, 695.169, 303.385, 682.214, 284.878,
	598.937, 492.148, 571.177, 501.401, 605.437, 456.366, 621.144, 486.596,
	538.077, 499.891, 395.879, 501.87, 536.407, 524.944, 371.311, 518.056,
	573.028, 94.2648, 582.281, 47.9994, 667.409, 75.7586, 350.954, 447.733,
	363.908, 351.501, 384.265, 351.501, 376.862, 418.123, 373.441, 436.494,
	424.978, 334.845, 421.277, 360.754, 352.804, 320.04, 321.344, 338.546,
	299.136, 283.028, 241.767, 327.443, 234.365, 244.165, 325.228, 486.302,
	300.441, 497.494, 317.643, 447.733, 332.441, 457.494, 524.608, 359.37,
	526.762, 342.248, 366.441, 467.494, 480.497, 434.779, 496.638, 439.381,
	476.441, 468.494, 265.825, 407.019, 184.398, 349.65, 310.24, 112.771,
	267.676, 153.485, 221.41, 171.991, 700.721, 268.223, 397.219, 188.646,
	415.725, 177.543, 465.692, 179.393, 476.796, 207.152, 443.485, 192.348,
	437.933, 170.14, 452.738, 166.439, 460.14, 123.875, 476.796, 149.783,
	189.95, 231.211,
}

var polygons = [][]int{
	{0, 1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19, 20},
	{21, 3, 2, 22, 23},
	{24, 25, 26, 27, 28},
	{25, 24, 29},
	{30, 25, 29, 31},
	{32, 33, 34, 35, 36},
	{37, 38, 39, 40},
	{41, 37, 40},
	{41, 40, 42, 43},
	{44, 45, 30, 31},
	{46, 12, 11, 7, 47},
	{47, 7, 9},
	{48, 10, 14, 49},
	{50, 6, 5, 51, 48},
	{52, 50, 48, 49},
	{53, 52, 49, 54, 55},
	{17, 56, 57, 58, 18},
	{59, 60, 61, 62, 63},
	{64, 65, 61, 66},
	{66, 61, 60, 67, 68},
	{68, 67, 69, 70},
	{68, 70, 35, 34},
	{71, 53, 55, 72},
	{71, 72, 73, 74},
	{4, 6, 75, 76},
	{63, 77, 74, 59},
	{78, 2, 1, 76, 75, 79, 80},
	{78, 80, 63, 62},
	{81, 59, 74, 73},
	{81, 73, 41, 82},
	{44, 31, 83, 84, 85},
	{18, 86, 47, 9, 19},
	{15, 20, 3, 21},
	{23, 22, 87, 88},
	{89, 28, 27, 90, 91},
	{89, 91, 92, 93},
	{36, 94, 95, 93, 92},
	{36, 92, 88},
	{36, 88, 87, 32},
	{36, 35, 85, 84},
	{42, 44, 85, 96},
	{42, 96, 43},
	{41, 43, 82},
}

// outlines are x, y pairs. The first one is the outer boundary.
var outlines = [][]float64{
	{
		221.41, 488.446, 147.386, 408.87, 145.584, 224.311, 202.904, 99.8167,
		310.24, 62.8043, 310.24, 75.7586, 517.509, 55.4019, 537.866, 99.8167,
		536.016, 175.692, 476.796, 207.152, 443.485, 192.348, 437.933, 170.14,
		415.725, 177.543, 428.68, 246.015, 471.244, 251.567, 587.833, 179.393,
		573.028, 140.53, 645.202, 159.036, 573.028, 94.2648, 582.281, 47.9994,
		667.409, 75.7586, 710.106, 179.216, 700.721, 268.223, 682.214, 284.878,
		695.169, 303.385, 706.272, 501.401, 669.26, 529.16, 602.638, 523.608,
		571.177, 501.401, 536.407, 524.944, 371.311, 518.056, 300.441, 497.494,
		317.643, 447.733, 182.548, 382.961, 193.651, 423.675, 245.469, 477.343,
	},
	{
		350.954, 447.733, 363.908, 351.501, 321.344, 338.546, 241.767, 327.443,
		234.365, 244.165, 288.033, 231.211, 221.41, 171.991, 189.95, 231.211,
		175.145, 332.995, 184.398, 349.65, 265.825, 407.019,
	},
	{
		267.676, 153.485, 310.24, 112.771, 308.39, 92.4142, 487.899, 85.0117,
		502.704, 97.9661, 495.302, 164.588, 465.692, 179.393, 452.738, 166.439,
		476.796, 149.783, 460.14, 123.875, 319.493, 190.497,
	},
	{
		397.219, 188.646, 345.402, 210.854, 360.207, 223.808, 297.286, 258.97,
		299.136, 283.028, 352.804, 320.04, 424.978, 334.845, 421.277, 360.754,
		384.265, 351.501, 376.862, 418.123, 480.497, 434.779, 508.256, 281.177,
		421.277, 270.074,
	},
	{
		497.153, 255.269, 597.086, 192.348, 630.397, 212.704, 650.754, 251.567,
		648.903, 321.891, 669.26, 297.833, 676.663, 493.998, 619.293, 510.654,
		598.937, 492.148, 621.144, 486.596, 648.903, 394.065, 624.926, 359.595,
		526.762, 342.248, 530.464, 284.878, 587.833, 271.924,
	},
	{
		325.228, 486.302, 332.441, 457.494, 366.441, 467.494, 373.441, 436.494,
		476.441, 468.494, 496.638, 439.381, 524.608, 359.37, 620.443, 383.995,
		605.437, 456.366, 538.077, 499.891, 395.879, 501.87,
	},
}
