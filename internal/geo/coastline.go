package geo

import "github.com/ctessum/geom"

// Coastlines returns a generalized world coastline (heavily simplified
// from the Natural Earth 1:110m dataset) as lon/lat polylines in the
// range [-180,180]. The resolution is coarse but sufficient for the
// small map panels this tool draws.
func Coastlines() []geom.LineString {
	out := make([]geom.LineString, len(coastlines))
	for i, seg := range coastlines {
		ls := make(geom.LineString, len(seg))
		for j, pt := range seg {
			ls[j] = geom.Point{X: pt[0], Y: pt[1]}
		}
		out[i] = ls
	}
	return out
}

var coastlines = [][][2]float64{
	// Africa
	{
		{-5.9, 35.8}, {0, 36.9}, {10.5, 37.2}, {19.5, 32.2}, {25, 31.6},
		{31, 31.1}, {32.3, 29.9}, {34.8, 27.9}, {37.5, 24}, {38.5, 18},
		{43, 11.5}, {47.5, 11.2}, {51.4, 10.4}, {49, 6.8}, {44.5, 1.5},
		{41, -2}, {40.5, -10.5}, {36.5, -17.5}, {35, -22}, {32.5, -28.5},
		{27, -33.5}, {18.5, -34.8}, {15, -28}, {12, -17.5}, {11.8, -9},
		{9, -1.5}, {9.5, 4}, {5, 5.5}, {0, 5.8}, {-4.5, 5.2}, {-7.5, 4.4},
		{-13.2, 9.5}, {-16.8, 13.5}, {-16.5, 19.5}, {-13.5, 26.5},
		{-9.7, 31}, {-6.2, 34.8}, {-5.9, 35.8},
	},
	// Eurasia
	{
		{-9.5, 38.7}, {-8.8, 43.3}, {-2, 43.4}, {-1.2, 46.3}, {-4.7, 48.4},
		{1.5, 51}, {4, 52}, {8.5, 54.5}, {8, 56.8}, {10.5, 57.5},
		{5.5, 58.5}, {5, 62}, {12, 65.5}, {18, 69.5}, {25.5, 71},
		{31, 70}, {40.5, 66.5}, {44.5, 68}, {53, 68.5}, {60, 69.5},
		{73, 68}, {80, 73}, {95, 76}, {105, 77.5}, {113, 73.5},
		{130, 71.5}, {140, 72.5}, {150, 70.5}, {160, 69.5}, {170, 69.8},
		{178.5, 65.5}, {172, 61}, {164, 60}, {162, 56}, {156.7, 50.9},
		{155, 57}, {151, 59}, {143, 53.5}, {138, 54}, {135, 45},
		{131, 42.5}, {129.5, 37}, {126, 34.5}, {126, 39.5}, {121.5, 39},
		{117.5, 38.5}, {122, 37}, {121, 32}, {121.8, 30.5}, {118, 24.5},
		{113.5, 22}, {108.5, 21.5}, {105.8, 18.5}, {109.2, 13},
		{106.5, 9}, {104.5, 10}, {100, 13.5}, {102.5, 3}, {103.5, 1.3},
		{100.5, 3}, {98, 8.5}, {98.5, 13}, {94.5, 16}, {91.5, 22.5},
		{86.5, 21}, {80.2, 15.8}, {80, 10}, {77.5, 8.1}, {73, 15.5},
		{72.5, 20}, {67, 24}, {61.5, 25}, {56.5, 27}, {51.5, 27.5},
		{48.5, 30}, {50, 26.5}, {56, 26}, {58.5, 23}, {57.8, 19},
		{52, 16.5}, {45, 12.8}, {43.2, 12.7}, {39, 21}, {34.8, 28},
		{32.3, 29.9}, {34.5, 31.5}, {36, 35.5}, {30.5, 36.3}, {27, 37},
		{26, 40}, {22.8, 40.5}, {23, 36.5}, {19.9, 39.7}, {13.5, 45.7},
		{18, 40}, {15.6, 38.1}, {16, 39.9}, {10, 44}, {8, 43.8},
		{5.2, 43.3}, {3, 41.5}, {0, 38.7}, {-2.1, 36.7}, {-5.3, 36.1},
		{-7, 37.2}, {-9, 37}, {-9.5, 38.7},
	},
	// North and Central America
	{
		{-79.5, 8.9}, {-85.2, 10}, {-87.5, 13}, {-95, 16}, {-105, 19.8},
		{-110.2, 23.5}, {-114.2, 27.8}, {-117.2, 32.6}, {-122.4, 37.7},
		{-124, 43.5}, {-124.7, 48.4}, {-128, 51}, {-132.5, 55},
		{-140, 59.5}, {-146, 60.8}, {-152, 59}, {-158, 56}, {-165, 54.2},
		{-161.5, 58.5}, {-166, 61.5}, {-165.5, 64.5}, {-161, 64},
		{-166.5, 68.3}, {-161, 70.3}, {-155.5, 71.2}, {-145, 70},
		{-135, 69.3}, {-128, 69.7}, {-115, 68}, {-108, 67.5},
		{-96, 66.5}, {-90, 65}, {-86.5, 67}, {-82, 66.3}, {-81.5, 62.5},
		{-93, 58}, {-92.5, 56.5}, {-85, 55.3}, {-79, 54.5}, {-77, 58},
		{-69.5, 57.8}, {-64, 58.5}, {-60, 55.5}, {-55.5, 52},
		{-52.7, 47.5}, {-56, 46}, {-65, 45}, {-70.8, 42.3},
		{-73.9, 40.6}, {-76, 35}, {-80.5, 32}, {-80, 26.5}, {-82.5, 28},
		{-84, 30}, {-89.5, 29.2}, {-94, 29.5}, {-97.3, 26}, {-97.8, 22},
		{-95.5, 18.8}, {-91, 18.5}, {-90.5, 21.2}, {-87, 21.5},
		{-88.5, 17.5}, {-86, 15.8}, {-83.2, 14.8}, {-83.5, 10.8},
		{-81.5, 9}, {-79.5, 9.5}, {-79.5, 8.9},
	},
	// South America
	{
		{-77.2, 8.4}, {-79, 4.5}, {-80.8, -0.5}, {-81.2, -5},
		{-77.2, -12}, {-75.2, -15.3}, {-70.3, -18.4}, {-70.6, -25},
		{-71.6, -33}, {-73.5, -39.5}, {-73.5, -45}, {-74.5, -50},
		{-71.2, -54}, {-68.3, -54.9}, {-65.2, -51}, {-67.5, -46},
		{-65, -41}, {-62.2, -38.8}, {-57.5, -38}, {-56, -34.8},
		{-53.5, -33.5}, {-48.6, -28.5}, {-46.4, -24}, {-41, -22.9},
		{-39, -17.8}, {-37, -11}, {-34.8, -8}, {-35.2, -5.5},
		{-38.5, -3.7}, {-44.3, -2.5}, {-49.9, -0.2}, {-52, 4},
		{-55, 5.9}, {-61, 8.6}, {-64.2, 10.6}, {-68.2, 10.5},
		{-71.6, 11.7}, {-75.3, 10.9}, {-77.2, 8.4},
	},
	// Australia
	{
		{115.1, -34.4}, {113.7, -26.5}, {114.2, -22}, {117, -20.7},
		{122.3, -18.1}, {126, -14}, {129, -14.9}, {131, -12.3},
		{136.5, -12}, {135.5, -14.9}, {140, -17.7}, {142, -10.9},
		{144.5, -14.2}, {146.3, -18.9}, {149, -21.1}, {153.2, -27.5},
		{151.5, -33.3}, {150, -37.5}, {146.5, -38.8}, {143.5, -38.8},
		{140.5, -38}, {137.8, -35}, {135.7, -34.9}, {132, -32},
		{128, -32.3}, {124, -33}, {119, -34.5}, {115.1, -34.4},
	},
	// Antarctica
	{
		{-180, -71}, {-150, -75.5}, {-120, -74}, {-90, -73}, {-62, -66},
		{-58, -64}, {-60, -68.5}, {-75, -72.5}, {-60, -74}, {-45, -78},
		{-30, -76}, {0, -70}, {20, -70}, {45, -67}, {70, -68.5},
		{95, -66.5}, {115, -66.8}, {135, -66}, {145, -67}, {170, -72},
		{180, -71},
	},
	// Greenland
	{
		{-43.5, 60}, {-48.5, 61}, {-53, 65.5}, {-54.8, 70}, {-52, 75},
		{-57.5, 76.2}, {-61, 76.2}, {-68, 76}, {-58, 81.5}, {-44, 82.8},
		{-32, 83.5}, {-25, 82}, {-19.5, 81.5}, {-21, 76}, {-22, 70},
		{-29.5, 68.2}, {-33, 67.5}, {-40.5, 64.5}, {-43.5, 60},
	},
	// Madagascar
	{
		{44.2, -16.2}, {47.2, -14.8}, {49.3, -12.3}, {50.2, -15.5},
		{49.5, -17.5}, {47.1, -24.9}, {45.2, -25.6}, {43.3, -22.3},
		{44.2, -16.2},
	},
	// British Isles
	{
		{-5.2, 49.9}, {-4.5, 53.4}, {-5, 56}, {-5.8, 57.8}, {-3.1, 58.6},
		{-1.8, 57.5}, {0.2, 53}, {1.6, 52.1}, {1.3, 51.1}, {-5.2, 49.9},
	},
	// Japan
	{
		{130.6, 31.1}, {131.5, 33.5}, {132.5, 33.9}, {135, 33.5},
		{136.9, 34.7}, {140, 35.5}, {140.9, 38}, {141.5, 40.5},
		{140, 41.5}, {141, 42.6}, {143.5, 42.5}, {145.5, 43.3},
		{142, 45.4}, {140.8, 43}, {139.5, 38.5}, {136.8, 37},
		{132, 35.5}, {130.6, 31.1},
	},
	// New Guinea
	{
		{131, -0.9}, {134.5, -2.8}, {137.5, -1.6}, {141, -2.6},
		{145.8, -4.9}, {147.5, -6.1}, {150, -10.3}, {146.5, -9},
		{143, -9.1}, {139, -7.5}, {135, -4.5}, {132.5, -3}, {131, -0.9},
	},
	// Borneo
	{
		{109.2, 0}, {110, -2.2}, {113, -3.4}, {116.2, -4}, {116.5, -1},
		{118.8, 0.9}, {117.5, 4.2}, {117, 6.9}, {115, 5}, {111.5, 2.7},
		{109.2, 0},
	},
	// Sumatra
	{
		{95.3, 5.6}, {98, 3.5}, {100.3, 0}, {103, -2.5}, {106, -6},
		{104.5, -5.5}, {101.5, -2.5}, {99, 0.5}, {96.5, 3.8}, {95.3, 5.6},
	},
}
