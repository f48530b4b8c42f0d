// Code generated from the modulus table in spec section 6 by an offline
// table generator (not part of the build). DO NOT EDIT directly.
package ntt64

// layerConsts holds the compile-time constants for one NTT64 layer: its
// modulus, the modular inverse of N=64, the Barrett reduction constant,
// the six per-stage twiddles, and the psi/psi-inverse power tables used
// for the negacyclic pre/post twist.
type layerConsts struct {
	Q         uint64
	NInv      uint64
	Barrett   uint64
	TwFwd     [6]uint64
	TwInv     [6]uint64
	PsiPow    [64]uint64
	PsiInvPow [64]uint64
}

var layers = [NumLayers]layerConsts{
	{ // q = 257
		Q:       257,
		NInv:    253,
		Barrett: 71777214294589695,
		TwFwd:   [6]uint64{256, 241, 64, 249, 136, 81},
		TwInv:   [6]uint64{256, 16, 253, 32, 240, 165},
		PsiPow: [64]uint64{
			1, 9, 81, 215, 136, 196, 222, 199,
			249, 185, 123, 79, 197, 231, 23, 207,
			64, 62, 44, 139, 223, 208, 73, 143,
			2, 18, 162, 173, 15, 135, 187, 141,
			241, 113, 246, 158, 137, 205, 46, 157,
			128, 124, 88, 21, 189, 159, 146, 29,
			4, 36, 67, 89, 30, 13, 117, 25,
			225, 226, 235, 59, 17, 153, 92, 57,
		},
		PsiInvPow: [64]uint64{
			1, 200, 165, 104, 240, 198, 22, 31,
			32, 232, 140, 244, 227, 168, 190, 221,
			253, 228, 111, 98, 68, 236, 169, 133,
			129, 100, 211, 52, 120, 99, 11, 144,
			16, 116, 70, 122, 242, 84, 95, 239,
			255, 114, 184, 49, 34, 118, 213, 195,
			193, 50, 234, 26, 60, 178, 134, 72,
			8, 58, 35, 61, 121, 42, 176, 248,
		},
	},
	{ // q = 3329
		Q:       3329,
		NInv:    3277,
		Barrett: 5541226816974932,
		TwFwd:   [6]uint64{3328, 1729, 749, 2699, 2532, 1996},
		TwInv:   [6]uint64{3328, 1600, 3289, 1897, 2786, 1426},
		PsiPow: [64]uint64{
			1, 1915, 1996, 648, 2532, 1756, 450, 2868,
			2699, 1977, 882, 1227, 2760, 2277, 2794, 807,
			749, 2865, 283, 2647, 2267, 289, 821, 927,
			848, 2697, 1476, 219, 3260, 1025, 2094, 1894,
			1729, 2009, 2240, 1848, 193, 76, 2393, 1891,
			2642, 2679, 296, 910, 1583, 2055, 447, 452,
			40, 33, 3273, 2617, 1410, 331, 1355, 1534,
			1432, 2513, 1990, 2474, 543, 1197, 1903, 2319,
		},
		PsiInvPow: [64]uint64{
			1, 1010, 1426, 2132, 2786, 855, 1339, 816,
			1897, 1795, 1974, 2998, 1919, 712, 56, 3296,
			3289, 2877, 2882, 1274, 1746, 2419, 3033, 650,
			687, 1438, 936, 3253, 3136, 1481, 1089, 1320,
			1600, 1435, 1235, 2304, 69, 3110, 1853, 632,
			2481, 2402, 2508, 3040, 1062, 682, 3046, 464,
			2580, 2522, 535, 1052, 569, 2102, 2447, 1352,
			630, 461, 2879, 1573, 797, 2681, 1333, 1414,
		},
	},
	{ // q = 10753
		Q:       10753,
		NInv:    10585,
		Barrett: 1715497449428954,
		TwFwd:   [6]uint64{10752, 4489, 10686, 4679, 4631, 1641},
		TwInv:   [6]uint64{10752, 6264, 10432, 3461, 5921, 6402},
		PsiPow: [64]uint64{
			1, 7391, 1641, 10000, 4631, 922, 7853, 7582,
			4679, 841, 597, 3697, 1154, 2085, 1186, 2031,
			10686, 10194, 8336, 7439, 1560, 2744, 746, 8150,
			9097, 8171, 3013, 10373, 8706, 94, 6562, 3712,
			4489, 5194, 644, 6978, 3010, 9706, 3783, 2353,
			3422, 946, 2436, 3954, 8113, 4455, 1219, 9368,
			321, 6851, 10617, 5606, 2637, 5631, 4611, 3644,
			7292, 1136, 8836, 3907, 4832, 2599, 4351, 6771,
		},
		PsiInvPow: [64]uint64{
			1, 3982, 6402, 8154, 5921, 6846, 1917, 9617,
			3461, 7109, 6142, 5122, 8116, 5147, 136, 3902,
			10432, 1385, 9534, 6298, 2640, 6799, 8317, 9807,
			7331, 8400, 6970, 1047, 7743, 3775, 10109, 5559,
			6264, 7041, 4191, 10659, 2047, 380, 7740, 2582,
			1656, 2603, 10007, 8009, 9193, 3314, 2417, 559,
			67, 8722, 9567, 8668, 9599, 7056, 10156, 9912,
			6074, 3171, 2900, 9831, 6122, 753, 9112, 3362,
		},
	},
	{ // q = 43777
		Q:       43777,
		NInv:    43093,
		Barrett: 421379813000195,
		TwFwd:   [6]uint64{43776, 20924, 37159, 17026, 16527, 22287},
		TwInv:   [6]uint64{43776, 22853, 8381, 25663, 20825, 3021},
		PsiPow: [64]uint64{
			1, 30304, 22287, 37469, 16527, 25328, 41348, 24498,
			17026, 182, 43203, 28750, 33923, 31078, 13111, 39469,
			37159, 34342, 33124, 26863, 23037, 1429, 8963, 22244,
			3930, 21280, 33910, 31119, 29819, 33919, 41193, 11517,
			20924, 14828, 20584, 42840, 16425, 42487, 701, 11259,
			38575, 43346, 28299, 25243, 4574, 12514, 27882, 40028,
			35396, 16330, 9112, 28509, 41418, 705, 1144, 40169,
			18114, 6853, 39001, 38635, 22952, 8432, 40756, 33100,
		},
		PsiInvPow: [64]uint64{
			1, 10677, 3021, 35345, 20825, 5142, 4776, 36924,
			25663, 3608, 42633, 43072, 2359, 15268, 34665, 27447,
			8381, 3749, 15895, 31263, 39203, 18534, 15478, 431,
			5202, 32518, 43076, 1290, 27352, 937, 23193, 28949,
			22853, 32260, 2584, 9858, 13958, 12658, 9867, 22497,
			39847, 21533, 34814, 42348, 20740, 16914, 10653, 9435,
			6618, 4308, 30666, 12699, 9854, 15027, 574, 43595,
			26751, 19279, 2429, 18449, 27250, 6308, 21490, 13473,
		},
	},
	{ // q = 64513
		Q:       64513,
		NInv:    63505,
		Barrett: 285938401154954,
		TwFwd:   [6]uint64{64512, 35676, 20201, 39866, 41871, 15914},
		TwInv:   [6]uint64{64512, 28837, 48360, 13268, 22985, 59093},
		PsiPow: [64]uint64{
			1, 12565, 15914, 33623, 41871, 5600, 44830, 25947,
			39866, 37358, 6682, 27917, 19924, 34620, 53654, 1660,
			20201, 31423, 10435, 25359, 6128, 34311, 41849, 51735,
			17287, 60397, 21886, 43184, 52630, 37700, 46054, 51413,
			35676, 32616, 33464, 43939, 55794, 53352, 13297, 52648,
			5818, 9941, 11497, 15198, 4390, 1735, 59394, 63739,
			16153, 4547, 39050, 41885, 52484, 9574, 45078, 45443,
			51245, 53685, 4097, 61944, 41528, 18176, 5420, 41085,
		},
		PsiInvPow: [64]uint64{
			1, 23428, 59093, 46337, 22985, 2569, 60416, 10828,
			13268, 19070, 19435, 54939, 12029, 22628, 25463, 59966,
			48360, 774, 5119, 62778, 60123, 49315, 53016, 54572,
			58695, 11865, 51216, 11161, 8719, 20574, 31049, 31897,
			28837, 13100, 18459, 26813, 11883, 21329, 42627, 4116,
			47226, 12778, 22664, 30202, 58385, 39154, 54078, 33090,
			44312, 62853, 10859, 29893, 44589, 36596, 57831, 27155,
			24647, 38566, 19683, 58913, 22642, 30890, 48599, 51948,
		},
	},
	{ // q = 686593
		Q:       686593,
		NInv:    675865,
		Barrett: 26867072739904,
		TwFwd:   [6]uint64{686592, 149740, 308987, 514852, 192219, 92055},
		TwInv:   [6]uint64{686592, 536853, 415704, 579255, 403221, 604982},
		PsiPow: [64]uint64{
			1, 75445, 92055, 201280, 192219, 431702, 531842, 324770,
			514852, 383351, 559256, 555884, 194754, 125330, 449647, 430971,
			308987, 318679, 310074, 622827, 131281, 391020, 349062, 21482,
			350010, 137670, 420839, 78256, 10713, 122324, 237667, 410620,
			149740, 619671, 274632, 294279, 207907, 326530, 99010, 364203,
			530068, 370975, 618416, 340991, 112878, 267731, 85828, 34877,
			270889, 93367, 315728, 128011, 172757, 56946, 278569, 26475,
			107338, 437568, 239727, 657302, 283372, 554299, 81611, 462464,
		},
		PsiInvPow: [64]uint64{
			1, 224129, 604982, 132294, 403221, 29291, 446866, 249025,
			579255, 660118, 408024, 629647, 513836, 558582, 370865, 593226,
			415704, 651716, 600765, 418862, 573715, 345602, 68177, 315618,
			156525, 322390, 587583, 360063, 478686, 392314, 411961, 66922,
			536853, 275973, 448926, 564269, 675880, 608337, 265754, 548923,
			336583, 665111, 337531, 295573, 555312, 63766, 376519, 367914,
			377606, 255622, 236946, 561263, 491839, 130709, 127337, 303242,
			171741, 361823, 154751, 254891, 494374, 485313, 594538, 611148,
		},
	},
	{ // q = 2818573313
		Q:       2818573313,
		NInv:    2774533105,
		Barrett: 6544709690,
		TwFwd:   [6]uint64{2818573312, 678987471, 1315489751, 1317825540, 227013343, 76152835},
		TwInv:   [6]uint64{2818573312, 2139585842, 1152851736, 1376085826, 1221892762, 2693805399},
		PsiPow: [64]uint64{
			1, 1937063832, 76152835, 1557849399, 227013343, 1186412631, 1511285157, 2695558944,
			1317825540, 1875200075, 2525047000, 2623988841, 1072524612, 2390136231, 1007515042, 1377121834,
			1315489751, 666276137, 95371989, 1466964160, 1181893362, 5660407, 987745255, 349253503,
			11792678, 342413901, 488674009, 696644753, 230148589, 1355634142, 855836650, 106891284,
			678987471, 762566384, 406225956, 1794923422, 1166007134, 1766639302, 2088348109, 108927320,
			1388422478, 958180314, 1484556778, 2570446152, 655723964, 1903901480, 1647713318, 2303349723,
			1665721577, 1373240375, 1977972379, 342824182, 1950530756, 872766783, 2462097263, 861885440,
			1442487487, 2204983470, 2412975673, 1080030273, 1596680551, 2707644020, 124767914, 2571349714,
		},
		PsiInvPow: [64]uint64{
			1, 247223599, 2693805399, 110929293, 1221892762, 1738543040, 405597640, 613589843,
			1376085826, 1956687873, 356476050, 1945806530, 868042557, 2475749131, 840600934, 1445332938,
			1152851736, 515223590, 1170859995, 914671833, 2162849349, 248127161, 1334016535, 1860392999,
			1430150835, 2709645993, 730225204, 1051934011, 1652566179, 1023649891, 2412347357, 2056006929,
			2139585842, 2711682029, 1962736663, 1462939171, 2588424724, 2121928560, 2329899304, 2476159412,
			2806780635, 2469319810, 1830828058, 2812912906, 1636679951, 1351609153, 2723201324, 2152297176,
			1503083562, 1441451479, 1811058271, 428437082, 1746048701, 194584472, 293526313, 943373238,
			1500747773, 123014369, 1307288156, 1632160682, 2591559970, 1260723914, 2742420478, 881509481,
		},
	},
}
