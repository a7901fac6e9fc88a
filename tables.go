// tables.go - precomputed lookup tables: velocity curves, pitch tables,
// envelope curve, drum exclusion pairs.

package sw10

// pitchCoarseTable is the 256-entry coarse pitch table (octave-scaled
// phase increment components), indexed by the high byte of the
// pitch-derived index in setFreq. Entries 112..215 double as the LFO
// increment band (see lfoIncrementTable).
var pitchCoarseTable = [256]uint32{
	     0,      0,      0,      0,      0,      0,      0,      0,
	     0,      0,      0,      0,      0,      0,      0,      0,
	     0,      0,      0,      0,      0,      0,      0,      0,
	     0,      0,      0,      0,      0,      0,      0,      0,
	     0,      0,      0,      0,      0,      0,      0,      0,
	     0,      0,      0,      0,      0,      0,      0,      0,
	     0,      0,      0,      0,      0,      0,      0,      0,
	     0,      0,      0,      0,      1,      1,      1,      1,
	     1,      1,      1,      1,      1,      1,      1,      1,
	     2,      2,      2,      2,      2,      2,      2,      2,
	     3,      3,      3,      3,      4,      4,      4,      4,
	     5,      5,      5,      5,      6,      6,      7,      7,
	     8,      8,      8,      9,     10,     10,     11,     11,
	    12,     13,     14,     15,     16,     16,     17,     19,
	    20,     21,     22,     23,     25,     26,     28,     30,
	    32,     33,     35,     38,     40,     42,     45,     47,
	    50,     53,     57,     60,     64,     67,     71,     76,
	    80,     85,     90,     95,    101,    107,    114,    120,
	   128,    135,    143,    152,    161,    170,    181,    191,
	   203,    215,    228,    241,    256,    271,    287,    304,
	   322,    341,    362,    383,    406,    430,    456,    483,
	   512,    542,    574,    608,    645,    683,    724,    767,
	   812,    861,    912,    966,   1024,   1084,   1149,   1217,
	  1290,   1366,   1448,   1534,   1625,   1722,   1824,   1933,
	  2048,   2169,   2298,   2435,   2580,   2733,   2896,   3068,
	  3250,   3444,   3649,   3866,   4096,   4339,   4597,   4870,
	  5160,   5467,   5792,   6137,   6501,   6888,   7298,   7732,
	  8192,   8679,   9195,   9741,  10321,  10935,  11585,  12274,
	 13003,  13777,  14596,  15464,  16384,  17358,  18390,  19483,
	 20642,  21870,  23170,  24548,  26007,  27554,  29192,  30928,
	 32768,  34716,  36780,  38967,  41285,  43740,  46340,  49096,
	 52015,  55108,  58385,  61857,  65536,  69432,  73561,  77935,
}

// pitchFineTable is the 256-entry fine pitch multiplier table indexed by the
// low byte of the pitch-derived index in setFreq.
var pitchFineTable = [256]uint32{
	 32768,  32775,  32782,  32790,  32797,  32804,  32812,  32819,
	 32827,  32834,  32842,  32849,  32856,  32864,  32871,  32879,
	 32886,  32893,  32901,  32908,  32916,  32923,  32931,  32938,
	 32945,  32953,  32960,  32968,  32975,  32983,  32990,  32998,
	 33005,  33012,  33020,  33027,  33035,  33042,  33050,  33057,
	 33065,  33072,  33080,  33087,  33094,  33102,  33109,  33117,
	 33124,  33132,  33139,  33147,  33154,  33162,  33169,  33177,
	 33184,  33192,  33199,  33207,  33214,  33222,  33229,  33237,
	 33244,  33252,  33259,  33267,  33274,  33282,  33289,  33297,
	 33304,  33312,  33319,  33327,  33334,  33342,  33349,  33357,
	 33364,  33372,  33379,  33387,  33394,  33402,  33410,  33417,
	 33425,  33432,  33440,  33447,  33455,  33462,  33470,  33477,
	 33485,  33493,  33500,  33508,  33515,  33523,  33530,  33538,
	 33546,  33553,  33561,  33568,  33576,  33583,  33591,  33599,
	 33606,  33614,  33621,  33629,  33636,  33644,  33652,  33659,
	 33667,  33674,  33682,  33690,  33697,  33705,  33712,  33720,
	 33728,  33735,  33743,  33751,  33758,  33766,  33773,  33781,
	 33789,  33796,  33804,  33811,  33819,  33827,  33834,  33842,
	 33850,  33857,  33865,  33873,  33880,  33888,  33896,  33903,
	 33911,  33918,  33926,  33934,  33941,  33949,  33957,  33964,
	 33972,  33980,  33987,  33995,  34003,  34010,  34018,  34026,
	 34033,  34041,  34049,  34057,  34064,  34072,  34080,  34087,
	 34095,  34103,  34110,  34118,  34126,  34133,  34141,  34149,
	 34157,  34164,  34172,  34180,  34187,  34195,  34203,  34211,
	 34218,  34226,  34234,  34241,  34249,  34257,  34265,  34272,
	 34280,  34288,  34296,  34303,  34311,  34319,  34327,  34334,
	 34342,  34350,  34358,  34365,  34373,  34381,  34389,  34396,
	 34404,  34412,  34420,  34427,  34435,  34443,  34451,  34458,
	 34466,  34474,  34482,  34490,  34497,  34505,  34513,  34521,
	 34528,  34536,  34544,  34552,  34560,  34567,  34575,  34583,
	 34591,  34599,  34606,  34614,  34622,  34630,  34638,  34646,
	 34653,  34661,  34669,  34677,  34685,  34692,  34700,  34708,
}

// lfoIncrementTable is the per-program LFO phase increment table, indexed
// by a program's LFO-rate field plus 112. It shares pitchCoarseTable's
// backing values: the two are one table in the ROM-adjacent layout,
// addressed by disjoint index ranges.
var lfoIncrementTable = pitchCoarseTable

// envelopeCurveTable converts the 15-bit exponential envelope ramp
// position into a linear amplitude multiplier via 2048-wide linear
// segments.
var envelopeCurveTable = [17]uint16{0, 250, 561, 949, 1430, 2030, 2776, 3704, 4858, 6295, 8083, 10307, 13075, 16519, 20803, 26135, 32768}

// quantShiftDelta is indexed by the 2-bit control field in each
// delta-coded ROM word to update the per-voice quantization shift while
// decoding PCM.
var quantShiftDelta = [4]int32{0, 1, 2, -1}

// drumKitProgramNumbers maps the 8 accepted Program Change values on the
// drum channel to drum-kit indices 0..7.
var drumKitProgramNumbers = [8]uint8{0, 8, 16, 24, 25, 32, 40, 48}

// drumExclusionMap holds two null-terminated (source,target) pair tables
// back to back: the default kit's exclusion pairs (hi-hat choke, mute
// triangle, ...) followed by the orchestra kit's variant, each terminated by
// a 255,255 sentinel pair and the whole table closed by a single 0.
// drumExclusionOrchestra indexes the start of the orchestra variant.
var drumExclusionMap = [73]int32{
	  42,   44,   42,   46,   44,   42,   44,   46,
	  46,   42,   46,   44,   71,   72,   72,   71,
	  73,   74,   74,   73,   78,   79,   79,   78,
	  80,   81,   81,   80,   29,   30,   30,   29,
	  86,   87,   87,   86,  255,  255,   27,   28,
	  27,   29,   28,   27,   28,   29,   29,   27,
	  29,   28,   71,   72,   72,   71,   73,   74,
	  74,   73,   78,   79,   79,   78,   80,   81,
	  81,   80,   86,   87,   87,   86,  255,  255,
	   0,
}

// velocityCurves holds the 12 precomputed 128-entry velocity mapping curves
// selected by SetVelocityCurve / SysEx 0x40..0x4B.
var velocityCurves = [12][128]int32{
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   3,   4,   5,   6,   7,   8,   9,
		 11,  13,  14,  16,  18,  20,  22,  24,  26,  28,  30,  32,  34,  36,  39,  41,
		 43,  45,  47,  49,  51,  52,  54,  55,  57,  59,  60,  61,  63,  64,  66,  67,
		 68,  69,  70,  72,  73,  74,  76,  77,  78,  79,  81,  82,  83,  84,  85,  86,
		 87,  87,  88,  89,  90,  91,  91,  92,  93,  93,  94,  95,  95,  96,  97,  97,
		 98,  99, 100, 100, 101, 102, 102, 103, 104, 104, 105, 106, 106, 107, 108, 108,
		109, 110, 111, 111, 112, 113, 113, 114, 115, 115, 116, 117, 117, 118, 119, 119,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   3,   4,   5,   6,   7,   8,   9,
		 11,  13,  14,  16,  18,  20,  22,  24,  26,  28,  30,  32,  34,  36,  39,  41,
		 43,  45,  47,  49,  51,  52,  54,  55,  57,  59,  60,  61,  63,  64,  66,  67,
		 68,  69,  70,  72,  73,  74,  76,  77,  78,  79,  81,  82,  83,  84,  85,  86,
		 87,  87,  88,  89,  90,  91,  91,  92,  93,  93,  94,  95,  95,  96,  97,  97,
		 98,  99, 100, 100, 101, 102, 102, 103, 104, 104, 105, 106, 106, 107, 108, 108,
		109, 110, 111, 111, 112, 113, 113, 114, 115, 115, 116, 117, 117, 118, 119, 119,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   3,   4,   5,   6,   7,   8,   9,
		 11,  12,  13,  15,  17,  19,  21,  23,  25,  27,  29,  31,  33,  35,  37,  39,
		 41,  43,  45,  47,  49,  50,  52,  53,  55,  57,  58,  59,  60,  61,  63,  64,
		 65,  66,  67,  69,  70,  71,  73,  74,  75,  76,  78,  79,  80,  81,  82,  83,
		 83,  84,  85,  86,  87,  88,  88,  89,  90,  90,  91,  92,  92,  93,  94,  94,
		 95,  96,  97,  97,  98,  99,  99, 101, 102, 102, 103, 104, 104, 105, 106, 106,
		107, 108, 109, 110, 111, 112, 112, 113, 114, 114, 115, 116, 117, 118, 119, 119,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   3,   4,   5,   6,   7,   7,   8,
		 10,  12,  13,  15,  17,  18,  20,  22,  24,  26,  28,  29,  31,  33,  36,  38,
		 40,  41,  43,  45,  47,  48,  50,  51,  52,  54,  55,  56,  58,  59,  61,  62,
		 62,  63,  64,  66,  67,  68,  70,  71,  72,  73,  74,  75,  76,  77,  78,  79,
		 80,  80,  81,  82,  83,  84,  84,  85,  86,  87,  88,  89,  89,  90,  91,  91,
		 92,  93,  94,  95,  96,  97,  97,  98,  99,  99, 101, 102, 102, 103, 104, 104,
		106, 107, 108, 108, 109, 110, 111, 112, 113, 113, 115, 116, 116, 117, 118, 119,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   3,   4,   5,   5,   6,   7,   8,
		 10,  11,  12,  14,  16,  18,  19,  21,  23,  25,  26,  28,  30,  32,  34,  36,
		 38,  40,  41,  43,  45,  46,  47,  48,  50,  52,  53,  54,  55,  56,  58,  59,
		 60,  61,  61,  63,  64,  65,  67,  68,  69,  69,  71,  72,  73,  74,  75,  76,
		 76,  77,  78,  79,  80,  81,  81,  82,  83,  83,  84,  86,  86,  87,  88,  88,
		 89,  91,  92,  92,  93,  94,  94,  96,  97,  97,  98, 100, 100, 101, 102, 103,
		104, 105, 106, 107, 108, 109, 110, 111, 112, 112, 114, 115, 116, 117, 118, 119,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   3,   4,   4,   5,   6,   7,   8,
		  9,  11,  12,  13,  15,  17,  18,  20,  22,  23,  25,  27,  28,  30,  33,  34,
		 36,  38,  39,  41,  43,  44,  45,  46,  48,  49,  50,  51,  53,  54,  55,  56,
		 57,  58,  59,  60,  61,  62,  64,  65,  65,  66,  68,  69,  70,  70,  71,  72,
		 73,  73,  74,  75,  76,  77,  78,  79,  80,  80,  81,  82,  83,  84,  85,  85,
		 87,  88,  89,  89,  90,  92,  92,  93,  94,  95,  96,  97,  98,  99, 100, 101,
		102, 103, 105, 105, 107, 108, 108, 110, 111, 112, 113, 115, 115, 116, 118, 118,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   3,   3,   4,   5,   6,   7,   7,
		  9,  10,  11,  13,  14,  16,  18,  19,  21,  22,  24,  26,  27,  29,  31,  33,
		 34,  36,  37,  39,  41,  41,  43,  44,  45,  47,  48,  49,  50,  51,  53,  53,
		 54,  55,  56,  57,  58,  59,  61,  61,  62,  63,  65,  65,  66,  67,  68,  69,
		 69,  70,  71,  72,  73,  74,  74,  76,  77,  77,  78,  79,  80,  81,  82,  82,
		 84,  85,  86,  87,  88,  89,  89,  91,  92,  93,  94,  95,  96,  97,  98,  99,
		100, 102, 103, 104, 105, 107, 107, 109, 110, 111, 112, 114, 115, 116, 118, 118,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   3,   3,   4,   5,   6,   6,   7,
		  8,  10,  11,  12,  14,  15,  17,  18,  20,  21,  23,  24,  26,  27,  30,  31,
		 33,  34,  36,  37,  39,  39,  41,  42,  43,  45,  45,  46,  48,  48,  50,  51,
		 51,  52,  53,  54,  55,  56,  58,  58,  59,  60,  61,  62,  63,  64,  64,  65,
		 66,  66,  67,  68,  70,  71,  71,  72,  73,  74,  75,  76,  77,  78,  79,  80,
		 81,  82,  83,  84,  85,  86,  87,  88,  90,  90,  92,  93,  94,  95,  97,  97,
		 99, 100, 102, 102, 104, 105, 106, 108, 109, 110, 112, 113, 114, 116, 117, 118,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   3,   2,   3,   4,   5,   5,   6,   7,
		  8,   9,  10,  11,  13,  14,  16,  17,  19,  20,  21,  23,  24,  26,  28,  29,
		 31,  32,  34,  35,  37,  37,  39,  39,  41,  42,  43,  44,  45,  46,  47,  48,
		 49,  49,  50,  52,  52,  53,  54,  55,  56,  57,  58,  59,  59,  60,  61,  62,
		 62,  63,  64,  65,  66,  67,  68,  69,  70,  71,  72,  73,  74,  75,  76,  77,
		 78,  79,  81,  81,  83,  84,  84,  86,  87,  88,  89,  91,  92,  93,  95,  95,
		 97,  98, 100, 101, 102, 104, 105, 107, 108, 109, 111, 113, 114, 115, 117, 118,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   2,   2,   3,   4,   4,   5,   6,   6,
		  7,   9,   9,  11,  12,  14,  15,  16,  18,  19,  20,  22,  23,  24,  26,  28,
		 29,  30,  32,  33,  34,  35,  36,  37,  39,  40,  41,  41,  43,  43,  45,  45,
		 46,  47,  47,  49,  49,  50,  51,  52,  53,  53,  55,  55,  56,  57,  57,  58,
		 59,  59,  60,  62,  63,  64,  64,  66,  67,  67,  69,  70,  70,  72,  73,  74,
		 75,  76,  78,  78,  80,  81,  82,  83,  85,  86,  87,  89,  89,  91,  93,  93,
		 95,  97,  99,  99, 101, 103, 104, 106, 107, 108, 110, 112, 113, 115, 117, 118,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   2,   2,   3,   4,   4,   5,   5,   6,
		  7,   8,   9,  10,  11,  13,  14,  15,  17,  18,  19,  20,  22,  23,  25,  26,
		 27,  29,  30,  31,  32,  33,  34,  35,  36,  37,  38,  39,  40,  41,  42,  43,
		 43,  44,  44,  46,  46,  47,  48,  49,  50,  50,  51,  52,  53,  53,  54,  55,
		 55,  56,  57,  58,  59,  61,  61,  62,  64,  64,  65,  67,  67,  69,  70,  71,
		 72,  74,  75,  76,  77,  79,  79,  81,  83,  83,  85,  87,  87,  89,  91,  92,
		 93,  95,  97,  98, 100, 102, 103, 104, 106, 107, 109, 111, 113, 115, 117, 118,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
	{
		  0,   1,   1,   1,   2,   2,   2,   2,   2,   2,   3,   3,   4,   5,   5,   6,
		  7,   8,   8,  10,  11,  12,  13,  14,  15,  17,  18,  19,  20,  21,  23,  24,
		 26,  27,  28,  29,  30,  31,  32,  33,  34,  35,  36,  36,  37,  38,  39,  40,
		 40,  41,  42,  43,  43,  44,  45,  46,  46,  47,  48,  49,  49,  50,  51,  51,
		 52,  52,  53,  55,  56,  57,  58,  59,  60,  61,  62,  64,  64,  66,  67,  68,
		 69,  71,  72,  73,  75,  76,  77,  79,  80,  81,  83,  84,  85,  87,  89,  90,
		 92,  94,  95,  96,  98, 100, 101, 103, 105, 107, 109, 111, 112, 114, 116, 118,
		120, 121, 122, 122, 123, 123, 124, 124, 124, 125, 125, 125, 126, 126, 126, 127,
	},
}
