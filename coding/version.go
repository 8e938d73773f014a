package coding

// Version is a QR Code symbol version, 1 through 40. A symbol's side
// length in modules is 17+4*Version.
type Version int

const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

// Valid reports whether v is in [MinVersion, MaxVersion].
func (v Version) Valid() bool { return v >= MinVersion && v <= MaxVersion }

// Dimension returns the module width/height of a symbol of version v.
func (v Version) Dimension() int { return 17 + 4*int(v) }

// versionEntry holds the per-level Reed-Solomon block layout and the
// alignment pattern center coordinates for one version. eccCheck and
// nblock are indexed by EccLevel.index(), i.e. in scrambled [M, L, H, Q]
// order rather than natural enumeration order. total is level-
// independent: every level packs the same number of data-plus-ECC
// codewords into a given version, just split differently.
type versionEntry struct {
	eccCheck [4]int // error-correction codewords per block
	nblock   [4]int // total number of blocks (across both size groups)
	total    int    // total data+ECC codewords in the symbol
	align    []int  // alignment pattern center coordinates, ascending
}

// entry returns the table row for v. v must be valid.
func (v Version) entry() *versionEntry { return &versionTable[v] }

// eccCodewordsPerBlock returns the number of error-correction codewords
// in each Reed-Solomon block for the given level.
func (v Version) eccCodewordsPerBlock(l EccLevel) int {
	return versionTable[v].eccCheck[l.index()]
}

// numBlocks returns the total count of Reed-Solomon blocks for the
// given level, summed across both data-codeword size groups.
func (v Version) numBlocks(l EccLevel) int {
	return versionTable[v].nblock[l.index()]
}

// totalCodewords returns the total number of codewords (data plus ECC)
// that fit in a symbol of version v, independent of level.
func (v Version) totalCodewords() int { return versionTable[v].total }

// dataCodewords returns the total number of data codewords available
// for the given level, i.e. totalCodewords minus every block's ECC
// codewords.
func (v Version) dataCodewords(l EccLevel) int {
	e := &versionTable[v]
	i := l.index()
	return v.totalCodewords() - e.eccCheck[i]*e.nblock[i]
}

// alignmentCenters returns the ascending list of alignment pattern
// center coordinates along one axis for v, or nil for version 1, which
// has no alignment patterns.
func (v Version) alignmentCenters() []int { return versionTable[v].align }

// blockGroups describes the two possible Reed-Solomon block-size
// groups within a version+level: shortCount blocks carrying shortLen
// data codewords, followed by longCount blocks (present only when the
// data codewords don't divide evenly) carrying shortLen+1.
type blockGroups struct {
	shortCount, shortLen int
	longCount            int
}

// blocks computes the block-size grouping for v at level l, per the
// standard's rule that any remainder blocks carry one extra data
// codeword and are placed after the uniform-size blocks.
func (v Version) blocks(l EccLevel) blockGroups {
	n := v.numBlocks(l)
	data := v.dataCodewords(l)
	short := data / n
	long := data % n
	return blockGroups{shortCount: n - long, shortLen: short, longCount: long}
}

// versionTable holds, for every version 1-40, the Reed-Solomon layout
// and alignment coordinates needed to build a symbol. Generated by
// coding/gen.go from the JIS X 0510:2004 Annex tables (via a working
// ZXing port's transcription of the same tables); the per-level slots
// are laid out [M, L, H, Q], matching EccLevel.index().
var versionTable = [41]versionEntry{
	{}, // unused index 0
	1:  {[4]int{10, 7, 17, 13}, [4]int{1, 1, 1, 1}, 26, nil},
	2:  {[4]int{16, 10, 28, 22}, [4]int{1, 1, 1, 1}, 44, []int{6, 18}},
	3:  {[4]int{26, 15, 22, 18}, [4]int{1, 1, 2, 2}, 70, []int{6, 22}},
	4:  {[4]int{18, 20, 16, 26}, [4]int{2, 1, 4, 2}, 100, []int{6, 26}},
	5:  {[4]int{24, 26, 22, 18}, [4]int{2, 1, 4, 4}, 134, []int{6, 30}},
	6:  {[4]int{16, 18, 28, 24}, [4]int{4, 2, 4, 4}, 172, []int{6, 34}},
	7:  {[4]int{18, 20, 26, 18}, [4]int{4, 2, 5, 6}, 196, []int{6, 22, 38}},
	8:  {[4]int{22, 24, 26, 22}, [4]int{4, 2, 6, 6}, 242, []int{6, 24, 42}},
	9:  {[4]int{22, 30, 24, 20}, [4]int{5, 2, 8, 8}, 292, []int{6, 26, 46}},
	10: {[4]int{26, 18, 28, 24}, [4]int{5, 4, 8, 8}, 346, []int{6, 28, 50}},
	11: {[4]int{30, 20, 24, 28}, [4]int{5, 4, 11, 8}, 404, []int{6, 30, 54}},
	12: {[4]int{22, 24, 28, 26}, [4]int{8, 4, 11, 10}, 466, []int{6, 32, 58}},
	13: {[4]int{22, 26, 22, 24}, [4]int{9, 4, 16, 12}, 532, []int{6, 34, 62}},
	14: {[4]int{24, 30, 24, 20}, [4]int{9, 4, 16, 16}, 581, []int{6, 26, 46, 66}},
	15: {[4]int{24, 22, 24, 30}, [4]int{10, 6, 18, 12}, 655, []int{6, 26, 48, 70}},
	16: {[4]int{28, 24, 30, 24}, [4]int{10, 6, 16, 17}, 733, []int{6, 26, 50, 74}},
	17: {[4]int{28, 28, 28, 28}, [4]int{11, 6, 19, 16}, 815, []int{6, 30, 54, 78}},
	18: {[4]int{26, 30, 28, 28}, [4]int{13, 6, 21, 18}, 901, []int{6, 30, 56, 82}},
	19: {[4]int{26, 28, 26, 26}, [4]int{14, 7, 25, 21}, 991, []int{6, 30, 58, 86}},
	20: {[4]int{26, 28, 28, 30}, [4]int{16, 8, 25, 20}, 1085, []int{6, 34, 62, 90}},
	21: {[4]int{26, 28, 30, 28}, [4]int{17, 8, 25, 23}, 1156, []int{6, 28, 50, 72, 94}},
	22: {[4]int{28, 28, 24, 30}, [4]int{17, 9, 34, 23}, 1258, []int{6, 26, 50, 74, 98}},
	23: {[4]int{28, 30, 30, 30}, [4]int{18, 9, 30, 25}, 1364, []int{6, 30, 54, 78, 102}},
	24: {[4]int{28, 30, 30, 30}, [4]int{20, 10, 32, 27}, 1474, []int{6, 28, 54, 80, 106}},
	25: {[4]int{28, 26, 30, 30}, [4]int{21, 12, 35, 29}, 1588, []int{6, 32, 58, 84, 110}},
	26: {[4]int{28, 28, 30, 28}, [4]int{23, 12, 37, 34}, 1706, []int{6, 30, 58, 86, 114}},
	27: {[4]int{28, 30, 30, 30}, [4]int{25, 12, 40, 34}, 1828, []int{6, 34, 62, 90, 118}},
	28: {[4]int{28, 30, 30, 30}, [4]int{26, 13, 42, 35}, 1921, []int{6, 26, 50, 74, 98, 122}},
	29: {[4]int{28, 30, 30, 30}, [4]int{28, 14, 45, 38}, 2051, []int{6, 30, 54, 78, 102, 126}},
	30: {[4]int{28, 30, 30, 30}, [4]int{29, 15, 48, 40}, 2185, []int{6, 26, 52, 78, 104, 130}},
	31: {[4]int{28, 30, 30, 30}, [4]int{31, 16, 51, 43}, 2323, []int{6, 30, 56, 82, 108, 134}},
	32: {[4]int{28, 30, 30, 30}, [4]int{33, 17, 54, 45}, 2465, []int{6, 34, 60, 86, 112, 138}},
	33: {[4]int{28, 30, 30, 30}, [4]int{35, 18, 57, 48}, 2611, []int{6, 30, 58, 86, 114, 142}},
	34: {[4]int{28, 30, 30, 30}, [4]int{37, 19, 60, 51}, 2761, []int{6, 34, 62, 90, 118, 146}},
	35: {[4]int{28, 30, 30, 30}, [4]int{38, 19, 63, 53}, 2876, []int{6, 30, 54, 78, 102, 126, 150}},
	36: {[4]int{28, 30, 30, 30}, [4]int{40, 20, 66, 56}, 3034, []int{6, 24, 50, 76, 102, 128, 154}},
	37: {[4]int{28, 30, 30, 30}, [4]int{43, 21, 70, 59}, 3196, []int{6, 28, 54, 80, 106, 132, 158}},
	38: {[4]int{28, 30, 30, 30}, [4]int{45, 22, 74, 62}, 3362, []int{6, 32, 58, 84, 110, 136, 162}},
	39: {[4]int{28, 30, 30, 30}, [4]int{47, 24, 77, 65}, 3532, []int{6, 26, 54, 82, 110, 138, 166}},
	40: {[4]int{28, 30, 30, 30}, [4]int{49, 25, 81, 68}, 3706, []int{6, 30, 58, 86, 114, 142, 170}},
}
