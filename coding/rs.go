package coding

import "github.com/qrsym/qrsym/gf256"

// AddECC splits data into the version+level's Reed-Solomon blocks,
// computes each block's ECC codewords, and interleaves data and ECC
// codewords into the final transmission-order stream (§4.5).
//
// len(data) must equal v.dataCodewords(l); callers only ever pass the
// padded output of writeTerminatorAndPad, which guarantees this.
func AddECC(data []byte, v Version, l EccLevel) []byte {
	k := v.eccCodewordsPerBlock(l)
	gen := gf256.Std.Generator(k)
	grp := v.blocks(l)

	n := grp.shortCount + grp.longCount
	blocks := make([][]byte, n)
	eccs := make([][]byte, n)
	off := 0
	for i := 0; i < grp.shortCount; i++ {
		blocks[i] = data[off : off+grp.shortLen]
		off += grp.shortLen
	}
	for i := 0; i < grp.longCount; i++ {
		blocks[grp.shortCount+i] = data[off : off+grp.shortLen+1]
		off += grp.shortLen + 1
	}
	for i, blk := range blocks {
		eccs[i] = gf256.Std.ECC(blk, gen)
	}

	out := make([]byte, 0, off+k*n)
	longest := grp.shortLen
	if grp.longCount > 0 {
		longest = grp.shortLen + 1
	}
	for i := 0; i < longest; i++ {
		for _, blk := range blocks {
			if i < len(blk) {
				out = append(out, blk[i])
			}
		}
	}
	for i := 0; i < k; i++ {
		for _, ecc := range eccs {
			out = append(out, ecc[i])
		}
	}
	return out
}
