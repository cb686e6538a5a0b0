package hash

import (
	"testing"

	. "github.com/halvden/countmap/tt"
)

func TestString(t *testing.T) {
	Test(t, Fn("String", String), Table{
		Args("").Rets(DJBInit),
		Args("a").Rets(DJBCombine(DJBInit, 'a')),
		Args("ab").Rets(DJBCombine(DJBCombine(DJBInit, 'a'), 'b')),
	})
}

func TestDJB(t *testing.T) {
	Test(t, Fn("DJB", DJB), Table{
		Args().Rets(DJBInit),
		Args(uint32(7)).Rets(DJBCombine(DJBInit, 7)),
		Args(uint32(7), uint32(8)).Rets(DJBCombine(DJBCombine(DJBInit, 7), 8)),
	})
}

func TestUInt32(t *testing.T) {
	Test(t, Fn("UInt32", UInt32), Table{
		Args(uint32(0)).Rets(uint32(0)),
		Args(uint32(0xdeadbeef)).Rets(uint32(0xdeadbeef)),
	})
}

func TestUInt64(t *testing.T) {
	Test(t, Fn("UInt64", UInt64), Table{
		Args(uint64(0)).Rets(uint32(0)),
		Args(uint64(1)).Rets(uint32(1)),
		Args(uint64(1) << 32).Rets(uint32(33)),
	})
}
