package bc64

import "testing"

func newTestVIC(t *testing.T) (*VIC2, *Memory) {
	t.Helper()
	mem := NewMemory()
	if err := mem.AttachROMs(testROMSet()); err != nil {
		t.Fatalf("AttachROMs: %v", err)
	}
	sched := NewScheduler()
	vic := NewVIC2(mem, sched, nil)
	mem.attachChips(
		NewCIA(sched, CBTimer1A, CBTimer1B, nil),
		NewCIA(sched, CBTimer2A, CBTimer2B, nil),
		vic,
	)
	mem.Reset()
	vic.Reset()
	return vic, mem
}

func TestVICRasterCompareLatchesAndInterrupts(t *testing.T) {
	fired := false
	mem := NewMemory()
	mem.AttachROMs(testROMSet())
	sched := NewScheduler()
	vic := NewVIC2(mem, sched, func() { fired = true })
	mem.attachChips(NewCIA(sched, CBTimer1A, CBTimer1B, nil), NewCIA(sched, CBTimer2A, CBTimer2B, nil), vic)
	mem.Reset()
	vic.Reset()

	vic.WriteReg(0x1a, 0x01) // enable raster IRQ
	vic.WriteReg(0x12, 50)   // compare at line 50

	vic.updateRaster(50)
	if !fired {
		t.Fatal("expected raster compare interrupt")
	}
	if vic.ReadReg(0x19)&0x01 == 0 {
		t.Fatal("expected raster latch bit set")
	}
}

func TestVICMemPointerWriteRoutesThroughMemory(t *testing.T) {
	vic, mem := newTestVIC(t)
	vic.WriteReg(0x18, 0x14) // VM=0001, CB=010 -> matrix at $0400, chars at $1000
	if mem.videoMatrixBase != 0x0400 {
		t.Fatalf("matrix base = $%04X, want $0400", mem.videoMatrixBase)
	}
}

func TestVICCollisionSetsLatchAndClearsOnRead(t *testing.T) {
	vic, _ := newTestVIC(t)
	sprites := [8]spriteLine{
		{mask: 0xffffff, xpos: 100, present: true},
		{mask: 0xffffff, xpos: 101, present: true},
	}
	vic.collideSprites(sprites)
	if vic.registers[0x1e] == 0 {
		t.Fatal("expected overlapping sprites to set the collision latch")
	}
	v := vic.ReadReg(0x1e)
	if v == 0 {
		t.Fatal("expected non-zero collision read")
	}
	if vic.registers[0x1e] != 0 {
		t.Fatal("expected collision latch cleared after read")
	}
}

func TestVICNonOverlappingSpritesDoNotCollide(t *testing.T) {
	vic, _ := newTestVIC(t)
	sprites := [8]spriteLine{
		{mask: 0x000001, xpos: 0, present: true},
		{mask: 0x000001, xpos: 200, present: true},
	}
	vic.collideSprites(sprites)
	if vic.registers[0x1e] != 0 {
		t.Fatal("expected far-apart sprites not to collide")
	}
}
