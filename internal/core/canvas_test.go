package core

import "testing"

func TestCanvasCommit(t *testing.T) {
	c := NewCanvas(16, 16)

	c.Begin()
	c.DrawBox(0, 0, 2, 2)
	if c.Front().Lit() != 0 {
		t.Error("draws should not be visible before Commit")
	}
	c.Commit()

	if c.Front().Lit() != 4 {
		t.Errorf("Front().Lit() = %d, expected 4", c.Front().Lit())
	}
	if c.Commits() != 1 {
		t.Errorf("Commits() = %d, expected 1", c.Commits())
	}
}

func TestCanvasRollback(t *testing.T) {
	c := NewCanvas(16, 16)

	c.Begin()
	c.DrawDisc(8, 8, 2)
	c.Commit()
	before := c.Front().String()

	c.Begin()
	c.DrawBox(0, 0, 16, 16)
	c.Rollback()
	c.Commit() // no open frame, ignored

	if c.Front().String() != before {
		t.Error("Rollback should leave the committed frame untouched")
	}
	if c.Commits() != 1 {
		t.Errorf("Commits() = %d, expected 1", c.Commits())
	}
}

func TestCanvasNextFrameStartsEmpty(t *testing.T) {
	c := NewCanvas(16, 16)

	c.Begin()
	c.DrawBox(0, 0, 4, 4)
	c.DrawStr(0, 8, "A")
	c.Commit()

	c.Begin()
	c.DrawFrame(10, 10, 3, 3)
	c.Commit()

	if c.Front().Pixel(0, 0) {
		t.Error("previous frame leaked into the new one")
	}
	if len(c.Front().Texts()) != 0 {
		t.Errorf("Texts() = %v, expected none", c.Front().Texts())
	}
}

func TestCanvasDrawOutsideFrame(t *testing.T) {
	c := NewCanvas(16, 16)
	c.DrawCircle(8, 8, 3)
	c.Begin()
	c.Commit()

	if c.Front().Lit() != 0 {
		t.Error("draws outside Begin/Commit should be dropped")
	}
}
